package braid

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilePath is where a key-exchange scenario is read from/written
// to when the caller does not name one explicitly (spec.md §6, "optional
// serialization round-trip" for the demo's scenario state).
var DefaultConfigFilePath = filepath.Join(getUserHomeDir(), ".config/braidcrypt/scenario.yaml")

// Config is a named key-exchange scenario: the strand count and the three
// signed generator words (public braid, Alice's secret, Bob's secret) that
// feed the demo in cmd/braiddemo (spec.md §6). Persisted as YAML so a
// scenario can be saved, shared and replayed exactly.
type Config struct {
	Strands int   `yaml:"strands"`
	Public  []int `yaml:"public"`
	Alice   []int `yaml:"alice"`
	Bob     []int `yaml:"bob"`
}

// NewConfig reads a scenario from filePath.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample writes a small, valid 5-strand scenario to filePath, useful
// as a starting point for `braiddemo -config`.
func GenerateSample(filePath string) error {
	cfg := Config{
		Strands: 5,
		Public:  []int{1, 2, 3, 4, -2, 1, 3},
		Alice:   []int{1, 2, 1, 3},
		Bob:     []int{2, 3, 4, -1},
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// Words converts the scenario's three signed generator lists into Words
// validated against its strand count.
func (c *Config) Words() (public, alice, bob *Word, err error) {
	if public, err = Signed(c.Public, c.Strands); err != nil {
		return nil, nil, nil, err
	}
	if alice, err = Signed(c.Alice, c.Strands); err != nil {
		return nil, nil, nil, err
	}
	if bob, err = Signed(c.Bob, c.Strands); err != nil {
		return nil, nil, nil, err
	}
	return public, alice, bob, nil
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}
