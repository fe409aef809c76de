package runner

import (
	"os"
	"path/filepath"

	"github.com/cryptobraid/braidcrypt"
	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

// init ensures a default scenario config exists so `braiddemo` works with
// no flags at all, mirroring the teacher's "write a usable default config
// the first time it's needed" convention. It validates the file with
// goccy/go-yaml (a stricter parser used here purely as a config-syntax
// linter) before trusting it, independently of the gopkg.in/yaml.v3 decoder
// braid.NewConfig uses to actually load it.
func init() {
	defaultCfg := filepath.Join(getUserHomeDir(), ".config/braidcrypt/scenario.yaml")
	if fileutil.FileExists(defaultCfg) {
		if bin, err := os.ReadFile(defaultCfg); err == nil {
			var cfg braid.Config
			if errx := yaml.Unmarshal(bin, &cfg); errx == nil {
				return
			} else {
				gologger.Error().Msgf("braidcrypt scenario configuration syntax error.\n %v\n.", yaml.FormatError(errx, true, true))
				return
			}
		}
	}
	if err := validateDir(filepath.Join(getUserHomeDir(), ".config/braidcrypt")); err != nil {
		gologger.Error().Msgf("braidcrypt config dir not found and failed to create got: %v", err)
		return
	}
	if err := braid.GenerateSample(defaultCfg); err != nil {
		gologger.Error().Msgf("failed to save default scenario to %v got: %v", defaultCfg, err)
	}
}

// validateDir checks if dir exists if not creates it
func validateDir(dirPath string) error {
	if fileutil.FolderExists(dirPath) {
		return nil
	}
	return fileutil.CreateFolder(dirPath)
}
