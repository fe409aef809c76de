package runner

import (
	"os"
	"strconv"
	"strings"

	"fmt"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Options holds the parsed braiddemo flags (spec.md §6): either an explicit
// strand count plus the three signed generator words making up a key
// exchange scenario, or a scenario config file to load them from, plus the
// output/census knobs.
type Options struct {
	Strands int
	Public  string
	Alice   string
	Bob     string
	Config  string
	Format  string
	Census  int
	Verbose bool
	Silent  bool
}

// ParseFlags parses os.Args into Options, following the teacher's
// goflags-group/gologger-leveling convention.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Braid-group Garside normal form demo and Diffie-Hellman-style key exchange.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.IntVarP(&opts.Strands, "strands", "n", 5, "number of strands in the braid group"),
		flagSet.StringVarP(&opts.Public, "public", "p", "", "public braid as a comma-separated signed generator word (e.g. '1,-2,3')"),
		flagSet.StringVarP(&opts.Alice, "alice", "a", "", "Alice's secret braid as a comma-separated signed generator word"),
		flagSet.StringVarP(&opts.Bob, "bob", "b", "", "Bob's secret braid as a comma-separated signed generator word"),
		flagSet.StringVar(&opts.Config, "config", "", "scenario config file to load strands/public/alice/bob from (default '$HOME/.config/braidcrypt/scenario.yaml')"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Format, "format", "f", "", "custom output template, may reference {{delta}}, {{factors}}, {{canonical}}"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display braiddemo version"),
	)

	flagSet.CreateGroup("census", "Census",
		flagSet.IntVarP(&opts.Census, "census", "c", 0, "generate N random positive braids and count distinct canonical forms instead of running the key exchange"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	return opts
}

// ParseSignedWord parses a comma-separated signed generator word such as
// "1,-2,3" into its indices.
func ParseSignedWord(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid generator %q in word %q: %w", p, s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
