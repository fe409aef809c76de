package main

import (
	"fmt"
	"os"

	"github.com/cryptobraid/braidcrypt"
	"github.com/cryptobraid/braidcrypt/garside"
	"github.com/cryptobraid/braidcrypt/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	opts := runner.ParseFlags()

	if opts.Format != "" {
		if err := braid.CheckFormat(opts.Format); err != nil {
			gologger.Fatal().Msgf("invalid -format template: %v", err)
		}
	}

	if opts.Census > 0 {
		runCensus(opts)
		return
	}

	runExchange(opts)
}

// runExchange builds the public braid and the two secret braids (from
// flags, or from a scenario config file; with neither -config nor any word
// flag, braid.DefaultConfigFilePath is read), then runs the conjugation-based
// key exchange from spec.md §6: Alice publishes p' = a p a^-1, Bob
// publishes p'' = b p b^-1, and each derives the same shared key by
// conjugating the other's public value with their own secret, provided
// Alice's and Bob's generators occupy disjoint strand ranges (spec.md §8,
// scenario 6).
func runExchange(opts *runner.Options) {
	n := opts.Strands
	var public, alice, bob *braid.Word
	var err error

	cfgPath := opts.Config
	if cfgPath == "" && opts.Public == "" && opts.Alice == "" && opts.Bob == "" {
		cfgPath = braid.DefaultConfigFilePath
	}

	if cfgPath != "" {
		cfg, cfgErr := braid.NewConfig(cfgPath)
		if cfgErr != nil {
			gologger.Fatal().Msgf("failed to read scenario %v got: %v", cfgPath, cfgErr)
		}
		n = cfg.Strands
		public, alice, bob, err = cfg.Words()
		if err != nil {
			gologger.Fatal().Msgf("invalid scenario %v: %v", cfgPath, err)
		}
	} else {
		publicIdx, perr := runner.ParseSignedWord(opts.Public)
		if perr != nil {
			gologger.Fatal().Msgf("%v", perr)
		}
		aliceIdx, aerr := runner.ParseSignedWord(opts.Alice)
		if aerr != nil {
			gologger.Fatal().Msgf("%v", aerr)
		}
		bobIdx, berr := runner.ParseSignedWord(opts.Bob)
		if berr != nil {
			gologger.Fatal().Msgf("%v", berr)
		}
		if public, err = braid.Signed(publicIdx, n); err != nil {
			gologger.Fatal().Msgf("invalid public word: %v", err)
		}
		if alice, err = braid.Signed(aliceIdx, n); err != nil {
			gologger.Fatal().Msgf("invalid alice word: %v", err)
		}
		if bob, err = braid.Signed(bobIdx, n); err != nil {
			gologger.Fatal().Msgf("invalid bob word: %v", err)
		}
	}

	pPrime, err := conjugate(alice, public)
	if err != nil {
		gologger.Fatal().Msgf("failed to compute p': %v", err)
	}
	pDoublePrime, err := conjugate(bob, public)
	if err != nil {
		gologger.Fatal().Msgf("failed to compute p'': %v", err)
	}

	keyAlice, err := conjugate(alice, pDoublePrime)
	if err != nil {
		gologger.Fatal().Msgf("failed to compute Alice's key: %v", err)
	}
	keyBob, err := conjugate(bob, pPrime)
	if err != nil {
		gologger.Fatal().Msgf("failed to compute Bob's key: %v", err)
	}

	formAlice, err := garside.Normalize(keyAlice)
	if err != nil {
		gologger.Fatal().Msgf("failed to normalize Alice's key: %v", err)
	}
	formBob, err := garside.Normalize(keyBob)
	if err != nil {
		gologger.Fatal().Msgf("failed to normalize Bob's key: %v", err)
	}

	printForm("alice's shared key", formAlice, opts.Format)
	printForm("bob's shared key  ", formBob, opts.Format)

	if formAlice.Equal(formBob) {
		gologger.Info().Msgf("shared keys match")
	} else {
		gologger.Error().Msgf("shared keys DO NOT match (check that alice/bob generators occupy disjoint strand ranges)")
	}
}

// conjugate returns secret * public * secret^-1.
func conjugate(secret, public *braid.Word) (*braid.Word, error) {
	if secret.N != public.N {
		return nil, braid.ErrMismatchedStrands
	}
	step, err := braid.Multiply(secret, public)
	if err != nil {
		return nil, err
	}
	return braid.Multiply(step, secret.Inverse())
}

// runCensus generates opts.Census random positive braids, normalizes each,
// and streams the distinct canonical forms seen to stdout (spec.md §6's
// coverage/collision sanity check, not a cryptanalytic claim).
func runCensus(opts *runner.Options) {
	dw := braid.NewDedupingWriter(os.Stdout)
	defer dw.Close()

	for i := 0; i < opts.Census; i++ {
		w, err := braid.RandomPositive(opts.Strands, 3, opts.Strands*2, 0.2)
		if err != nil {
			gologger.Error().Msgf("failed to generate random braid: %v", err)
			continue
		}
		form, err := garside.Normalize(w)
		if err != nil {
			gologger.Error().Msgf("failed to normalize random braid: %v", err)
			continue
		}
		fmt.Fprintln(dw, form.String())
	}
	dw.Close()
	// Count() is read after Close() drains the async dedupe pipeline; the
	// deferred Close() above is then a harmless no-op.
	gologger.Info().Msgf("%d distinct canonical forms out of %d samples", dw.Count(), opts.Census)
}

func printForm(label string, f *garside.Form, format string) {
	if format == "" {
		gologger.Info().Msgf("%s: %s", label, f.String())
		return
	}
	rendered, err := garside.FormatForm(format, f)
	if err != nil {
		gologger.Error().Msgf("failed to render -format template: %v", err)
		return
	}
	gologger.Info().Msgf("%s: %s", label, rendered)
}
