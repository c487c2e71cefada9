package app

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-theft-auto/samples/gfx"
	"github.com/go-theft-auto/samples/gfx/glbackend"
)

func init() {
	OnVerbose(gfx.SetVerbose)
	OnVerbose(glbackend.SetVerbose)
}

// RunFunc runs a program with its final Desc. Run is the windowed one.
type RunFunc func(Desc, Callbacks) error

// Main is the entry point of every sample binary. It parses flags, applies
// the config file, .env file and SAMPLES_* overrides, runs the program and
// returns the process exit code.
func Main(desc Desc, cb Callbacks) int {
	return mainWith(os.Args[1:], os.Stderr, desc, cb, Run)
}

func mainWith(args []string, stderr io.Writer, desc Desc, cb Callbacks, run RunFunc) int {
	fset := flag.NewFlagSet(desc.WindowTitle, flag.ContinueOnError)
	fset.SetOutput(stderr)
	configPath := fset.String("config", "", "TOML config file with window overrides")
	envPath := fset.String("env", ".env", "dotenv file with SAMPLES_* overrides")
	verbose := fset.Bool("v", false, "verbose debug logging")
	frames := fset.Int("frames", 0, "quit after this many frames (0 runs until the window closes)")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	final, v, err := resolveDesc(desc, *configPath, *envPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *frames > 0 {
		final.MaxFrames = *frames
	}
	SetVerbose(*verbose || v)

	if err := run(final, cb); err != nil {
		appLogger.Error("run failed", "title", final.WindowTitle, "err", err)
		return 1
	}
	return 0
}

// resolveDesc layers config file then environment over desc. Environment
// variables win over the config file.
func resolveDesc(desc Desc, configPath, envPath string) (Desc, bool, error) {
	verbose := false
	if configPath != "" {
		c, err := LoadConfig(configPath)
		if err != nil {
			return desc, false, err
		}
		desc = c.Apply(desc)
		verbose = c.Verbose
	}
	if envPath != "" {
		if err := LoadEnvFile(envPath); err != nil {
			return desc, false, err
		}
	}
	env, err := EnvConfig()
	if err != nil {
		return desc, false, fmt.Errorf("environment: %w", err)
	}
	return env.Apply(desc), verbose || env.Verbose, nil
}
