package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/erincandescent/derkit/config"
	"github.com/erincandescent/derkit/dshl"
	"github.com/erincandescent/derkit/logging"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

func newShell(cfg *config.Config) *dshl.Shell {
	sh := dshl.New()
	sh.Scope.PS1 = dshl.NewPS1(cfg.Prompt, "! "+cfg.Prompt)
	sh.Highlight = cfg.Color
	sh.AddCommand(lengthCmd)
	sh.AddCommand(tagCmd)
	sh.AddCommand(intCmd)
	sh.AddCommand(dumpCmd)
	return sh
}

func run(configPath string, debug, noColor bool, args []string) (rerr error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	if noColor {
		cfg.Color = false
	}
	if !cfg.Color {
		color.NoColor = true
	}

	log, err := logging.New(os.Stderr, cfg.Logging.Level)
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer func() { rerr = multierr.Append(rerr, log.Sync()) }()

	ctx := context.Background()
	ctx = withConfig(ctx, cfg)
	ctx = withLogger(ctx, log)

	sh := newShell(cfg)
	if len(args) > 0 {
		v, err := sh.Exec(ctx, args)
		if err != nil {
			return err
		}
		return sh.Dump(v)
	}
	return sh.Run(ctx)
}

func MainCmd() {
	pflag.SetInterspersed(false)
	configPath := pflag.String("config", config.DefaultPath(), "Configuration file")
	debug := pflag.Bool("debug", false, "Log encoder output at debug level")
	noColor := pflag.Bool("no-color", false, "Disable coloured output")
	pflag.Parse()

	if err := run(*configPath, *debug, *noColor, pflag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
