package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kchristidis/listq/config"
	"github.com/kchristidis/listq/console"
	"github.com/kchristidis/listq/logging"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		cfgpath, script string

		fs    = afero.NewOsFs()
		flags = pflag.NewFlagSet("listq", pflag.ContinueOnError)
	)

	flags.SetOutput(stderr)
	flags.StringVarP(&cfgpath, "config", "c", "", "path to a config file (yaml, toml or json)")
	flags.StringVarP(&script, "file", "f", "", "read commands from this file instead of stdin")
	config.Flags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs, cfgpath, flags)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer logger.Sync()

	in := stdin
	if script != "" {
		f, err := fs.Open(script)
		if err != nil {
			return errors.Wrapf(err, "cannot open %s", script)
		}
		defer f.Close()
		in = f
	}

	c := console.New(cfg.Console, fs, stdout, logger)
	failed, err := c.Run(in)
	if err != nil {
		return err
	}
	if err := c.Close(); err != nil {
		return err
	}

	logger.Info("run completed", zap.Int("failed", failed))
	if failed > 0 {
		return errors.Errorf("%d commands failed", failed)
	}
	return nil
}
