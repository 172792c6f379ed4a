package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/elfscope/internal/logger"
)

var (
	logLevel   string
	logFormat  string
	configFile string
	appConfig  Config
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "elfscope",
		Usage: "Decode and report ELF file headers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       "warn",
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "log format (pretty, text, json)",
				Value:       "pretty",
				Destination: &logFormat,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to config.yaml (default: user config dir)",
				Destination: &configFile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := LoadConfig(configFile)
			if err != nil {
				return ctx, cli.Exit("error: "+err.Error(), 1)
			}
			appConfig = cfg
			applyGlobalConfig(cmd, cfg)

			log, err := logger.Open(errWriter(cmd), logFormat, logLevel)
			if err != nil {
				return ctx, cli.Exit("error: "+err.Error(), 1)
			}
			return logger.WithContext(ctx, log), nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			headerCmd(),
			serveCmd(),
			versionCmd(),
		},
	}
}

func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
