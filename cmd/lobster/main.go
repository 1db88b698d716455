// Package main implements the lobster command, a front end to the C++
// type core used by the teaching environment.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/you-not-fish/lobster/internal/config"
	"github.com/you-not-fish/lobster/internal/types"
	"github.com/you-not-fish/lobster/internal/types2"
)

// Version information
const Version = "0.1.0-dev"

func main() {
	if err := NewApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ErrorColor.Sprint("error: ")+err.Error())
		os.Exit(1)
	}
}

// NewApp returns the lobster command line application.
func NewApp() *cli.App {
	return &cli.App{
		Name:    "lobster",
		Usage:   "Resolve, lay out and encode C++ types",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load enums and classes from `FILE`",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log type construction to stderr",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("no-color") {
				pterm.DisableColor()
			}
			return nil
		},
		Commands: []*cli.Command{
			CmdResolve,
			CmdLayout,
			CmdCodec,
			CmdVersion,
		},
		HideVersion: true,
	}
}

// CmdVersion prints version information.
var CmdVersion = &cli.Command{
	Name:  "version",
	Usage: "Print version information",
	Action: func(c *cli.Context) error {
		fmt.Fprintf(c.App.Writer, "lobster version %s\n", Version)
		fmt.Fprintf(c.App.Writer, "go version %s\n", runtime.Version())
		return nil
	},
}

// session is the state shared by the commands: the loaded configuration,
// a fresh type context and the scope holding the configured classes.
type session struct {
	cfg     *config.Config
	ctx     *types.Context
	scope   *types.Scope
	classes []*types.Class
	logger  *zap.Logger
}

// newSession loads the configuration named by --config (or the defaults)
// and builds its classes.
func newSession(c *cli.Context, conf *types2.Config) (*session, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	logger, err := newLogger(cfg, c.Bool("verbose"))
	if err != nil {
		return nil, err
	}
	types.SetLogger(logger.Named("types"))
	types2.SetLogger(logger.Named("types2"))

	ctx := cfg.NewContext()
	classes, scope, err := cfg.BuildClasses(ctx, conf, logger)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, ctx: ctx, scope: scope, classes: classes, logger: logger}, nil
}

func newLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
