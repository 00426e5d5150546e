//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/logger"
	"github.com/urfave/cli/v2"
)

type app struct {
	verbose bool
	logFile string
	log     *logger.Logger
	closers []io.Closer
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "groupdh: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	a := new(app)
	return &cli.App{
		Name:  "groupdh",
		Usage: "multi-party Diffie-Hellman key agreement",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "verbose output",
				Destination: &a.verbose,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "write log to `FILE`",
				Destination: &a.logFile,
			},
		},
		Before: a.initialize,
		After:  a.close,
		Commands: []*cli.Command{
			{
				Name:      "derive",
				Usage:     "derive public values and chain keys",
				ArgsUsage: "SECRET...",
				Flags:     groupFlags(),
				Action:    a.deriveCommand,
			},
			{
				Name:      "simulate",
				Usage:     "run the distributed protocol over in-memory pipes",
				ArgsUsage: "SECRET...",
				Flags:     groupFlags(),
				Action:    a.simulateCommand,
			},
			{
				Name:  "shell",
				Usage: "interactive key agreement shell",
				Action: func(c *cli.Context) error {
					return newShell(c.App.Reader, c.App.Writer).Run()
				},
			},
			{
				Name:  "node",
				Usage: "run one participant over TCP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Usage:    "session `FILE`",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "id",
						Usage: "participant `ID`",
					},
					&cli.StringFlag{
						Name:  "metrics",
						Usage: "serve Prometheus metrics at `ADDR`",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "predecessor connection timeout",
						Value: defaultTimeout,
					},
				},
				Action: a.nodeCommand,
			},
			{
				Name:  "params",
				Usage: "generate group parameters",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "bits",
						Usage: "modulus size in `BITS`",
						Value: 64,
					},
					&cli.StringFlag{
						Name:  "seed",
						Usage: "random seed as `HEX`",
					},
				},
				Action: a.paramsCommand,
			},
			{
				Name:  "pair",
				Usage: "check two-party agreement against dhkx",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "p",
						Usage:    "prime modulus",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "alpha",
						Usage:    "base",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "secret",
						Usage:    "secret value",
						Required: true,
					},
				},
				Action: a.pairCommand,
			},
		},
	}
}

func (a *app) initialize(c *cli.Context) error {
	out := io.Discard
	if len(a.logFile) > 0 {
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			0644)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, f)
		out = f
	}
	a.log = logger.Init("groupdh", a.verbose, false, out)
	return nil
}

func (a *app) close(c *cli.Context) error {
	if a.log != nil {
		a.log.Close()
	}
	for _, closer := range a.closers {
		closer.Close()
	}
	return nil
}
