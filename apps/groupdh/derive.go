//
// derive.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/google/logger"
	"github.com/markkurossi/groupdh/config"
	"github.com/markkurossi/groupdh/env"
	"github.com/markkurossi/groupdh/group"
	"github.com/markkurossi/groupdh/mpint"
	"github.com/markkurossi/groupdh/p2p"
	"github.com/markkurossi/groupdh/ring"
	"github.com/markkurossi/groupdh/timing"
	"github.com/urfave/cli/v2"
)

func groupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "p",
			Usage: "prime modulus",
		},
		&cli.StringFlag{
			Name:  "alpha",
			Usage: "base, a primitive root of p",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "read group and secrets from session `FILE`",
		},
		&cli.IntFlag{
			Name:  "random",
			Usage: "generate `N` random secrets",
		},
		&cli.StringFlag{
			Name:  "seed",
			Usage: "seed for random secrets as `HEX`",
		},
		&cli.IntFlag{
			Name:  "trial-division-bits",
			Usage: "largest modulus tested with trial division",
		},
	}
}

// agreement contains the inputs of a key agreement.
type agreement struct {
	config  *env.Config
	p       *big.Int
	alpha   *big.Int
	secrets []*big.Int
}

func (a *app) parseAgreement(c *cli.Context) (*agreement, error) {
	result := &agreement{
		config: &env.Config{
			TrialDivisionBits: c.Int("trial-division-bits"),
			Verbose:           a.verbose,
		},
	}
	if seed := c.String("seed"); len(seed) > 0 {
		data, err := hex.DecodeString(seed)
		if err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
		prg, err := env.NewPRG(data)
		if err != nil {
			return nil, err
		}
		result.config.Rand = prg
	}

	if file := c.String("config"); len(file) > 0 {
		session, err := config.Load(file)
		if err != nil {
			return nil, err
		}
		result.p = session.P
		result.alpha = session.Alpha
		if c.Int("random") == 0 {
			result.secrets, err = session.Secrets()
			if err != nil {
				return nil, err
			}
		}
		logger.Infof("loaded session %s: %d participants", file,
			len(session.Participants))
	}

	var err error
	if c.IsSet("p") {
		result.p, err = mpint.ParseNonNegative(c.String("p"))
		if err != nil {
			return nil, err
		}
	}
	if c.IsSet("alpha") {
		result.alpha, err = mpint.ParseNonNegative(c.String("alpha"))
		if err != nil {
			return nil, err
		}
	}
	if result.p == nil || result.alpha == nil {
		return nil, errors.New("group parameters p and alpha not specified")
	}

	if n := c.Int("random"); n > 0 {
		if c.Args().Len() > 0 {
			return nil, errors.New("both secrets and --random specified")
		}
		result.secrets, err = ring.RandomSecrets(result.config.GetRandom(),
			n, result.p)
		if err != nil {
			return nil, err
		}
	} else if c.Args().Len() > 0 {
		result.secrets = nil
		for _, arg := range c.Args().Slice() {
			x, err := mpint.ParseNonNegative(arg)
			if err != nil {
				return nil, err
			}
			result.secrets = append(result.secrets, x)
		}
	}
	return result, nil
}

// checkAlpha warns if alpha is not a primitive root of p.
func checkAlpha(p, alpha *big.Int) {
	ok, err := group.IsPrimitiveRoot(alpha, p)
	if err != nil {
		logger.Infof("primitive root check skipped: %v", err)
		return
	}
	if !ok {
		logger.Warningf("%v is not a primitive root of %v", alpha, p)
	}
}

func (a *app) deriveCommand(c *cli.Context) error {
	ag, err := a.parseAgreement(c)
	if err != nil {
		return err
	}
	checkAlpha(ag.p, ag.alpha)

	result, err := ring.Derive(ag.config, ag.p, ag.alpha, ag.secrets)
	if err != nil {
		return err
	}
	result.Tabulate(c.App.Writer)
	return nil
}

func (a *app) simulateCommand(c *cli.Context) error {
	ag, err := a.parseAgreement(c)
	if err != nil {
		return err
	}
	checkAlpha(ag.p, ag.alpha)

	t := timing.NewTiming()
	expected, err := ring.Derive(ag.config, ag.p, ag.alpha, ag.secrets)
	if err != nil {
		return err
	}
	t.Sample("Derive", nil)

	result, stats, err := ring.Simulate(ag.config, ag.p, ag.alpha,
		ag.secrets, t)
	if err != nil {
		return err
	}
	sample := t.Sample("Simulate",
		[]string{timing.FileSize(stats.Sum()).String()})
	t.RoundSamples(sample)

	if err := compare(expected, result); err != nil {
		return err
	}
	t.Sample("Verify", nil)

	result.Tabulate(c.App.Writer)
	t.Print(c.App.Writer, stats)
	return nil
}

func compare(expected, result *ring.Result) error {
	if len(expected.ChainKeys) != len(result.ChainKeys) {
		return fmt.Errorf("chain key count mismatch: %d != %d",
			len(result.ChainKeys), len(expected.ChainKeys))
	}
	for i, ck := range result.ChainKeys {
		e := expected.ChainKeys[i]
		if ck.Key != e.Key || ck.Value.Cmp(e.Value) != 0 {
			return fmt.Errorf("chain key mismatch: %s=%v, expected %s=%v",
				ck.Key, ck.Value, e.Key, e.Value)
		}
	}
	return result.Verify()
}

func (a *app) paramsCommand(c *cli.Context) error {
	var random io.Reader
	if seed := c.String("seed"); len(seed) > 0 {
		data, err := hex.DecodeString(seed)
		if err != nil {
			return fmt.Errorf("invalid seed: %w", err)
		}
		random, err = env.NewPRG(data)
		if err != nil {
			return err
		}
	}
	g, err := group.New(random, c.Int("bits"))
	if err != nil {
		return err
	}
	logger.Infof("generated %d-bit group", g.P.BitLen())

	session := config.New(g.P, g.G, nil)
	_, err = session.WriteTo(c.App.Writer)
	return err
}

func (a *app) pairCommand(c *cli.Context) error {
	var values []*big.Int
	for _, name := range []string{"p", "alpha", "secret"} {
		v, err := mpint.ParseNonNegative(c.String(name))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		values = append(values, v)
	}
	cfg := &env.Config{
		Verbose: a.verbose,
	}
	key, err := ring.CheckPairDHKX(cfg, values[0], values[1], values[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "key: %v\n", key)
	return nil
}

func statsString(stats p2p.IOStats) string {
	return fmt.Sprintf("sent=%v, received=%v",
		timing.FileSize(stats.Sent.Load()), timing.FileSize(stats.Recvd.Load()))
}
