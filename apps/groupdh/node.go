//
// node.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/logger"
	"github.com/markkurossi/groupdh/config"
	"github.com/markkurossi/groupdh/env"
	"github.com/markkurossi/groupdh/metrics"
	"github.com/markkurossi/groupdh/p2p"
	"github.com/markkurossi/groupdh/ring"
	"github.com/urfave/cli/v2"
)

const defaultTimeout = time.Minute

func (a *app) nodeCommand(c *cli.Context) error {
	session, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	id := c.Int("id")
	n := len(session.Participants)
	if id < 0 || id >= n {
		return fmt.Errorf("invalid participant ID %d: session has %d",
			id, n)
	}
	secret := session.Participants[id].Secret
	if secret == nil {
		return fmt.Errorf("%w: secret of participant %s",
			config.ErrMissing, session.Participants[id].Label)
	}
	addr, err := session.Addr(id)
	if err != nil {
		return err
	}
	nextAddr, err := session.Addr((id + 1) % n)
	if err != nil {
		return err
	}

	cfg := &env.Config{
		Verbose: a.verbose,
	}
	node, err := ring.NewNode(cfg, id, n, session.P, session.Alpha, secret)
	if err != nil {
		return err
	}

	collector := metrics.New()
	node.Observer = collector
	if maddr := c.String("metrics"); len(maddr) > 0 {
		server := &http.Server{
			Addr:    maddr,
			Handler: collector.Handler(),
		}
		go func() {
			err := server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("metrics server: %v", err)
			}
		}()
		defer server.Close()
		logger.Infof("serving metrics at %s", maddr)
	}

	nw, err := p2p.NewRingNetwork(addr, id, n)
	if err != nil {
		return err
	}
	defer nw.Close()
	logger.Infof("participant %s listening at %s", ring.Label(id), nw.Addr())

	next, err := nw.ConnectNext(nextAddr)
	if err != nil {
		return err
	}
	defer next.Close()

	prev, err := nw.AcceptPrev(c.Duration("timeout"))
	if err != nil {
		return err
	}
	defer prev.Close()

	node.Connect(next, prev)
	transcript, err := node.Run()

	stats := next.Stats.Add(prev.Stats)
	collector.Agreement(err, stats.Sent.Load(), stats.Recvd.Load())
	if err != nil {
		return err
	}
	logger.Infof("participant %s: %s", ring.Label(id), statsString(stats))

	fmt.Fprintf(c.App.Writer, "y%s: %v\n", transcript.Label, transcript.Public)
	for _, key := range transcript.Keys {
		fmt.Fprintf(c.App.Writer, "k%s: %v\n", key.Key, key.Value)
	}
	fmt.Fprintf(c.App.Writer, "Shared secret key: %v\n",
		transcript.SharedSecret())
	return nil
}
