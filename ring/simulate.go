//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ring

import (
	"math/big"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/markkurossi/groupdh/env"
	"github.com/markkurossi/groupdh/p2p"
)

// Simulate runs the distributed key agreement with one node per
// secret. The nodes are connected with in-memory pipes and run
// concurrently. The returned result has the same chain keys as
// Derive returns for the same arguments. The observer can be nil.
func Simulate(config *env.Config, p, alpha *big.Int, secrets []*big.Int,
	observer Observer) (*Result, p2p.IOStats, error) {

	stats := p2p.NewIOStats()

	err := validate(config, p, alpha, secrets)
	if err != nil {
		return nil, stats, err
	}
	n := len(secrets)

	nodes := make([]*Node, n)
	for i := 0; i < n; i++ {
		nodes[i], err = NewNode(config, i, n, p, alpha, secrets[i])
		if err != nil {
			return nil, stats, err
		}
		nodes[i].Observer = observer
	}
	// Link i connects node i and its successor.
	var conns []*p2p.Conn
	next := make([]*p2p.Conn, n)
	prev := make([]*p2p.Conn, n)
	for i := 0; i < n; i++ {
		a, b := p2p.Pipe()
		next[i] = a
		prev[(i+1)%n] = b
		conns = append(conns, a, b)
	}
	for i, node := range nodes {
		node.Connect(next[i], prev[i])
	}

	var once sync.Once
	abort := func() {
		once.Do(func() {
			for _, c := range conns {
				c.Shutdown()
			}
		})
	}

	transcripts := make([]*Transcript, n)
	var g errgroup.Group
	for i, node := range nodes {
		i, node := i, node
		g.Go(func() error {
			t, err := node.Run()
			if err != nil {
				abort()
				return err
			}
			transcripts[i] = t
			return nil
		})
	}
	err = g.Wait()
	for _, c := range conns {
		stats = stats.Add(c.Stats)
	}
	if err != nil {
		return nil, stats, err
	}
	for _, c := range conns {
		c.Close()
	}

	return Merge(p, alpha, transcripts), stats, nil
}

// Merge merges the nodes' transcripts into a result. The transcripts
// must be ordered by node ID.
func Merge(p, alpha *big.Int, transcripts []*Transcript) *Result {
	result := newResult(p, alpha, len(transcripts))
	for i, t := range transcripts {
		result.Participants[i].Public = t.Public
	}
	for round := 0; round < len(transcripts)-1; round++ {
		for _, t := range transcripts {
			if round < len(t.Keys) {
				result.ChainKeys = append(result.ChainKeys, t.Keys[round])
			}
		}
	}
	return result
}
