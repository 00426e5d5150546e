//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ring

import (
	"fmt"
	"math/big"
	"time"

	"github.com/markkurossi/groupdh/env"
	"github.com/markkurossi/groupdh/mpint"
	"github.com/markkurossi/groupdh/p2p"
	"github.com/markkurossi/text/superscript"
)

// Observer receives notifications about completed protocol rounds.
type Observer interface {
	Round(id, round int, duration time.Duration)
}

// Node implements one participant of the distributed key agreement.
// In each round the node sends its latest value to its predecessor,
// receives the value of its successor, and raises it to its secret.
// After n-1 rounds the node holds the shared secret.
type Node struct {
	Verbose  bool
	Observer Observer

	id     int
	n      int
	p      *big.Int
	alpha  *big.Int
	secret *big.Int
	next   *p2p.Conn
	prev   *p2p.Conn
}

// Transcript contains the values one node derived.
type Transcript struct {
	ID     int
	Label  string
	Public *big.Int
	// Keys contains the node's chain keys, one per round. The arc of
	// the key in round r starts from the node and has r+2 members.
	Keys []ChainKey
}

// SharedSecret returns the node's shared secret.
func (t *Transcript) SharedSecret() *big.Int {
	if len(t.Keys) == 0 {
		return nil
	}
	return t.Keys[len(t.Keys)-1].Value
}

// NewNode creates the participant id of a ring of n participants.
func NewNode(config *env.Config, id, n int, p, alpha, secret *big.Int) (
	*Node, error) {

	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientParticipants, n)
	}
	if n > MaxParticipants {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyParticipants,
			n, MaxParticipants)
	}
	if id < 0 || id >= n {
		return nil, fmt.Errorf("ring: invalid participant ID %d: expected [0...%d[",
			id, n)
	}
	secrets := make([]*big.Int, n)
	for i := range secrets {
		secrets[i] = big.NewInt(0)
	}
	secrets[id] = secret
	if err := validate(config, p, alpha, secrets); err != nil {
		return nil, err
	}
	return &Node{
		Verbose: config != nil && config.Verbose,
		id:      id,
		n:       n,
		p:       p,
		alpha:   alpha,
		secret:  secret,
	}, nil
}

// Connect sets the node's connections. The node receives values from
// its successor over next and sends values to its predecessor over
// prev.
func (node *Node) Connect(next, prev *p2p.Conn) {
	node.next = next
	node.prev = prev
}

// IDString returns the node ID as string.
func (node *Node) IDString() string {
	return superscript.Itoa(node.id)
}

// Debugf prints debugging message if Verbose debugging is enabled for
// this Node.
func (node *Node) Debugf(format string, a ...interface{}) {
	if !node.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// Run runs the protocol with the node's neighbours.
func (node *Node) Run() (*Transcript, error) {
	if node.next == nil || node.prev == nil {
		return nil, fmt.Errorf("ring: node %d not connected", node.id)
	}
	public := mpint.ModPow(node.alpha, node.secret, node.p)
	node.Debugf("Node%s: y=%v\n", node.IDString(), public)

	transcript := &Transcript{
		ID:     node.id,
		Label:  Label(node.id),
		Public: public,
	}

	value := public
	for round := 0; round < node.n-1; round++ {
		start := time.Now()

		if err := node.send(round, value); err != nil {
			return nil, err
		}
		v, err := node.receive(round)
		if err != nil {
			return nil, err
		}
		value = mpint.ModPow(v, node.secret, node.p)

		arc := NewArc(node.id, round+2, node.n)
		transcript.Keys = append(transcript.Keys, ChainKey{
			Key:   arc.Label(),
			Arc:   arc,
			Round: round,
			Value: value,
		})
		node.Debugf("Node%s: k%s=%v\n", node.IDString(), arc.Label(), value)

		if node.Observer != nil {
			node.Observer.Round(node.id, round, time.Since(start))
		}
	}
	return transcript, nil
}

func (node *Node) send(round int, value *big.Int) error {
	if err := node.prev.SendUint32(round); err != nil {
		return err
	}
	if err := node.prev.SendBigInt(value); err != nil {
		return err
	}
	return node.prev.Flush()
}

func (node *Node) receive(round int) (*big.Int, error) {
	r, err := node.next.ReceiveUint32()
	if err != nil {
		return nil, err
	}
	if r != round {
		return nil, fmt.Errorf("protocol error: peer round %d, our %d",
			r, round)
	}
	v, err := node.next.ReceiveBigInt()
	if err != nil {
		return nil, err
	}
	if v.Cmp(node.p) >= 0 {
		return nil, fmt.Errorf("protocol error: value out of range: %v", v)
	}
	return v, nil
}
