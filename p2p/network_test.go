//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package p2p

import (
	"testing"
	"time"
)

func TestRingNetwork(t *testing.T) {
	const n = 3

	var nws []*RingNetwork
	for i := 0; i < n; i++ {
		nw, err := NewRingNetwork("127.0.0.1:0", i, n)
		if err != nil {
			t.Fatalf("NewRingNetwork: %v", err)
		}
		defer nw.Close()
		nw.RetryDelay = 10 * time.Millisecond
		nw.MaxRetries = 10
		nws = append(nws, nw)
	}

	next := make([]*Conn, n)
	for i, nw := range nws {
		conn, err := nw.ConnectNext(nws[nw.Successor()].Addr().String())
		if err != nil {
			t.Fatalf("ConnectNext: %v", err)
		}
		next[i] = conn
	}
	prev := make([]*Conn, n)
	for i, nw := range nws {
		conn, err := nw.AcceptPrev(5 * time.Second)
		if err != nil {
			t.Fatalf("AcceptPrev: %v", err)
		}
		prev[i] = conn
	}

	// Each participant sends its ID to its predecessor.
	for i := 0; i < n; i++ {
		if err := prev[i].SendUint32(i); err != nil {
			t.Fatalf("SendUint32: %v", err)
		}
		if err := prev[i].Flush(); err != nil {
			t.Fatalf("Flush: %v", err)
		}
	}
	for i := 0; i < n; i++ {
		v, err := next[i].ReceiveUint32()
		if err != nil {
			t.Fatalf("ReceiveUint32: %v", err)
		}
		if v != nws[i].Successor() {
			t.Errorf("participant %d received %d, expected %d",
				i, v, nws[i].Successor())
		}
	}
	for i := 0; i < n; i++ {
		next[i].Close()
		prev[i].Close()
	}
}

func TestRingNetworkRejectsStranger(t *testing.T) {
	nw, err := NewRingNetwork("127.0.0.1:0", 0, 3)
	if err != nil {
		t.Fatalf("NewRingNetwork: %v", err)
	}
	defer nw.Close()

	// Participant 1 is the successor of 0, not its predecessor.
	stranger, err := NewRingNetwork("127.0.0.1:0", 1, 3)
	if err != nil {
		t.Fatalf("NewRingNetwork: %v", err)
	}
	defer stranger.Close()
	stranger.MaxRetries = 1

	conn, err := stranger.ConnectNext(nw.Addr().String())
	if err != nil {
		t.Fatalf("ConnectNext: %v", err)
	}
	defer conn.Shutdown()

	_, err = nw.AcceptPrev(200 * time.Millisecond)
	if err == nil {
		t.Errorf("AcceptPrev accepted a non-predecessor")
	}
}

func TestRingNetworkInvalidPosition(t *testing.T) {
	if _, err := NewRingNetwork("127.0.0.1:0", 3, 3); err == nil {
		t.Errorf("NewRingNetwork accepted id=n")
	}
	if _, err := NewRingNetwork("127.0.0.1:0", 0, 1); err == nil {
		t.Errorf("NewRingNetwork accepted n=1")
	}
}
