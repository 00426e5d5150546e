//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package p2p

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/logger"
)

const (
	protocolVersion = 1
)

// RingNetwork implements the TCP connections of one ring
// participant. The participant dials its successor and accepts a
// connection from its predecessor.
type RingNetwork struct {
	ID int
	N  int
	// RetryDelay specifies the delay between successor connection
	// attempts.
	RetryDelay time.Duration
	// MaxRetries limits the number of successor connection attempts.
	// The zero value retries forever.
	MaxRetries int

	m        sync.Mutex
	prev     *Conn
	accepted chan *Conn
	listener net.Listener
}

// NewRingNetwork creates a new ring network for participant id of n
// participants. The network listens for its predecessor at addr.
func NewRingNetwork(addr string, id, n int) (*RingNetwork, error) {
	if n < 2 || id < 0 || id >= n {
		return nil, fmt.Errorf("p2p: invalid ring position %d/%d", id, n)
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	nw := &RingNetwork{
		ID:         id,
		N:          n,
		RetryDelay: 5 * time.Second,
		accepted:   make(chan *Conn, 1),
		listener:   listener,
	}
	go nw.acceptLoop()
	return nw, nil
}

// Addr returns the network's listener address.
func (nw *RingNetwork) Addr() net.Addr {
	return nw.listener.Addr()
}

// Close closes the network listener.
func (nw *RingNetwork) Close() error {
	return nw.listener.Close()
}

// Successor returns the ID of the participant's successor.
func (nw *RingNetwork) Successor() int {
	return (nw.ID + 1) % nw.N
}

// Predecessor returns the ID of the participant's predecessor.
func (nw *RingNetwork) Predecessor() int {
	return (nw.ID + nw.N - 1) % nw.N
}

// ConnectNext connects to the successor at addr.
func (nw *RingNetwork) ConnectNext(addr string) (*Conn, error) {
	for attempt := 1; ; attempt++ {
		logger.Infof("NW %d: connecting to successor %d at %s",
			nw.ID, nw.Successor(), addr)
		nc, err := net.Dial("tcp", addr)
		if err != nil {
			if nw.MaxRetries > 0 && attempt >= nw.MaxRetries {
				return nil, err
			}
			logger.Warningf("NW %d: connect to %s failed, retrying in %s",
				nw.ID, addr, nw.RetryDelay)
			<-time.After(nw.RetryDelay)
			continue
		}
		logger.Infof("NW %d: connected to %s", nw.ID, addr)
		conn := NewConn(nc)

		if err := nw.sendHello(conn); err != nil {
			conn.Close()
			return nil, err
		}
		return conn, nil
	}
}

// AcceptPrev waits until the predecessor has connected. A timeout of
// zero waits forever.
func (nw *RingNetwork) AcceptPrev(timeout time.Duration) (*Conn, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		expired = time.After(timeout)
	}
	select {
	case conn, ok := <-nw.accepted:
		if !ok {
			return nil, fmt.Errorf("p2p: network closed")
		}
		return conn, nil
	case <-expired:
		return nil, fmt.Errorf("p2p: predecessor %d did not connect in %s",
			nw.Predecessor(), timeout)
	}
}

func (nw *RingNetwork) sendHello(conn *Conn) error {
	if err := conn.SendByte(protocolVersion); err != nil {
		return err
	}
	if err := conn.SendUint32(nw.ID); err != nil {
		return err
	}
	if err := conn.SendUint32(nw.N); err != nil {
		return err
	}
	return conn.Flush()
}

func (nw *RingNetwork) receiveHello(conn *Conn) error {
	version, err := conn.ReceiveByte()
	if err != nil {
		return err
	}
	if version != protocolVersion {
		return fmt.Errorf("protocol error: version %d, our %d",
			version, protocolVersion)
	}
	id, err := conn.ReceiveUint32()
	if err != nil {
		return err
	}
	n, err := conn.ReceiveUint32()
	if err != nil {
		return err
	}
	if n != nw.N {
		return fmt.Errorf("protocol error: peer ring size %d, our %d",
			n, nw.N)
	}
	if id != nw.Predecessor() {
		return fmt.Errorf("protocol error: peer %d is not predecessor %d",
			id, nw.Predecessor())
	}
	return nil
}

func (nw *RingNetwork) acceptLoop() {
	defer close(nw.accepted)
	for {
		nc, err := nw.listener.Accept()
		if err != nil {
			logger.Infof("NW %d: accept stopped: %s", nw.ID, err)
			return
		}
		conn := NewConn(nc)

		if err := nw.receiveHello(conn); err != nil {
			logger.Warningf("NW %d: inbound connection from %s: %s",
				nw.ID, nc.RemoteAddr(), err)
			conn.Close()
			continue
		}

		nw.m.Lock()
		if nw.prev != nil {
			nw.m.Unlock()
			logger.Warningf("NW %d: predecessor %d already connected",
				nw.ID, nw.Predecessor())
			conn.Close()
			continue
		}
		nw.prev = conn
		nw.m.Unlock()

		logger.Infof("NW %d: predecessor %d connected from %s",
			nw.ID, nw.Predecessor(), nc.RemoteAddr())
		nw.accepted <- conn
	}
}
