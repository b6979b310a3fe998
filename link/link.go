// Package link abstracts the network interface an LLDP agent sends and
// receives Ethernet frames on, hiding raw packet socket acquisition and
// promiscuous-mode setup behind a narrow interface the agent can consume
// and tests can trivially fake (§4.4, §9 "Injected dependencies").
package link

import (
	"errors"
	"time"
)

// ErrClosed is returned by Send/Recv once the link has been closed.
var ErrClosed = errors.New("link: closed")

// Link is the narrow capability surface the agent loop consumes.
type Link interface {
	// Send enqueues a fully-formed Ethernet frame for transmission.
	Send(frame []byte) error

	// Recv returns the next received frame, or a nil slice and nil error
	// if timeout elapses with nothing received.
	Recv(timeout time.Duration) ([]byte, error)

	// Close releases the underlying resource. Safe to call more than once.
	Close() error
}
