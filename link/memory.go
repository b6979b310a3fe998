package link

import (
	"sync"
	"time"
)

// MemLink is an in-memory Link double: frames handed to Send land on Sent
// for a test to inspect, and frames queued via Deliver are returned from
// Recv. It is what the agent and link package tests use in place of a real
// NIC.
type MemLink struct {
	mu     sync.Mutex
	closed bool
	inbox  chan []byte

	sentMu sync.Mutex
	Sent   [][]byte
}

// NewMemLink returns a ready-to-use MemLink with room for backlog inbound
// frames before Deliver blocks.
func NewMemLink(backlog int) *MemLink {
	if backlog < 1 {
		backlog = 1
	}
	return &MemLink{inbox: make(chan []byte, backlog)}
}

// Deliver queues frame to be returned by the next Recv call.
func (m *MemLink) Deliver(frame []byte) {
	m.inbox <- frame
}

// Send implements Link.
func (m *MemLink) Send(frame []byte) error {
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return ErrClosed
	}

	cp := make([]byte, len(frame))
	copy(cp, frame)

	m.sentMu.Lock()
	m.Sent = append(m.Sent, cp)
	m.sentMu.Unlock()
	return nil
}

// Recv implements Link.
func (m *MemLink) Recv(timeout time.Duration) ([]byte, error) {
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	select {
	case frame := <-m.inbox:
		return frame, nil
	case <-time.After(timeout):
		return nil, nil
	}
}

// Close implements Link.
func (m *MemLink) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
