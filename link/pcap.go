package link

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/gopacket/pcap"
)

// lldpFilter restricts capture to LLDP-ethertype frames, the same way the
// teacher's capture.Engine.SetFilter narrows a handle with a BPF program.
const lldpFilter = "ether proto 0x88cc"

// snapshotLength is large enough to capture any LLDPDU within the 1500
// octet ceiling plus its Ethernet header.
const snapshotLength = 1600

// PcapLink is the production Link implementation: a promiscuous-mode
// packet socket bound to a single interface, grounded on the teacher's
// capture.Engine (pcap.OpenLive/WritePacketData/ReadPacketData).
type PcapLink struct {
	mu     sync.Mutex
	handle *pcap.Handle
}

// OpenPcapLink opens iface in promiscuous mode and restricts capture to
// LLDP frames.
func OpenPcapLink(iface string) (*PcapLink, error) {
	handle, err := pcap.OpenLive(iface, snapshotLength, true, pcap.BlockForever)
	if err != nil {
		return nil, fmt.Errorf("link: opening %s: %w", iface, err)
	}
	if err := handle.SetBPFFilter(lldpFilter); err != nil {
		handle.Close()
		return nil, fmt.Errorf("link: setting BPF filter on %s: %w", iface, err)
	}
	return &PcapLink{handle: handle}, nil
}

// Send implements Link.
func (p *PcapLink) Send(frame []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle == nil {
		return ErrClosed
	}
	if err := p.handle.WritePacketData(frame); err != nil {
		return fmt.Errorf("link: sending frame: %w", err)
	}
	return nil
}

// Recv implements Link. The pcap binding has no native blocking-read-with-
// timeout call, so Recv re-arms the handle's read timeout on every call and
// treats a timeout expiry as "nothing received" rather than an error.
func (p *PcapLink) Recv(timeout time.Duration) ([]byte, error) {
	p.mu.Lock()
	handle := p.handle
	p.mu.Unlock()
	if handle == nil {
		return nil, ErrClosed
	}

	if err := handle.SetTimeout(timeout); err != nil {
		return nil, fmt.Errorf("link: setting read timeout: %w", err)
	}

	data, _, err := handle.ReadPacketData()
	if err != nil {
		if errors.Is(err, pcap.NextErrorTimeoutExpired) {
			return nil, nil
		}
		return nil, fmt.Errorf("link: reading frame: %w", err)
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Close implements Link.
func (p *PcapLink) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle == nil {
		return nil
	}
	p.handle.Close()
	p.handle = nil
	return nil
}
