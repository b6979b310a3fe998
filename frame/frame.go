// Package frame wraps LLDPDU payloads in an Ethernet II header and
// validates frames accepted off the wire, mirroring the Ethernet
// serialization the teacher's capture engine performs with gopacket.
package frame

import (
	"errors"
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// EtherType is the LLDP ethertype, 0x88CC.
const EtherType = 0x88CC

// Multicast destinations an LLDP agent recognizes. Transmit always uses
// NearestCustomerBridge; receive accepts all three (§6). Per the spec's
// Design Note, this asymmetry is deliberate and preserved.
var (
	NearestBridge          = net.HardwareAddr{0x01, 0x80, 0xc2, 0x00, 0x00, 0x00}
	NearestNonTPMRBridge   = net.HardwareAddr{0x01, 0x80, 0xc2, 0x00, 0x00, 0x03}
	NearestCustomerBridge  = net.HardwareAddr{0x01, 0x80, 0xc2, 0x00, 0x00, 0x0e}
)

// TransmitDestination is the multicast address used for outbound frames.
var TransmitDestination = NearestCustomerBridge

var acceptedDestinations = []net.HardwareAddr{
	NearestBridge,
	NearestNonTPMRBridge,
	NearestCustomerBridge,
}

// Frame errors. Each is local to a single received frame (§7).
var (
	ErrWrongDestination = errors.New("frame: destination is not an LLDP multicast address")
	ErrSelfOrigin       = errors.New("frame: source address equals the local agent's address")
	ErrWrongEthertype   = errors.New("frame: ethertype is not 0x88CC")
)

// Build wraps payload in an Ethernet II header addressed to
// TransmitDestination from src, and returns the serialized frame.
func Build(src net.HardwareAddr, payload []byte) ([]byte, error) {
	eth := &layers.Ethernet{
		DstMAC:       TransmitDestination,
		SrcMAC:       src,
		EthernetType: layers.EthernetType(EtherType),
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: false}
	if err := gopacket.SerializeLayers(buf, opts, eth, gopacket.Payload(payload)); err != nil {
		return nil, fmt.Errorf("frame: serializing Ethernet frame: %w", err)
	}
	// SerializeLayers pads short frames to the 60-octet Ethernet minimum;
	// drop that padding so the frame is exactly header plus payload.
	return buf.Bytes()[:14+len(payload)], nil
}

// Validate checks a received frame's destination, source, and ethertype
// against §4.3/§4.5's acceptance rules and, on success, returns the LLDPDU
// payload (everything after the 14-octet Ethernet header).
func Validate(data []byte, localMAC net.HardwareAddr) ([]byte, error) {
	if len(data) < 14 {
		return nil, fmt.Errorf("frame: %d octets is shorter than an Ethernet header: %w", len(data), ErrWrongEthertype)
	}

	dst := net.HardwareAddr(data[0:6])
	src := net.HardwareAddr(data[6:12])
	etherType := uint16(data[12])<<8 | uint16(data[13])

	accepted := false
	for _, addr := range acceptedDestinations {
		if addr.String() == dst.String() {
			accepted = true
			break
		}
	}
	if !accepted {
		return nil, ErrWrongDestination
	}

	if src.String() == localMAC.String() {
		return nil, ErrSelfOrigin
	}

	if etherType != EtherType {
		return nil, ErrWrongEthertype
	}

	return data[14:], nil
}
