// Package tlv implements the typed Type-Length-Value records carried inside
// an LLDP Data Unit (IEEE 802.1AB).
package tlv

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// LengthMax is the largest payload length a single TLV header can declare.
// The 9-bit length field caps payloads at 511 octets.
const LengthMax = 0x01ff

// Type identifies the kind of record carried in a TLV.
type Type uint8

// Recognized top-level TLV types.
const (
	TypeEndOfLLDPDU            Type = 0
	TypeChassisID              Type = 1
	TypePortID                 Type = 2
	TypeTTL                    Type = 3
	TypePortDescription        Type = 4
	TypeSystemName             Type = 5
	TypeSystemDescription      Type = 6
	TypeSystemCapabilities     Type = 7
	TypeManagementAddress      Type = 8
	TypeOrganizationallySpecific Type = 127
)

func (t Type) String() string {
	switch t {
	case TypeEndOfLLDPDU:
		return "EndOfLLDPDU"
	case TypeChassisID:
		return "ChassisID"
	case TypePortID:
		return "PortID"
	case TypeTTL:
		return "TTL"
	case TypePortDescription:
		return "PortDescription"
	case TypeSystemName:
		return "SystemName"
	case TypeSystemDescription:
		return "SystemDescription"
	case TypeSystemCapabilities:
		return "SystemCapabilities"
	case TypeManagementAddress:
		return "ManagementAddress"
	case TypeOrganizationallySpecific:
		return "OrganizationallySpecific"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Errors returned by the codec. All are local to a single TLV: the caller
// is expected to reject that record and continue, never crash the agent.
var (
	ErrShortHeader        = errors.New("tlv: fewer than 2 header octets")
	ErrShortPayload       = errors.New("tlv: declared length exceeds remaining octets")
	ErrUnknownType        = errors.New("tlv: unrecognized type")
	ErrBadSubtype         = errors.New("tlv: subtype outside defined range")
	ErrBadLength          = errors.New("tlv: payload length inconsistent with subtype")
	ErrBadUTF8            = errors.New("tlv: payload is not valid UTF-8")
	ErrBadAddressFamily   = errors.New("tlv: address family not recognized or length mismatch")
	ErrCapabilityMismatch = errors.New("tlv: enabled capability bit not in supported set")
)

// A TLV is any record that can appear in an LLDPDU.
type TLV interface {
	// Type returns the top-level type tag for this record.
	Type() Type

	// Encode returns the full wire representation of the record, including
	// its 2-octet header.
	Encode() ([]byte, error)
}

// packHeader packs typ and the payload length into the 2-octet TLV header:
// 7 bits of type followed by 9 bits of length, big-endian.
func packHeader(typ Type, length int) ([2]byte, error) {
	var hdr [2]byte
	if length < 0 || length > LengthMax {
		return hdr, fmt.Errorf("tlv: length %d out of range: %w", length, ErrBadLength)
	}
	v := uint16(typ)<<9 | uint16(length)
	binary.BigEndian.PutUint16(hdr[:], v)
	return hdr, nil
}

// header is the decoded common header of a TLV.
type header struct {
	Type   Type
	Length int
}

// decodeHeader reads the 2-octet header from b and reports how many payload
// octets follow it.
func decodeHeader(b []byte) (header, error) {
	if len(b) < 2 {
		return header{}, ErrShortHeader
	}
	v := binary.BigEndian.Uint16(b[0:2])
	h := header{
		Type:   Type(v >> 9),
		Length: int(v & LengthMax),
	}
	if len(b[2:]) < h.Length {
		return header{}, ErrShortPayload
	}
	return h, nil
}

// Decode reads the next TLV from b and reports how many octets were
// consumed, including the header. b must contain at least one complete TLV.
func Decode(b []byte) (TLV, int, error) {
	h, err := decodeHeader(b)
	if err != nil {
		return nil, 0, err
	}
	payload := b[2 : 2+h.Length]
	consumed := 2 + h.Length

	switch h.Type {
	case TypeEndOfLLDPDU:
		if h.Length != 0 {
			return nil, 0, fmt.Errorf("tlv: end-of-lldpdu with non-zero length: %w", ErrBadLength)
		}
		return EndOfLLDPDU{}, consumed, nil
	case TypeChassisID:
		id, err := decodeChassisID(payload)
		if err != nil {
			return nil, 0, err
		}
		return id, consumed, nil
	case TypePortID:
		id, err := decodePortID(payload)
		if err != nil {
			return nil, 0, err
		}
		return id, consumed, nil
	case TypeTTL:
		t, err := decodeTTL(payload)
		if err != nil {
			return nil, 0, err
		}
		return t, consumed, nil
	case TypePortDescription:
		s, err := decodeString(payload)
		if err != nil {
			return nil, 0, err
		}
		return PortDescription(s), consumed, nil
	case TypeSystemName:
		s, err := decodeString(payload)
		if err != nil {
			return nil, 0, err
		}
		return SystemName(s), consumed, nil
	case TypeSystemDescription:
		s, err := decodeString(payload)
		if err != nil {
			return nil, 0, err
		}
		return SystemDescription(s), consumed, nil
	case TypeSystemCapabilities:
		c, err := decodeSystemCapabilities(payload)
		if err != nil {
			return nil, 0, err
		}
		return c, consumed, nil
	case TypeManagementAddress:
		m, err := decodeManagementAddress(payload)
		if err != nil {
			return nil, 0, err
		}
		return m, consumed, nil
	case TypeOrganizationallySpecific:
		o, err := decodeOrganizationallySpecific(payload)
		if err != nil {
			return nil, 0, err
		}
		return o, consumed, nil
	default:
		return nil, 0, fmt.Errorf("tlv: type %d: %w", h.Type, ErrUnknownType)
	}
}

// encodeWithHeader prefixes payload with its packed type/length header.
func encodeWithHeader(typ Type, payload []byte) ([]byte, error) {
	hdr, err := packHeader(typ, len(payload))
	if err != nil {
		return nil, err
	}
	b := make([]byte, 2+len(payload))
	b[0], b[1] = hdr[0], hdr[1]
	copy(b[2:], payload)
	return b, nil
}
