// Package lldpdu assembles and validates LLDP Data Units: ordered sequences
// of tlv.TLV records subject to the structural invariants in IEEE 802.1AB
// (mandatory prefix, singleton limits, single terminator, size ceiling).
package lldpdu

import (
	"errors"
	"fmt"

	"github.com/lldp-go/lldpagent/tlv"
)

// SizeMax is the largest total serialized size (in octets) an LLDPDU may
// reach, the ceiling enforced by invariant I4.
const SizeMax = 1500

// Assembly errors. Each is local to the Append call that triggered it; the
// LLDPDU is left unchanged on failure (P5).
var (
	ErrDuplicateSingleton   = errors.New("lldpdu: singleton record already present")
	ErrMissingPrerequisite  = errors.New("lldpdu: record requires an earlier mandatory record")
	ErrRecordAfterEnd       = errors.New("lldpdu: record appended after EndOfLLDPDU")
	ErrSizeExceeded         = errors.New("lldpdu: serialized size would exceed size ceiling")
)

// LLDPDU is an ordered, append-only sequence of TLVs.
type LLDPDU struct {
	records []tlv.TLV
	length  int

	hasChassisID bool
	hasPortID    bool
	hasTTL       bool
	terminated   bool
}

// New returns an empty LLDPDU.
func New() *LLDPDU {
	return &LLDPDU{}
}

// Len returns the number of records currently held.
func (l *LLDPDU) Len() int { return len(l.records) }

// At returns the record at position i.
func (l *LLDPDU) At(i int) tlv.TLV { return l.records[i] }

// IsComplete reports whether the mandatory prefix (ChassisID, PortID, TTL)
// is present (I5).
func (l *LLDPDU) IsComplete() bool {
	return l.hasChassisID && l.hasPortID && l.hasTTL
}

// Append adds t to the LLDPDU, enforcing I1-I4. On failure the LLDPDU is
// left exactly as it was before the call (P5).
func (l *LLDPDU) Append(t tlv.TLV) error {
	if l.terminated {
		return fmt.Errorf("lldpdu: cannot append %s: %w", t.Type(), ErrRecordAfterEnd)
	}

	switch rec := t.(type) {
	case tlv.ChassisID:
		if l.hasChassisID {
			return fmt.Errorf("lldpdu: %w: ChassisID", ErrDuplicateSingleton)
		}
		if len(l.records) != 0 {
			return fmt.Errorf("lldpdu: ChassisID must be first record: %w", ErrMissingPrerequisite)
		}
	case tlv.PortID:
		if l.hasPortID {
			return fmt.Errorf("lldpdu: %w: PortID", ErrDuplicateSingleton)
		}
		if !l.hasChassisID {
			return fmt.Errorf("lldpdu: PortID requires ChassisID first: %w", ErrMissingPrerequisite)
		}
	case tlv.TTL:
		if l.hasTTL {
			return fmt.Errorf("lldpdu: %w: TTL", ErrDuplicateSingleton)
		}
		if !l.hasChassisID || !l.hasPortID {
			return fmt.Errorf("lldpdu: TTL requires ChassisID and PortID first: %w", ErrMissingPrerequisite)
		}
	case tlv.EndOfLLDPDU:
		if !l.IsComplete() {
			return fmt.Errorf("lldpdu: EndOfLLDPDU before mandatory prefix complete: %w", ErrMissingPrerequisite)
		}
	default:
		_ = rec
		if !l.IsComplete() {
			return fmt.Errorf("lldpdu: optional record %s before mandatory prefix complete: %w", t.Type(), ErrMissingPrerequisite)
		}
	}

	enc, err := t.Encode()
	if err != nil {
		return err
	}
	if l.length+len(enc) > SizeMax {
		return fmt.Errorf("lldpdu: appending %s would reach %d octets: %w", t.Type(), l.length+len(enc), ErrSizeExceeded)
	}

	l.records = append(l.records, t)
	l.length += len(enc)

	switch t.(type) {
	case tlv.ChassisID:
		l.hasChassisID = true
	case tlv.PortID:
		l.hasPortID = true
	case tlv.TTL:
		l.hasTTL = true
	case tlv.EndOfLLDPDU:
		l.terminated = true
	}

	return nil
}

// Encode concatenates the encoding of every record in insertion order.
func (l *LLDPDU) Encode() ([]byte, error) {
	out := make([]byte, 0, l.length)
	for _, r := range l.records {
		enc, err := r.Encode()
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
	}
	return out, nil
}

// Decode parses b into an LLDPDU, consuming records left to right via the
// same validation path as Append. A TypeEndOfLLDPDU record ends parsing;
// any trailing octets are ignored rather than treated as an error. Unlike
// the reference implementation this loop never reads past len(b): absence
// of an explicit terminator is accepted once the buffer is exhausted (see
// SPEC_FULL.md §4.2, resolving the off-by-one Open Question).
func Decode(b []byte) (*LLDPDU, error) {
	l := New()
	idx := 0
	for idx < len(b) {
		rec, n, err := tlv.Decode(b[idx:])
		if err != nil {
			return nil, fmt.Errorf("lldpdu: decoding record at offset %d: %w", idx, err)
		}
		if err := l.Append(rec); err != nil {
			return nil, fmt.Errorf("lldpdu: appending record at offset %d: %w", idx, err)
		}
		idx += n
		if _, ok := rec.(tlv.EndOfLLDPDU); ok {
			break
		}
	}
	return l, nil
}
