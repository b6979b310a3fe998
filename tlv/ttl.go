package tlv

import (
	"encoding/binary"
	"fmt"
)

// TTL carries the number of seconds the receiver should consider the
// sending agent's information valid. It is mandatory and must be the
// third record in an LLDPDU.
type TTL uint16

// Type implements TLV.
func (TTL) Type() Type { return TypeTTL }

// Encode implements TLV.
func (t TTL) Encode() ([]byte, error) {
	payload := make([]byte, 2)
	binary.BigEndian.PutUint16(payload, uint16(t))
	return encodeWithHeader(TypeTTL, payload)
}

func decodeTTL(payload []byte) (TTL, error) {
	if len(payload) != 2 {
		return 0, fmt.Errorf("tlv: TTL length %d, want 2: %w", len(payload), ErrBadLength)
	}
	return TTL(binary.BigEndian.Uint16(payload)), nil
}
