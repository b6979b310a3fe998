package tlv

import "fmt"

// orgValueMax is the largest vendor-data payload an OrganizationallySpecific
// record may carry (the 511-octet TLV ceiling minus the 3-octet OUI and
// 1-octet vendor subtype).
const orgValueMax = 507

// OrganizationallySpecific carries vendor-defined data identified by an
// IEEE-assigned OUI and a vendor-chosen subtype.
type OrganizationallySpecific struct {
	OUI     [3]byte
	Subtype uint8
	Value   []byte
}

// Type implements TLV.
func (OrganizationallySpecific) Type() Type { return TypeOrganizationallySpecific }

// Encode implements TLV.
func (o OrganizationallySpecific) Encode() ([]byte, error) {
	if len(o.Value) > orgValueMax {
		return nil, fmt.Errorf("tlv: organizationally specific value length %d exceeds %d: %w", len(o.Value), orgValueMax, ErrBadLength)
	}
	payload := make([]byte, 0, 4+len(o.Value))
	payload = append(payload, o.OUI[:]...)
	payload = append(payload, o.Subtype)
	payload = append(payload, o.Value...)
	return encodeWithHeader(TypeOrganizationallySpecific, payload)
}

func decodeOrganizationallySpecific(payload []byte) (OrganizationallySpecific, error) {
	if len(payload) < 4 {
		return OrganizationallySpecific{}, fmt.Errorf("tlv: organizationally specific length %d, want >= 4: %w", len(payload), ErrBadLength)
	}
	var o OrganizationallySpecific
	copy(o.OUI[:], payload[0:3])
	o.Subtype = payload[3]
	if len(payload[4:]) > orgValueMax {
		return OrganizationallySpecific{}, fmt.Errorf("tlv: organizationally specific value length %d exceeds %d: %w", len(payload[4:]), orgValueMax, ErrBadLength)
	}
	if len(payload) > 4 {
		o.Value = make([]byte, len(payload)-4)
		copy(o.Value, payload[4:])
	}
	return o, nil
}
