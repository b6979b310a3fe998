package tlv

// EndOfLLDPDU terminates an LLDPDU. At most one may appear, and it must be
// the last record if present.
type EndOfLLDPDU struct{}

// Type implements TLV.
func (EndOfLLDPDU) Type() Type { return TypeEndOfLLDPDU }

// Encode implements TLV.
func (EndOfLLDPDU) Encode() ([]byte, error) {
	return encodeWithHeader(TypeEndOfLLDPDU, nil)
}
