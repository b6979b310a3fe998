package tlv

import (
	"encoding/binary"
	"fmt"
	"net"
)

// IFNumberingSubtype identifies how InterfaceNumber should be interpreted.
type IFNumberingSubtype uint8

// Valid interface numbering subtypes.
const (
	IFNumberingUnknown    IFNumberingSubtype = 1
	IFNumberingIfIndex    IFNumberingSubtype = 2
	IFNumberingSystemPort IFNumberingSubtype = 3
)

func (s IFNumberingSubtype) valid() bool {
	return s >= IFNumberingUnknown && s <= IFNumberingSystemPort
}

// oidMax is the largest OID payload a ManagementAddress record may carry.
const oidMax = 128

// ManagementAddress identifies an address that can be used to reach the
// local system for higher-layer management (§4.1).
type ManagementAddress struct {
	Family         AddressFamily
	IP             net.IP
	IfSubtype      IFNumberingSubtype
	InterfaceNum   uint32
	OID            []byte
}

// Type implements TLV.
func (ManagementAddress) Type() Type { return TypeManagementAddress }

// Encode implements TLV. Per the spec's Design Note, AL is computed as
// (address octets)+1 the way the reference implementation derives it from
// the IP's max prefix length: 5 for IPv4, 17 for IPv6.
func (m ManagementAddress) Encode() ([]byte, error) {
	addr, err := packAddress(m.Family, m.IP)
	if err != nil {
		return nil, err
	}
	if !m.IfSubtype.valid() {
		return nil, fmt.Errorf("tlv: interface numbering subtype %d: %w", m.IfSubtype, ErrBadSubtype)
	}
	if len(m.OID) > oidMax {
		return nil, fmt.Errorf("tlv: OID length %d exceeds %d: %w", len(m.OID), oidMax, ErrBadLength)
	}

	al := len(addr) // 1 family octet + address octets
	payload := make([]byte, 0, 1+al+1+4+1+len(m.OID))
	payload = append(payload, byte(al))
	payload = append(payload, addr...)
	payload = append(payload, byte(m.IfSubtype))

	var ifnum [4]byte
	binary.BigEndian.PutUint32(ifnum[:], m.InterfaceNum)
	payload = append(payload, ifnum[:]...)

	payload = append(payload, byte(len(m.OID)))
	payload = append(payload, m.OID...)

	return encodeWithHeader(TypeManagementAddress, payload)
}

func decodeManagementAddress(payload []byte) (ManagementAddress, error) {
	if len(payload) < 1 {
		return ManagementAddress{}, fmt.Errorf("tlv: ManagementAddress missing address length: %w", ErrBadLength)
	}
	al := int(payload[0])
	if al < 1 || len(payload) < 1+al {
		return ManagementAddress{}, fmt.Errorf("tlv: ManagementAddress address length %d out of range: %w", al, ErrBadLength)
	}

	family, ip, err := unpackAddress(payload[1 : 1+al])
	if err != nil {
		return ManagementAddress{}, err
	}

	rest := payload[1+al:]
	if len(rest) < 1+4+1 {
		return ManagementAddress{}, fmt.Errorf("tlv: ManagementAddress truncated after address: %w", ErrBadLength)
	}
	ifSubtype := IFNumberingSubtype(rest[0])
	if !ifSubtype.valid() {
		return ManagementAddress{}, fmt.Errorf("tlv: interface numbering subtype %d: %w", ifSubtype, ErrBadSubtype)
	}
	interfaceNum := binary.BigEndian.Uint32(rest[1:5])
	oidLen := int(rest[5])
	if oidLen > oidMax {
		return ManagementAddress{}, fmt.Errorf("tlv: OID length %d exceeds %d: %w", oidLen, oidMax, ErrBadLength)
	}
	oidBytes := rest[6:]
	if len(oidBytes) != oidLen {
		return ManagementAddress{}, fmt.Errorf("tlv: OID length %d does not match declared %d: %w", len(oidBytes), oidLen, ErrBadLength)
	}

	var oid []byte
	if oidLen > 0 {
		oid = make([]byte, oidLen)
		copy(oid, oidBytes)
	}

	return ManagementAddress{
		Family:       family,
		IP:           ip,
		IfSubtype:    ifSubtype,
		InterfaceNum: interfaceNum,
		OID:          oid,
	}, nil
}
