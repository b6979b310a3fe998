package lldpdu

import (
	"fmt"
	"strings"

	"github.com/lldp-go/lldpagent/tlv"
)

// String renders the LLDPDU for the administrator on a single line, records
// separated by commas, the Go equivalent of the reference agent's `str(lldpdu)` repr.
func (l *LLDPDU) String() string {
	var b strings.Builder
	b.WriteString("LLDPDU(")
	for i, r := range l.records {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(describe(r))
	}
	b.WriteString(")")
	return b.String()
}

func describe(t tlv.TLV) string {
	switch v := t.(type) {
	case tlv.ChassisID:
		return fmt.Sprintf("ChassisID(%s)", describeIdentifier(v.Identifier))
	case tlv.PortID:
		return fmt.Sprintf("PortID(%s)", describeIdentifier(v.Identifier))
	case tlv.TTL:
		return fmt.Sprintf("TTL(%d)", uint16(v))
	case tlv.PortDescription:
		return fmt.Sprintf("PortDescription(%q)", string(v))
	case tlv.SystemName:
		return fmt.Sprintf("SystemName(%q)", string(v))
	case tlv.SystemDescription:
		return fmt.Sprintf("SystemDescription(%q)", string(v))
	case tlv.SystemCapabilities:
		return fmt.Sprintf("SystemCapabilities(supported=%#04x, enabled=%#04x)", v.Supported, v.Enabled)
	case tlv.ManagementAddress:
		return fmt.Sprintf("ManagementAddress(%s, ifnum=%d)", v.IP, v.InterfaceNum)
	case tlv.OrganizationallySpecific:
		return fmt.Sprintf("OrganizationallySpecific(oui=%x, subtype=%d, %d bytes)", v.OUI, v.Subtype, len(v.Value))
	case tlv.EndOfLLDPDU:
		return "EndOfLLDPDU()"
	default:
		return t.Type().String()
	}
}

func describeIdentifier(id tlv.Identifier) string {
	switch id.Subtype {
	case tlv.IdentifierMAC:
		return fmt.Sprintf("mac=%s", id.MAC)
	case tlv.IdentifierNetwork:
		return fmt.Sprintf("net=%s", id.IP)
	default:
		return fmt.Sprintf("text=%q", id.Text)
	}
}
