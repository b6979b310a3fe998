package tlv

import (
	"bytes"
	"errors"
	"testing"
)

func TestHeaderPackUnpack(t *testing.T) {
	tests := []struct {
		desc string
		typ  Type
		n    int
	}{
		{"end", TypeEndOfLLDPDU, 0},
		{"chassis-id", TypeChassisID, 7},
		{"org-specific max", TypeOrganizationallySpecific, 511},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			hdr, err := packHeader(tt.typ, tt.n)
			if err != nil {
				t.Fatalf("packHeader: %v", err)
			}
			got, err := decodeHeader(append(hdr[:], make([]byte, tt.n)...))
			if err != nil {
				t.Fatalf("decodeHeader: %v", err)
			}
			if got.Type != tt.typ || got.Length != tt.n {
				t.Fatalf("got %+v, want type=%v length=%d", got, tt.typ, tt.n)
			}
		})
	}
}

func TestDecodeShortHeader(t *testing.T) {
	if _, _, err := Decode([]byte{0x02}); !errors.Is(err, ErrShortHeader) {
		t.Fatalf("got %v, want ErrShortHeader", err)
	}
}

func TestDecodeShortPayload(t *testing.T) {
	// Type 3 (TTL), declared length 2, but only 1 payload octet present.
	if _, _, err := Decode([]byte{0x06, 0x02, 0x00}); !errors.Is(err, ErrShortPayload) {
		t.Fatalf("got %v, want ErrShortPayload", err)
	}
}

func TestDecodeUnknownType(t *testing.T) {
	// Type 9 is reserved/unrecognized; 9<<9 packed big-endian is 0x12 0x00.
	b := []byte{0x12, 0x00}
	if _, _, err := Decode(b); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("got %v, want ErrUnknownType", err)
	}
}

// TestScenarioS1 reproduces spec.md §8 scenario S1: minimal announce.
func TestScenarioS1(t *testing.T) {
	mac := []byte{0x02, 0x04, 0xdf, 0x88, 0xa2, 0xb4}
	chassis := ChassisID{Identifier: Identifier{Subtype: IdentifierMAC, MAC: mac}}
	port := PortID{Identifier: Identifier{Subtype: IdentifierInterface, Text: "eth0"}}
	ttl := TTL(60)

	want := []byte{
		0x02, 0x07, 0x04, 0x02, 0x04, 0xdf, 0x88, 0xa2, 0xb4,
		0x04, 0x05, 0x06, 0x65, 0x74, 0x68, 0x30,
		0x06, 0x02, 0x00, 0x3c,
	}

	var got []byte
	for _, tlv := range []TLV{chassis, port, ttl} {
		b, err := tlv.Encode()
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		got = append(got, b...)
	}

	if !bytes.Equal(got, want) {
		t.Fatalf("S1 encode mismatch:\n got: % x\nwant: % x", got, want)
	}
}

// TestScenarioS5 reproduces spec.md §8 scenario S5: capability checks.
func TestScenarioS5(t *testing.T) {
	bad := SystemCapabilities{Supported: 0b0100, Enabled: 0b0110}
	if _, err := bad.Encode(); !errors.Is(err, ErrCapabilityMismatch) {
		t.Fatalf("got %v, want ErrCapabilityMismatch", err)
	}

	good := SystemCapabilities{Supported: 0b0110, Enabled: 0b0100}
	b, err := good.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0x0e, 0x04, 0x00, 0x06, 0x00, 0x04}
	if !bytes.Equal(b, want) {
		t.Fatalf("S5 encode mismatch:\n got: % x\nwant: % x", b, want)
	}
}

// TestP1RoundTrip checks P1: decode(encode(t)) == (t, len(encode(t))) for a
// representative TLV of every variant.
func TestP1RoundTrip(t *testing.T) {
	tests := []struct {
		desc string
		tlv  TLV
	}{
		{"end", EndOfLLDPDU{}},
		{"chassis-id mac", ChassisID{Identifier: Identifier{Subtype: IdentifierMAC, MAC: []byte{1, 2, 3, 4, 5, 6}}}},
		{"chassis-id text", ChassisID{Identifier: Identifier{Subtype: IdentifierLocal, Text: "Frank's Computer"}}},
		{"chassis-id network v4", ChassisID{Identifier: Identifier{Subtype: IdentifierNetwork, Family: AddressFamilyIPv4, IP: []byte{134, 96, 86, 110}}}},
		{"port-id interface", PortID{Identifier: Identifier{Subtype: IdentifierInterface, Text: "eth0"}}},
		{"ttl zero", TTL(0)},
		{"ttl max", TTL(65535)},
		{"port description", PortDescription("uplink")},
		{"system name", SystemName("")},
		{"system description empty", SystemDescription("")},
		{"system capabilities", SystemCapabilities{Supported: 0b0111, Enabled: 0b0101}},
		{"management address v4", ManagementAddress{Family: AddressFamilyIPv4, IP: []byte{192, 0, 2, 1}, IfSubtype: IFNumberingIfIndex, InterfaceNum: 4, OID: []byte{0, 8, 0x15}}},
		{"management address v6 no oid", ManagementAddress{Family: AddressFamilyIPv6, IP: net16(), IfSubtype: IFNumberingUnknown}},
		{"org specific empty value", OrganizationallySpecific{OUI: [3]byte{0x00, 0x80, 0xc2}, Subtype: 1}},
		{"org specific max value", OrganizationallySpecific{OUI: [3]byte{0x00, 0x80, 0xc2}, Subtype: 1, Value: bytes.Repeat([]byte{0xab}, 507)}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			enc, err := tt.tlv.Encode()
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			got, n, err := Decode(enc)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if n != len(enc) {
				t.Fatalf("consumed %d octets, want %d", n, len(enc))
			}

			reenc, err := got.Encode()
			if err != nil {
				t.Fatalf("re-encode: %v", err)
			}
			if !bytes.Equal(reenc, enc) {
				t.Fatalf("round trip mismatch:\n got: % x\nwant: % x", reenc, enc)
			}
		})
	}
}

func net16() []byte {
	return []byte{0x20, 0xdb, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
}

func TestStringBoundaries(t *testing.T) {
	if _, err := SystemName(string(make([]byte, 255))).Encode(); err != nil {
		t.Fatalf("255-octet string should encode: %v", err)
	}
	if _, err := SystemName(string(make([]byte, 256))).Encode(); !errors.Is(err, ErrBadLength) {
		t.Fatalf("256-octet string should be rejected, got %v", err)
	}
}

func TestChassisIDMACLengthBoundaries(t *testing.T) {
	if _, err := (ChassisID{Identifier: Identifier{Subtype: IdentifierMAC, MAC: make([]byte, 6)}}).Encode(); err != nil {
		t.Fatalf("6-octet MAC should succeed: %v", err)
	}
	if _, err := (ChassisID{Identifier: Identifier{Subtype: IdentifierMAC, MAC: make([]byte, 5)}}).Encode(); !errors.Is(err, ErrBadLength) {
		t.Fatalf("5-octet MAC should be rejected, got %v", err)
	}
	if _, err := (ChassisID{Identifier: Identifier{Subtype: IdentifierMAC, MAC: make([]byte, 7)}}).Encode(); !errors.Is(err, ErrBadLength) {
		t.Fatalf("7-octet MAC should be rejected, got %v", err)
	}
}

func TestBadUTF8(t *testing.T) {
	bad := string([]byte{0xff, 0xfe, 0xfd})
	if _, err := SystemName(bad).Encode(); !errors.Is(err, ErrBadUTF8) {
		t.Fatalf("got %v, want ErrBadUTF8", err)
	}
}
