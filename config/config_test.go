package config

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadParsesMACAddress(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agent.yaml")
	content := "mac_address: 02:04:df:88:a2:b4\ninterface_name: eth0\ninterval: 2.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := net.HardwareAddr{0x02, 0x04, 0xdf, 0x88, 0xa2, 0xb4}
	if cfg.MACAddress.String() != want.String() {
		t.Fatalf("got MAC %s, want %s", cfg.MACAddress, want)
	}
	if cfg.InterfaceName != "eth0" {
		t.Fatalf("got interface %q, want eth0", cfg.InterfaceName)
	}
	if cfg.Interval() != 2500*time.Millisecond {
		t.Fatalf("got interval %s, want 2.5s", cfg.Interval())
	}
}

func TestLoadRejectsBadMAC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agent.yaml")
	if err := os.WriteFile(path, []byte("mac_address: not-a-mac\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed mac_address")
	}
}

func TestIntervalDefaultsWhenUnset(t *testing.T) {
	cfg := &Config{}
	if cfg.Interval() != DefaultInterval {
		t.Fatalf("got %s, want default %s", cfg.Interval(), DefaultInterval)
	}
}

func TestValidateRequiresMAC(t *testing.T) {
	errs := Validate(&Config{}, "agent.yaml")
	if !errs.HasErrors() {
		t.Fatal("expected an error for missing mac_address")
	}
}

func TestValidateRejectsMulticastMAC(t *testing.T) {
	cfg := &Config{MACAddress: net.HardwareAddr{0x01, 0, 0, 0, 0, 1}}
	errs := Validate(cfg, "agent.yaml")
	if !errs.HasErrors() {
		t.Fatal("expected an error for multicast mac_address")
	}
}

func TestValidateWarnsOnUnknownChassisIDType(t *testing.T) {
	cfg := &Config{
		MACAddress:    net.HardwareAddr{0x02, 0x04, 0xdf, 0x88, 0xa2, 0xb4},
		ChassisIDType: "bogus",
	}
	errs := Validate(cfg, "agent.yaml")
	if errs.HasErrors() {
		t.Fatalf("unknown chassis_id_type should warn, not error: %v", errs)
	}
	if len(errs.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(errs.Warnings))
	}
}

func TestValidateRejectsNegativeInterval(t *testing.T) {
	cfg := &Config{
		MACAddress:      net.HardwareAddr{0x02, 0x04, 0xdf, 0x88, 0xa2, 0xb4},
		IntervalSeconds: -1,
	}
	errs := Validate(cfg, "agent.yaml")
	if !errs.HasErrors() {
		t.Fatal("expected an error for negative interval")
	}
}

func TestValidateAccepts(t *testing.T) {
	cfg := &Config{
		MACAddress:    net.HardwareAddr{0x02, 0x04, 0xdf, 0x88, 0xa2, 0xb4},
		InterfaceName: "eth0",
		ChassisIDType: ChassisIDTypeMAC,
	}
	errs := Validate(cfg, "agent.yaml")
	if errs.HasErrors() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
