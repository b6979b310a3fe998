// Package config loads and validates the LLDP agent's configuration,
// adapted from the teacher's pkg/config package (struct + yaml.Unmarshal +
// a Validator returning structured ConfigErrors) but scoped to the handful
// of fields §6 of the spec enumerates.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Chassis ID type names accepted in the chassis_id_type field.
const (
	ChassisIDTypeMAC   = "mac"
	ChassisIDTypeLocal = "local"
)

// DefaultInterval is the announce interval used when neither the config
// file nor a flag overrides it (§6).
const DefaultInterval = 1.0 * time.Second

// Config holds the agent's injected configuration (§6).
type Config struct {
	// MACAddress is the local MAC address; required, must not be multicast.
	MACAddress net.HardwareAddr `yaml:"-"`
	MACAddressString string     `yaml:"mac_address"`

	// InterfaceName is the local interface name; may be empty for tests.
	InterfaceName string `yaml:"interface_name"`

	// IntervalSeconds is the announce cadence in seconds.
	IntervalSeconds float64 `yaml:"interval"`

	// ChassisIDType selects how the chassis ID TLV is built: "mac" (default)
	// or "local" (uses SystemName as the chassis identifier text).
	ChassisIDType string `yaml:"chassis_id_type"`

	// SystemName is the chassis identifier text used when ChassisIDType is
	// "local"; no SystemName TLV is sent.
	SystemName string `yaml:"system_name"`
}

// Interval returns the configured announce interval as a time.Duration,
// falling back to DefaultInterval when unset.
func (c *Config) Interval() time.Duration {
	if c.IntervalSeconds <= 0 {
		return DefaultInterval
	}
	return time.Duration(c.IntervalSeconds * float64(time.Second))
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if cfg.MACAddressString != "" {
		mac, err := net.ParseMAC(cfg.MACAddressString)
		if err != nil {
			return nil, fmt.Errorf("config: mac_address %q: %w", cfg.MACAddressString, err)
		}
		cfg.MACAddress = mac
	}

	return cfg, nil
}

// Validate checks cfg against §6's constraints and returns every violation
// found, in the teacher's ConfigError-list style.
func Validate(cfg *Config, file string) *ErrorList {
	v := &ErrorList{File: file}

	if len(cfg.MACAddress) == 0 {
		v.addError("mac_address", "mac_address is required")
	} else if len(cfg.MACAddress) != 6 {
		v.addError("mac_address", fmt.Sprintf("mac_address must be 6 octets, got %d", len(cfg.MACAddress)))
	} else if cfg.MACAddress[0]&0x01 != 0 {
		v.addError("mac_address", "mac_address must not be a multicast address")
	}

	if cfg.ChassisIDType != "" && cfg.ChassisIDType != ChassisIDTypeMAC && cfg.ChassisIDType != ChassisIDTypeLocal {
		v.addWarning("chassis_id_type", fmt.Sprintf("unknown chassis_id_type %q, defaulting to %q", cfg.ChassisIDType, ChassisIDTypeMAC))
	}

	if cfg.IntervalSeconds < 0 {
		v.addError("interval", "interval must be positive")
	}

	return v
}
