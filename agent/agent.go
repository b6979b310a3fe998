// Package agent implements the LLDP announce/listen engine: a single
// cooperative loop that periodically announces the local system and logs
// validated LLDPDUs received from peers (§4.5), grounded on the teacher's
// pkg/protocols.LLDPHandler ticker-driven Start/Stop and on the reference
// agent's select-based run loop.
package agent

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/lldp-go/lldpagent/config"
	"github.com/lldp-go/lldpagent/frame"
	"github.com/lldp-go/lldpagent/link"
	"github.com/lldp-go/lldpagent/lldpdu"
	"github.com/lldp-go/lldpagent/logging"
	"github.com/lldp-go/lldpagent/tlv"
)

// announceTTL is the TTL value advertised in the agent's own announcements
// (§4.5).
const announceTTL = 60

// ErrMulticastMAC is returned by New when the configured local address is
// itself a multicast address.
var ErrMulticastMAC = errors.New("agent: mac_address must not be a multicast address")

// Agent holds the state a running LLDP agent needs: its identity, cadence,
// link, and logger (§4.5 "State").
type Agent struct {
	mac           net.HardwareAddr
	interfaceName string
	interval      time.Duration
	chassisIDType string
	systemName    string

	link   link.Link
	logger logging.Logger

	lastAnnounce time.Time
}

// Options configures a new Agent.
type Options struct {
	MACAddress    net.HardwareAddr
	InterfaceName string
	Interval      time.Duration
	ChassisIDType string
	SystemName    string
	Link          link.Link
	Logger        logging.Logger
}

// FromConfig builds Options from a loaded config.Config, applying the
// field-level defaults §6 describes (default logger prints to stdout).
func FromConfig(cfg *config.Config, lnk link.Link, logger logging.Logger) Options {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return Options{
		MACAddress:    cfg.MACAddress,
		InterfaceName: cfg.InterfaceName,
		Interval:      cfg.Interval(),
		ChassisIDType: cfg.ChassisIDType,
		SystemName:    cfg.SystemName,
		Link:          lnk,
		Logger:        logger,
	}
}

// New validates opts and returns a ready-to-run Agent.
func New(opts Options) (*Agent, error) {
	if len(opts.MACAddress) != 6 {
		return nil, fmt.Errorf("agent: mac_address must be 6 octets, got %d", len(opts.MACAddress))
	}
	if opts.MACAddress[0]&0x01 != 0 {
		return nil, ErrMulticastMAC
	}
	if opts.Link == nil {
		return nil, errors.New("agent: link is required")
	}
	if opts.Interval <= 0 {
		opts.Interval = config.DefaultInterval
	}
	if opts.ChassisIDType == "" {
		opts.ChassisIDType = config.ChassisIDTypeMAC
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	return &Agent{
		mac:           opts.MACAddress,
		interfaceName: opts.InterfaceName,
		interval:      opts.Interval,
		chassisIDType: opts.ChassisIDType,
		systemName:    opts.SystemName,
		link:          opts.Link,
		logger:        logger,
	}, nil
}

// Close releases the agent's link. Safe to call more than once.
func (a *Agent) Close() error {
	return a.link.Close()
}

// Run executes the agent loop until ctx is canceled, releasing the link on
// every exit path (§5, §9 "Scoped link ownership").
func (a *Agent) Run(ctx context.Context) error {
	defer a.Close()

	a.lastAnnounce = time.Time{}
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if _, err := a.pass(ctx); err != nil {
			return err
		}
	}
}

// RunOnce executes passes until either a frame is accepted or ctx is
// canceled, then returns — the test-mode behavior §4.5 describes.
func (a *Agent) RunOnce(ctx context.Context) error {
	defer a.Close()

	a.lastAnnounce = time.Time{}
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		accepted, err := a.pass(ctx)
		if err != nil {
			return err
		}
		if accepted {
			return nil
		}
	}
}

// pass runs a single iteration: wait up to the announce interval for a
// frame, validate and log it if one arrived, then announce if the cadence
// has elapsed (§4.5 "Behavior"). It reports whether a frame was accepted.
func (a *Agent) pass(ctx context.Context) (bool, error) {
	data, err := a.link.Recv(a.interval)
	if err != nil {
		if errors.Is(err, link.ErrClosed) {
			return false, nil
		}
		return false, fmt.Errorf("agent: receiving frame: %w", err)
	}

	accepted := false
	if len(data) > 0 {
		accepted = a.handleFrame(data)
	}

	now := time.Now()
	if now.Sub(a.lastAnnounce) > a.interval {
		if err := a.announce(); err != nil {
			a.logger.Log(fmt.Sprintf("ERROR: announce failed: %v", err))
		}
		a.lastAnnounce = now
	}

	return accepted, nil
}

// handleFrame validates and parses a received frame, logging the outcome.
// It reports whether the frame was accepted as a valid LLDPDU. Rejections
// at the frame level (wrong destination, self-origin, wrong ethertype) are
// silent per §4.5 steps 1-3; only a parse failure of the LLDPDU payload
// itself produces a log entry (§4.5 step 4).
func (a *Agent) handleFrame(data []byte) bool {
	payload, err := frame.Validate(data, a.mac)
	if err != nil {
		return false
	}

	du, err := lldpdu.Decode(payload)
	if err != nil {
		a.logger.Log(fmt.Sprintf("ERROR: invalid LLDPDU: %v", err))
		return false
	}

	a.logger.Log(du.String())
	return true
}

// announce builds and sends the agent's own advertisement: ChassisID(MAC),
// PortID(InterfaceName), TTL(60) (§4.5 "Announce"). When chassisIDType is
// config.ChassisIDTypeLocal, the chassis is instead identified by
// systemName, an ambient extension the spec's fixed Announce behavior
// otherwise leaves no room for.
func (a *Agent) announce() error {
	du := lldpdu.New()

	chassisID := tlv.Identifier{Subtype: tlv.IdentifierMAC, MAC: a.mac}
	if a.chassisIDType == config.ChassisIDTypeLocal && a.systemName != "" {
		chassisID = tlv.Identifier{Subtype: tlv.IdentifierLocal, Text: a.systemName}
	}

	if err := du.Append(tlv.ChassisID{Identifier: chassisID}); err != nil {
		return err
	}

	if err := du.Append(tlv.PortID{Identifier: tlv.Identifier{
		Subtype: tlv.IdentifierInterface,
		Text:    a.interfaceName,
	}}); err != nil {
		return err
	}

	if err := du.Append(tlv.TTL(announceTTL)); err != nil {
		return err
	}

	payload, err := du.Encode()
	if err != nil {
		return err
	}

	out, err := frame.Build(a.mac, payload)
	if err != nil {
		return err
	}

	return a.link.Send(out)
}
