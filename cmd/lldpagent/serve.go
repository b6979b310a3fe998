package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lldp-go/lldpagent/agent"
	"github.com/lldp-go/lldpagent/config"
	"github.com/lldp-go/lldpagent/link"
	"github.com/lldp-go/lldpagent/logging"
)

var serveFlags struct {
	iface         string
	mac           string
	interval      float64
	configPath    string
	chassisIDType string
	systemName    string
	noColor       bool
	once          bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the LLDP announce/listen loop on a local interface",
	RunE:  runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.StringVar(&serveFlags.iface, "interface", "", "local interface name to bind to")
	flags.StringVar(&serveFlags.mac, "mac", "", "local MAC address (overrides config file)")
	flags.Float64Var(&serveFlags.interval, "interval", 0, "announce interval in seconds (overrides config file)")
	flags.StringVar(&serveFlags.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&serveFlags.chassisIDType, "chassis-id-type", "", "chassis ID type: mac or local")
	flags.StringVar(&serveFlags.systemName, "system-name", "", "system name used when chassis-id-type is local")
	flags.BoolVar(&serveFlags.noColor, "no-color", false, "disable colorized log output")
	flags.BoolVar(&serveFlags.once, "once", false, "stop after the first accepted frame (test mode)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}

	logger := logging.NewColorLogger(os.Stdout, !serveFlags.noColor)

	lnk, err := link.OpenPcapLink(cfg.InterfaceName)
	if err != nil {
		return fmt.Errorf("lldpagent: opening interface %s: %w", cfg.InterfaceName, err)
	}

	a, err := agent.New(agent.FromConfig(cfg, lnk, logger))
	if err != nil {
		lnk.Close()
		return fmt.Errorf("lldpagent: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Log("INFO: shutting down...")
		cancel()
	}()

	if serveFlags.once {
		return a.RunOnce(ctx)
	}
	return a.Run(ctx)
}

// loadServeConfig merges the optional YAML config file with flag
// overrides: flags win over file values, file values win over defaults
// (§6 "Configuration").
func loadServeConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if serveFlags.configPath != "" {
		loaded, err := config.Load(serveFlags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if serveFlags.iface != "" {
		cfg.InterfaceName = serveFlags.iface
	}
	if serveFlags.mac != "" {
		mac, err := net.ParseMAC(serveFlags.mac)
		if err != nil {
			return nil, fmt.Errorf("lldpagent: --mac %q: %w", serveFlags.mac, err)
		}
		cfg.MACAddress = mac
	}
	if serveFlags.interval > 0 {
		cfg.IntervalSeconds = serveFlags.interval
	}
	if serveFlags.chassisIDType != "" {
		cfg.ChassisIDType = serveFlags.chassisIDType
	}
	if serveFlags.systemName != "" {
		cfg.SystemName = serveFlags.systemName
	}

	if errs := config.Validate(cfg, serveFlags.configPath); errs.HasErrors() {
		return nil, errs
	}

	return cfg, nil
}
