package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0"
	commit  = "dev"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "lldpagent",
	Short:   "LLDP (IEEE 802.1AB) announce/listen agent",
	Version: version,
	Long: `lldpagent announces the local system's identity on an Ethernet link
using the Link Layer Discovery Protocol and logs valid LLDPDUs received
from directly attached neighbors.`,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("lldpagent %s (commit: %s, built: %s)\n", version, commit, date))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
