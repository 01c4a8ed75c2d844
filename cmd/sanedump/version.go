package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmillikin/go-sane-net/pkg/sane"
)

// Version is the sanedump build version, set at build time via
// -ldflags, the way dittofs's own CLI binaries are versioned.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print sanedump's version and the SANE protocol version it decodes",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "sanedump %s (SANE protocol version code 0x%08x)\n", Version, uint32(sane.VersionCode))
		return nil
	},
}
