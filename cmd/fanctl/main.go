package main

import (
	"fmt"
	"os"

	"github.com/helios300/fanctl/internal/logger"
	"github.com/helios300/fanctl/internal/version"
	"github.com/helios300/fanctl/pkg/ec"
	"github.com/helios300/fanctl/pkg/fan"
	"github.com/helios300/fanctl/pkg/privilege"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// Build variables set by ldflags
	buildVersion string
	buildCommit  string
	buildTime    string

	debugLog bool
	ecPath   string
)

// controllerFactory builds the controller the commands write through.
// Commands call it only after their arguments have validated, so a bad
// value never triggers the privilege check or the ec_sys reload.
// Tests swap it for a factory backed by an in-memory writer.
var controllerFactory = buildController

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fanctl",
		Short: "Fan control for the Acer Predator Helios 300",
		Long: `fanctl drives the Helios 300 embedded controller directly: fan curve
profiles, automatic or maximum fan mode, and fixed per-fan speeds.

Every command writes to the EC register file exposed by the ec_sys
kernel module and therefore requires root.`,
		Version:       version.Short(buildVersion, buildCommit),
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.SetDebug(debugLog)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			// A bare invocation is a usage error; cobra appends the
			// usage text below this.
			return fmt.Errorf("a command is required")
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Log every register write and setup step")
	rootCmd.PersistentFlags().StringVar(&ecPath, "ec-path", ec.DefaultPath, "Path to the EC register file")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(modeCmd())
	rootCmd.AddCommand(autoCmd())
	rootCmd.AddCommand(maxCmd())
	rootCmd.AddCommand(customCmd())

	return rootCmd
}

// buildController checks privileges, prepares the ec_sys interface and
// wires the controller to the real register file.
func buildController() (*fan.Controller, error) {
	if !privilege.IsElevated() {
		return nil, fmt.Errorf("fanctl needs root to write EC registers (try sudo)")
	}

	log := logger.Get()
	if err := ec.NewProvider(log, ecPath).EnsureReady(); err != nil {
		return nil, fmt.Errorf("preparing EC access: %w", err)
	}

	return fan.NewController(ec.NewDevice(afero.NewOsFs(), ecPath, log)), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version.Detailed(buildVersion, buildCommit, buildTime))
		},
	}
}
