package main

import (
	"fmt"

	"github.com/helios300/fanctl/pkg/fan"
	"github.com/spf13/cobra"
)

func modeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode <quiet|default|performance>",
		Short: "Select a fan curve profile",
		Long: `Select the preset curve the EC uses to drive both fans.

Examples:
  # Silence-first curve
  fanctl mode quiet

  # Factory curve
  fanctl mode default

  # Aggressive cooling curve
  fanctl mode performance`,
		Args: cobra.ExactArgs(1),
		RunE: runMode,
	}
}

func runMode(_ *cobra.Command, args []string) error {
	profile, err := fan.ParseProfile(args[0])
	if err != nil {
		return err
	}

	controller, err := controllerFactory()
	if err != nil {
		return err
	}
	if err := controller.SetProfile(profile); err != nil {
		return err
	}

	fmt.Printf("Fan profile set to %s (wrote 0x%02X to register 0x%02X)\n",
		args[0], byte(profile), fan.RegFanProfile)
	return nil
}
