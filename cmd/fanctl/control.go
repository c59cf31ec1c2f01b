package main

import (
	"fmt"

	"github.com/helios300/fanctl/pkg/fan"
	"github.com/spf13/cobra"
)

func autoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Return both fans to automatic control",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			controller, err := controllerFactory()
			if err != nil {
				return err
			}
			if err := controller.SetAuto(); err != nil {
				return err
			}
			fmt.Printf("Fan mode set to auto (wrote 0x10 0x04 to registers 0x%02X-0x%02X)\n",
				fan.RegFanMode, fan.RegFanMode+1)
			return nil
		},
	}
}

func maxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "max",
		Short: "Run both fans at full speed",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			controller, err := controllerFactory()
			if err != nil {
				return err
			}
			if err := controller.SetMax(); err != nil {
				return err
			}
			fmt.Printf("Fan mode set to max (wrote 0x20 0x08 to registers 0x%02X-0x%02X)\n",
				fan.RegFanMode, fan.RegFanMode+1)
			return nil
		},
	}
}

func customCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "custom <gpu_percent> <cpu_percent>",
		Short: "Pin the GPU (left) and CPU (right) fans to fixed speeds",
		Long: `Switch the EC to custom mode and pin each fan to a fixed speed.

Both speeds are percentages between 0 and 100.

Examples:
  # GPU fan 75%, CPU fan 50%
  fanctl custom 75 50

  # Stop both fans (careful)
  fanctl custom 0 0`,
		Args: cobra.ExactArgs(2),
		RunE: runCustom,
	}
}

func runCustom(_ *cobra.Command, args []string) error {
	// Both values validate before the EC is prepared or touched.
	gpuPct, err := fan.ParsePercent(args[0])
	if err != nil {
		return fmt.Errorf("gpu fan speed: %w", err)
	}
	cpuPct, err := fan.ParsePercent(args[1])
	if err != nil {
		return fmt.Errorf("cpu fan speed: %w", err)
	}

	controller, err := controllerFactory()
	if err != nil {
		return err
	}
	if err := controller.SetCustom(gpuPct, cpuPct); err != nil {
		return err
	}

	fmt.Printf("Fan mode set to custom (wrote 0x30 0x0C to registers 0x%02X-0x%02X)\n",
		fan.RegFanMode, fan.RegFanMode+1)
	fmt.Printf("GPU fan pinned to %d%% (wrote 0x%02X to register 0x%02X)\n",
		gpuPct, gpuPct, fan.RegGPUFanSpeed)
	fmt.Printf("CPU fan pinned to %d%% (wrote 0x%02X to register 0x%02X)\n",
		cpuPct, cpuPct, fan.RegCPUFanSpeed)
	return nil
}
