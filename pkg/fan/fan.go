// Package fan maps fan commands onto the register writes the Helios 300
// embedded controller expects. All offsets and values are fixed by the
// EC firmware; nothing here is configurable.
package fan

import (
	"fmt"
	"strconv"
)

// EC register offsets. The EC exposes a byte-addressable register file
// and these are positions within it.
const (
	RegManualControl = 0x03 // takes manualEnable before any other write
	RegFanProfile    = 0x2C // fan curve preset selector
	RegFanMode       = 0x21 // two-byte mode selector, covers 0x21-0x22
	RegGPUFanSpeed   = 0x36 // left fan, percent as a raw byte
	RegCPUFanSpeed   = 0x3A // right fan, percent as a raw byte
)

// manualEnable unlocks the fan registers for host writes. Without it the
// EC ignores everything below.
const manualEnable = 0x11

// Profile selects one of the EC's preset fan curves.
type Profile byte

const (
	ProfileQuiet       Profile = 0x00
	ProfileDefault     Profile = 0x01
	ProfilePerformance Profile = 0x04
)

// ParseProfile resolves a profile name from the command line.
func ParseProfile(name string) (Profile, error) {
	switch name {
	case "quiet":
		return ProfileQuiet, nil
	case "default":
		return ProfileDefault, nil
	case "performance":
		return ProfilePerformance, nil
	}
	return 0, fmt.Errorf("unknown fan profile %q (want quiet, default or performance)", name)
}

// ParsePercent parses a fan percentage argument. Commands call it
// before any EC setup happens, so a bad value never has side effects.
func ParsePercent(s string) (int, error) {
	pct, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if pct < 0 || pct > 100 {
		return 0, fmt.Errorf("%d%% is out of range, must be 0-100", pct)
	}
	return pct, nil
}

// Mode selector pairs written at RegFanMode.
var (
	modeAuto   = [2]byte{0x10, 0x04}
	modeMax    = [2]byte{0x20, 0x08}
	modeCustom = [2]byte{0x30, 0x0C}
)

// RegisterWriter is the slice of the EC device the controller needs.
// *ec.Device satisfies it; tests substitute an in-memory recorder.
type RegisterWriter interface {
	WriteByte(offset int64, value byte) error
	WriteBytes(offset int64, values ...byte) error
}

// Controller turns fan commands into ordered EC register writes.
type Controller struct {
	dev RegisterWriter
}

func NewController(dev RegisterWriter) *Controller {
	return &Controller{dev: dev}
}

// enableManual is the precondition write shared by every command.
func (c *Controller) enableManual() error {
	if err := c.dev.WriteByte(RegManualControl, manualEnable); err != nil {
		return fmt.Errorf("enabling manual fan control: %w", err)
	}
	return nil
}

// SetProfile selects a preset fan curve.
func (c *Controller) SetProfile(p Profile) error {
	if err := c.enableManual(); err != nil {
		return err
	}
	if err := c.dev.WriteByte(RegFanProfile, byte(p)); err != nil {
		return fmt.Errorf("selecting fan profile: %w", err)
	}
	return nil
}

// SetAuto hands both fans back to the EC's automatic control.
func (c *Controller) SetAuto() error {
	return c.setMode(modeAuto)
}

// SetMax runs both fans at full speed.
func (c *Controller) SetMax() error {
	return c.setMode(modeMax)
}

func (c *Controller) setMode(pair [2]byte) error {
	if err := c.enableManual(); err != nil {
		return err
	}
	if err := c.dev.WriteBytes(RegFanMode, pair[0], pair[1]); err != nil {
		return fmt.Errorf("selecting fan mode: %w", err)
	}
	return nil
}

// SetCustom pins the GPU (left) and CPU (right) fans to fixed speeds.
// Both percentages are validated before the EC is touched at all, so a
// bad argument never leaves the EC half-configured.
func (c *Controller) SetCustom(gpuPct, cpuPct int) error {
	gpu, err := percentToByte(gpuPct)
	if err != nil {
		return fmt.Errorf("gpu fan speed: %w", err)
	}
	cpu, err := percentToByte(cpuPct)
	if err != nil {
		return fmt.Errorf("cpu fan speed: %w", err)
	}
	if err := c.setMode(modeCustom); err != nil {
		return err
	}
	if err := c.dev.WriteByte(RegGPUFanSpeed, gpu); err != nil {
		return fmt.Errorf("setting gpu fan speed: %w", err)
	}
	if err := c.dev.WriteByte(RegCPUFanSpeed, cpu); err != nil {
		return fmt.Errorf("setting cpu fan speed: %w", err)
	}
	return nil
}

// percentToByte converts a fan percentage to its register byte. The EC
// takes the decimal value directly (100 -> 0x64), not a rescale onto
// the full byte range.
func percentToByte(pct int) (byte, error) {
	if pct < 0 || pct > 100 {
		return 0, fmt.Errorf("%d%% is out of range, must be 0-100", pct)
	}
	return byte(pct), nil
}
