//go:build linux

package ec

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

const (
	debugfsDir       = "/sys/kernel/debug"
	writeSupportPath = "/sys/module/ec_sys/parameters/write_support"
)

// SysfsProvider prepares the ec_sys debugfs interface: debugfs mounted
// on /sys/kernel/debug and ec_sys loaded with write_support=1.
type SysfsProvider struct {
	log  *zap.SugaredLogger
	path string
}

// NewProvider returns the EC access provider for this platform. path is
// the register file the device will write to; readiness is verified
// against the same path.
func NewProvider(log *zap.SugaredLogger, path string) AccessProvider {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &SysfsProvider{log: log, path: path}
}

func (p *SysfsProvider) EnsureReady() error {
	if err := p.ensureDebugfs(); err != nil {
		return err
	}
	if err := p.ensureWriteSupport(); err != nil {
		return err
	}

	fi, err := os.Stat(p.path)
	if err != nil {
		return fmt.Errorf("EC register file missing after setup (no EC, or ec_sys unsupported on this kernel): %w", err)
	}
	if fi.Mode().Perm()&0o200 == 0 {
		return fmt.Errorf("EC register file %s is read-only; ec_sys loaded without write_support", p.path)
	}
	return nil
}

func (p *SysfsProvider) ensureDebugfs() error {
	var st unix.Statfs_t
	if err := unix.Statfs(debugfsDir, &st); err == nil && st.Type == unix.DEBUGFS_MAGIC {
		return nil
	}
	p.log.Debugw("mounting debugfs", "dir", debugfsDir)
	if err := unix.Mount("debugfs", debugfsDir, "debugfs", 0, ""); err != nil {
		return fmt.Errorf("mounting debugfs on %s: %w", debugfsDir, err)
	}
	return nil
}

func (p *SysfsProvider) ensureWriteSupport() error {
	if b, err := os.ReadFile(writeSupportPath); err == nil && bytes.HasPrefix(b, []byte("Y")) {
		return nil
	}

	// write_support is a load-time parameter, so a module already loaded
	// without it has to come out first. Removing a module that is not
	// loaded fails harmlessly.
	p.log.Debugw("reloading ec_sys with write_support=1")
	_ = exec.Command("modprobe", "-r", "ec_sys").Run()
	if out, err := exec.Command("modprobe", "ec_sys", "write_support=1").CombinedOutput(); err != nil {
		return fmt.Errorf("loading ec_sys with write_support=1: %v: %s", err, bytes.TrimSpace(out))
	}

	if b, err := os.ReadFile(writeSupportPath); err != nil || !bytes.HasPrefix(b, []byte("Y")) {
		return fmt.Errorf("ec_sys loaded but write_support is still off (read %q from %s)", bytes.TrimSpace(b), writeSupportPath)
	}
	return nil
}
