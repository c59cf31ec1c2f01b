//go:build !linux

package ec

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// stubProvider stands in on platforms without the ec_sys debugfs
// interface so the tool still builds everywhere.
type stubProvider struct{}

// NewProvider returns the EC access provider for this platform.
func NewProvider(_ *zap.SugaredLogger, _ string) AccessProvider {
	return stubProvider{}
}

func (stubProvider) EnsureReady() error {
	return fmt.Errorf("EC register access requires the ec_sys kernel module and is only supported on linux (running on %s)", runtime.GOOS)
}
