package main

import (
	"bytes"
	"testing"

	"github.com/helios300/fanctl/pkg/fan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type writeOp struct {
	offset int64
	values []byte
}

// memWriter records register writes instead of touching an EC.
type memWriter struct {
	ops []writeOp
}

func (w *memWriter) WriteByte(offset int64, value byte) error {
	return w.WriteBytes(offset, value)
}

func (w *memWriter) WriteBytes(offset int64, values ...byte) error {
	vals := make([]byte, len(values))
	copy(vals, values)
	w.ops = append(w.ops, writeOp{offset: offset, values: vals})
	return nil
}

type cliResult struct {
	writer *memWriter
	// prepared reports whether the controller factory ran, i.e.
	// whether a real invocation would have checked privileges and
	// reloaded ec_sys.
	prepared bool
	stderr   string
	err      error
}

// runCLI executes the root command with args against an in-memory EC.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()

	w := &memWriter{}
	prepared := false
	orig := controllerFactory
	controllerFactory = func() (*fan.Controller, error) {
		prepared = true
		return fan.NewController(w), nil
	}
	t.Cleanup(func() { controllerFactory = orig })

	cmd := newRootCmd()
	// Cobra prints usage-on-error via OutOrStderr, i.e. the SetOut
	// writer, so capture both streams in one buffer.
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return cliResult{writer: w, prepared: prepared, stderr: output.String(), err: err}
}

func TestBareInvocation(t *testing.T) {
	res := runCLI(t)

	require.Error(t, res.err)
	assert.False(t, res.prepared, "bare invocation must not prepare the EC")
	assert.Empty(t, res.writer.ops)
	assert.Contains(t, res.stderr, "Usage:")
}

func TestUnknownCommand(t *testing.T) {
	res := runCLI(t, "blow")

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "unknown command")
	assert.False(t, res.prepared)
	assert.Empty(t, res.writer.ops)
}

func TestWrongArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "mode missing profile", args: []string{"mode"}},
		{name: "mode extra args", args: []string{"mode", "quiet", "default"}},
		{name: "custom missing cpu", args: []string{"custom", "75"}},
		{name: "custom extra args", args: []string{"custom", "75", "50", "25"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.args...)

			require.Error(t, res.err)
			assert.False(t, res.prepared, "argument-count errors must not prepare the EC")
			assert.Empty(t, res.writer.ops)
		})
	}
}

// Invalid argument values have valid counts, so cobra routes them to
// the command; the command must still reject them before the EC side
// effects (privilege check, ec_sys reload, debugfs mount) happen.
func TestInvalidValuesDoNotPrepareEC(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown profile", args: []string{"mode", "turbo"}},
		{name: "gpu percent not an integer", args: []string{"custom", "75", "abc"}},
		{name: "cpu percent not an integer", args: []string{"custom", "abc", "50"}},
		{name: "gpu percent out of range", args: []string{"custom", "101", "50"}},
		{name: "cpu percent out of range", args: []string{"custom", "75", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.args...)

			require.Error(t, res.err)
			assert.False(t, res.prepared, "invalid values must be rejected before EC setup")
			assert.Empty(t, res.writer.ops)
		})
	}
}

func TestCommandsEmitWriteSequences(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []writeOp
	}{
		{
			name: "mode quiet",
			args: []string{"mode", "quiet"},
			want: []writeOp{
				{offset: fan.RegManualControl, values: []byte{0x11}},
				{offset: fan.RegFanProfile, values: []byte{0x00}},
			},
		},
		{
			name: "mode performance",
			args: []string{"mode", "performance"},
			want: []writeOp{
				{offset: fan.RegManualControl, values: []byte{0x11}},
				{offset: fan.RegFanProfile, values: []byte{0x04}},
			},
		},
		{
			name: "auto",
			args: []string{"auto"},
			want: []writeOp{
				{offset: fan.RegManualControl, values: []byte{0x11}},
				{offset: fan.RegFanMode, values: []byte{0x10, 0x04}},
			},
		},
		{
			name: "max",
			args: []string{"max"},
			want: []writeOp{
				{offset: fan.RegManualControl, values: []byte{0x11}},
				{offset: fan.RegFanMode, values: []byte{0x20, 0x08}},
			},
		},
		{
			name: "custom 75 50",
			args: []string{"custom", "75", "50"},
			want: []writeOp{
				{offset: fan.RegManualControl, values: []byte{0x11}},
				{offset: fan.RegFanMode, values: []byte{0x30, 0x0C}},
				{offset: fan.RegGPUFanSpeed, values: []byte{0x4B}},
				{offset: fan.RegCPUFanSpeed, values: []byte{0x32}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.args...)

			require.NoError(t, res.err)
			assert.True(t, res.prepared)
			require.Equal(t, tt.want, res.writer.ops)
		})
	}
}

func TestBareInvocationPrintsUsageOnce(t *testing.T) {
	res := runCLI(t)

	require.Error(t, res.err)
	assert.Equal(t, 1, bytes.Count([]byte(res.stderr), []byte("Available Commands:")))
}
