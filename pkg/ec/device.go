// Package ec provides write access to the embedded controller register
// file that the ec_sys kernel module exposes under debugfs.
package ec

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultPath is where ec_sys exposes the EC register file.
const DefaultPath = "/sys/kernel/debug/ec/ec0/io"

// Device performs raw byte writes into the EC register file. The
// filesystem is injected so tests run against an in-memory register
// file instead of real hardware.
type Device struct {
	fs   afero.Fs
	path string
	log  *zap.SugaredLogger
}

func NewDevice(fs afero.Fs, path string, log *zap.SugaredLogger) *Device {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Device{fs: fs, path: path, log: log}
}

// WriteByte writes a single byte at offset, leaving the file length and
// every other byte untouched.
func (d *Device) WriteByte(offset int64, value byte) error {
	return d.WriteBytes(offset, value)
}

// WriteBytes writes len(values) consecutive bytes starting at offset,
// first value at the lowest offset. The write is an in-place pwrite; it
// cannot truncate or append.
func (d *Device) WriteBytes(offset int64, values ...byte) error {
	f, err := d.fs.OpenFile(d.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("opening EC register file %s: %w", d.path, err)
	}
	defer f.Close()

	n, err := f.WriteAt(values, offset)
	if err != nil {
		return fmt.Errorf("writing %d byte(s) at EC offset 0x%02X: %w", len(values), offset, err)
	}
	if n != len(values) {
		return fmt.Errorf("short write at EC offset 0x%02X: %d of %d bytes", offset, n, len(values))
	}
	d.log.Debugw("EC register write",
		"offset", fmt.Sprintf("0x%02X", offset),
		"values", fmt.Sprintf("% X", values),
	)
	return nil
}
