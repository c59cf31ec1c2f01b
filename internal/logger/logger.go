// Package logger builds the process-wide zap logger for fanctl. User
// facing output goes to stdout via the commands; the logger carries
// setup and register-write tracing on stderr.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once  sync.Once
	log   *zap.SugaredLogger
	debug bool
)

// SetDebug raises the level to Debug. Only takes effect before the
// first Get call.
func SetDebug(enabled bool) {
	debug = enabled
}

// Get returns the process logger, creating it on first use.
func Get() *zap.SugaredLogger {
	once.Do(func() {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

		level := zapcore.InfoLevel
		if debug {
			level = zapcore.DebugLevel
		}

		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		)
		log = zap.New(core).Sugar()
	})
	return log
}
