// Package logger builds the zap loggers shared by the server, the CLI and the HTTP middleware.
package logger

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger writing to stdout.
func New(level string, loc *time.Location) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return build(zapcore.Lock(os.Stdout), lvl, loc), nil
}

// NewWithWriter returns a JSON logger writing to w at info level.
func NewWithWriter(w io.Writer, loc *time.Location) *zap.Logger {
	return build(zapcore.AddSync(w), zapcore.InfoLevel, loc)
}

func build(ws zapcore.WriteSyncer, lvl zapcore.Level, loc *time.Location) *zap.Logger {
	if loc == nil {
		loc = time.UTC
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(loc).Format(time.RFC3339Nano))
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, lvl)
	return zap.New(core)
}
