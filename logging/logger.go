// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	CallerKey    = "caller"
	MessageKey   = "msg"
	ErrorKey     = "error"
	LevelKey     = "level"
	TimestampKey = "ts"
)

// New creates a zap Logger from a set of options.  The options object can be nil,
// in which case a logger that writes ERROR and above to os.Stdout is returned.
// Timestamps are ISO8601 and the caller is always included.
func New(o *Options) *zap.Logger {
	return zap.New(
		zapcore.NewCore(
			o.encoder(),
			zapcore.AddSync(o.output()),
			o.level(),
		),
		zap.AddCaller(),
	)
}
