// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Log decorates a counter so that every mutation is written to the given logger at debug level.
// If logger is nil, sallust.Default() is used.
func Log(c Interface, logger *zap.Logger) Interface {
	if isNil(c) {
		panic("A counter is required")
	}

	if logger == nil {
		logger = sallust.Default()
	}

	return &loggingCounter{
		Interface: c,
		logger:    logger,
	}
}

type loggingCounter struct {
	Interface
	logger *zap.Logger
}

func (lc *loggingCounter) Increment() int {
	previous := lc.Interface.Increment()
	lc.logger.Debug("counter incremented", zap.Int("previous", previous), zap.Int("current", lc.Interface.Value()))
	return previous
}

func (lc *loggingCounter) Decrement() int {
	previous := lc.Interface.Decrement()
	lc.logger.Debug("counter decremented", zap.Int("previous", previous), zap.Int("current", lc.Interface.Value()))
	return previous
}
