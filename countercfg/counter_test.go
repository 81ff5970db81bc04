// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countercfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/counter/counter"
	"github.com/xmidt-org/counter/xmetrics"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewDefault(t *testing.T) {
	assert := assert.New(t)

	for _, o := range []*Options{nil, new(Options)} {
		c := New(o, nil, nil)
		if assert.IsType(new(counter.Counter), c) {
			assert.Zero(c.Value())
		}
	}
}

func TestNewInitial(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = New(&Options{Initial: 1}, nil, nil)
	)

	assert.Equal(1, c.Decrement())
	assert.Equal(0, c.Value())
}

func TestNewInstrumented(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		r, err = xmetrics.NewRegistry(
			&xmetrics.Options{DisableGoCollector: true, DisableProcessCollector: true},
			counter.Metrics,
		)
	)

	require.NoError(err)

	c := New(&Options{Initial: 2, Instrument: true}, r, nil)
	assert.Equal(2, c.Increment())

	families, err := r.Gather()
	require.NoError(err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}

	assert.Contains(names, "xmidt_counter_increments_total")
	assert.Contains(names, "xmidt_counter_value")
}

func TestNewInstrumentedWithoutProvider(t *testing.T) {
	var (
		assert = assert.New(t)
		c      = New(&Options{Instrument: true}, nil, nil)
	)

	assert.IsType(new(counter.Counter), c)
	assert.Equal(0, c.Increment())
}

func TestNewLogged(t *testing.T) {
	var (
		assert = assert.New(t)

		core, logs = observer.New(zapcore.DebugLevel)
		c          = New(&Options{Initial: 5, Log: true}, nil, zap.New(core))
	)

	assert.Equal(5, c.Increment())
	assert.Equal(6, c.Value())
	assert.Equal(1, logs.FilterMessage("counter incremented").Len())
}
