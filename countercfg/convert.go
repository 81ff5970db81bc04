// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countercfg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var errNotInteger = errors.New("not an integer")

// toInt converts a raw configuration value into an int without losing information.
// Bools, fractional floats, and anything outside the int range are rejected.  Strings
// are always parsed in base 10.
func toInt(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil

	case bool:
		return 0, fmt.Errorf("%w: %t", errNotInteger, v)

	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, strconv.IntSize)
		if err != nil {
			return 0, err
		}

		return int(i), nil

	case float32:
		return floatToInt(float64(v))

	case float64:
		return floatToInt(v)

	case int64:
		if int64(int(v)) != v {
			return 0, fmt.Errorf("%d is out of range", v)
		}

		return int(v), nil

	case uint:
		if uint64(v) > math.MaxInt {
			return 0, fmt.Errorf("%d is out of range", v)
		}

		return int(v), nil

	case uint32:
		if uint64(v) > math.MaxInt {
			return 0, fmt.Errorf("%d is out of range", v)
		}

		return int(v), nil

	case uint64:
		if v > math.MaxInt {
			return 0, fmt.Errorf("%d is out of range", v)
		}

		return int(v), nil

	default:
		// int, int8, int16, int32, uint8, uint16 all fit
		return cast.ToIntE(raw)
	}
}

func floatToInt(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %g", errNotInteger, f)
	}

	// float64(math.MinInt) is exact, while float64(math.MaxInt) rounds up past the range
	if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return 0, fmt.Errorf("%g is out of range", f)
	}

	return int(f), nil
}
