// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

// Interface represents an integer counter.
type Interface interface {
	// Value returns the current value of this counter.  This method has no side effects.
	Value() int

	// Increment adds 1 to this counter and returns the value held immediately prior to the increment.
	Increment() int

	// Decrement subtracts 1 from this counter and returns the value held immediately prior to the decrement.
	Decrement() int
}

// Counter is the basic Interface implementation.  The zero value is a Counter holding 0.
//
// Overflow wraps around, as with any Go int.  No bounds are enforced.
type Counter struct {
	value int
}

// New constructs a Counter holding the given initial value.  Any int is a valid initial value.
func New(initial int) *Counter {
	return &Counter{value: initial}
}

// Value returns the current value.
func (c *Counter) Value() int {
	return c.value
}

// Increment adds 1 and returns the value held before the increment.
func (c *Counter) Increment() int {
	previous := c.value
	c.value++
	return previous
}

// Decrement subtracts 1 and returns the value held before the decrement.
func (c *Counter) Decrement() int {
	previous := c.value
	c.value--
	return previous
}

// isNil reports whether c is nil, including a nil *Counter stored in the interface.
func isNil(c Interface) bool {
	if c == nil {
		return true
	}

	cc, ok := c.(*Counter)
	return ok && cc == nil
}
