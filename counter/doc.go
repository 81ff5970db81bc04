// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package counter provides a simple integer register that can be read, incremented, and decremented.

Increment and Decrement return the value held before the mutation, so that

	c := counter.New(0)
	c.Increment() // returns 0
	c.Value()     // returns 1

Nothing in this package is safe for concurrent mutation.  A counter has a single owner, and callers
that share one across goroutines must supply their own mutual exclusion.  The decorators in this
package (Instrument and Log) add no synchronization of their own.
*/
package counter
