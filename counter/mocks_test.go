// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import "github.com/stretchr/testify/mock"

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) Value() int {
	return m.Called().Int(0)
}

func (m *mockCounter) Increment() int {
	return m.Called().Int(0)
}

func (m *mockCounter) Decrement() int {
	return m.Called().Int(0)
}
