// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
)

type mockConfiger struct {
	mock.Mock
}

func (m *mockConfiger) AddConfigPath(v string) {
	m.Called(v)
}

func (m *mockConfiger) SetConfigName(v string) {
	m.Called(v)
}

func (m *mockConfiger) SetConfigFile(v string) {
	m.Called(v)
}

type mockKeyUnmarshaler struct {
	mock.Mock
}

func (m *mockKeyUnmarshaler) IsSet(k string) bool {
	return m.Called(k).Bool(0)
}

func (m *mockKeyUnmarshaler) UnmarshalKey(k string, v interface{}, _ ...viper.DecoderConfigOption) error {
	return m.Called(k, v).Error(0)
}

type mockDefaulter struct {
	mock.Mock
}

func (m *mockDefaulter) SetDefault(k string, v interface{}) {
	m.Called(k, v)
}
