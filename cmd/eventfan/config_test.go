// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoadConfigDefaults(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	c, err := loadConfig(nil)
	require.NoError(err)
	assert.Equal(3, c.Subscribers)
	assert.Empty(c.Fail)
	assert.Empty(c.Panic)
	assert.Equal(10*time.Millisecond, c.Delay)
	assert.Equal(5*time.Second, c.Timeout)
	assert.Equal("ping", c.Payload)
	assert.Equal("info", c.LogLevel)
	assert.False(c.Metrics)
	assert.Equal("eventfan", c.Namespace)
	assert.Equal("fanout", c.Subsystem)
}

func testLoadConfigFlags(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	c, err := loadConfig([]string{
		"--subscribers", "5",
		"--fail", "1,3",
		"--panic", "4",
		"--delay", "2ms",
		"--timeout", "1s",
		"--payload", "hello",
		"--log-level", "debug",
		"--metrics",
	})

	require.NoError(err)
	assert.Equal(5, c.Subscribers)
	assert.Equal([]string{"1", "3"}, c.Fail)
	assert.Equal([]string{"4"}, c.Panic)
	assert.Equal(2*time.Millisecond, c.Delay)
	assert.Equal(time.Second, c.Timeout)
	assert.Equal("hello", c.Payload)
	assert.Equal("debug", c.LogLevel)
	assert.True(c.Metrics)
}

func testLoadConfigEnvironment(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	t.Setenv("EVENTFAN_SUBSCRIBERS", "7")
	t.Setenv("EVENTFAN_LOG_LEVEL", "warn")

	c, err := loadConfig(nil)
	require.NoError(err)
	assert.Equal(7, c.Subscribers)
	assert.Equal("warn", c.LogLevel)

	// flags take precedence over the environment
	c, err = loadConfig([]string{"--subscribers", "2"})
	require.NoError(err)
	assert.Equal(2, c.Subscribers)
}

func testLoadConfigFile(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		file = filepath.Join(t.TempDir(), "custom.yaml")
	)

	require.NoError(os.WriteFile(
		file,
		[]byte("subscribers: 4\nfail: [\"0\", \"2\"]\ndelay: 25ms\npayload: fromfile\n"),
		0600,
	))

	c, err := loadConfig([]string{"--file", file})
	require.NoError(err)
	assert.Equal(4, c.Subscribers)
	assert.Equal([]string{"0", "2"}, c.Fail)
	assert.Equal(25*time.Millisecond, c.Delay)
	assert.Equal("fromfile", c.Payload)
}

func testLoadConfigErrors(t *testing.T) {
	testData := [][]string{
		{"--subscribers", "0"},
		{"--no-such-flag"},
		{"--file", filepath.Join(t.TempDir(), "missing.yaml")},
	}

	for i, arguments := range testData {
		t.Run(string(rune('A'+i)), func(t *testing.T) {
			_, err := loadConfig(arguments)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", testLoadConfigDefaults)
	t.Run("Flags", testLoadConfigFlags)
	t.Run("Environment", testLoadConfigEnvironment)
	t.Run("File", testLoadConfigFile)
	t.Run("Errors", testLoadConfigErrors)
}

func TestConfigIndexSet(t *testing.T) {
	testData := []struct {
		values      []string
		expected    map[int]bool
		expectedErr bool
	}{
		{nil, map[int]bool{}, false},
		{[]string{"0", "2"}, map[int]bool{0: true, 2: true}, false},
		{[]string{"1", "1"}, map[int]bool{1: true}, false},
		{[]string{"3"}, nil, true},
		{[]string{"-1"}, nil, true},
		{[]string{"x"}, nil, true},
	}

	for _, record := range testData {
		t.Run(fmt.Sprintf("%v", record.values), func(t *testing.T) {
			var (
				assert = assert.New(t)
				c      = Config{Subscribers: 3}
			)

			actual, err := c.indexSet(record.values)
			if record.expectedErr {
				assert.Error(err)
				assert.Nil(actual)
			} else {
				assert.NoError(err)
				assert.Equal(record.expected, actual)
			}
		})
	}
}
