// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_AllFields(t *testing.T) {
	// Arrange
	env := envSnapshot{
		"TRIBOFERRIN_LOG_LEVEL":       "debug",
		"TRIBOFERRIN_DISCORD_TOKEN":   "env_token",
		"TRIBOFERRIN_DISCORD_API_URL": "https://proxy.example.com",
	}

	// Act
	v, err := loadEnv(env)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, view{
		fieldLogLevel:      "debug",
		fieldDiscordToken:  "env_token",
		fieldDiscordAPIURL: "https://proxy.example.com",
	}, v)
}

func TestLoadEnv_PartialFields(t *testing.T) {
	// Arrange
	env := envSnapshot{"TRIBOFERRIN_DISCORD_TOKEN": "env_token"}

	// Act
	v, err := loadEnv(env)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, view{fieldDiscordToken: "env_token"}, v)
}

func TestLoadEnv_EmptyValueCountsAsSet(t *testing.T) {
	// Arrange
	env := envSnapshot{"TRIBOFERRIN_DISCORD_TOKEN": ""}

	// Act
	v, err := loadEnv(env)

	// Assert
	require.NoError(t, err)
	val, ok := v[fieldDiscordToken]
	assert.True(t, ok, "empty value must still count as set")
	assert.Empty(t, val)
}

func TestLoadEnv_FieldNameIsCaseInsensitive(t *testing.T) {
	// Arrange
	env := envSnapshot{"TRIBOFERRIN_Discord_Token": "env_token"}

	// Act
	v, err := loadEnv(env)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, view{fieldDiscordToken: "env_token"}, v)
}

func TestLoadEnv_CanonicalCasingWinsTies(t *testing.T) {
	// Arrange: three casings of the same field set at once
	env := envSnapshot{
		"TRIBOFERRIN_DISCORD_TOKEN": "canonical",
		"TRIBOFERRIN_Discord_Token": "mixed",
		"TRIBOFERRIN_discord_token": "lower",
	}

	// Act
	v, err := loadEnv(env)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, view{fieldDiscordToken: "canonical"}, v)
}

func TestLoadEnv_CasingTieBreakIsSortedOrder(t *testing.T) {
	// Arrange: no canonical spelling, two competing casings
	env := envSnapshot{
		"TRIBOFERRIN_Discord_Token": "mixed",
		"TRIBOFERRIN_discord_token": "lower",
	}

	// Act
	v, err := loadEnv(env)

	// Assert: the name sorting first supplies the value
	require.NoError(t, err)
	assert.Equal(t, view{fieldDiscordToken: "mixed"}, v)
}

func TestLoadEnv_IgnoresUnrelatedVariables(t *testing.T) {
	// Arrange
	env := envSnapshot{
		"PATH":                  "/usr/bin",
		"LOG_LEVEL":             "debug", // missing prefix
		"TRIBOFERRIN_VERBOSITY": "high",  // unknown field
		"triboferrin_log_level": "debug", // the prefix itself is exact
	}

	// Act
	v, err := loadEnv(env)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestLoadLogFilterEnv_SetsOnlyLogLevel(t *testing.T) {
	// Arrange
	env := envSnapshot{
		"RUST_LOG":                  "warn",
		"TRIBOFERRIN_DISCORD_TOKEN": "not_this_layer",
	}

	// Act
	v, err := loadLogFilterEnv(env)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, view{fieldLogLevel: "warn"}, v)
}

func TestLoadLogFilterEnv_AbsentVariable(t *testing.T) {
	v, err := loadLogFilterEnv(envSnapshot{})

	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestCaptureEnv_SeesProcessEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("TRIBOFERRIN_LOG_LEVEL", "trace")

	// Act
	env := captureEnv()

	// Assert
	assert.Equal(t, "trace", env["TRIBOFERRIN_LOG_LEVEL"])
}
