package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/triboferrin/internal/config"
)

func parseArgs(t *testing.T, argv ...string) config.Args {
	t.Helper()
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(argv))
	return argsFromFlags(cmd.Flags())
}

// TestArgsFromFlags_NoFlags verifies that an empty command line maps every
// overridable field to nil.
func TestArgsFromFlags_NoFlags(t *testing.T) {
	args := parseArgs(t)

	assert.Empty(t, args.ConfigPath)
	assert.Nil(t, args.LogLevel)
	assert.Nil(t, args.DiscordToken)
	assert.Nil(t, args.DiscordAPIURL)
}

// TestArgsFromFlags_AllFlags verifies that every flag lands in its Args field.
func TestArgsFromFlags_AllFlags(t *testing.T) {
	args := parseArgs(t,
		"--config", "custom.toml",
		"--log-level", "debug",
		"--discord-token", "cli_token",
		"--discord-api-url", "https://proxy.example.com",
	)

	assert.Equal(t, "custom.toml", args.ConfigPath)
	require.NotNil(t, args.LogLevel)
	assert.Equal(t, "debug", *args.LogLevel)
	require.NotNil(t, args.DiscordToken)
	assert.Equal(t, "cli_token", *args.DiscordToken)
	require.NotNil(t, args.DiscordAPIURL)
	assert.Equal(t, "https://proxy.example.com", *args.DiscordAPIURL)
}

// TestArgsFromFlags_ExplicitEmptyValue verifies that a flag explicitly set to
// the empty string stays distinguishable from an absent one.
func TestArgsFromFlags_ExplicitEmptyValue(t *testing.T) {
	args := parseArgs(t, "--discord-token", "")

	require.NotNil(t, args.DiscordToken)
	assert.Empty(t, *args.DiscordToken)
	assert.Nil(t, args.LogLevel)
}

// TestArgsFromFlags_ShortConfigFlag verifies the -c shorthand.
func TestArgsFromFlags_ShortConfigFlag(t *testing.T) {
	args := parseArgs(t, "-c", "short.toml")

	assert.Equal(t, "short.toml", args.ConfigPath)
}

// TestRootCmd_RejectsUnknownFlag verifies that mistyped flags fail parsing
// instead of being silently dropped.
func TestRootCmd_RejectsUnknownFlag(t *testing.T) {
	cmd := newRootCmd()
	assert.Error(t, cmd.ParseFlags([]string{"--discord-tokne", "oops"}))
}

// TestBuildInfo_Defaults verifies the placeholder when no ldflags are set.
func TestBuildInfo_Defaults(t *testing.T) {
	assert.Equal(t, "N/A (commit: N/A, built: N/A)", buildInfo())
}
