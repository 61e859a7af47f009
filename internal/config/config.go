// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// Redacted is the fixed marker substituted for the Discord token in every
// textual rendering of [Args] and [Config].
const Redacted = "[REDACTED]"

// Args holds the command-line arguments exactly as the user supplied them.
// A nil field means the flag was not present on the command line, which is
// distinct from a flag explicitly set to the empty string.
//
// Args is built once per process invocation by the cmd layer and is not
// modified afterwards.
type Args struct {
	// ConfigPath is the --config / -c flag. It only locates the
	// configuration file and is never merged into the resolved config.
	ConfigPath string

	// LogLevel is the --log-level flag (trace, debug, info, warn, error).
	LogLevel *string

	// DiscordToken is the --discord-token flag.
	DiscordToken *string

	// DiscordAPIURL is the --discord-api-url flag (proxy support).
	DiscordAPIURL *string
}

// Config is the fully resolved configuration: every defaulted field holds a
// concrete value, with higher-precedence sources already folded in. It is
// created once per run by [Resolve] and treated as immutable.
//
// DiscordToken may be empty after a successful merge; requiring it is the
// gateway client's fitness check, not the resolver's.
type Config struct {
	// LogLevel is the logging verbosity filter handed to the logger
	// unexamined. Defaults to "info".
	LogLevel string

	// DiscordToken is the bot token used to authenticate against the
	// Discord gateway. No default.
	DiscordToken string

	// DiscordAPIURL optionally replaces the Discord API base URL, e.g. to
	// route REST traffic through a proxy. Nil when no source set it.
	DiscordAPIURL *string
}

// Default returns the configuration produced when no file, environment, or
// command-line source supplies any field.
func Default() Config {
	return extract(loadDefaults())
}

// String renders the configuration with the token replaced by [Redacted].
func (c Config) String() string {
	return fmt.Sprintf("Config{LogLevel: %q, DiscordToken: %q, DiscordAPIURL: %s}",
		c.LogLevel, Redacted, optString(c.DiscordAPIURL))
}

// MarshalJSON renders the configuration for log sinks and diagnostics with
// the token replaced by [Redacted]. The raw token is only reachable through
// the DiscordToken field itself.
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		LogLevel      string  `json:"log_level"`
		DiscordToken  string  `json:"discord_token"`
		DiscordAPIURL *string `json:"discord_api_url,omitempty"`
	}{
		LogLevel:      c.LogLevel,
		DiscordToken:  Redacted,
		DiscordAPIURL: c.DiscordAPIURL,
	})
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler so the
// configuration can be attached to log events without bypassing redaction.
func (c Config) MarshalZerologObject(e *zerolog.Event) {
	e.Str("log_level", c.LogLevel).Str("discord_token", Redacted)
	if c.DiscordAPIURL != nil {
		e.Str("discord_api_url", *c.DiscordAPIURL)
	}
}

// String renders the arguments with a supplied token replaced by [Redacted].
// An unset token renders as unset; absence is not a secret.
func (a Args) String() string {
	token := a.DiscordToken
	if token != nil {
		masked := Redacted
		token = &masked
	}
	return fmt.Sprintf("Args{ConfigPath: %q, LogLevel: %s, DiscordToken: %s, DiscordAPIURL: %s}",
		a.ConfigPath, optString(a.LogLevel), optString(token), optString(a.DiscordAPIURL))
}

// MarshalJSON renders the arguments with the token masked, mirroring
// [Config.MarshalJSON].
func (a Args) MarshalJSON() ([]byte, error) {
	token := a.DiscordToken
	if token != nil {
		masked := Redacted
		token = &masked
	}
	return json.Marshal(struct {
		ConfigPath    string  `json:"config,omitempty"`
		LogLevel      *string `json:"log_level,omitempty"`
		DiscordToken  *string `json:"discord_token,omitempty"`
		DiscordAPIURL *string `json:"discord_api_url,omitempty"`
	}{
		ConfigPath:    a.ConfigPath,
		LogLevel:      a.LogLevel,
		DiscordToken:  token,
		DiscordAPIURL: a.DiscordAPIURL,
	})
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler with the same
// masking rules as MarshalJSON.
func (a Args) MarshalZerologObject(e *zerolog.Event) {
	if a.ConfigPath != "" {
		e.Str("config", a.ConfigPath)
	}
	if a.LogLevel != nil {
		e.Str("log_level", *a.LogLevel)
	}
	if a.DiscordToken != nil {
		e.Str("discord_token", Redacted)
	}
	if a.DiscordAPIURL != nil {
		e.Str("discord_api_url", *a.DiscordAPIURL)
	}
}

func optString(s *string) string {
	if s == nil {
		return "<unset>"
	}
	return fmt.Sprintf("%q", *s)
}
