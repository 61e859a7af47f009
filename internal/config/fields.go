package config

// Field names as they appear as TOML keys and, upper-cased behind the
// TRIBOFERRIN_ prefix, as environment variable names.
const (
	fieldLogLevel      = "log_level"
	fieldDiscordToken  = "discord_token"
	fieldDiscordAPIURL = "discord_api_url"
)

// fieldSpec describes one configuration field: its wire name, its built-in
// default if it has one, and how a raw string value lands in a Config.
type fieldSpec struct {
	name       string
	defval     string
	hasDefault bool
	assign     func(*Config, string)
}

// fields is the authoritative list of configuration fields. The source
// loaders, the merge fold, and extraction all range over it, so adding an
// entry here is the whole job of adding a field.
var fields = []fieldSpec{
	{
		name:       fieldLogLevel,
		defval:     "info",
		hasDefault: true,
		assign:     func(c *Config, v string) { c.LogLevel = v },
	},
	{
		name:       fieldDiscordToken,
		defval:     "",
		hasDefault: true,
		assign:     func(c *Config, v string) { c.DiscordToken = v },
	},
	{
		name:   fieldDiscordAPIURL,
		assign: func(c *Config, v string) { c.DiscordAPIURL = &v },
	},
}
