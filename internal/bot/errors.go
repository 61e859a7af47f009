package bot

import "errors"

// ErrTokenRequired reports that configuration resolution produced no Discord
// token. An explicitly configured empty token counts as missing.
var ErrTokenRequired = errors.New("discord token is required: set TRIBOFERRIN_DISCORD_TOKEN or pass --discord-token")
