package config

// loadArgs returns the view contributed by command-line flags. Only flags the
// user actually passed appear in the view; a nil pointer in Args means the
// flag was absent. ConfigPath locates the file source and never becomes a
// config field itself.
func loadArgs(args Args) (view, error) {
	v := make(view, len(fields))
	if args.LogLevel != nil {
		v[fieldLogLevel] = *args.LogLevel
	}
	if args.DiscordToken != nil {
		v[fieldDiscordToken] = *args.DiscordToken
	}
	if args.DiscordAPIURL != nil {
		v[fieldDiscordAPIURL] = *args.DiscordAPIURL
	}
	return v, nil
}
