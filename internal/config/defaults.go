package config

// loadDefaults returns the built-in defaults view: every field the table
// declares a default for, and nothing else. Defaults come from the static
// table, so this is the one source that cannot fail.
func loadDefaults() view {
	v := make(view, len(fields))
	for _, f := range fields {
		if f.hasDefault {
			v[f.name] = f.defval
		}
	}
	return v
}
