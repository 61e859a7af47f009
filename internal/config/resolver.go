package config

// view is one source's sparse contribution: field name to raw string value.
// A field absent from a view leaves whatever lower layers produced.
type view map[string]string

// loaderFunc produces one source's view. A loader reports an error only when
// its source is present but unusable; an absent source yields an empty view.
type loaderFunc func() (view, error)

// resolver folds an ordered list of source views into a Config. Later
// loaders outrank earlier ones, field by field.
type resolver struct {
	loaders []loaderFunc
}

func newResolver() *resolver {
	return &resolver{}
}

func (r *resolver) withDefaults() *resolver {
	r.loaders = append(r.loaders, func() (view, error) {
		return loadDefaults(), nil
	})
	return r
}

func (r *resolver) withFile(path string) *resolver {
	r.loaders = append(r.loaders, func() (view, error) {
		return loadFile(path)
	})
	return r
}

func (r *resolver) withEnv(env envSnapshot) *resolver {
	r.loaders = append(r.loaders, func() (view, error) {
		return loadEnv(env)
	})
	return r
}

func (r *resolver) withLogFilterEnv(env envSnapshot) *resolver {
	r.loaders = append(r.loaders, func() (view, error) {
		return loadLogFilterEnv(env)
	})
	return r
}

func (r *resolver) withArgs(args Args) *resolver {
	r.loaders = append(r.loaders, func() (view, error) {
		return loadArgs(args)
	})
	return r
}

// resolve runs the loaders in registration order and merges their views,
// last write per field wins. The first loader error aborts resolution and is
// returned to the caller as-is.
func (r *resolver) resolve() (Config, error) {
	merged := make(view, len(fields))
	for _, load := range r.loaders {
		v, err := load()
		if err != nil {
			return Config{}, err
		}
		for name, val := range v {
			merged[name] = val
		}
	}
	return extract(merged), nil
}

// extract types the merged view through the field table.
func extract(v view) Config {
	var cfg Config
	for _, f := range fields {
		if val, ok := v[f.name]; ok {
			f.assign(&cfg, val)
		}
	}
	return cfg
}

// Resolve builds the effective configuration from every source, lowest
// precedence first: built-in defaults, the config file, TRIBOFERRIN_*
// environment variables, RUST_LOG, and finally command-line flags. Each
// source overrides only the fields it actually sets.
//
// The file source is the one named by args.ConfigPath, or triboferrin's
// default file name in the working directory when the flag was not passed.
// Either way the file is optional.
func Resolve(args Args) (Config, error) {
	return ResolveWithPath(args, defaultFileName)
}

// ResolveWithPath is Resolve with the well-known fallback file name replaced
// by defaultPath, so callers such as tests can point the default lookup away
// from the working directory. An explicit args.ConfigPath still wins. The
// process environment is snapshotted once, so both environment layers see
// the same state.
func ResolveWithPath(args Args, defaultPath string) (Config, error) {
	path := args.ConfigPath
	if path == "" {
		path = defaultPath
	}
	env := captureEnv()

	return newResolver().
		withDefaults().
		withFile(path).
		withEnv(env).
		withLogFilterEnv(env).
		withArgs(args).
		resolve()
}
