package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// defaultFileName is the config file looked up in the working directory when
// no --config flag names one.
const defaultFileName = "triboferrin-config.toml"

// loadFile reads a TOML config file into a view. A file that does not exist
// contributes nothing and is not an error; a file that exists but cannot be
// read or parsed is a *ParseError. Keys that do not name a known field are
// ignored, known keys bound to a non-string value are a *TypeError.
func loadFile(path string) (view, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return view{}, nil
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	v := make(view, len(fields))
	for _, f := range fields {
		raw, ok := doc[f.name]
		if !ok {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return nil, &TypeError{Field: f.name, Source: sourceFile, Value: raw}
		}
		v[f.name] = s
	}
	return v, nil
}
