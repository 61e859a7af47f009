// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"sort"
	"strings"
)

// envPrefix namespaces every triboferrin environment variable.
const envPrefix = "TRIBOFERRIN_"

// logFilterEnvVar is the conventional logging filter variable. It outranks
// TRIBOFERRIN_LOG_LEVEL and can set nothing but the log level.
const logFilterEnvVar = "RUST_LOG"

// envSnapshot is the process environment captured at a single point in time.
// Resolution takes one snapshot and feeds it to both environment layers, so a
// concurrent change to the environment cannot make the layers disagree.
type envSnapshot map[string]string

func captureEnv() envSnapshot {
	environ := os.Environ()
	env := make(envSnapshot, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// loadEnv returns the view contributed by TRIBOFERRIN_* variables. The field
// name after the prefix is matched case-insensitively, so both
// TRIBOFERRIN_DISCORD_TOKEN and TRIBOFERRIN_Discord_Token work. Prefixed
// variables naming no known field are ignored, and a variable set to the
// empty string still counts as set.
//
// When several casings of the same field are set at once, names are tried in
// sorted order and the first match wins, so the canonical upper-case spelling
// beats any other casing and the result never depends on map iteration order.
func loadEnv(env envSnapshot) (view, error) {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	v := make(view, len(fields))
	for _, name := range names {
		rest, ok := strings.CutPrefix(name, envPrefix)
		if !ok {
			continue
		}
		field := strings.ToLower(rest)
		for _, f := range fields {
			if f.name != field {
				continue
			}
			if _, set := v[f.name]; !set {
				v[f.name] = env[name]
			}
			break
		}
	}
	return v, nil
}

// loadLogFilterEnv returns the view contributed by RUST_LOG. It is a separate
// layer rather than an alias so its precedence over TRIBOFERRIN_LOG_LEVEL
// falls out of layer ordering.
func loadLogFilterEnv(env envSnapshot) (view, error) {
	if val, ok := env[logFilterEnvVar]; ok {
		return view{fieldLogLevel: val}, nil
	}
	return view{}, nil
}
