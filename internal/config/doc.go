// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves triboferrin's runtime configuration from layered
// sources.
//
// Five sources contribute, lowest precedence first:
//
//  1. built-in defaults
//  2. a TOML config file (--config, or triboferrin-config.toml in the
//     working directory)
//  3. TRIBOFERRIN_* environment variables
//  4. the RUST_LOG environment variable (log level only)
//  5. command-line flags
//
// Each source yields only the fields it actually sets, and later sources
// override earlier ones field by field, so setting a single field in a high
// precedence source never disturbs values below it.
//
// The resolved Config masks the Discord token in every rendering path; see
// Redacted.
package config
