// Package config loads, normalizes, and validates the ffslot configuration
// file.
//
// Configuration is TOML with defaults tuned for ephemeral, write-restricted
// runtimes: bundled tool binaries are expected under a read-only asset
// directory and staged into a writable slot under /tmp before first use.
// Load applies defaults, decodes the file when present, expands all path
// fields, and validates the result, so downstream packages never see a
// half-initialized config.
package config
