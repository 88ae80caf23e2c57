// Package config loads, normalizes, and validates codesum configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files resolved from --config, the default
// ~/.config/codesum/config.toml location, or a project-local codesum.toml.
// A missing file is not an error; defaults apply.
//
// Always obtain settings through this package so downstream code receives
// folded policy names, trimmed exclusion lists, and clear validation errors.
package config
