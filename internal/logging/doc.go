// Package logging configures structured slog output for the CLI.
//
// Diagnostics always go to stderr (or another injected writer), keeping
// stdout reserved for tool output such as the aggregate blob. Console format
// is picked automatically on interactive terminals, JSON otherwise, and both
// honour a shared level. Field-name constants keep component, path, and
// encoding keys consistent across packages.
package logging
