// Package main hosts the codesum CLI entrypoint and command graph.
//
// The Cobra-based command tree maps terminal invocations onto the internal
// packages: project aggregation, directory-tree rendering, line
// deduplication, and configuration scaffolding. Configuration resolution and
// structured logging setup live in commandContext so subcommands stay
// declarative.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
