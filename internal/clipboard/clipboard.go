// Package clipboard wraps the system clipboard as an optional sink.
//
// Availability is probed once at construction; callers treat the sink as a
// best-effort collaborator and degrade to a logged warning when it is absent
// or a copy fails. Correctness never depends on it.
package clipboard

import "github.com/atotto/clipboard"

// Sink receives a copy of tool output.
type Sink interface {
	// Available reports whether copying can be attempted at all.
	Available() bool
	// Copy places text on the sink.
	Copy(text string) error
}

type systemSink struct{}

// System returns the platform clipboard sink.
func System() Sink {
	return systemSink{}
}

func (systemSink) Available() bool {
	return !clipboard.Unsupported
}

func (systemSink) Copy(text string) error {
	return clipboard.WriteAll(text)
}
