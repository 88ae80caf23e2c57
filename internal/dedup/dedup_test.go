package dedup

import (
	"os"
	"path/filepath"
	"testing"
)

func runDedup(t *testing.T, content string, opts Options) (string, Stats) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(in, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	stats, err := Run(in, out, opts)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	return string(data), stats
}

func TestRunKeepsFirstOccurrence(t *testing.T) {
	got, stats := runDedup(t, "a\nb\na\nc\nb\n", Options{})
	if got != "a\nb\nc\n" {
		t.Fatalf("output = %q", got)
	}
	if stats.Kept != 3 || stats.Dropped != 2 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestRunIgnoreCase(t *testing.T) {
	got, stats := runDedup(t, "Apple\napple\nAPPLE\n", Options{IgnoreCase: true})
	if got != "Apple\n" {
		t.Fatalf("output = %q", got)
	}
	if stats.Kept != 1 || stats.Dropped != 2 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestRunStripWhitespace(t *testing.T) {
	got, _ := runDedup(t, "  x\nx  \n\tx\n", Options{StripWhitespace: true})
	if got != "  x\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestRunPreservesOriginalLineEndings(t *testing.T) {
	got, stats := runDedup(t, "a\r\nb\na\nc", Options{})
	// "a\r\n" and "a\n" share the key "a"; the first (CRLF) form survives.
	if got != "a\r\nb\nc" {
		t.Fatalf("output = %q", got)
	}
	if stats.Kept != 3 || stats.Dropped != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	if _, err := Run(filepath.Join(dir, "absent.txt"), filepath.Join(dir, "out.txt"), Options{}); err == nil {
		t.Fatal("expected error for missing input")
	}
}
