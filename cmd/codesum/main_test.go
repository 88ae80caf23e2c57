package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the CLI with a fresh command tree and captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	// Point --config at a path that cannot exist so host configuration never
	// leaks into tests.
	args = append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSummarizeCommand(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.cs"), []byte("using X;\nnamespace Foo {\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.txt"), []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "summarize", root, ".cs", ".txt", "--no-clipboard")
	if err != nil {
		t.Fatal(err)
	}
	want := "=============\n" +
		"a.cs\n" +
		"namespace Foo {\n}\n" +
		"\n" +
		"=============\n" +
		"b.txt\n" +
		"hello\n" +
		"\n"
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestSummarizeCommandInvalidRoot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "summarize", file, ".cs", "--no-clipboard")
	if err == nil {
		t.Fatal("expected error for non-directory root")
	}
	if out != "" {
		t.Fatalf("stdout should be empty on fatal error, got %q", out)
	}
}

func TestSummarizeCommandNoMatches(t *testing.T) {
	out, err := execute(t, "summarize", t.TempDir(), ".cs", "--no-clipboard")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Fatalf("stdout = %q, want empty", out)
	}
}

func TestSummarizeCommandRejectsBadPolicy(t *testing.T) {
	if _, err := execute(t, "summarize", t.TempDir(), ".cs", "--policy", "mystery", "--no-clipboard"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestTreeCommand(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", "main.cs"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "tree", root)
	if err != nil {
		t.Fatal(err)
	}
	want := "├── src/\n│   ├── main.cs\n"
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestTreeCommandWrite(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.cs"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "tree", root, "--write"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(root, "project_tree.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "├── main.cs\n" {
		t.Fatalf("tree file = %q", data)
	}
}

func TestDedupCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "lines.txt")
	if err := os.WriteFile(input, []byte("a\na\nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "dedup", input)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(input + ".dedup.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a\nb\n" {
		t.Fatalf("dedup output = %q", data)
	}
	if !strings.Contains(out, "Kept") || !strings.Contains(out, "Dropped") {
		t.Fatalf("stats table missing from %q", out)
	}
}

func TestConfigShowCommand(t *testing.T) {
	out, err := execute(t, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "[summarize]") || !strings.Contains(out, "basic") {
		t.Fatalf("unexpected config output %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "codesum ") {
		t.Fatalf("version output = %q", out)
	}
}
