// Package dedup removes duplicate lines from a text file, keeping the first
// occurrence of each unique line in order.
package dedup

import (
	"fmt"
	"strings"

	"codesum/internal/fileutil"
	"codesum/internal/textdec"
)

// Options controls how lines are compared. The written output always keeps
// each surviving line's original content and ending.
type Options struct {
	IgnoreCase      bool
	StripWhitespace bool
}

// Stats reports what one run did.
type Stats struct {
	Kept    int
	Dropped int
	// Encoding is the decoder tier that read the input.
	Encoding string
}

// Run deduplicates inputPath into outputPath.
func Run(inputPath, outputPath string, opts Options) (Stats, error) {
	decoded, err := textdec.ReadFile(inputPath)
	if err != nil {
		return Stats{}, err
	}

	seen := make(map[string]struct{})
	var out strings.Builder
	stats := Stats{Encoding: decoded.Encoding}

	for _, line := range splitKeepEndings(decoded.Text) {
		key := canonicalize(line, opts)
		if _, dup := seen[key]; dup {
			stats.Dropped++
			continue
		}
		seen[key] = struct{}{}
		out.WriteString(line)
		stats.Kept++
	}

	if err := fileutil.WriteFileLocked(outputPath, []byte(out.String()), 0o644); err != nil {
		return Stats{}, fmt.Errorf("write deduplicated output: %w", err)
	}
	return stats, nil
}

// canonicalize computes the comparison key for one line: the trailing line
// ending is always ignored, trimming and case folding are optional.
func canonicalize(line string, opts Options) string {
	key := strings.TrimRight(line, "\r\n")
	if opts.StripWhitespace {
		key = strings.TrimSpace(key)
	}
	if opts.IgnoreCase {
		key = strings.ToLower(key)
	}
	return key
}

// splitKeepEndings slices text into lines with their original terminators
// attached, so surviving lines round-trip byte for byte.
func splitKeepEndings(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i+1])
			start = i + 1
		case '\r':
			end := i + 1
			if end < len(text) && text[end] == '\n' {
				end++
			}
			lines = append(lines, text[start:end])
			start = end
			i = end - 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
