// Package cleanrule strips language-specific boilerplate from file bodies.
//
// Rules are registered per extension; everything without a rule passes
// through untouched. Every body, cleaned or not, leaves with LF line endings
// and exactly one trailing newline.
package cleanrule

import (
	"strings"
	"unicode"
)

// rule rewrites a body whose line endings are already normalized to LF.
type rule func(text string) string

// Registered rules, keyed by lower-cased extension. Add entries here to
// support more file kinds; the aggregator never needs to change.
var rules = map[string]rule{
	".cs": cleanCSharp,
}

// Clean applies the rule registered for ext, if any, after normalizing line
// endings. The result always ends in exactly one newline.
func Clean(text, ext string) string {
	text = normalizeLineEndings(text)
	if fn, ok := rules[strings.ToLower(ext)]; ok {
		text = fn(text)
	}
	return ensureSingleTrailingNewline(text)
}

// cleanCSharp drops using-directive lines and everything before the first
// namespace declaration. Content preceding the namespace line that is
// neither a using directive nor blank is dropped too; that mirrors the
// established output format.
func cleanCSharp(text string) string {
	lines := strings.Split(text, "\n")

	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(stripLead(line), "using ") {
			continue
		}
		filtered = append(filtered, line)
	}

	for i, line := range filtered {
		if strings.HasPrefix(stripLead(line), "namespace") {
			filtered = filtered[i:]
			break
		}
	}

	return strings.Join(filtered, "\n")
}

// stripLead removes a leading BOM artifact left over from decoding, then
// leading whitespace.
func stripLead(line string) string {
	line = strings.TrimPrefix(line, "\uFEFF")
	return strings.TrimLeftFunc(line, unicode.IsSpace)
}

func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func ensureSingleTrailingNewline(text string) string {
	return strings.TrimRight(text, "\n") + "\n"
}
