// Package textnorm applies tiered Unicode cleanup to decoded text.
//
// Policies form a total order: none does nothing, basic canonicalizes and
// collapses invisible spacing characters, ascii additionally rewrites
// typographic punctuation to plain ASCII. Composition runs before the
// substitution tables so composed forms are never missed by the
// single-code-point lookups.
package textnorm

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Policy selects the normalization strength.
type Policy string

const (
	PolicyNone  Policy = "none"
	PolicyBasic Policy = "basic"
	PolicyASCII Policy = "ascii"
)

// Default is the policy used when the caller does not choose one.
const Default = PolicyBasic

// Parse maps a user-supplied policy name to a Policy.
func Parse(value string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case PolicyNone:
		return PolicyNone, nil
	case PolicyBasic, "":
		return PolicyBasic, nil
	case PolicyASCII:
		return PolicyASCII, nil
	default:
		return "", fmt.Errorf("unknown normalization policy %q (want none, basic, or ascii)", value)
	}
}

// basicTable collapses invisible spacing and joining characters. Extend the
// table, not the control flow, when new tiers need more substitutions.
var basicTable = map[rune]string{
	' ': " ", // no-break space
	' ': " ", // narrow no-break space
	'​': "",  // zero width space
	'‌': "",  // zero width non-joiner
	'‍': "",  // zero width joiner
	'⁠': "",  // word joiner
	'\uFEFF': "",  // byte order mark as character
	'­': "",  // soft hyphen
	'‑': "-", // non-breaking hyphen
}

// asciiExtra layers typographic punctuation rewrites over basicTable.
var asciiExtra = map[rune]string{
	'‘': "'",   // left single quote
	'’': "'",   // right single quote
	'“': `"`,   // left double quote
	'”': `"`,   // right double quote
	'–': "-",   // en dash
	'—': "-",   // em dash
	'…': "...", // horizontal ellipsis
}

var asciiTable = func() map[rune]string {
	merged := make(map[rune]string, len(basicTable)+len(asciiExtra))
	for r, repl := range basicTable {
		merged[r] = repl
	}
	for r, repl := range asciiExtra {
		merged[r] = repl
	}
	return merged
}()

// Apply normalizes text according to the policy. It is a pure function and
// idempotent for every policy.
func Apply(policy Policy, text string) string {
	var table map[rune]string
	switch policy {
	case PolicyBasic:
		table = basicTable
	case PolicyASCII:
		table = asciiTable
	default:
		return text
	}

	composed := norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(composed))
	for _, r := range composed {
		if repl, ok := table[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
