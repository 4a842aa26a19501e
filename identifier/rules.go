package identifier

import (
	"fmt"
	"strings"
	"unicode"
)

// punctuation lists the ASCII characters that may not appear in a local name.
const punctuation = "()[]{}<>,\"'\\^@#:;!?/%&=*+|~$`"

// trailingDot may appear inside a local name but not at its end.
const trailingDot = '.'

// Forbidden reports whether r may not appear in an ontology local name.
// Letters, digits, "_", "-", "." and non-ASCII symbols are allowed; a "."
// may not end a name.
func Forbidden(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(punctuation, r)
}

// Substitution replaces one forbidden character.
type Substitution struct {
	Char        rune
	Replacement string
}

// DefaultSubstitutions returns the substitution table used when none is
// configured. Brackets and slashes map to look-alike symbols that are legal
// in local names.
func DefaultSubstitutions() []Substitution {
	return []Substitution{
		{Char: '(', Replacement: "⟨"},
		{Char: ')', Replacement: "⟩"},
		{Char: '/', Replacement: "∕"},
		{Char: ',', Replacement: "-"},
		{Char: '\'', Replacement: "’"},
	}
}

// ParseSubstitution parses the command-line form "c=replacement". An empty
// replacement removes the character.
func ParseSubstitution(s string) (Substitution, error) {
	r := []rune(s)
	if len(r) < 2 || r[1] != '=' {
		return Substitution{}, fmt.Errorf("invalid metacharacter mapping %q, want c=replacement", s)
	}
	return Substitution{Char: r[0], Replacement: string(r[2:])}, nil
}

// Rules is an immutable substitution table plus the policy for forbidden
// characters it does not mention.
type Rules struct {
	table              map[rune]string
	removeUnconfigured bool
}

// NewRules validates subs and builds a rule set. Every replacement must
// itself be legal in a local name, and a character may only be mapped once.
// A mapping for "." applies to trailing dots only.
func NewRules(subs []Substitution, removeUnconfigured bool) (*Rules, error) {
	table := make(map[rune]string, len(subs))
	for _, s := range subs {
		if !Forbidden(s.Char) && s.Char != trailingDot {
			return nil, fmt.Errorf("character %q is allowed in local names and needs no substitution", s.Char)
		}
		if _, dup := table[s.Char]; dup {
			return nil, fmt.Errorf("character %q is mapped more than once", s.Char)
		}
		for _, r := range s.Replacement {
			if Forbidden(r) {
				return nil, fmt.Errorf("replacement %q for %q contains forbidden character %q", s.Replacement, s.Char, r)
			}
		}
		if strings.HasSuffix(s.Replacement, string(trailingDot)) {
			return nil, fmt.Errorf("replacement %q for %q may not end with %q", s.Replacement, s.Char, trailingDot)
		}
		table[s.Char] = s.Replacement
	}
	return &Rules{table: table, removeUnconfigured: removeUnconfigured}, nil
}

// Apply substitutes every forbidden character of name, then any dots left
// at its end. label is the source label reported on failure.
func (r *Rules) Apply(name, label string) (string, error) {
	var sb strings.Builder
	for _, c := range name {
		if !Forbidden(c) {
			sb.WriteRune(c)
			continue
		}
		if repl, ok := r.table[c]; ok {
			sb.WriteString(repl)
			continue
		}
		if r.removeUnconfigured {
			continue
		}
		return "", &MetacharacterError{Char: c, Label: label}
	}

	out := sb.String()
	trimmed := strings.TrimRight(out, string(trailingDot))
	if dots := len(out) - len(trimmed); dots > 0 {
		repl, ok := r.table[trailingDot]
		if !ok && !r.removeUnconfigured {
			return "", &MetacharacterError{Char: trailingDot, Label: label, Trailing: true}
		}
		out = trimmed + strings.Repeat(repl, dots)
	}
	return out, nil
}
