package identifier

import (
	"fmt"
	"strings"
	"unicode"
)

// Scheme is a capitalization scheme governing how the words of a label are
// joined into a local name.
type Scheme int

const (
	// SchemeNone leaves the label untouched.
	SchemeNone Scheme = iota
	// SchemeUpperCamel capitalizes each word and joins them: "Knut Olborg" -> "KnutOlborg".
	SchemeUpperCamel
	// SchemeLowerCamel is SchemeUpperCamel with a lower-case first word: "knutOlborg".
	SchemeLowerCamel
	// SchemeLowerUnderscore lower-cases words and joins them with "_": "knut_olborg".
	SchemeLowerUnderscore
	// SchemeLowerHyphen lower-cases words and joins them with "-": "knut-olborg".
	SchemeLowerHyphen
)

// DefaultScheme is the scheme used when none is configured.
const DefaultScheme = SchemeUpperCamel

var schemeNames = map[Scheme]string{
	SchemeNone:            "none",
	SchemeUpperCamel:      "upper-camel-case",
	SchemeLowerCamel:      "lower-camel-case",
	SchemeLowerUnderscore: "lower-with-underscores",
	SchemeLowerHyphen:     "lower-with-hyphens",
}

// SchemeNames lists the accepted scheme names.
func SchemeNames() []string {
	return []string{"none", "upper-camel-case", "lower-camel-case", "lower-with-underscores", "lower-with-hyphens"}
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme parses a scheme name. The empty string selects DefaultScheme.
func ParseScheme(name string) (Scheme, error) {
	if name == "" {
		return DefaultScheme, nil
	}
	for s, n := range schemeNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown capitalization scheme %q (want one of %s)", name, strings.Join(SchemeNames(), ", "))
}

// Apply rewrites label according to the scheme.
func (s Scheme) Apply(label string) string {
	switch s {
	case SchemeUpperCamel:
		return camel(strings.Fields(label), true)
	case SchemeLowerCamel:
		return camel(strings.Fields(label), false)
	case SchemeLowerUnderscore:
		return lowerJoin(splitWords(label), "_")
	case SchemeLowerHyphen:
		return lowerJoin(splitWords(label), "-")
	default:
		return label
	}
}

func camel(words []string, upperFirst bool) string {
	var sb strings.Builder
	for i, w := range words {
		r := []rune(w)
		if i == 0 && !upperFirst {
			r[0] = unicode.ToLower(r[0])
		} else {
			r[0] = unicode.ToUpper(r[0])
		}
		sb.WriteString(string(r))
	}
	return sb.String()
}

func lowerJoin(words []string, sep string) string {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

// splitWords splits on whitespace and on lower-to-upper case boundaries,
// so "RecordSet of Knut" yields Record, Set, of, Knut.
func splitWords(label string) []string {
	var words []string
	for _, field := range strings.Fields(label) {
		start := 0
		runes := []rune(field)
		for i := 1; i < len(runes); i++ {
			if unicode.IsUpper(runes[i]) && unicode.IsLower(runes[i-1]) {
				words = append(words, string(runes[start:i]))
				start = i
			}
		}
		words = append(words, string(runes[start:]))
	}
	return words
}
