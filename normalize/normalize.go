// Package normalize turns raw shape text into normalized strings and infers
// the datatype of literal values.
//
// Line handling follows the convention of the diagram editor: a single line
// break is a soft wrap and disappears without inserting a space, while a
// blank line separates paragraphs and is kept.
package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/c360studio/ricdraw/ontology"
)

// paragraphBreak matches two or more line breaks, allowing whitespace-only
// lines between them.
var paragraphBreak = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\u00a0", " ")

var crlf = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Label returns the shape text as the author wrote it, for annotations.
// Only line endings are unified and surrounding whitespace trimmed; soft
// wraps stay in place.
func Label(raw string) string {
	return strings.TrimSpace(crlf.Replace(raw))
}

// Text normalizes raw multi-line text. Paragraphs are joined with a blank
// line; the lines inside a paragraph are concatenated directly.
func Text(raw string) string {
	raw = lineEndings.Replace(raw)

	var paragraphs []string
	for _, p := range paragraphBreak.Split(raw, -1) {
		p = strings.TrimSpace(strings.ReplaceAll(p, "\n", ""))
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

var integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)

// Infer returns the datatype of already normalized text: date, then
// date-time, then integer, else string. When enabled is false every value
// is a string.
func Infer(text string, enabled bool) ontology.Datatype {
	if !enabled {
		return ontology.String
	}
	switch {
	case isDate(text):
		return ontology.Date
	case isDateTime(text):
		return ontology.DateTime
	case integerPattern.MatchString(text):
		return ontology.Integer
	default:
		return ontology.String
	}
}

// Literal normalizes raw text and types it.
func Literal(raw string, infer bool) ontology.Literal {
	text := Text(raw)
	return ontology.Literal{Value: text, Datatype: Infer(text, infer)}
}

func isDate(text string) bool {
	if len(text) != len(time.DateOnly) {
		return false
	}
	_, err := time.Parse(time.DateOnly, text)
	return err == nil
}

// isDateTime accepts xsd:dateTime lexical forms with an explicit zone.
func isDateTime(text string) bool {
	if !strings.Contains(text, "T") {
		return false
	}
	_, err := time.Parse(time.RFC3339, text)
	return err == nil
}
