package normalize

import (
	"testing"

	"github.com/c360studio/ricdraw/ontology"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"soft wrap joins without space", "line one\nline two\n\nline three", "line oneline two\n\nline three"},
		{"explicit delimiter survives", "Oslo,\n Norway", "Oslo, Norway"},
		{"three breaks are one paragraph boundary", "a\n\n\nb", "a\n\nb"},
		{"whitespace-only line separates paragraphs", "a\n  \nb", "a\n\nb"},
		{"crlf", "a\r\nb\r\n\r\nc", "ab\n\nc"},
		{"nbsp becomes space", "Knut\u00a0Olborg", "Knut Olborg"},
		{"outer whitespace trimmed", "  \n Forskerarkiv. \n\n", "Forskerarkiv."},
		{"empty", "", ""},
		{"single line untouched", "Knut Olborg", "Knut Olborg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.raw))
		})
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Knut\nOlborg", Label("Knut\r\nOlborg\n\n"))
	assert.Equal(t, "Knut\u00a0Olborg", Label(" Knut\u00a0Olborg "))
	assert.Equal(t, "Knut Olborg's\n\npapers", Label("Knut Olborg's\n\npapers"))
}

func TestInfer(t *testing.T) {
	tests := []struct {
		text string
		want ontology.Datatype
	}{
		{"2018-08-05", ontology.Date},
		{"3676160", ontology.Integer},
		{"Forskerarkiv.", ontology.String},
		{"-42", ontology.Integer},
		{"+7", ontology.Integer},
		{"2018-02-30", ontology.String},
		{"2018-8-5", ontology.String},
		{"2018-08-05T10:30:00Z", ontology.DateTime},
		{"2018-08-05T10:30:00+02:00", ontology.DateTime},
		{"2018-08-05T10:30:00", ontology.String},
		{"12 345", ontology.String},
		{"", ontology.String},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Infer(tt.text, true))
		})
	}
}

func TestInfer_Disabled(t *testing.T) {
	for _, text := range []string{"2018-08-05", "3676160", "Forskerarkiv."} {
		assert.Equal(t, ontology.String, Infer(text, false), text)
	}
}

func TestLiteral(t *testing.T) {
	lit := Literal("2018-\n08-05", true)
	assert.Equal(t, ontology.Literal{Value: "2018-08-05", Datatype: ontology.Date}, lit)

	lit = Literal("3676160", false)
	assert.Equal(t, ontology.Literal{Value: "3676160", Datatype: ontology.String}, lit)
}
