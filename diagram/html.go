package diagram

import (
	"strings"

	"golang.org/x/net/html"
)

// blockElements start on a new line when rendered.
var blockElements = map[string]bool{
	"div": true, "p": true, "li": true, "ul": true, "ol": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "table": true,
}

// htmlText renders an HTML cell value as plain text. <br> becomes a line
// break and every block element starts a new line, so a label typed as
// separate lines in the editor keeps its line structure.
func htmlText(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var sb strings.Builder
	newline := func() {
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(strings.NewReplacer("\r\n", " ", "\n", " ").Replace(n.Data))
			return
		case html.ElementNode:
			switch {
			case n.Data == "br":
				sb.WriteByte('\n')
				return
			case n.Data == "script" || n.Data == "style":
				return
			case blockElements[n.Data]:
				newline()
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return sb.String()
}
