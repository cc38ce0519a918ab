package knowledge

import (
	"strings"

	"golang.org/x/net/html"
)

const maxDepth = 64

// Paragraphs returns the text of every <p> element in document order, skipping
// scripts, styles, tables and citation markers.
func Paragraphs(document string) (string, error) {
	doc, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return "", err
	}

	var paragraphs []string
	var walk func(n *html.Node, depth int)
	walk = func(n *html.Node, depth int) {
		if depth > maxDepth {
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "table", "nav", "footer", "header":
				return
			case "p":
				var sb strings.Builder
				collectText(n, &sb, depth)
				if text := strings.Join(strings.Fields(sb.String()), " "); text != "" {
					paragraphs = append(paragraphs, text)
				}
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child, depth+1)
		}
	}
	walk(doc, 0)

	return strings.Join(paragraphs, " "), nil
}

func collectText(n *html.Node, sb *strings.Builder, depth int) {
	if depth > maxDepth {
		return
	}
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "sup", "script", "style":
			return
		case "br":
			sb.WriteString(" ")
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb, depth+1)
	}
}
