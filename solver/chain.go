package solver

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// PrimarySelector is the answer's structural path on the walkthrough site.
const PrimarySelector = "body > main > section.cr-post-content > div > div > div > div > blockquote > p > strong"

// FallbackSelectors are tried in order when PrimarySelector finds nothing,
// from most to least specific.
var FallbackSelectors = []string{
	"blockquote p strong",
	"blockquote strong",
	".answer strong",
	"strong",
}

// Selector is one compiled entry of the chain.
type Selector struct {
	Pattern string
	matcher cascadia.Selector
}

// chain is the full selector list, primary first.
var chain = compileChain(append([]string{PrimarySelector}, FallbackSelectors...))

func compileChain(patterns []string) []Selector {
	out := make([]Selector, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, Selector{Pattern: p, matcher: cascadia.MustCompile(p)})
	}
	return out
}

// Chain returns the selector patterns in evaluation order.
func Chain() []string {
	patterns := make([]string, len(chain))
	for i, s := range chain {
		patterns[i] = s.Pattern
	}
	return patterns
}

// ParseDocument parses raw HTML. The HTML5 parser repairs malformed markup,
// so a document is always returned; on a reader failure it is empty.
func ParseDocument(raw string) *goquery.Document {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		root = &html.Node{Type: html.DocumentNode}
	}
	return goquery.NewDocumentFromNode(root)
}

// Match is the answer found by Extract and the selector that found it.
type Match struct {
	Text     string
	Selector string
}

// Extract walks the selector chain and returns the trimmed text of the
// first element found by the first selector that yields non-empty text.
func Extract(doc *goquery.Document) (Match, bool) {
	for _, s := range chain {
		sel := doc.FindMatcher(s.matcher).First()
		if sel.Length() == 0 {
			continue
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			return Match{Text: text, Selector: s.Pattern}, true
		}
	}
	return Match{}, false
}
