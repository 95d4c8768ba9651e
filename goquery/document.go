// Package goquery implements htmlcheck.Parser and htmlcheck.Document on top
// of goquery and cascadia CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/htmlcheck"
	"golang.org/x/net/html"
)

// Ensure types implement the htmlcheck interfaces at compile time.
var (
	_ htmlcheck.Parser   = (*Parser)(nil)
	_ htmlcheck.Document = (*Document)(nil)
)

// Parser parses HTML into goquery documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses content with the HTML5 parsing algorithm. Malformed markup is
// repaired the way browsers do, so only reader failures are reported.
func (p *Parser) Parse(content string) (htmlcheck.Document, error) {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EPARSE, "failed to parse HTML: %w", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// Document answers selector queries over a parsed HTML tree.
type Document struct {
	doc *goquery.Document
}

// Count returns the number of elements matching selector.
func (d *Document) Count(selector string) (int, error) {
	m, err := compile(selector)
	if err != nil {
		return 0, err
	}
	return d.doc.FindMatcher(m).Length(), nil
}

// CountChildren returns the number of elements matching selector that are
// direct children of an element matching parent.
func (d *Document) CountChildren(parent, selector string) (int, error) {
	pm, err := compile(parent)
	if err != nil {
		return 0, err
	}
	cm, err := compile(selector)
	if err != nil {
		return 0, err
	}
	return d.doc.FindMatcher(pm).ChildrenMatcher(cm).Length(), nil
}

// compile compiles a selector group, reporting the syntax errors that
// goquery's string-based Find swallows.
func compile(selector string) (goquery.Matcher, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "invalid selector %q: %v", selector, err)
	}
	return m, nil
}
