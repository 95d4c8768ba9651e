package mock

import "github.com/fwojciec/htmlcheck"

var _ htmlcheck.Document = (*Document)(nil)

// Document is a mock implementation of htmlcheck.Document.
type Document struct {
	CountFn         func(selector string) (int, error)
	CountChildrenFn func(parent, selector string) (int, error)
}

func (d *Document) Count(selector string) (int, error) {
	return d.CountFn(selector)
}

func (d *Document) CountChildren(parent, selector string) (int, error) {
	return d.CountChildrenFn(parent, selector)
}

var _ htmlcheck.Parser = (*Parser)(nil)

// Parser is a mock implementation of htmlcheck.Parser.
type Parser struct {
	ParseFn func(content string) (htmlcheck.Document, error)
}

func (p *Parser) Parse(content string) (htmlcheck.Document, error) {
	return p.ParseFn(content)
}
