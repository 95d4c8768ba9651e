package htmlcheck

// Document is a parsed HTML tree that rules query with CSS selectors.
// Implementations never expose mutation; a Document is discarded after one
// detection pass.
type Document interface {
	// Count returns the number of elements matching selector.
	// Returns EINVALID if the selector cannot be compiled.
	Count(selector string) (int, error)

	// CountChildren returns the number of elements matching selector that
	// are direct children of an element matching parent.
	// Returns EINVALID if either selector cannot be compiled.
	CountChildren(parent, selector string) (int, error)
}

// Parser turns raw HTML content into a queryable Document.
type Parser interface {
	// Parse parses content. Returns EPARSE if the content cannot be parsed.
	Parse(content string) (Document, error)
}
