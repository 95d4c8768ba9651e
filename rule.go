package htmlcheck

import (
	"fmt"
	"strings"
)

// Category identifies the kind of structural check a Descriptor performs.
type Category string

// Supported rule categories. The values are the names used in rule files.
const (
	CategoryAttributePresence  Category = "tagWithAttribute"
	CategoryElementCountLimit  Category = "tagLimitCount"
	CategoryChildWithAttribute Category = "childTagWithAttribute"
)

// Descriptor is a declarative record describing one check to perform.
// Which fields are required depends on the Category:
//
//   - CategoryAttributePresence: Tag and Attribute.
//   - CategoryElementCountLimit: Tag and Limit.
//   - CategoryChildWithAttribute: Tag; Parent, Attribute and Value are optional.
type Descriptor struct {
	Category  Category `json:"rule" yaml:"rule"`
	Tag       string   `json:"tag,omitempty" yaml:"tag,omitempty"`
	Attribute string   `json:"attr,omitempty" yaml:"attr,omitempty"`
	Limit     *int     `json:"count,omitempty" yaml:"count,omitempty"`
	Parent    string   `json:"parent,omitempty" yaml:"parent,omitempty"`
	Value     string   `json:"value,omitempty" yaml:"value,omitempty"`
}

// NewAttributePresence returns a descriptor requiring every <tag> element to
// carry attribute.
func NewAttributePresence(tag, attribute string) *Descriptor {
	return &Descriptor{Category: CategoryAttributePresence, Tag: tag, Attribute: attribute}
}

// NewElementCountLimit returns a descriptor allowing at most limit <tag> elements.
func NewElementCountLimit(tag string, limit int) *Descriptor {
	return &Descriptor{Category: CategoryElementCountLimit, Tag: tag, Limit: &limit}
}

// NewChildWithAttribute returns a descriptor requiring at least one <tag>
// element, optionally a direct child of parent and optionally carrying
// attribute (with value).
func NewChildWithAttribute(parent, tag, attribute, value string) *Descriptor {
	return &Descriptor{
		Category:  CategoryChildWithAttribute,
		Parent:    parent,
		Tag:       tag,
		Attribute: attribute,
		Value:     value,
	}
}

// Rule validates the descriptor and returns the rule it describes.
// Missing required fields and unknown categories return EINVALID.
func (d *Descriptor) Rule() (Rule, error) {
	if d == nil || d.Category == "" {
		return nil, Errorf(EINVALID, "There is no rule key in the item.")
	}

	switch d.Category {
	case CategoryAttributePresence:
		if d.Tag == "" || d.Attribute == "" {
			return nil, Errorf(EINVALID, "There is no tag or attr key in the item.")
		}
		return AttributePresence{Tag: d.Tag, Attribute: d.Attribute}, nil
	case CategoryElementCountLimit:
		if d.Tag == "" || d.Limit == nil {
			return nil, Errorf(EINVALID, "There is no tag or count key in the item.")
		}
		if *d.Limit < 0 {
			return nil, Errorf(EINVALID, "Count must be non-negative.")
		}
		return ElementCountLimit{Tag: d.Tag, Limit: *d.Limit}, nil
	case CategoryChildWithAttribute:
		if d.Tag == "" {
			return nil, Errorf(EINVALID, "There is no tag key in the item.")
		}
		return ChildWithAttribute{
			Parent:    d.Parent,
			Tag:       d.Tag,
			Attribute: d.Attribute,
			Value:     d.Value,
		}, nil
	default:
		return nil, Errorf(EINVALID, "Unknown rule category %q.", string(d.Category))
	}
}

// Dispatch validates the descriptor and evaluates the rule it describes
// against doc. It suits a single descriptor over an already parsed document;
// a detection run instead calls Descriptor.Rule for every descriptor before
// parsing and then Rule.Evaluate on each.
func Dispatch(doc Document, d *Descriptor) (*Outcome, error) {
	rule, err := d.Rule()
	if err != nil {
		return nil, err
	}
	return rule.Evaluate(doc)
}

// Outcome is the result of evaluating one rule against one document.
// Message is empty when Valid is true.
type Outcome struct {
	Valid   bool
	Message string
}

// ValidLine is the report line for a rule that passed.
const ValidLine = "Valid"

// Line returns the report line for the outcome: its message, or ValidLine
// when the rule passed.
func (o *Outcome) Line() string {
	if o.Valid || o.Message == "" {
		return ValidLine
	}
	return o.Message
}

func pass() *Outcome {
	return &Outcome{Valid: true}
}

func fail(format string, args ...any) *Outcome {
	return &Outcome{Message: fmt.Sprintf(format, args...)}
}

// Rule is a single structural check over a parsed document.
// The set of implementations is closed: AttributePresence,
// ElementCountLimit and ChildWithAttribute.
type Rule interface {
	// Category returns the category the rule belongs to.
	Category() Category

	// Evaluate runs the check against doc. Evaluation only reads the document.
	// Errors are returned only when the document cannot be queried
	// (e.g., a malformed selector), never for a failed check.
	Evaluate(doc Document) (*Outcome, error)

	rule()
}

// AttributePresence requires every element matching Tag to carry Attribute.
// A document without any matching element passes.
type AttributePresence struct {
	Tag       string
	Attribute string
}

// Category implements Rule.
func (AttributePresence) Category() Category { return CategoryAttributePresence }

func (AttributePresence) rule() {}

// Evaluate implements Rule.
func (r AttributePresence) Evaluate(doc Document) (*Outcome, error) {
	all, err := doc.Count(r.Tag)
	if err != nil {
		return nil, err
	}
	withAttr, err := doc.Count(r.Tag + attributeSelector(r.Attribute, ""))
	if err != nil {
		return nil, err
	}

	if diff := all - withAttr; diff != 0 {
		return fail("There are %d <%s> tag without %s attribute.", diff, r.Tag, r.Attribute), nil
	}
	return pass(), nil
}

// ElementCountLimit allows at most Limit elements matching Tag. The bound is
// inclusive.
type ElementCountLimit struct {
	Tag   string
	Limit int
}

// Category implements Rule.
func (ElementCountLimit) Category() Category { return CategoryElementCountLimit }

func (ElementCountLimit) rule() {}

// Evaluate implements Rule.
func (r ElementCountLimit) Evaluate(doc Document) (*Outcome, error) {
	count, err := doc.Count(r.Tag)
	if err != nil {
		return nil, err
	}

	if count > r.Limit {
		return fail("This HTML have more than %d <%s> tag.", r.Limit, r.Tag), nil
	}
	return pass(), nil
}

// ChildWithAttribute requires at least one element matching Tag, narrowed by
// Attribute (and Value) when set. When Parent is set, only direct children of
// elements matching Parent are considered.
type ChildWithAttribute struct {
	Parent    string
	Tag       string
	Attribute string
	Value     string
}

// Category implements Rule.
func (ChildWithAttribute) Category() Category { return CategoryChildWithAttribute }

func (ChildWithAttribute) rule() {}

// Selector returns the compound selector the rule matches.
func (r ChildWithAttribute) Selector() string {
	return r.Tag + attributeSelector(r.Attribute, r.Value)
}

// Evaluate implements Rule.
func (r ChildWithAttribute) Evaluate(doc Document) (*Outcome, error) {
	var count int
	var err error
	if r.Parent != "" {
		count, err = doc.CountChildren(r.Parent, r.Selector())
	} else {
		count, err = doc.Count(r.Selector())
	}
	if err != nil {
		return nil, err
	}

	if count > 0 {
		return pass(), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "There is no <%s> tag", r.Tag)
	if r.Attribute != "" {
		fmt.Fprintf(&b, " with %s attribute", r.Attribute)
		if r.Value != "" {
			fmt.Fprintf(&b, " and %s value", r.Value)
		}
	}
	b.WriteString(".")
	return &Outcome{Message: b.String()}, nil
}

// attributeSelector returns "[attr]" or `[attr="value"]`. Value is ignored
// without an attribute.
func attributeSelector(attribute, value string) string {
	if attribute == "" {
		return ""
	}
	if value == "" {
		return "[" + attribute + "]"
	}
	return "[" + attribute + `="` + cssEscaper.Replace(value) + `"]`
}

var cssEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
