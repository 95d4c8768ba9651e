package htmlcheck_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/goquery"
	"github.com/fwojciec/htmlcheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, content string) htmlcheck.Document {
	t.Helper()

	doc, err := goquery.NewParser().Parse(content)
	require.NoError(t, err)
	return doc
}

func repeat(element string, n int) string {
	return strings.Repeat(element, n)
}

func TestAttributePresence_Evaluate(t *testing.T) {
	t.Parallel()

	t.Run("reports elements missing the attribute", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, repeat(`<a href="#" rel="nofollow">x</a>`, 2)+repeat(`<a href="#">x</a>`, 3))

		outcome, err := htmlcheck.AttributePresence{Tag: "a", Attribute: "rel"}.Evaluate(doc)

		require.NoError(t, err)
		assert.False(t, outcome.Valid)
		assert.Equal(t, "There are 3 <a> tag without rel attribute.", outcome.Message)
	})

	t.Run("passes when every element has the attribute", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<img src="a.png" alt="A"><img src="b.png" alt="B">`)

		outcome, err := htmlcheck.AttributePresence{Tag: "img", Attribute: "alt"}.Evaluate(doc)

		require.NoError(t, err)
		assert.True(t, outcome.Valid)
		assert.Empty(t, outcome.Message)
	})

	t.Run("empty attribute value counts as present", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<img src="spacer.gif" alt=""><img src="b.png" alt>`)

		outcome, err := htmlcheck.AttributePresence{Tag: "img", Attribute: "alt"}.Evaluate(doc)

		require.NoError(t, err)
		assert.True(t, outcome.Valid)
	})

	t.Run("passes vacuously without matching elements", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<p>No links here.</p>`)

		outcome, err := htmlcheck.AttributePresence{Tag: "a", Attribute: "rel"}.Evaluate(doc)

		require.NoError(t, err)
		assert.True(t, outcome.Valid)
	})

	t.Run("queries tag and tag with attribute", func(t *testing.T) {
		t.Parallel()

		var selectors []string
		doc := &mock.Document{
			CountFn: func(selector string) (int, error) {
				selectors = append(selectors, selector)
				return 0, nil
			},
		}

		_, err := htmlcheck.AttributePresence{Tag: "a", Attribute: "rel"}.Evaluate(doc)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "a[rel]"}, selectors)
	})

	t.Run("propagates query errors", func(t *testing.T) {
		t.Parallel()

		queryErr := errors.New("bad selector")
		doc := &mock.Document{
			CountFn: func(selector string) (int, error) {
				return 0, queryErr
			},
		}

		_, err := htmlcheck.AttributePresence{Tag: "a", Attribute: "rel"}.Evaluate(doc)

		assert.ErrorIs(t, err, queryErr)
	})
}

func TestElementCountLimit_Evaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		count   int
		limit   int
		valid   bool
		message string
	}{
		{name: "over the limit", count: 16, limit: 15, message: "This HTML have more than 15 <strong> tag."},
		{name: "at the limit", count: 15, limit: 15, valid: true},
		{name: "one below the count", count: 2, limit: 1, message: "This HTML have more than 1 <strong> tag."},
		{name: "under the limit", count: 1, limit: 15, valid: true},
		{name: "zero matches with zero limit", count: 0, limit: 0, valid: true},
		{name: "any match with zero limit", count: 1, limit: 0, message: "This HTML have more than 0 <strong> tag."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(t, repeat("<strong>x</strong>", tt.count))

			outcome, err := htmlcheck.ElementCountLimit{Tag: "strong", Limit: tt.limit}.Evaluate(doc)

			require.NoError(t, err)
			assert.Equal(t, tt.valid, outcome.Valid)
			assert.Equal(t, tt.message, outcome.Message)
		})
	}
}

func TestChildWithAttribute_Evaluate(t *testing.T) {
	t.Parallel()

	const page = `<html>
<head>
	<meta name="keywords" content="alpaca">
	<meta name="description" content="Alpacas">
</head>
<body>
	<meta name="robots" content="noindex">
	<p class="lead">Hello</p>
</body>
</html>`

	tests := []struct {
		name    string
		rule    htmlcheck.ChildWithAttribute
		valid   bool
		message string
	}{
		{
			name:    "missing tag under parent",
			rule:    htmlcheck.ChildWithAttribute{Parent: "head", Tag: "title"},
			message: "There is no <title> tag.",
		},
		{
			name:  "tag with attribute and value under parent",
			rule:  htmlcheck.ChildWithAttribute{Parent: "head", Tag: "meta", Attribute: "name", Value: "keywords"},
			valid: true,
		},
		{
			name:  "several matches are still valid",
			rule:  htmlcheck.ChildWithAttribute{Parent: "head", Tag: "meta", Attribute: "name"},
			valid: true,
		},
		{
			name:    "value mismatch",
			rule:    htmlcheck.ChildWithAttribute{Parent: "head", Tag: "meta", Attribute: "name", Value: "alpaca"},
			message: "There is no <meta> tag with name attribute and alpaca value.",
		},
		{
			name:    "attribute mismatch",
			rule:    htmlcheck.ChildWithAttribute{Parent: "head", Tag: "meta", Attribute: "charset"},
			message: "There is no <meta> tag with charset attribute.",
		},
		{
			name:    "match outside the parent",
			rule:    htmlcheck.ChildWithAttribute{Parent: "head", Tag: "meta", Attribute: "name", Value: "robots"},
			message: "There is no <meta> tag with name attribute and robots value.",
		},
		{
			name:  "whole document without parent",
			rule:  htmlcheck.ChildWithAttribute{Tag: "meta", Attribute: "name", Value: "robots"},
			valid: true,
		},
		{
			name:  "value ignored without attribute",
			rule:  htmlcheck.ChildWithAttribute{Parent: "body", Tag: "p", Value: "ignored"},
			valid: true,
		},
		{
			name:    "value ignored in message without attribute",
			rule:    htmlcheck.ChildWithAttribute{Parent: "body", Tag: "h1", Value: "ignored"},
			message: "There is no <h1> tag.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outcome, err := tt.rule.Evaluate(parse(t, page))

			require.NoError(t, err)
			assert.Equal(t, tt.valid, outcome.Valid)
			assert.Equal(t, tt.message, outcome.Message)
		})
	}
}

func TestChildWithAttribute_Selector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule htmlcheck.ChildWithAttribute
		want string
	}{
		{name: "tag only", rule: htmlcheck.ChildWithAttribute{Tag: "title"}, want: "title"},
		{name: "attribute", rule: htmlcheck.ChildWithAttribute{Tag: "meta", Attribute: "name"}, want: "meta[name]"},
		{name: "attribute and value", rule: htmlcheck.ChildWithAttribute{Tag: "meta", Attribute: "name", Value: "keywords"}, want: `meta[name="keywords"]`},
		{name: "value without attribute", rule: htmlcheck.ChildWithAttribute{Tag: "meta", Value: "keywords"}, want: "meta"},
		{name: "escapes quotes", rule: htmlcheck.ChildWithAttribute{Tag: "meta", Attribute: "content", Value: `say "hi"`}, want: `meta[content="say \"hi\""]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.rule.Selector())
		})
	}
}

func TestChildWithAttribute_ValueWithSpaces(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<head><meta name="description" content="Alpacas and llamas"></head>`)
	rule := htmlcheck.ChildWithAttribute{Parent: "head", Tag: "meta", Attribute: "content", Value: "Alpacas and llamas"}

	outcome, err := rule.Evaluate(doc)

	require.NoError(t, err)
	assert.True(t, outcome.Valid)
}

func TestChildWithAttribute_QueriesChildrenOfParent(t *testing.T) {
	t.Parallel()

	var gotParent, gotSelector string
	doc := &mock.Document{
		CountChildrenFn: func(parent, selector string) (int, error) {
			gotParent, gotSelector = parent, selector
			return 2, nil
		},
	}

	outcome, err := htmlcheck.ChildWithAttribute{Parent: "head", Tag: "meta", Attribute: "name", Value: "keywords"}.Evaluate(doc)

	require.NoError(t, err)
	assert.True(t, outcome.Valid)
	assert.Equal(t, "head", gotParent)
	assert.Equal(t, `meta[name="keywords"]`, gotSelector)
}

func TestDescriptor_Rule(t *testing.T) {
	t.Parallel()

	t.Run("maps each category to its rule", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			desc *htmlcheck.Descriptor
			want htmlcheck.Rule
		}{
			{
				desc: htmlcheck.NewAttributePresence("a", "rel"),
				want: htmlcheck.AttributePresence{Tag: "a", Attribute: "rel"},
			},
			{
				desc: htmlcheck.NewElementCountLimit("h1", 1),
				want: htmlcheck.ElementCountLimit{Tag: "h1", Limit: 1},
			},
			{
				desc: htmlcheck.NewChildWithAttribute("head", "meta", "name", "keywords"),
				want: htmlcheck.ChildWithAttribute{Parent: "head", Tag: "meta", Attribute: "name", Value: "keywords"},
			},
		}

		for _, tt := range tests {
			rule, err := tt.desc.Rule()

			require.NoError(t, err)
			assert.Equal(t, tt.want, rule)
			assert.Equal(t, tt.desc.Category, rule.Category())
		}
	})

	t.Run("accepts zero limit", func(t *testing.T) {
		t.Parallel()

		rule, err := htmlcheck.NewElementCountLimit("blink", 0).Rule()

		require.NoError(t, err)
		assert.Equal(t, htmlcheck.ElementCountLimit{Tag: "blink"}, rule)
	})

	limit := 1
	tests := []struct {
		name string
		desc *htmlcheck.Descriptor
		want string
	}{
		{name: "nil descriptor", desc: nil, want: "There is no rule key in the item."},
		{name: "missing category", desc: &htmlcheck.Descriptor{Tag: "a", Attribute: "rel"}, want: "There is no rule key in the item."},
		{name: "attribute presence without tag", desc: &htmlcheck.Descriptor{Category: htmlcheck.CategoryAttributePresence, Attribute: "rel"}, want: "There is no tag or attr key in the item."},
		{name: "attribute presence without attribute", desc: &htmlcheck.Descriptor{Category: htmlcheck.CategoryAttributePresence, Tag: "a"}, want: "There is no tag or attr key in the item."},
		{name: "count limit without tag", desc: &htmlcheck.Descriptor{Category: htmlcheck.CategoryElementCountLimit, Limit: &limit}, want: "There is no tag or count key in the item."},
		{name: "count limit without count", desc: &htmlcheck.Descriptor{Category: htmlcheck.CategoryElementCountLimit, Tag: "h1"}, want: "There is no tag or count key in the item."},
		{name: "negative count", desc: htmlcheck.NewElementCountLimit("h1", -1), want: "Count must be non-negative."},
		{name: "child without tag", desc: &htmlcheck.Descriptor{Category: htmlcheck.CategoryChildWithAttribute, Parent: "head"}, want: "There is no tag key in the item."},
		{name: "unknown category", desc: &htmlcheck.Descriptor{Category: "tagWithText", Tag: "p"}, want: `Unknown rule category "tagWithText".`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule, err := tt.desc.Rule()

			require.Error(t, err)
			assert.Nil(t, rule)
			assert.Equal(t, htmlcheck.EINVALID, htmlcheck.ErrorCode(err))
			assert.Equal(t, tt.want, htmlcheck.ErrorMessage(err))
		})
	}
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	t.Run("evaluates the described rule", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head></head>`)

		outcome, err := htmlcheck.Dispatch(doc, htmlcheck.NewChildWithAttribute("head", "title", "", ""))

		require.NoError(t, err)
		assert.Equal(t, &htmlcheck.Outcome{Message: "There is no <title> tag."}, outcome)
	})

	t.Run("does not query the document for malformed descriptors", func(t *testing.T) {
		t.Parallel()

		doc := &mock.Document{
			CountFn: func(selector string) (int, error) {
				t.Fatal("document must not be queried")
				return 0, nil
			},
		}

		_, err := htmlcheck.Dispatch(doc, &htmlcheck.Descriptor{Category: htmlcheck.CategoryAttributePresence})

		assert.Equal(t, "There is no tag or attr key in the item.", htmlcheck.ErrorMessage(err))
	})
}

func TestOutcome_Line(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Valid", (&htmlcheck.Outcome{Valid: true}).Line())
	assert.Equal(t, "Valid", (&htmlcheck.Outcome{}).Line())
	assert.Equal(t, "There is no <title> tag.", (&htmlcheck.Outcome{Message: "There is no <title> tag."}).Line())
}

func ExampleDispatch() {
	doc, _ := goquery.NewParser().Parse(`<a href="/">home</a><a href="/x" rel="nofollow">x</a>`)

	outcome, _ := htmlcheck.Dispatch(doc, htmlcheck.NewAttributePresence("a", "rel"))
	fmt.Println(outcome.Line())
	// Output: There are 1 <a> tag without rel attribute.
}
