package htmlcheck

// Predefined rules covering common SEO checks.
var (
	PredefinedATagWithRel           = *NewAttributePresence("a", "rel")
	PredefinedImgTagWithAlt         = *NewAttributePresence("img", "alt")
	PredefinedTitleInHead           = *NewChildWithAttribute("head", "title", "", "")
	PredefinedMetaDescriptionInHead = *NewChildWithAttribute("head", "meta", "name", "description")
	PredefinedMetaKeywordsInHead    = *NewChildWithAttribute("head", "meta", "name", "keywords")
	PredefinedStrongTagLimit        = *NewElementCountLimit("strong", 15)
	PredefinedH1TagLimit            = *NewElementCountLimit("h1", 1)
)

// DefaultRules returns copies of all predefined rules in report order.
func DefaultRules() []*Descriptor {
	rules := []Descriptor{
		PredefinedATagWithRel,
		PredefinedImgTagWithAlt,
		PredefinedTitleInHead,
		PredefinedMetaDescriptionInHead,
		PredefinedMetaKeywordsInHead,
		PredefinedStrongTagLimit,
		PredefinedH1TagLimit,
	}

	out := make([]*Descriptor, len(rules))
	for i := range rules {
		d := rules[i]
		if d.Limit != nil {
			limit := *d.Limit
			d.Limit = &limit
		}
		out[i] = &d
	}
	return out
}
