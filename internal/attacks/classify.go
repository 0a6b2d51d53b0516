package attacks

import (
	"strings"

	"github.com/osse101/TornBot_Go/internal/domain"
)

// TagRule maps a case-insensitive substring of the result text to a tag
type TagRule struct {
	Substring string
	Tag       domain.Tag
}

// DefaultTagRules are applied in order and are not exclusive: every matching rule adds its tag.
var DefaultTagRules = []TagRule{
	{Substring: "mug", Tag: domain.TagMug},
	{Substring: "hospital", Tag: domain.TagHospitalize},
	{Substring: "assist", Tag: domain.TagAssist},
	{Substring: "lost", Tag: domain.TagLoss},
}

// Classify tags an attack result with DefaultTagRules
func Classify(result string) domain.TagSet {
	return ClassifyWith(DefaultTagRules, result)
}

// ClassifyWith tags result with the given rules. No match yields {other}.
func ClassifyWith(rules []TagRule, result string) domain.TagSet {
	r := strings.ToLower(result)
	tags := domain.NewTagSet()
	for _, rule := range rules {
		if strings.Contains(r, rule.Substring) {
			tags[rule.Tag] = struct{}{}
		}
	}
	if len(tags) == 0 {
		tags[domain.TagOther] = struct{}{}
	}
	return tags
}

// DisplayTag picks a single short label for rendering. Counting never uses it.
func DisplayTag(tags domain.TagSet) string {
	switch {
	case tags.Has(domain.TagHospitalize):
		return DisplayHosp
	case tags.Has(domain.TagMug):
		return DisplayMug
	case tags.Has(domain.TagAssist):
		return DisplayAssist
	case tags.Has(domain.TagLoss):
		return DisplayLost
	default:
		return DisplayAttack
	}
}
