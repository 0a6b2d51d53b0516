package attacks

import (
	"encoding/json"

	"github.com/osse101/TornBot_Go/internal/torn"
)

// MugRule names a top-level field that may carry the mugged amount, either as a
// scalar or as an object holding one of SubFields.
type MugRule struct {
	Field     string
	SubFields []string
}

var mugSubFields = []string{"amount", "value", "money"}

// DefaultMugRules reflect the field names the feed has used over time
var DefaultMugRules = []MugRule{
	{Field: "money_mugged", SubFields: mugSubFields},
	{Field: "mugged", SubFields: mugSubFields},
	{Field: "money", SubFields: mugSubFields},
	{Field: "cash", SubFields: mugSubFields},
}

// ExtractMugged applies DefaultMugRules to a raw attack item
func ExtractMugged(raw json.RawMessage) float64 {
	return ExtractMuggedWith(DefaultMugRules, raw)
}

// ExtractMuggedWith returns the first parseable non-zero amount found by the rules, or 0.
// Within an object field the first present sub-field decides that field's value.
func ExtractMuggedWith(rules []MugRule, raw json.RawMessage) float64 {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return 0
	}

	for _, rule := range rules {
		v, ok := fields[rule.Field]
		if !ok {
			continue
		}

		var amount float64
		var obj map[string]json.RawMessage
		if json.Unmarshal(v, &obj) == nil && obj != nil {
			for _, sub := range rule.SubFields {
				if sv, ok := obj[sub]; ok {
					amount, _ = torn.ParseFloat(sv)
					break
				}
			}
		} else {
			amount, _ = torn.ParseFloat(v)
		}

		if amount != 0 {
			return amount
		}
	}
	return 0
}
