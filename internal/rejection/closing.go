// internal/rejection/closing.go
package rejection

import "strings"

const defaultClosingWish = "developing your ideas"

type closingRule struct {
	keywords []string
	wish     string
}

// Evaluated top to bottom; the first rule with a matching keyword wins.
var closingRules = []closingRule{
	{keywords: []string{"building", "develop"}, wish: "building the company"},
	{keywords: []string{"platform"}, wish: "developing the platform"},
	{keywords: []string{"research"}, wish: "developing your ideas"},
	{keywords: []string{"product"}, wish: "building and refining the product"},
}

func (r closingRule) matches(lowered string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// ClosingWish picks the phrase completing "We wish you the best as you continue ...".
func ClosingWish(description string) string {
	lowered := strings.ToLower(description)
	for _, rule := range closingRules {
		if rule.matches(lowered) {
			return rule.wish
		}
	}
	return defaultClosingWish
}
