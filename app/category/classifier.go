package category

import (
	"strings"
)

// broadSlugs are categories too generic to be a useful final answer when
// they came from a partner default; the keyword heuristic may narrow them.
var broadSlugs = map[string]bool{
	"otthon": true,
	CatchAll: true,
}

// Input carries the classification signals of one item. DefaultCategory and
// Group come from the item's partner config.
type Input struct {
	BackendLabel    string
	CategoryPath    string
	Title           string
	Description     string
	DefaultCategory string
	Group           string
}

// Classifier assigns every item exactly one taxonomy slug via a rule
// cascade: explicit backend label, partner pattern rules, partner default,
// keyword refinement, catch-all. Earlier stages always win; in particular
// the keyword heuristic never overrides a backend label or a pattern rule.
type Classifier struct {
	rules RuleMap
}

func NewClassifier(rules RuleMap) *Classifier {
	if rules == nil {
		rules = RuleMap{}
	}
	return &Classifier{rules: rules}
}

// Run is a pure function of its inputs and always returns a valid slug.
func (c *Classifier) Run(partnerID string, in Input) string {
	// 1. explicit backend label, verbatim or via synonym
	if label := Canonical(strings.ToLower(strings.TrimSpace(in.BackendLabel))); label != "" {
		return label
	}

	// 2. externally authored per-partner pattern rules
	if slug := c.applyRules(partnerID, in); slug != "" {
		return slug
	}

	// 3. partner default, falling back to the partner group tag
	base := ""
	if IsValid(in.DefaultCategory) {
		base = in.DefaultCategory
	} else if slug, ok := groupSlugs[strings.ToLower(in.Group)]; ok {
		base = slug
	}

	// 4. keyword refinement for broad or missing defaults; a single partner
	// sells across many true categories, so "home" tier defaults are only a
	// starting point
	if base == "" || broadSlugs[base] {
		if slug := bestKeywordMatch(NormalizeText(in.Title + " " + in.Description)); slug != "" {
			return slug
		}
	}

	if base != "" {
		return base
	}

	// 5. catch-all
	return CatchAll
}

func (c *Classifier) applyRules(partnerID string, in Input) string {
	rules, ok := c.rules[partnerID]
	if !ok {
		return ""
	}

	haystack := NormalizeText(in.CategoryPath + " " + in.Title + " " + in.Description)
	for _, rule := range rules {
		slug := Canonical(strings.ToLower(strings.TrimSpace(rule.CatID)))
		if slug == "" {
			continue
		}
		if rule.Pattern == "" {
			// unconditional partner fallback
			return slug
		}
		if strings.Contains(haystack, NormalizeText(rule.Pattern)) {
			return slug
		}
	}
	return ""
}

// bestKeywordMatch scores every category by counting keyword hits in the
// normalized text; the highest positive score wins.
func bestKeywordMatch(text string) string {
	if text == "" {
		return ""
	}

	bestSlug := ""
	bestScore := 0
	for _, slug := range Slugs {
		score := 0
		for _, kw := range categoryKeywords[slug] {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestSlug = slug
		}
	}
	return bestSlug
}
