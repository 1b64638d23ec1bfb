// Package categorizer assigns expense categories by keyword matching.
//
// Matching is deliberately simple and deterministic: rules are tried in
// priority order and the first rule with a keyword contained in the
// description wins. The same description always yields the same category
// for a given rule set.
package categorizer

import (
	"strings"

	"fjacquet/expense-csv/internal/logging"
	"fjacquet/expense-csv/internal/models"
)

// Matcher categorizes descriptions against an ordered rule set.
type Matcher struct {
	rules  models.RuleSet
	logger logging.Logger
}

// NewMatcher builds a Matcher over rules. The rule set is used as given;
// earlier rules take priority over later ones.
func NewMatcher(rules models.RuleSet, logger logging.Logger) *Matcher {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Matcher{rules: rules, logger: logger}
}

// Categorize returns the category for a description. The description is
// lowercased once, then rules are scanned in order; the first rule with any
// keyword contained in the description wins. When nothing matches, the
// catch-all category is returned, whether or not the rule set names it.
func (m *Matcher) Categorize(description string) string {
	lowered := strings.ToLower(description)

	for _, rule := range m.rules {
		for _, keyword := range rule.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(lowered, strings.ToLower(keyword)) {
				m.logger.Debug("keyword matched",
					logging.F(logging.FieldCategory, rule.Name),
					logging.F(logging.FieldKeyword, keyword))
				return rule.Name
			}
		}
	}

	return models.CategoryOther
}

// Rules returns the rule set the matcher was built with.
func (m *Matcher) Rules() models.RuleSet {
	return m.rules
}
