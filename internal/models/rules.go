package models

import (
	"fmt"
	"strings"
)

// CategoryRule binds a category name to the keywords that select it.
// Keywords are stored lowercase; matching is case-insensitive substring
// containment against the expense description.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// RuleSet is an ordered list of category rules. Position is priority: the
// first rule with a matching keyword wins.
type RuleSet []CategoryRule

// RulesConfig is the structure of the category rules YAML file.
type RulesConfig struct {
	Categories RuleSet `yaml:"categories"`
}

// Categories returns the rule names in priority order.
func (rs RuleSet) Categories() []string {
	names := make([]string, 0, len(rs))
	for _, r := range rs {
		names = append(names, r.Name)
	}
	return names
}

// Validate checks structural soundness: every rule is named and no name
// repeats. Keyword lists may be empty; an empty list simply never matches.
func (rs RuleSet) Validate() error {
	seen := make(map[string]struct{}, len(rs))
	for i, r := range rs {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return fmt.Errorf("rule %d has no name", i)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("duplicate category %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Normalized returns a copy of the rule set with surrounding whitespace
// trimmed from names and every keyword lowercased. The receiver is not
// modified.
func (rs RuleSet) Normalized() RuleSet {
	out := make(RuleSet, 0, len(rs))
	for _, r := range rs {
		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			keywords = append(keywords, strings.ToLower(strings.TrimSpace(k)))
		}
		out = append(out, CategoryRule{
			Name:     strings.TrimSpace(r.Name),
			Keywords: keywords,
		})
	}
	return out
}

// DefaultRules returns the built-in category rules used when no rules file
// is available. Each call builds a fresh copy, so callers may modify the
// result without affecting later calls.
func DefaultRules() RuleSet {
	return RuleSet{
		{Name: CategoryGroceries, Keywords: []string{"walmart", "supermarket", "grocery", "aldi"}},
		{Name: CategoryRent, Keywords: []string{"rent", "apartment"}},
		{Name: CategoryUtilities, Keywords: []string{"electric", "water", "gas", "internet"}},
		{Name: CategoryEntertainment, Keywords: []string{"netflix", "cinema", "movie", "concert"}},
		{Name: CategoryOther, Keywords: []string{}},
	}
}
