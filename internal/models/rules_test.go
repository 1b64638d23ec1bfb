package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRules_Order(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, []string{
		CategoryGroceries,
		CategoryRent,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryOther,
	}, rules.Categories())
	assert.Empty(t, rules[4].Keywords, "the catch-all category has no keywords")
}

func TestDefaultRules_FreshCopy(t *testing.T) {
	first := DefaultRules()
	first[0].Name = "mutated"
	first[1].Keywords[0] = "mutated"

	second := DefaultRules()
	assert.Equal(t, CategoryGroceries, second[0].Name)
	assert.Equal(t, "rent", second[1].Keywords[0])
}

func TestRuleSet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rules   RuleSet
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			rules:   DefaultRules(),
			wantErr: false,
		},
		{
			name:    "empty set is valid",
			rules:   RuleSet{},
			wantErr: false,
		},
		{
			name: "unnamed rule",
			rules: RuleSet{
				{Name: "  ", Keywords: []string{"x"}},
			},
			wantErr: true,
		},
		{
			name: "duplicate name",
			rules: RuleSet{
				{Name: "travel", Keywords: []string{"train"}},
				{Name: "travel", Keywords: []string{"plane"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRuleSet_Normalized(t *testing.T) {
	rules := RuleSet{
		{Name: " Travel ", Keywords: []string{" SBB ", "EasyJet"}},
	}
	got := rules.Normalized()

	assert.Equal(t, "Travel", got[0].Name)
	assert.Equal(t, []string{"sbb", "easyjet"}, got[0].Keywords)
	// The receiver is untouched.
	assert.Equal(t, " Travel ", rules[0].Name)
	assert.Equal(t, " SBB ", rules[0].Keywords[0])
}
