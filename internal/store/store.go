// Package store loads the category rule set the categorizer matches
// against.
package store

import (
	"os"
	"path/filepath"

	"fjacquet/expense-csv/internal/fileutils"
	"fjacquet/expense-csv/internal/logging"
	"fjacquet/expense-csv/internal/models"
	"fjacquet/expense-csv/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// DefaultRulesFile is the file name searched when no explicit path is
// configured.
const DefaultRulesFile = "categories.yaml"

// RuleStore loads category rules from a YAML file. A missing file is never
// an error: the built-in defaults are used so categorization always has
// rules to work with. A file that exists but cannot be used is surfaced.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore returns a store reading from rulesFile, which may be empty
// to search the standard locations for the default file name.
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &RuleStore{RulesFile: rulesFile, logger: logger}
}

// FindRulesFile resolves filename against the standard locations: the path
// itself, ./config/, and ~/.config/expense-csv/. It reports whether a file
// was found.
func FindRulesFile(filename string) (string, bool) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, true
		}
		return "", false
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "expense-csv", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, true
		}
	}
	return "", false
}

// Load returns the category rules in file order, keywords lowercased. When
// no rules file is found the built-in defaults are returned; each call
// hands out a fresh copy.
func (s *RuleStore) Load() (models.RuleSet, error) {
	filename := s.RulesFile
	explicit := filename != ""
	if !explicit {
		filename = DefaultRulesFile
	}

	path, found := FindRulesFile(filename)
	if !found {
		if explicit {
			s.logger.Warn("rules file not found, using built-in categories",
				logging.F(logging.FieldRulesFile, filename))
		} else {
			s.logger.Debug("no rules file, using built-in categories")
		}
		return models.DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &parsererror.RulesError{FilePath: path, Err: err}
	}

	var cfg models.RulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &parsererror.RulesError{FilePath: path, Err: err}
	}

	rules := cfg.Categories.Normalized()
	if err := rules.Validate(); err != nil {
		return nil, &parsererror.RulesError{FilePath: path, Err: err}
	}

	s.logger.Debug("loaded category rules",
		logging.F(logging.FieldRulesFile, path),
		logging.F(logging.FieldCount, len(rules)))
	return rules, nil
}
