package filter

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ruleset holds the keyword tables behind the student/corporate/freelancer
// heuristic. Keeping the rules as data rather than inline branching makes
// each class independently testable and lets deployments override the tables
// via a YAML file.
type Ruleset struct {
	// Student markers, matched against company and description.
	Student []string `yaml:"student"`
	// CorporateExclude disqualifies a non-empty company from counting as
	// corporate employment.
	CorporateExclude []string `yaml:"corporate_exclude"`
	// Freelancer markers, matched against company and description.
	Freelancer []string `yaml:"freelancer"`
	// IndependentExclude blocks the secondary "empty company means likely
	// independent" freelancer heuristic.
	IndependentExclude []string `yaml:"independent_exclude"`
}

// DefaultRuleset returns the compiled-in keyword tables.
func DefaultRuleset() Ruleset {
	return Ruleset{
		Student: []string{
			"student", "university", "college", "institute", "school",
			"academy", "learning", "iit", "nit", "iiit", "bits", "vit",
		},
		CorporateExclude: []string{
			"student", "college", "university", "freelance", "open to work",
			"focusing", "self-employed", "independent",
		},
		Freelancer: []string{
			"freelance", "self-employed", "independent", "consultant",
			"founder", "owner", "open to work",
		},
		IndependentExclude: []string{"student", "university", "college"},
	}
}

// LoadRuleset reads a Ruleset from a YAML file. Classes left empty in the
// file keep their default tables.
func LoadRuleset(path string) (Ruleset, error) {
	rs := DefaultRuleset()

	raw, err := os.ReadFile(path)
	if err != nil {
		return rs, fmt.Errorf("failed to read ruleset %s: %w", path, err)
	}

	var override Ruleset
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return rs, fmt.Errorf("failed to parse ruleset %s: %w", path, err)
	}

	if len(override.Student) > 0 {
		rs.Student = override.Student
	}
	if len(override.CorporateExclude) > 0 {
		rs.CorporateExclude = override.CorporateExclude
	}
	if len(override.Freelancer) > 0 {
		rs.Freelancer = override.Freelancer
	}
	if len(override.IndependentExclude) > 0 {
		rs.IndependentExclude = override.IndependentExclude
	}
	return rs, nil
}

// Classify reports whether the (company, description) pair satisfies the
// requested class. The classes overlap by construction, so a profile may
// satisfy more than one; only the class the caller asked for is checked.
func (r Ruleset) Classify(class StatusClass, company, description string) bool {
	co := strings.ToLower(company)
	desc := strings.ToLower(description)

	switch class {
	case StatusStudent:
		return containsAny(co, r.Student) || containsAny(desc, r.Student)
	case StatusCorporate:
		return strings.TrimSpace(co) != "" && !containsAny(co, r.CorporateExclude)
	case StatusFreelancer:
		if containsAny(co, r.Freelancer) || containsAny(desc, r.Freelancer) {
			return true
		}
		// Empty employer with no student signal reads as likely independent.
		return strings.TrimSpace(co) == "" && !containsAny(desc, r.IndependentExclude)
	}
	return false
}

// containsAny reports whether text (already lowercased) contains any needle.
func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(text, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
