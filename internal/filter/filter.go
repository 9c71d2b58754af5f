package filter

import (
	"strings"
	"time"

	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
)

// Engine evaluates filter specs against canonical profiles. The zero value is
// not usable; construct with NewEngine.
type Engine struct {
	rules Ruleset
	now   func() time.Time
}

// NewEngine builds a filter engine around a status ruleset. now is injectable
// so experience-band tests can pin the clock; pass nil for time.Now.
func NewEngine(rules Ruleset, now func() time.Time) Engine {
	if now == nil {
		now = time.Now
	}
	return Engine{rules: rules, now: now}
}

// Matches reports whether p satisfies every supplied predicate in s (logical
// AND; absent predicates are vacuously true). Evaluation is total: upstream
// mappers have already normalized missing data to empty strings and zero
// metrics, so no well-formed profile can make this panic or error.
func (e Engine) Matches(p profile.CanonicalProfile, s Spec) bool {
	if s.Keyword != "" && !containsFold(keywordText(p), s.Keyword) {
		return false
	}
	if s.Skill != "" && !anySkillContains(p.Skills, s.Skill) {
		return false
	}
	if s.Company != "" && !containsFold(p.Company, s.Company) {
		return false
	}
	if s.Status != "" && flatSource(p.Source) && !e.rules.Classify(s.Status, p.Company, p.Description) {
		return false
	}
	if s.ExperienceBand != "" && p.Source == profile.SourceLinkedIn &&
		!BandMatches(s.ExperienceBand, TotalYears(p.Experiences, e.now())) {
		return false
	}

	m := p.Metrics
	return m.Followers >= s.MinFollowers &&
		m.Contributions >= s.MinContributions &&
		m.Repositories >= s.MinRepositories &&
		m.Stars >= s.MinStars
}

// flatSource reports whether a source carries the flat company/description
// pair the status heuristic is defined over. LinkedIn profiles express
// status through structured work history instead, so the classification
// predicate does not apply to them.
func flatSource(src profile.SourceKind) bool {
	return src == profile.SourceGitHub || src == profile.SourceInternal
}

// keywordText assembles the source-appropriate text fields for keyword
// matching: login and name for the tabular source, name plus occupation,
// headline and summary text for the line-delimited source, and everything
// for internal records.
func keywordText(p profile.CanonicalProfile) string {
	switch p.Source {
	case profile.SourceGitHub:
		return p.Identifier + " " + p.DisplayName
	case profile.SourceLinkedIn:
		return p.DisplayName + " " + p.Role + " " + p.Description
	default:
		return p.Identifier + " " + p.DisplayName + " " + p.Role + " " + p.Description
	}
}

func anySkillContains(skills []string, needle string) bool {
	for _, s := range skills {
		if containsFold(s, needle) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
