// Package filter evaluates query-time predicates against canonical profiles.
// Every predicate is optional; a profile matches a Spec only when all supplied
// predicates hold.
package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// StatusClass is the heuristic professional-status classification. The
// classes are not mutually exclusive; the engine only ever checks the single
// class a caller asked for.
type StatusClass string

// Recognized status classes.
const (
	StatusStudent    StatusClass = "student"
	StatusCorporate  StatusClass = "corporate"
	StatusFreelancer StatusClass = "freelancer"
)

// ParseStatusClass parses a status query parameter case-insensitively. The
// second return value is false for unknown values, which callers treat as
// "no constraint" per the permissive-parameter policy.
func ParseStatusClass(s string) (StatusClass, bool) {
	switch StatusClass(strings.ToLower(strings.TrimSpace(s))) {
	case StatusStudent:
		return StatusStudent, true
	case StatusCorporate:
		return StatusCorporate, true
	case StatusFreelancer:
		return StatusFreelancer, true
	}
	return "", false
}

// Spec is one query's filter specification. The zero value constrains
// nothing and matches every profile.
type Spec struct {
	Keyword          string
	Skill            string
	Status           StatusClass
	Company          string
	ExperienceBand   string
	MinFollowers     int
	MinContributions int
	MinRepositories  int
	MinStars         int
}

// SpecFromQuery derives a Spec from raw query parameters. Parsing is
// permissive throughout: unknown enum values, non-numeric thresholds and the
// literal "any" all mean "no constraint".
func SpecFromQuery(q url.Values) Spec {
	s := Spec{
		Keyword: strings.TrimSpace(q.Get("q")),
		Skill:   strings.TrimSpace(q.Get("lang")),
	}

	if status, ok := ParseStatusClass(q.Get("status")); ok {
		s.Status = status
	}
	if co := strings.TrimSpace(q.Get("co")); !strings.EqualFold(co, "any") {
		s.Company = co
	}
	if exp := strings.TrimSpace(q.Get("exp")); !strings.EqualFold(exp, "any") {
		s.ExperienceBand = exp
	}

	s.MinFollowers = permissiveMin(q.Get("followers"))
	s.MinContributions = permissiveMin(q.Get("contrib"))
	s.MinRepositories = permissiveMin(q.Get("repos"))
	s.MinStars = permissiveMin(q.Get("stars"))
	return s
}

// permissiveMin parses a numeric threshold, treating anything unparseable or
// negative as 0 (no constraint).
func permissiveMin(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
