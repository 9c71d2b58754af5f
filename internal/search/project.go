package search

import (
	"strings"

	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
)

// ProjectedResult is the presentation-ready shape of a matched profile,
// consumed by the HTTP layer and the CLI.
type ProjectedResult struct {
	Title    string   `json:"title"`
	Link     string   `json:"link"`
	Snippet  string   `json:"snippet"`
	Source   string   `json:"source"`
	Metadata Metadata `json:"metadata"`
}

// Metadata carries the structured fields the result cards render.
type Metadata struct {
	ID            string   `json:"id"`
	Username      string   `json:"username,omitempty"`
	Role          string   `json:"role,omitempty"`
	Company       string   `json:"company,omitempty"`
	Location      string   `json:"location,omitempty"`
	Skills        []string `json:"skills"`
	Followers     int      `json:"followers,omitempty"`
	Contributions int      `json:"contributions,omitempty"`
	Repositories  int      `json:"repositories,omitempty"`
	Stars         int      `json:"stars,omitempty"`
	MatchScore    int      `json:"match_score,omitempty"`
}

// Project maps a canonical profile into its presentation form. It is a pure
// function and cannot fail for any valid profile.
func Project(p profile.CanonicalProfile) ProjectedResult {
	return ProjectedResult{
		Title:   title(p),
		Link:    Link(p),
		Snippet: snippet(p),
		Source:  string(p.Source),
		Metadata: Metadata{
			ID:            p.Identifier,
			Username:      username(p),
			Role:          p.Role,
			Company:       p.Company,
			Location:      p.Location,
			Skills:        skillsOrEmpty(p.Skills),
			Followers:     p.Metrics.Followers,
			Contributions: p.Metrics.Contributions,
			Repositories:  p.Metrics.Repositories,
			Stars:         p.Metrics.Stars,
			MatchScore:    p.MatchScore,
		},
	}
}

// ProjectAll maps a slice of profiles, preserving order.
func ProjectAll(profiles []profile.CanonicalProfile) []ProjectedResult {
	out := make([]ProjectedResult, len(profiles))
	for i, p := range profiles {
		out[i] = Project(p)
	}
	return out
}

// Link builds the source-specific profile URL. Internal profiles link to the
// in-app profile view.
func Link(p profile.CanonicalProfile) string {
	switch p.Source {
	case profile.SourceGitHub:
		return "https://github.com/" + p.Identifier
	case profile.SourceLinkedIn:
		return "https://www.linkedin.com/in/" + p.Identifier
	default:
		return "/profile/internal/" + p.Identifier
	}
}

func title(p profile.CanonicalProfile) string {
	if p.Role != "" {
		return p.DisplayName + " - " + p.Role
	}
	return p.DisplayName
}

// snippet prefers the profile's own description text and otherwise
// synthesizes one from role and location.
func snippet(p profile.CanonicalProfile) string {
	if desc := firstLine(p.Description); desc != "" {
		return desc
	}

	var parts []string
	if p.Role != "" {
		parts = append(parts, p.Role)
	}
	if p.Location != "" {
		parts = append(parts, "based in "+p.Location)
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return "Profile discovered in the " + string(p.Source) + " dataset."
}

func username(p profile.CanonicalProfile) string {
	if p.Source == profile.SourceGitHub {
		return p.Identifier
	}
	return ""
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}

func skillsOrEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
