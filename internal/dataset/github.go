package dataset

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
)

// The GitHub export uses fixed column positions. The indices below are the
// single source of truth for the mapping; ValidateGitHubHeader checks them
// against the header row at load time so a reordered export fails loudly
// instead of silently mis-mapping fields.
const (
	colLabel = iota
	colLogin
	colName
	colCreatedAt
	colRepositories
	colContributions
	colEmail
	colStars
	colFollowers
	colFollowing
	colHireable
	colTwitter
	colCompany
	colLocation
	colLanguages
	colState
	colCity
	colCountry
	colUpdatedAt
	colDescription

	githubColumnCount
)

// githubHeader holds the expected header label for each mapped column.
var githubHeader = [githubColumnCount]string{
	colLabel:         "label",
	colLogin:         "login",
	colName:          "name",
	colCreatedAt:     "created_at",
	colRepositories:  "public_repositories",
	colContributions: "last_year_contributions",
	colEmail:         "email",
	colStars:         "total_stars",
	colFollowers:     "followers",
	colFollowing:     "following",
	colHireable:      "hireable",
	colTwitter:       "twitter_username",
	colCompany:       "works_for",
	colLocation:      "location",
	colLanguages:     "language",
	colState:         "state",
	colCity:          "city",
	colCountry:       "country",
	colUpdatedAt:     "updated_at",
	colDescription:   "description",
}

// ValidateGitHubHeader verifies that the header row carries the labels the
// positional mapping assumes. Comparison is case-insensitive and ignores
// surrounding whitespace; extra trailing columns are tolerated.
func ValidateGitHubHeader(header []string) error {
	if len(header) < githubColumnCount {
		return fmt.Errorf("github dataset header has %d columns, expected at least %d", len(header), githubColumnCount)
	}
	for i, want := range githubHeader {
		got := strings.TrimSpace(header[i])
		if !strings.EqualFold(got, want) {
			return fmt.Errorf("github dataset header mismatch at column %d: got %q, expected %q", i, got, want)
		}
	}
	return nil
}

// MapGitHubRow converts one data row into a canonical profile. The second
// return value is false for structurally invalid rows (too few columns or an
// empty login), which are dropped without surfacing a row-level error.
func MapGitHubRow(cols []string) (profile.CanonicalProfile, bool) {
	if len(cols) < githubColumnCount {
		return profile.CanonicalProfile{}, false
	}

	login := strings.TrimSpace(cols[colLogin])
	if login == "" {
		return profile.CanonicalProfile{}, false
	}

	name := strings.TrimSpace(cols[colName])
	if name == "" {
		name = login
	}

	return profile.CanonicalProfile{
		Identifier:  login,
		DisplayName: name,
		Company:     strings.TrimSpace(cols[colCompany]),
		Location:    strings.TrimSpace(cols[colLocation]),
		Skills:      SplitList(cols[colLanguages]),
		Description: strings.TrimSpace(cols[colDescription]),
		Metrics: profile.Metrics{
			Followers:     parseCount(cols[colFollowers]),
			Contributions: parseCount(cols[colContributions]),
			Repositories:  parseCount(cols[colRepositories]),
			Stars:         parseCount(cols[colStars]),
		},
		Source: profile.SourceGitHub,
	}, true
}

// ReadGitHub loads and maps the whole tabular dataset. The file is read in
// full because quoted multi-line fields require the complete byte stream.
// File-access errors are returned as-is so callers can distinguish a missing
// dataset (degrade to empty results) from a malformed one (fail loudly).
func ReadGitHub(path string) ([]profile.CanonicalProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rows := ParseTabular(string(raw))
	if len(rows) == 0 {
		return nil, nil
	}
	if err := ValidateGitHubHeader(rows[0]); err != nil {
		return nil, err
	}

	profiles := make([]profile.CanonicalProfile, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if p, ok := MapGitHubRow(row); ok {
			profiles = append(profiles, p)
		}
	}
	return profiles, nil
}

// SplitList splits a comma-separated tag string into trimmed, non-empty
// entries. Case is preserved for display; filtering compares case-insensitively.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseCount parses a metric column permissively: non-numeric or missing text
// maps to 0, negatives clamp to 0.
func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
