// Package profile defines the canonical candidate representation shared by
// every data source. Mappers in internal/dataset and internal/store normalize
// their raw records into this shape so the filter engine never has to care
// where a profile came from.
package profile

// SourceKind identifies which dataset a profile was mapped from.
type SourceKind string

// Supported data sources.
const (
	SourceGitHub   SourceKind = "github"
	SourceLinkedIn SourceKind = "linkedin"
	SourceInternal SourceKind = "internal"
	SourceOSINT    SourceKind = "osint"
)

// ParseSourceKind parses a mode string from a query parameter. The second
// return value is false for unknown modes.
func ParseSourceKind(s string) (SourceKind, bool) {
	switch SourceKind(s) {
	case SourceGitHub, SourceLinkedIn, SourceInternal, SourceOSINT:
		return SourceKind(s), true
	}
	return "", false
}

// Metrics holds the numeric signals attached to a profile. Every field
// defaults to 0 when the source value is missing or unparseable and is never
// negative.
type Metrics struct {
	Followers     int
	Contributions int
	Repositories  int
	Stars         int
}

// YearMonth is a coarse calendar position used by work-history entries.
// A zero Year means the value is unusable; a zero Month means January.
type YearMonth struct {
	Year  int
	Month int
}

// Experience is one work-history interval. End == nil means the engagement is
// ongoing.
type Experience struct {
	Company string
	Title   string
	Start   *YearMonth
	End     *YearMonth
}

// CanonicalProfile is the unified in-memory candidate record. A profile with
// an empty Identifier is invalid and must be dropped by the mapper that
// produced it.
type CanonicalProfile struct {
	Identifier  string
	DisplayName string
	Role        string
	Company     string
	Location    string
	Skills      []string
	Description string
	Metrics     Metrics
	Source      SourceKind

	// Experiences is populated only by the line-delimited (LinkedIn) mapper
	// and feeds the experience-band predicate.
	Experiences []Experience

	// MatchScore is a cosmetic, presentation-only number carried by internal
	// mock profiles. It is never derived from filter strength.
	MatchScore int
}
