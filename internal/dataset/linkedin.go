package dataset

import (
	"encoding/json"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
)

// summaryRoleLimit caps the length of a role synthesized from a profile
// summary when both occupation and headline are absent.
const summaryRoleLimit = 80

type linkedinRecord struct {
	PublicIdentifier string             `json:"public_identifier"`
	FullName         string             `json:"full_name"`
	FirstName        string             `json:"first_name"`
	LastName         string             `json:"last_name"`
	Occupation       string             `json:"occupation"`
	Headline         string             `json:"headline"`
	Summary          string             `json:"summary"`
	City             string             `json:"city"`
	State            string             `json:"state"`
	Country          string             `json:"country_full_name"`
	Skills           []string           `json:"skills"`
	Experiences      []linkedinExperien `json:"experiences"`
}

type linkedinExperien struct {
	Company  string        `json:"company"`
	Title    string        `json:"title"`
	StartsAt *linkedinDate `json:"starts_at"`
	EndsAt   *linkedinDate `json:"ends_at"`
}

type linkedinDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ScanLinkedIn streams the line-delimited dataset at path, mapping each
// decodable record into a canonical profile and passing it to fn in file
// order. Lines that fail to decode and records without a public identifier
// are skipped silently. fn may return ErrStop to end the scan early.
func ScanLinkedIn(path string, fn func(profile.CanonicalProfile) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return ScanLines(f, func(line []byte) error {
		var rec linkedinRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil
		}
		p, ok := mapLinkedInRecord(rec)
		if !ok {
			return nil
		}
		return fn(p)
	})
}

func mapLinkedInRecord(rec linkedinRecord) (profile.CanonicalProfile, bool) {
	id := strings.TrimSpace(rec.PublicIdentifier)
	if id == "" {
		return profile.CanonicalProfile{}, false
	}

	name := strings.TrimSpace(rec.FullName)
	if name == "" {
		name = strings.TrimSpace(strings.TrimSpace(rec.FirstName) + " " + strings.TrimSpace(rec.LastName))
	}
	if name == "" {
		name = id
	}

	exps := make([]profile.Experience, 0, len(rec.Experiences))
	company := ""
	for i, e := range rec.Experiences {
		if i == 0 {
			company = strings.TrimSpace(e.Company)
		}
		exps = append(exps, profile.Experience{
			Company: strings.TrimSpace(e.Company),
			Title:   strings.TrimSpace(e.Title),
			Start:   mapDate(e.StartsAt),
			End:     mapDate(e.EndsAt),
		})
	}

	skills := make([]string, 0, len(rec.Skills))
	for _, s := range rec.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	return profile.CanonicalProfile{
		Identifier:  id,
		DisplayName: name,
		Role:        roleFor(rec),
		Company:     company,
		Location:    locationFor(rec),
		Skills:      skills,
		Description: descriptionFor(rec),
		Source:      profile.SourceLinkedIn,
		Experiences: exps,
	}, true
}

// roleFor picks the occupation text, falling back to the headline and then to
// a truncated summary when the record carries neither.
func roleFor(rec linkedinRecord) string {
	if occ := strings.TrimSpace(rec.Occupation); occ != "" {
		return occ
	}
	if hl := strings.TrimSpace(rec.Headline); hl != "" {
		return hl
	}
	return truncate(strings.TrimSpace(rec.Summary), summaryRoleLimit)
}

// descriptionFor joins the headline and summary so keyword search sees both.
func descriptionFor(rec linkedinRecord) string {
	hl := strings.TrimSpace(rec.Headline)
	sum := strings.TrimSpace(rec.Summary)
	switch {
	case hl == "":
		return sum
	case sum == "":
		return hl
	default:
		return hl + "\n" + sum
	}
}

func locationFor(rec linkedinRecord) string {
	var parts []string
	for _, p := range []string{rec.City, rec.State, rec.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func mapDate(d *linkedinDate) *profile.YearMonth {
	if d == nil || d.Year == 0 {
		return nil
	}
	return &profile.YearMonth{Year: d.Year, Month: d.Month}
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit]))
}
