package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
)

func writeLinkedInFixture(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func collectLinkedIn(t *testing.T, path string) []profile.CanonicalProfile {
	t.Helper()
	var out []profile.CanonicalProfile
	require.NoError(t, ScanLinkedIn(path, func(p profile.CanonicalProfile) error {
		out = append(out, p)
		return nil
	}))
	return out
}

func TestScanLinkedIn_MapsRecord(t *testing.T) {
	path := writeLinkedInFixture(t,
		`{"public_identifier":"jane-doe","full_name":"Jane Doe","occupation":"Backend Engineer at Acme","headline":"Go | Distributed Systems","summary":"Eight years of infra work.","city":"Pune","state":"Maharashtra","country_full_name":"India","skills":["Go","PostgreSQL"],"experiences":[{"company":"Acme","title":"Backend Engineer","starts_at":{"year":2020,"month":3}}]}`,
	)

	profiles := collectLinkedIn(t, path)
	require.Len(t, profiles, 1)

	p := profiles[0]
	assert.Equal(t, "jane-doe", p.Identifier)
	assert.Equal(t, "Jane Doe", p.DisplayName)
	assert.Equal(t, "Backend Engineer at Acme", p.Role)
	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, "Pune, Maharashtra, India", p.Location)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, p.Skills)
	assert.Equal(t, "Go | Distributed Systems\nEight years of infra work.", p.Description)
	assert.Equal(t, profile.SourceLinkedIn, p.Source)
	require.Len(t, p.Experiences, 1)
	require.NotNil(t, p.Experiences[0].Start)
	assert.Equal(t, 2020, p.Experiences[0].Start.Year)
	assert.Nil(t, p.Experiences[0].End)
}

func TestScanLinkedIn_SkipsMalformedLines(t *testing.T) {
	path := writeLinkedInFixture(t,
		`{"public_identifier":"ok-one","full_name":"Ok One"}`,
		`{not valid json`,
		``,
		`{"full_name":"No Identifier"}`,
		`{"public_identifier":"ok-two","full_name":"Ok Two"}`,
	)

	profiles := collectLinkedIn(t, path)
	require.Len(t, profiles, 2)
	assert.Equal(t, "ok-one", profiles[0].Identifier)
	assert.Equal(t, "ok-two", profiles[1].Identifier)
}

func TestScanLinkedIn_OversizedLineSkipped(t *testing.T) {
	oversized := `{"public_identifier":"huge","summary":"` + strings.Repeat("x", maxLineBytes) + `"}`
	path := writeLinkedInFixture(t,
		oversized,
		`{"public_identifier":"jane-doe","full_name":"Jane Doe"}`,
	)

	profiles := collectLinkedIn(t, path)
	require.Len(t, profiles, 1)
	assert.Equal(t, "jane-doe", profiles[0].Identifier)
}

func TestScanLinkedIn_ErrStopEndsScanEarly(t *testing.T) {
	path := writeLinkedInFixture(t,
		`{"public_identifier":"first"}`,
		`{"public_identifier":"second"}`,
	)

	var seen int
	err := ScanLinkedIn(path, func(profile.CanonicalProfile) error {
		seen++
		return ErrStop
	})
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}

func TestScanLinkedIn_MissingFile(t *testing.T) {
	err := ScanLinkedIn(filepath.Join(t.TempDir(), "absent.txt"), func(profile.CanonicalProfile) error {
		t.Fatal("callback should not run")
		return nil
	})
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestMapLinkedInRecord_NameFallbacks(t *testing.T) {
	p, ok := mapLinkedInRecord(linkedinRecord{
		PublicIdentifier: "raj-k",
		FirstName:        "Raj",
		LastName:         "K",
	})
	require.True(t, ok)
	assert.Equal(t, "Raj K", p.DisplayName)

	p, ok = mapLinkedInRecord(linkedinRecord{PublicIdentifier: "raj-k"})
	require.True(t, ok)
	assert.Equal(t, "raj-k", p.DisplayName)
}

func TestMapLinkedInRecord_RoleFallbackChain(t *testing.T) {
	rec := linkedinRecord{PublicIdentifier: "x", Headline: "Data Engineer"}
	p, _ := mapLinkedInRecord(rec)
	assert.Equal(t, "Data Engineer", p.Role)

	long := strings.Repeat("builds data pipelines ", 10)
	rec = linkedinRecord{PublicIdentifier: "x", Summary: long}
	p, _ = mapLinkedInRecord(rec)
	assert.LessOrEqual(t, len([]rune(p.Role)), summaryRoleLimit)
	assert.True(t, strings.HasPrefix(long, p.Role))
}

func TestMapLinkedInRecord_CompanyFromFirstExperience(t *testing.T) {
	p, _ := mapLinkedInRecord(linkedinRecord{
		PublicIdentifier: "x",
		Experiences: []linkedinExperien{
			{Company: " Razorpay ", Title: "SDE II"},
			{Company: "Old Corp", Title: "SDE I"},
		},
	})
	assert.Equal(t, "Razorpay", p.Company)
	assert.Len(t, p.Experiences, 2)
}
