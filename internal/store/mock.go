package store

import (
	"context"
	"strings"

	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
)

// MockStore serves a fixed, deterministic set of internal profiles. It backs
// the internal search mode when no database is configured, so the demo works
// out of the box.
type MockStore struct {
	profiles []profile.CanonicalProfile
}

// NewMockStore returns a store seeded with the demo alumni profiles.
func NewMockStore() *MockStore {
	return &MockStore{profiles: mockProfiles()}
}

// List returns the seeded profiles in insertion order.
func (s *MockStore) List(_ context.Context) ([]profile.CanonicalProfile, error) {
	out := make([]profile.CanonicalProfile, len(s.profiles))
	copy(out, s.profiles)
	return out, nil
}

// GetByID returns the seeded profile with the given identifier, or nil.
// Lookup is case-insensitive to match the file-backed sources.
func (s *MockStore) GetByID(_ context.Context, id string) (*profile.CanonicalProfile, error) {
	for _, p := range s.profiles {
		if strings.EqualFold(p.Identifier, id) {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

// Close is a no-op; the mock store holds no resources.
func (s *MockStore) Close() {}

func mockProfiles() []profile.CanonicalProfile {
	return []profile.CanonicalProfile{
		{
			Identifier:  "usr_hero_001",
			DisplayName: "Rohan Sharma",
			Role:        "Senior Backend Engineer",
			Company:     "Swiggy",
			Location:    "Bangalore",
			Skills:      []string{"Node.js", "Express", "MongoDB", "Redis", "Docker"},
			Description: "AKTU alumnus, 2023 batch. Campus placement at Swiggy after a GSoC stint with Apache.",
			Metrics:     profile.Metrics{Followers: 120, Contributions: 840, Repositories: 32, Stars: 150},
			Source:      profile.SourceInternal,
			MatchScore:  98,
		},
		{
			Identifier:  "usr_hero_002",
			DisplayName: "Aditya Singh",
			Role:        "Full Stack Developer",
			Company:     "",
			Location:    "Remote",
			Skills:      []string{"React", "Next.js", "TypeScript", "Tailwind", "PostgreSQL"},
			Description: "Freelance full stack developer and open source maintainer.",
			Metrics:     profile.Metrics{Followers: 312, Contributions: 1200, Repositories: 45, Stars: 520},
			Source:      profile.SourceInternal,
			MatchScore:  78,
		},
		{
			Identifier:  "usr_hero_003",
			DisplayName: "Priya Verma",
			Role:        "Data Scientist",
			Company:     "Razorpay",
			Location:    "Mumbai",
			Skills:      []string{"Python", "Pandas", "TensorFlow", "SQL"},
			Description: "ML platform work on fraud detection. Ex-IIT Bombay research assistant.",
			Metrics:     profile.Metrics{Followers: 95, Contributions: 610, Repositories: 21, Stars: 88},
			Source:      profile.SourceInternal,
			MatchScore:  91,
		},
		{
			Identifier:  "usr_hero_004",
			DisplayName: "Karan Mehta",
			Role:        "DevOps Engineer",
			Company:     "Cred",
			Location:    "Bangalore",
			Skills:      []string{"Kubernetes", "Terraform", "Go", "AWS"},
			Description: "Infrastructure and reliability. Speaks at local cloud-native meetups.",
			Metrics:     profile.Metrics{Followers: 210, Contributions: 930, Repositories: 54, Stars: 340},
			Source:      profile.SourceInternal,
			MatchScore:  85,
		},
		{
			Identifier:  "usr_hero_005",
			DisplayName: "Sneha Iyer",
			Role:        "Computer Science Student",
			Company:     "NIT Trichy",
			Location:    "Trichy",
			Skills:      []string{"C++", "Python", "Competitive Programming"},
			Description: "Final year student at NIT Trichy, open to work. Maintains an algorithms study repo.",
			Metrics:     profile.Metrics{Followers: 45, Contributions: 380, Repositories: 12, Stars: 60},
			Source:      profile.SourceInternal,
			MatchScore:  70,
		},
	}
}
