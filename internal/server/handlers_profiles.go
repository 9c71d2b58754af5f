package server

import (
	"net/http"

	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
	"github.com/A-r-j-u001/OSINT-Hive/internal/search"
)

// ProfileResponse is the /api/profiles/{mode}/{id} response body: the
// projected card plus the full canonical detail.
type ProfileResponse struct {
	Result  search.ProjectedResult `json:"result"`
	Profile ProfileDetail          `json:"profile"`
}

// ProfileDetail exposes the canonical profile fields.
type ProfileDetail struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Role        string             `json:"role,omitempty"`
	Company     string             `json:"company,omitempty"`
	Location    string             `json:"location,omitempty"`
	Skills      []string           `json:"skills"`
	Description string             `json:"description,omitempty"`
	Followers   int                `json:"followers"`
	Contribs    int                `json:"contributions"`
	Repos       int                `json:"repositories"`
	Stars       int                `json:"stars"`
	Source      string             `json:"source"`
	Experiences []ExperienceDetail `json:"experiences,omitempty"`
}

// ExperienceDetail is one work-history interval in a profile response.
type ExperienceDetail struct {
	Company    string `json:"company,omitempty"`
	Title      string `json:"title,omitempty"`
	StartYear  int    `json:"start_year,omitempty"`
	StartMonth int    `json:"start_month,omitempty"`
	EndYear    int    `json:"end_year,omitempty"`
	EndMonth   int    `json:"end_month,omitempty"`
	Ongoing    bool   `json:"ongoing"`
}

// handleGetProfile looks up one profile by identifier within a source.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	mode := r.PathValue("mode")
	id := r.PathValue("id")
	if id == "" {
		err := &ErrValidation{Field: "id", Message: "profile identifier is required"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	source, ok := profile.ParseSourceKind(mode)
	if !ok {
		err := &ErrUnknownSource{Mode: mode}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	p, err := s.engine.Lookup(r.Context(), source, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Profile lookup failed: "+err.Error())
		return
	}
	if p == nil {
		notFound := &ErrProfileNotFound{Source: mode, ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ProfileResponse{
		Result:  search.Project(*p),
		Profile: profileDetail(*p),
	})
}

func profileDetail(p profile.CanonicalProfile) ProfileDetail {
	detail := ProfileDetail{
		ID:          p.Identifier,
		Name:        p.DisplayName,
		Role:        p.Role,
		Company:     p.Company,
		Location:    p.Location,
		Skills:      p.Skills,
		Description: p.Description,
		Followers:   p.Metrics.Followers,
		Contribs:    p.Metrics.Contributions,
		Repos:       p.Metrics.Repositories,
		Stars:       p.Metrics.Stars,
		Source:      string(p.Source),
	}
	if detail.Skills == nil {
		detail.Skills = []string{}
	}
	for _, e := range p.Experiences {
		d := ExperienceDetail{Company: e.Company, Title: e.Title, Ongoing: e.End == nil}
		if e.Start != nil {
			d.StartYear, d.StartMonth = e.Start.Year, e.Start.Month
		}
		if e.End != nil {
			d.EndYear, d.EndMonth = e.End.Year, e.End.Month
		}
		detail.Experiences = append(detail.Experiences, d)
	}
	return detail
}
