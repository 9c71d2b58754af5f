package server

import (
	"net/http"

	"github.com/A-r-j-u001/OSINT-Hive/internal/filter"
	"github.com/A-r-j-u001/OSINT-Hive/internal/profile"
	"github.com/A-r-j-u001/OSINT-Hive/internal/search"
)

// SearchResponse is the /api/search response body.
type SearchResponse struct {
	Results []search.ProjectedResult `json:"results"`
	Meta    SearchMeta               `json:"meta"`
}

// SearchMeta describes the result set: Total counts every match in the
// scanned source, Found the size of the returned page.
type SearchMeta struct {
	Total    int    `json:"total"`
	Found    int    `json:"found"`
	Source   string `json:"source"`
	Degraded bool   `json:"degraded,omitempty"`
}

// handleSearch runs a multi-criteria profile query against one of the local
// datasets. Mode defaults to the osint fan-out when absent.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	mode := query.Get("mode")
	if mode == "" {
		mode = string(profile.SourceOSINT)
	}
	source, ok := profile.ParseSourceKind(mode)
	if !ok {
		err := &ErrUnknownSource{Mode: mode}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.engine.Search(r.Context(), source, filter.SpecFromQuery(query))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Search failed: "+err.Error())
		return
	}

	results := search.ProjectAll(result.Profiles)
	s.jsonResponse(w, http.StatusOK, SearchResponse{
		Results: results,
		Meta: SearchMeta{
			Total:    result.Total,
			Found:    len(results),
			Source:   result.Source,
			Degraded: result.Degraded,
		},
	})
}
