package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/A-r-j-u001/OSINT-Hive/internal/llm"
)

// analysisTimeout bounds a single collaborator call.
const analysisTimeout = 60 * time.Second

// GapAnalysisRequest is the /api/gap-analysis request body.
type GapAnalysisRequest struct {
	UserSkills   []string `json:"userSkills"`
	TargetRole   string   `json:"targetRole"`
	TargetSkills []string `json:"targetSkills"`
}

// RoadmapRequest is the /api/roadmap/parse request body.
type RoadmapRequest struct {
	Text string `json:"text"`
}

// handleGapAnalysis asks the collaborator for a skill-gap report. Collaborator
// failures degrade to the documented fallback report with a 502 so the UI can
// always render something.
func (s *Server) handleGapAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.llmClient == nil {
		err := &ErrAnalysisUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req GapAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.TargetRole) == "" {
		verr := &ErrValidation{Field: "targetRole", Message: "target role is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()

	report, err := llm.AnalyzeGaps(ctx, s.llmClient, llm.GapRequest{
		UserSkills:   req.UserSkills,
		TargetRole:   req.TargetRole,
		TargetSkills: req.TargetSkills,
	})
	if err != nil {
		log.Printf("Gap analysis failed: %v", err)
		s.jsonResponse(w, http.StatusBadGateway, llm.FallbackGapReport())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleParseRoadmap extracts a career timeline from free text.
func (s *Server) handleParseRoadmap(w http.ResponseWriter, r *http.Request) {
	if s.llmClient == nil {
		err := &ErrAnalysisUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		verr := &ErrValidation{Field: "text", Message: "text content is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), analysisTimeout)
	defer cancel()

	roadmap, err := llm.ParseRoadmap(ctx, s.llmClient, req.Text)
	if err != nil {
		log.Printf("Roadmap parsing failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "Failed to parse roadmap")
		return
	}

	s.jsonResponse(w, http.StatusOK, roadmap)
}
