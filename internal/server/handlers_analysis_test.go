package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-r-j-u001/OSINT-Hive/internal/llm"
)

// stubLLM returns a canned collaborator response or error.
type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubLLM) Close() error { return nil }

func analysisTestServer(t *testing.T, client llm.Client) *httptest.Server {
	t.Helper()
	srv, err := New(testConfig(t))
	require.NoError(t, err)
	srv.llmClient = client
	return newHTTPTestServer(t, srv)
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func TestGapAnalysis_NoClientConfigured(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/gap-analysis", `{"targetRole":"SRE"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestGapAnalysis_Success(t *testing.T) {
	ts := analysisTestServer(t, &stubLLM{response: `{
		"analysis": "Solid base, missing cloud skills.",
		"missing_skills": ["Kubernetes"],
		"recommendations": [{"skill": "Kubernetes", "action": "Take a crash course."}]
	}`})

	resp := postJSON(t, ts.URL+"/api/gap-analysis",
		`{"userSkills":["Go"],"targetRole":"Platform Engineer","targetSkills":["Go","Kubernetes"]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var report llm.GapReport
	decodeBody(t, resp, &report)
	assert.Equal(t, []string{"Kubernetes"}, report.MissingSkills)
}

func TestGapAnalysis_MissingTargetRole(t *testing.T) {
	ts := analysisTestServer(t, &stubLLM{})

	resp := postJSON(t, ts.URL+"/api/gap-analysis", `{"userSkills":["Go"]}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGapAnalysis_WhitespaceTargetRole(t *testing.T) {
	ts := analysisTestServer(t, &stubLLM{})

	// Whitespace-only role is a validation failure, not a collaborator error.
	resp := postJSON(t, ts.URL+"/api/gap-analysis", `{"targetRole":"   "}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGapAnalysis_InvalidBody(t *testing.T) {
	ts := analysisTestServer(t, &stubLLM{})

	resp := postJSON(t, ts.URL+"/api/gap-analysis", `{not json`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGapAnalysis_CollaboratorFailureReturnsFallback(t *testing.T) {
	ts := analysisTestServer(t, &stubLLM{err: errors.New("quota exceeded")})

	resp := postJSON(t, ts.URL+"/api/gap-analysis", `{"targetRole":"SRE"}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var report llm.GapReport
	decodeBody(t, resp, &report)
	assert.Equal(t, llm.FallbackGapReport().Analysis, report.Analysis)
}

func TestGapAnalysis_SchemaViolationReturnsFallback(t *testing.T) {
	// Response survives JSON decode but fails schema validation.
	ts := analysisTestServer(t, &stubLLM{response: `{"analysis": "only this"}`})

	resp := postJSON(t, ts.URL+"/api/gap-analysis", `{"targetRole":"SRE"}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var report llm.GapReport
	decodeBody(t, resp, &report)
	assert.NotNil(t, report.MissingSkills)
}

func TestParseRoadmap_Success(t *testing.T) {
	ts := analysisTestServer(t, &stubLLM{response: `{
		"timeline": [{"year": "2021", "title": "Engineer", "type": "experience"}],
		"skills": ["Go"],
		"summary": "An engineer."
	}`})

	resp := postJSON(t, ts.URL+"/api/roadmap/parse", `{"text":"resume text"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var roadmap llm.Roadmap
	decodeBody(t, resp, &roadmap)
	require.Len(t, roadmap.Timeline, 1)
	assert.Equal(t, "Engineer", roadmap.Timeline[0].Title)
}

func TestParseRoadmap_EmptyText(t *testing.T) {
	ts := analysisTestServer(t, &stubLLM{})

	for _, body := range []string{`{"text":""}`, `{"text":"  \n "}`} {
		resp := postJSON(t, ts.URL+"/api/roadmap/parse", body)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestParseRoadmap_CollaboratorFailure(t *testing.T) {
	ts := analysisTestServer(t, &stubLLM{err: errors.New("deadline exceeded")})

	resp := postJSON(t, ts.URL+"/api/roadmap/parse", `{"text":"resume"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestParseRoadmap_NoClientConfigured(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/roadmap/parse", `{"text":"resume"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
