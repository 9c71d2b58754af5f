package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile_GitHub(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/profiles/github/alice")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body ProfileResponse
	decodeBody(t, resp, &body)

	assert.Equal(t, "alice", body.Profile.ID)
	assert.Equal(t, "Alice", body.Profile.Name)
	assert.Equal(t, "Infosys", body.Profile.Company)
	assert.Equal(t, 900, body.Profile.Followers)
	assert.Equal(t, "github", body.Profile.Source)
	assert.Equal(t, "https://github.com/alice", body.Result.Link)
}

func TestGetProfile_LinkedInWithExperiences(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/profiles/linkedin/jane-doe")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body ProfileResponse
	decodeBody(t, resp, &body)

	assert.Equal(t, "Jane Doe", body.Profile.Name)
	require.Len(t, body.Profile.Experiences, 1)
	exp := body.Profile.Experiences[0]
	assert.Equal(t, "Acme", exp.Company)
	assert.Equal(t, 2021, exp.StartYear)
	assert.True(t, exp.Ongoing)
}

func TestGetProfile_Internal(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/profiles/internal/usr_hero_001")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body ProfileResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Rohan Sharma", body.Profile.Name)
}

func TestGetProfile_OSINTFallsThrough(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/profiles/osint/jane-doe")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body ProfileResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "linkedin", body.Profile.Source)
}

func TestGetProfile_NotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/profiles/github/nobody")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["error"], "not found")
}

func TestGetProfile_UnknownMode(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/profiles/darkweb/alice")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
