package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoadmap_ValidResponse(t *testing.T) {
	c := &fakeClient{response: `{
		"timeline": [
			{"year": "2021", "title": "Backend Engineer", "company": "Acme", "description": "Built the billing service.", "type": "experience"},
			{"year": "2017", "title": "B.Tech CSE", "company": "NIT Trichy", "type": "education"}
		],
		"skills": ["Go", "PostgreSQL"],
		"summary": "Backend engineer with a billing focus."
	}`}

	roadmap, err := ParseRoadmap(context.Background(), c, "resume text here")
	require.NoError(t, err)

	require.Len(t, roadmap.Timeline, 2)
	assert.Equal(t, "Backend Engineer", roadmap.Timeline[0].Title)
	assert.Equal(t, "education", roadmap.Timeline[1].Type)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, roadmap.Skills)
	assert.Contains(t, c.lastPrompt, "resume text here")
	assert.Equal(t, TierStandard, c.lastTier)
}

func TestParseRoadmap_EmptyText(t *testing.T) {
	c := &fakeClient{}
	_, err := ParseRoadmap(context.Background(), c, "   ")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "text content is required")
	assert.Empty(t, c.lastPrompt)
}

func TestParseRoadmap_GenerationFailure(t *testing.T) {
	boom := errors.New("deadline exceeded")
	_, err := ParseRoadmap(context.Background(), &fakeClient{err: boom}, "text")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestParseRoadmap_InvalidTimelineTypeRejected(t *testing.T) {
	// "hobby" is outside the schema's type enum.
	c := &fakeClient{response: `{
		"timeline": [{"year": "2021", "title": "X", "type": "hobby"}],
		"skills": [],
		"summary": "s"
	}`}

	_, err := ParseRoadmap(context.Background(), c, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestParseRoadmap_MissingSummaryRejected(t *testing.T) {
	c := &fakeClient{response: `{"timeline": [], "skills": []}`}

	_, err := ParseRoadmap(context.Background(), c, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}
