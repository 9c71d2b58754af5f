package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/A-r-j-u001/OSINT-Hive/internal/schemas"
)

// TimelineEntry is one chronological step in an extracted career roadmap.
type TimelineEntry struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Roadmap is the structured career history extracted from free resume/bio
// text.
type Roadmap struct {
	Timeline []TimelineEntry `json:"timeline"`
	Skills   []string        `json:"skills"`
	Summary  string          `json:"summary"`
}

const roadmapSchema = `{
  "type": "object",
  "required": ["timeline", "skills", "summary"],
  "properties": {
    "timeline": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["year", "title"],
        "properties": {
          "year": {"type": "string"},
          "title": {"type": "string"},
          "company": {"type": "string"},
          "description": {"type": "string"},
          "type": {"type": "string", "enum": ["experience", "education", "project"]}
        }
      }
    },
    "skills": {"type": "array", "items": {"type": "string"}},
    "summary": {"type": "string"}
  }
}`

const roadmapPromptTemplate = `You are an expert career analyst. Analyze the following resume/bio text and extract a chronological career roadmap.

Text:
%s

Return a JSON object with this structure:
{
  "timeline": [
    { "year": "YYYY", "title": "Role Title", "company": "Company Name", "description": "Key achievements", "type": "experience" | "education" | "project" }
  ],
  "skills": ["Skill1", "Skill2"],
  "summary": "Brief professional summary"
}
Do not include markdown formatting, just raw JSON.`

// ParseRoadmap extracts a career timeline from free text via the
// collaborator, validating the response before decoding it.
func ParseRoadmap(ctx context.Context, c Client, text string) (*Roadmap, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text content is required")
	}

	raw, err := c.GenerateJSON(ctx, fmt.Sprintf(roadmapPromptTemplate, text), TierStandard)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation failed: %w", err)
	}
	raw = CleanJSONBlock(raw)

	if err := schemas.ValidateJSONString(roadmapSchema, raw); err != nil {
		return nil, fmt.Errorf("roadmap response rejected: %w", err)
	}

	var roadmap Roadmap
	if err := json.Unmarshal([]byte(raw), &roadmap); err != nil {
		return nil, fmt.Errorf("failed to parse roadmap response: %w", err)
	}
	return &roadmap, nil
}
