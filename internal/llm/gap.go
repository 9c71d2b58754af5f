package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/A-r-j-u001/OSINT-Hive/internal/schemas"
)

// GapRequest describes a skill-gap analysis request: the candidate's current
// skills versus a target role and its expected skill set.
type GapRequest struct {
	UserSkills   []string `json:"user_skills"`
	TargetRole   string   `json:"target_role"`
	TargetSkills []string `json:"target_skills"`
}

// Recommendation is one actionable learning step in a gap report.
type Recommendation struct {
	Skill    string `json:"skill"`
	Action   string `json:"action"`
	Link     string `json:"link"`
	Platform string `json:"platform"`
}

// GapReport is the structured outcome of a gap analysis.
type GapReport struct {
	Analysis        string           `json:"analysis"`
	MissingSkills   []string         `json:"missing_skills"`
	Recommendations []Recommendation `json:"recommendations"`
}

// FallbackGapReport is the degraded report returned when the collaborator
// fails or produces output that does not survive schema validation.
func FallbackGapReport() *GapReport {
	return &GapReport{
		Analysis:        "Could not generate AI analysis. Falling back to basic comparison.",
		MissingSkills:   []string{},
		Recommendations: []Recommendation{},
	}
}

// gapReportSchema is what a trustworthy collaborator response must look like.
const gapReportSchema = `{
  "type": "object",
  "required": ["analysis", "missing_skills", "recommendations"],
  "properties": {
    "analysis": {"type": "string"},
    "missing_skills": {"type": "array", "items": {"type": "string"}},
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["skill", "action"],
        "properties": {
          "skill": {"type": "string"},
          "action": {"type": "string"},
          "link": {"type": "string"},
          "platform": {"type": "string"}
        }
      }
    }
  }
}`

const gapPromptTemplate = `Act as a Senior Career Coach.
User wants to be a %q.

User Skills: %s
Target/Required Skills for this concrete profile: %s

1. Identify the 3 most critical missing skills/gaps.
2. For each missing skill, provide a specific, actionable recommendation.
   - PRIORITIZE FREE RESOURCES:
     - YouTube Tutorials (Crash Course)
     - FreeCodeCamp Articles/Courses
     - Credly/Google Skill Badge links if applicable
3. Explain why these missing skills are crucial for this specific role.

Return JSON format:
{
  "analysis": "Brief 2-sentence summary...",
  "missing_skills": ["Skill 1", "Skill 2"],
  "recommendations": [
    {
      "skill": "Skill 1",
      "action": "Actionable advice...",
      "link": "https://www.freecodecamp.org/...",
      "platform": "FreeCodeCamp/Credly/YouTube"
    }
  ]
}`

// AnalyzeGaps runs the gap-analysis prompt and validates the response against
// the report schema before decoding it.
func AnalyzeGaps(ctx context.Context, c Client, req GapRequest) (*GapReport, error) {
	if strings.TrimSpace(req.TargetRole) == "" {
		return nil, fmt.Errorf("target role is required")
	}

	prompt := fmt.Sprintf(gapPromptTemplate,
		req.TargetRole, mustJSON(req.UserSkills), mustJSON(req.TargetSkills))

	raw, err := c.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("gap analysis generation failed: %w", err)
	}
	raw = CleanJSONBlock(raw)

	if err := schemas.ValidateJSONString(gapReportSchema, raw); err != nil {
		return nil, fmt.Errorf("gap analysis response rejected: %w", err)
	}

	var report GapReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, fmt.Errorf("failed to parse gap analysis response: %w", err)
	}
	return &report, nil
}

// mustJSON marshals a skills slice for prompt embedding. Marshaling a string
// slice cannot fail; a nil slice renders as [].
func mustJSON(skills []string) string {
	if skills == nil {
		skills = []string{}
	}
	b, _ := json.Marshal(skills)
	return string(b)
}
