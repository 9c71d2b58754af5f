package llm

// ModelTier represents the complexity level of a model.
type ModelTier string

const (
	// TierLite is for simple extraction and classification prompts.
	TierLite ModelTier = "lite"
	// TierStandard is for structured-output prompts like gap analysis.
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the application.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// Model returns the model name for a tier, falling back to the standard tier.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierStandard]
}
