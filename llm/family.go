package llm

import (
	"fmt"
	"strings"
)

// ModelFamily groups model ids that accept the same parameter set.
type ModelFamily string

const (
	FamilyGemini ModelFamily = "gemini"
	FamilyClaude ModelFamily = "claude"
	FamilyGPT    ModelFamily = "gpt"
)

// FamilyOf resolves a model id to its family. Bedrock-style ids such as
// "anthropic.claude-3-5-sonnet-..." resolve to the same family as their
// bare names.
func FamilyOf(model string) (ModelFamily, error) {
	switch {
	case strings.HasPrefix(model, "gemini"):
		return FamilyGemini, nil
	case strings.HasPrefix(model, "claude"), strings.HasPrefix(model, "anthropic."):
		return FamilyClaude, nil
	case strings.HasPrefix(model, "gpt"), strings.HasPrefix(model, "o1"), strings.HasPrefix(model, "o3"):
		return FamilyGPT, nil
	}
	return "", fmt.Errorf("llm: unknown model family for %q", model)
}

// Params is the family-tagged union of model parameters. Each variant
// carries only the parameters its family accepts, validated at
// construction.
type Params interface {
	Family() ModelFamily
}

// GeminiParams holds the parameters the Gemini API accepts.
type GeminiParams struct {
	Temperature     float32
	MaxOutputTokens int32
}

func (GeminiParams) Family() ModelFamily { return FamilyGemini }

// NewGeminiParams validates the Gemini ranges (temperature 0..2).
func NewGeminiParams(temperature float64, maxTokens int) (GeminiParams, error) {
	if temperature < 0 || temperature > 2 {
		return GeminiParams{}, fmt.Errorf("llm: gemini temperature %v out of range [0, 2]", temperature)
	}
	if maxTokens <= 0 {
		return GeminiParams{}, fmt.Errorf("llm: gemini max output tokens must be positive, got %d", maxTokens)
	}
	return GeminiParams{
		Temperature:     float32(temperature),
		MaxOutputTokens: int32(maxTokens),
	}, nil
}

// ClaudeParams holds the parameters the Anthropic messages API accepts.
type ClaudeParams struct {
	Temperature float64
	MaxTokens   int64
}

func (ClaudeParams) Family() ModelFamily { return FamilyClaude }

// NewClaudeParams validates the Claude ranges (temperature 0..1).
func NewClaudeParams(temperature float64, maxTokens int) (ClaudeParams, error) {
	if temperature < 0 || temperature > 1 {
		return ClaudeParams{}, fmt.Errorf("llm: claude temperature %v out of range [0, 1]", temperature)
	}
	if maxTokens <= 0 {
		return ClaudeParams{}, fmt.Errorf("llm: claude max tokens must be positive, got %d", maxTokens)
	}
	return ClaudeParams{
		Temperature: temperature,
		MaxTokens:   int64(maxTokens),
	}, nil
}

// GPTParams holds the parameters the OpenAI chat completions API accepts.
type GPTParams struct {
	Temperature float32
	MaxTokens   int
}

func (GPTParams) Family() ModelFamily { return FamilyGPT }

// NewGPTParams validates the GPT ranges (temperature 0..2).
func NewGPTParams(temperature float64, maxTokens int) (GPTParams, error) {
	if temperature < 0 || temperature > 2 {
		return GPTParams{}, fmt.Errorf("llm: gpt temperature %v out of range [0, 2]", temperature)
	}
	if maxTokens <= 0 {
		return GPTParams{}, fmt.Errorf("llm: gpt max tokens must be positive, got %d", maxTokens)
	}
	return GPTParams{
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
	}, nil
}
