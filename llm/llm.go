package llm

import (
	"fmt"
	"os"
)

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption   OptionType = "model"
	MaxTokensOption   OptionType = "max_tokens"
	TemperatureOption OptionType = "temperature"
	APITimeoutOption  OptionType = "api_timeout"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithMaxTokens creates an option to set the max tokens
func WithMaxTokens(maxTokens int) Option {
	return Option{
		Type:  MaxTokensOption,
		Value: maxTokens,
	}
}

// WithTemperature creates an option to set the sampling temperature
func WithTemperature(temperature float64) Option {
	return Option{
		Type:  TemperatureOption,
		Value: temperature,
	}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// Message roles used in conversation history
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation
type Message struct {
	Role    string
	Content string
}

// Request represents the data needed to prompt the LLM
type Request struct {
	SystemPrompt string
	UserPrompt   string
	History      []Message
}

// Response represents the response from the LLM
type Response struct {
	Content string
	Error   error
}

// LLM defines the interface for language model prompting
type LLM interface {
	// Prompt sends a request to the language model and returns its response
	Prompt(req Request) Response
}

func getAPIKey(envVar string) (string, error) {
	apiKey := os.Getenv(envVar)
	if apiKey == "" {
		return "", fmt.Errorf("%s environment variable is not set", envVar)
	}
	return apiKey, nil
}

// NewLLM resolves the model id to its family and builds the matching
// provider client. The API key is read from the family's environment
// variable.
func NewLLM(modelName string, opts ...Option) (LLM, error) {
	family, err := FamilyOf(modelName)
	if err != nil {
		return nil, err
	}

	options := []Option{
		WithModel(modelName),
		WithMaxTokens(2048),
		WithAPITimeout(60),
	}
	options = append(options, opts...)

	var llmClient LLM
	switch family {
	case FamilyGemini:
		var apiKey string
		apiKey, err = getAPIKey("GEMINI_API_KEY")
		if err == nil {
			llmClient, err = NewGemini(apiKey, options...)
		}
	case FamilyClaude:
		var apiKey string
		apiKey, err = getAPIKey("ANTHROPIC_API_KEY")
		if err == nil {
			llmClient, err = NewAnthropic(apiKey, options...)
		}
	case FamilyGPT:
		var apiKey string
		apiKey, err = getAPIKey("OPENAI_API_KEY")
		if err == nil {
			llmClient, err = NewOpenAI(apiKey, options...)
		}
	default:
		err = fmt.Errorf("unsupported model family: %s", family)
	}

	if err != nil {
		return nil, err
	}
	return llmClient, nil
}
