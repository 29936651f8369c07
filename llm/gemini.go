package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kaizenlab/fishbone-assistant/common"
	"github.com/kaizenlab/fishbone-assistant/logger"
	"google.golang.org/genai"
)

// GeminiModel implements the LLM interface using the Gemini API
type GeminiModel struct {
	client      *genai.Client
	modelName   string
	maxTokens   int
	temperature float64
	apiTimeout  int // in seconds
}

// NewGemini creates a new Gemini client
func NewGemini(apiKey string, opts ...Option) (*GeminiModel, error) {
	if apiKey == "" {
		errMsg := "Gemini API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	retryClient := common.NewRetryableClient(common.DefaultRetryConfig())

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: retryClient.StandardClient(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := &GeminiModel{
		client:      client,
		modelName:   "gemini-2.0-flash",
		maxTokens:   2048,
		temperature: 0.3,
		apiTimeout:  30,
	}

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok {
				model.modelName = modelName
			}
		case MaxTokensOption:
			if maxTokens, ok := opt.Value.(int); ok {
				model.maxTokens = maxTokens
			}
		case TemperatureOption:
			if temperature, ok := opt.Value.(float64); ok {
				model.temperature = temperature
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				model.apiTimeout = timeout
			}
		}
	}

	if _, err := NewGeminiParams(model.temperature, model.maxTokens); err != nil {
		return nil, err
	}

	logger.Debugf("Gemini client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// Prompt sends a request to Gemini and returns the response
func (g *GeminiModel) Prompt(req Request) Response {
	logger.Debugf("Sending prompt to Gemini model: %s", g.modelName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(g.apiTimeout)*time.Second)
	defer cancel()

	params, err := NewGeminiParams(g.temperature, g.maxTokens)
	if err != nil {
		return Response{Error: err}
	}

	contents := []*genai.Content{}
	for _, m := range req.History {
		var role genai.Role = genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(req.UserPrompt, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(params.Temperature),
		MaxOutputTokens: params.MaxOutputTokens,
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	logger.Infof("Sending request to Gemini with model %s, max tokens %d", g.modelName, g.maxTokens)

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return Response{
			Error: fmt.Errorf("failed to generate content: %w", err),
		}
	}

	text := resp.Text()
	if text == "" {
		return Response{
			Error: errors.New("Gemini response contained no text content"),
		}
	}

	return Response{
		Content: text,
	}
}
