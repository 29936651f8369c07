package llm

import "testing"

func TestNewLLMUnknownFamily(t *testing.T) {
	if _, err := NewLLM("mistral-large"); err == nil {
		t.Error("Expected error for unknown model family")
	}
}

func TestNewLLMMissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := NewLLM("gemini-2.0-flash"); err == nil {
		t.Error("Expected error when the API key env var is unset")
	}
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	if _, err := NewOpenAI(""); err == nil {
		t.Error("Expected error for empty API key")
	}
}

func TestNewOpenAIAppliesOptions(t *testing.T) {
	model, err := NewOpenAI("test-key",
		WithModel("gpt-4o"),
		WithMaxTokens(512),
		WithTemperature(0.9),
		WithAPITimeout(120),
	)
	if err != nil {
		t.Fatalf("NewOpenAI returned error: %v", err)
	}

	if model.modelName != "gpt-4o" {
		t.Errorf("Expected model gpt-4o, got %s", model.modelName)
	}
	if model.maxTokens != 512 {
		t.Errorf("Expected 512 max tokens, got %d", model.maxTokens)
	}
	if model.temperature != 0.9 {
		t.Errorf("Expected temperature 0.9, got %v", model.temperature)
	}
	if model.apiTimeout != 120 {
		t.Errorf("Expected timeout 120, got %d", model.apiTimeout)
	}
}

func TestNewAnthropicRejectsInvalidTemperature(t *testing.T) {
	// Claude temperature is capped at 1
	if _, err := NewAnthropic("test-key", WithTemperature(1.5)); err == nil {
		t.Error("Expected error for out-of-range temperature")
	}
}
