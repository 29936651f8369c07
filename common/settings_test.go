package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	settings := WithDefaultSettings()

	if settings.Model == "" {
		t.Error("Expected a default model")
	}
	if settings.MaxTokens <= 0 {
		t.Error("Expected a positive default max tokens")
	}
	if settings.APITimeout <= 0 {
		t.Error("Expected a positive default API timeout")
	}
	if settings.Language != "en-US" {
		t.Errorf("Expected default language en-US, got %s", settings.Language)
	}
}

func TestSettingsFromYamlFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `model: claude-3.5-sonnet
temperature: 0.1
language: ja-JP
diagram:
  category_hint: element forming, anodization, polymerization
reply:
  sender_identity: Taro Yamada of Kaizen Lab
`
	if err := os.WriteFile(filepath.Join(dir, "fishbone.yml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("Failed to write test settings: %v", err)
	}
	t.Chdir(dir)

	settings := WithYamlFile()

	if settings.Model != "claude-3.5-sonnet" {
		t.Errorf("Expected model from YAML, got %s", settings.Model)
	}
	if settings.Temperature != 0.1 {
		t.Errorf("Expected temperature 0.1, got %v", settings.Temperature)
	}
	if settings.Language != "ja-JP" {
		t.Errorf("Expected language ja-JP, got %s", settings.Language)
	}
	if settings.Diagram.CategoryHint != "element forming, anodization, polymerization" {
		t.Errorf("Expected diagram category hint from YAML, got %q", settings.Diagram.CategoryHint)
	}
	if settings.Reply.SenderIdentity != "Taro Yamada of Kaizen Lab" {
		t.Errorf("Expected reply sender identity from YAML, got %q", settings.Reply.SenderIdentity)
	}
	// Values not present in the YAML keep their defaults
	if settings.MaxTokens != WithDefaultSettings().MaxTokens {
		t.Errorf("Expected default max tokens, got %d", settings.MaxTokens)
	}
}

func TestSettingsWithoutYamlFile(t *testing.T) {
	t.Chdir(t.TempDir())

	settings := WithYamlFile()
	if settings != WithDefaultSettings() {
		t.Error("Expected defaults when no YAML file exists")
	}
}
