package share

import (
	"testing"
)

func TestNewGitHubRequiresToken(t *testing.T) {
	if _, err := NewGitHub(); err == nil {
		t.Error("Expected error when no API token is provided")
	}
}

func TestNewPublisherUnknownProvider(t *testing.T) {
	if _, err := NewPublisher("gitlab"); err == nil {
		t.Error("Expected error for unsupported provider")
	}
}

func TestGetAPITokenMissing(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	if _, err := GetAPIToken(); err == nil {
		t.Error("Expected error when GITHUB_TOKEN is unset")
	}
}
