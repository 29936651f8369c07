// Package share uploads generated artifacts somewhere a team can reach them.
package share

import (
	"fmt"
	"os"
)

const (
	// ProviderGitHub publishes artifacts as GitHub Gists
	ProviderGitHub = "github"
)

// OptionType defines the type of option for share providers
type OptionType string

// Available option types
const (
	APITokenOption OptionType = "api_token"
	TimeoutOption  OptionType = "timeout"
	BaseURLOption  OptionType = "base_url"
)

// Option represents a generic configuration option for any share provider
type Option struct {
	Type  OptionType
	Value any
}

// WithAPIToken creates an option to set the API token
func WithAPIToken(token string) Option {
	return Option{
		Type:  APITokenOption,
		Value: token,
	}
}

// WithTimeout creates an option to set the API timeout in seconds
func WithTimeout(timeout int) Option {
	return Option{
		Type:  TimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to set the base URL for GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// Publisher uploads one artifact and returns a URL others can open
type Publisher interface {
	PublishDiagram(filename, description, content string) (string, error)
}

// GetAPIToken retrieves the API token from environment variables
func GetAPIToken() (string, error) {
	apiToken := os.Getenv("GITHUB_TOKEN")
	if apiToken == "" {
		return "", fmt.Errorf("GITHUB_TOKEN environment variable is not set")
	}
	return apiToken, nil
}

// NewPublisher creates a Publisher for the named provider
func NewPublisher(providerName string, opts ...Option) (Publisher, error) {
	switch providerName {
	case ProviderGitHub:
		return NewGitHub(opts...)
	}
	return nil, fmt.Errorf("unsupported share provider: %s", providerName)
}
