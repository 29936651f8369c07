package share

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v48/github"
	"github.com/kaizenlab/fishbone-assistant/logger"
	"golang.org/x/oauth2"
)

// GitHub implements the Publisher interface using secret Gists
type GitHub struct {
	client   *github.Client
	apiToken string
	timeout  int
}

// NewGitHub creates a new GitHub publisher
func NewGitHub(opts ...Option) (Publisher, error) {
	gh := &GitHub{
		timeout: 60, // Default timeout
	}

	var baseURL string

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case APITokenOption:
			if token, ok := opt.Value.(string); ok {
				gh.apiToken = token
			}
		case TimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				gh.timeout = timeout
			}
		case BaseURLOption:
			if url, ok := opt.Value.(string); ok {
				baseURL = url
			}
		}
	}

	// Validate required options
	if gh.apiToken == "" {
		return nil, fmt.Errorf("API token is required for GitHub")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: gh.apiToken})
	tc := oauth2.NewClient(context.Background(), ts)
	gh.client = github.NewClient(tc)

	if baseURL != "" {
		client, err := github.NewEnterpriseClient(baseURL, baseURL, tc)
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub Enterprise client: %w", err)
		}
		gh.client = client
	}

	return gh, nil
}

// PublishDiagram uploads the content as a secret Gist and returns its URL
func (gh *GitHub) PublishDiagram(filename, description, content string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(gh.timeout)*time.Second)
	defer cancel()

	gist := &github.Gist{
		Description: github.String(description),
		Public:      github.Bool(false),
		Files: map[github.GistFilename]github.GistFile{
			github.GistFilename(filename): {
				Content: github.String(content),
			},
		},
	}

	created, _, err := gh.client.Gists.Create(ctx, gist)
	if err != nil {
		return "", fmt.Errorf("failed to create gist: %w", err)
	}

	logger.Infof("Published %s as gist %s", filename, created.GetID())

	return created.GetHTMLURL(), nil
}
