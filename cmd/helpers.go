package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kaizenlab/fishbone-assistant/common"
	"github.com/kaizenlab/fishbone-assistant/extract"
	"github.com/kaizenlab/fishbone-assistant/llm"
	"github.com/kaizenlab/fishbone-assistant/logger"
	"github.com/kaizenlab/fishbone-assistant/share"
	"github.com/spf13/cobra"
)

// newLLMClient builds the provider client from settings, letting flags
// override the YAML values.
func newLLMClient(cmd *cobra.Command, settings common.Settings) (llm.LLM, error) {
	model := settings.Model
	if cmd.Flags().Changed("model") {
		model, _ = cmd.Flags().GetString("model")
	}

	temperature := settings.Temperature
	if cmd.Flags().Changed("temperature") {
		temperature, _ = cmd.Flags().GetFloat64("temperature")
	}

	return llm.NewLLM(model,
		llm.WithMaxTokens(settings.MaxTokens),
		llm.WithTemperature(temperature),
		llm.WithAPITimeout(settings.APITimeout),
	)
}

// readInput returns the content of the --in file, or stdin when the flag is
// unset.
func readInput(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("in")
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes the payload to the --out file, or stdout when the flag
// is unset.
func writeOutput(cmd *cobra.Command, payload string) error {
	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		fmt.Println(payload)
		return nil
	}

	if err := os.WriteFile(path, []byte(payload+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Infof("Wrote diagram to %s", path)
	return nil
}

// extractDiagram pulls the DOT payload out of the model response. A payload
// that does not start with the expected prefix is kept with a warning; no
// payload at all is a failure the caller reports.
func extractDiagram(content string) (string, bool) {
	extractor := extract.DOT()
	result := extractor.Extract(content)
	if !result.Found {
		return "", false
	}

	if !strings.HasPrefix(result.Payload, extractor.Prefix) {
		logger.Warnf("Extracted diagram does not start with %q; displaying it anyway", extractor.Prefix)
	}

	return result.Payload, true
}

// publishDiagram uploads the payload as a secret Gist and prints the URL.
func publishDiagram(filename, description, payload string) {
	apiToken, err := share.GetAPIToken()
	if err != nil {
		fmt.Printf("Cannot publish diagram: %v\n", err)
		return
	}

	publisher, err := share.NewPublisher(share.ProviderGitHub, share.WithAPIToken(apiToken))
	if err != nil {
		fmt.Printf("Failed to create publisher: %v\n", err)
		return
	}

	url, err := publisher.PublishDiagram(filename, description, payload)
	if err != nil {
		fmt.Printf("Failed to publish diagram: %v\n", err)
		return
	}

	fmt.Println("Published diagram:", url)
}
