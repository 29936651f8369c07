package cmd

import (
	"fmt"

	"github.com/kaizenlab/fishbone-assistant/common"
	"github.com/kaizenlab/fishbone-assistant/llm"
	"github.com/kaizenlab/fishbone-assistant/prompt"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fishbone diagram using AI",
	Long: `Build a cause-and-effect analysis prompt for the given product and failure
mode, send it to the configured LLM, and extract the Graphviz DOT diagram
from the response.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := common.WithYamlFile()

		product, _ := cmd.Flags().GetString("product")
		failure, _ := cmd.Flags().GetString("failure")

		userPrompt, err := prompt.Build(prompt.Request{
			Kind: prompt.TaskGenerate,
			Fields: map[string]string{
				prompt.FieldProductName:  product,
				prompt.FieldFailureMode:  failure,
				prompt.FieldCategoryHint: settings.Diagram.CategoryHint,
			},
		})
		if err != nil {
			fmt.Printf("Cannot build prompt: %v\n", err)
			return
		}

		llmClient, err := newLLMClient(cmd, settings)
		if err != nil {
			fmt.Printf("Failed to create Client for LLM Provider: %v\n", err)
			return
		}

		resp := llmClient.Prompt(llm.Request{
			SystemPrompt: prompt.GetSystemPrompt(settings),
			UserPrompt:   userPrompt,
		})
		if resp.Error != nil {
			fmt.Printf("Error getting response: %v\n", resp.Error)
			return
		}

		dotCode, ok := extractDiagram(resp.Content)
		if !ok {
			fmt.Println("No DOT diagram found in the model response. Raw response:")
			fmt.Println(resp.Content)
			return
		}

		if err := writeOutput(cmd, dotCode); err != nil {
			fmt.Printf("Error writing diagram: %v\n", err)
			return
		}

		if publish, _ := cmd.Flags().GetBool("publish"); publish {
			description := fmt.Sprintf("Fishbone diagram: %s / %s", product, failure)
			publishDiagram("fishbone.dot", description, dotCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("product", "p", "", "Product name to analyze (required)")
	generateCmd.Flags().StringP("failure", "f", "", "Failure mode to analyze (required)")
	generateCmd.Flags().StringP("model", "m", "", "LLM model to use (overrides settings)")
	generateCmd.Flags().Float64P("temperature", "t", 0, "Sampling temperature (overrides settings)")
	generateCmd.Flags().StringP("out", "o", "", "Write the diagram to this file instead of stdout")
	generateCmd.Flags().Bool("publish", false, "Publish the diagram as a secret GitHub Gist")
}
