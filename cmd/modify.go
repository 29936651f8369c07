package cmd

import (
	"fmt"
	"strings"

	"github.com/kaizenlab/fishbone-assistant/common"
	"github.com/kaizenlab/fishbone-assistant/llm"
	"github.com/kaizenlab/fishbone-assistant/prompt"
	"github.com/spf13/cobra"
)

var modifyCmd = &cobra.Command{
	Use:   "modify",
	Short: "Modify an existing fishbone diagram using AI",
	Long: `Feed a previously generated DOT diagram back into the LLM together with a
modification request, and extract the updated diagram from the response.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := common.WithYamlFile()

		instruction, _ := cmd.Flags().GetString("instruction")

		currentDOT, err := readInput(cmd)
		if err != nil {
			fmt.Printf("Error reading diagram: %v\n", err)
			return
		}

		userPrompt, err := prompt.Build(prompt.Request{
			Kind: prompt.TaskModify,
			Fields: map[string]string{
				prompt.FieldPriorOutput:             strings.TrimSpace(currentDOT),
				prompt.FieldModificationInstruction: instruction,
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
			description := fmt.Sprintf("Fishbone diagram (modified): %s", common.Truncate(instruction, 80))
			publishDiagram("fishbone.dot", description, dotCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(modifyCmd)

	modifyCmd.Flags().StringP("in", "i", "", "Read the current diagram from this file (default: stdin)")
	modifyCmd.Flags().StringP("instruction", "r", "", "Modification request to apply (required)")
	modifyCmd.Flags().StringP("model", "m", "", "LLM model to use (overrides settings)")
	modifyCmd.Flags().Float64P("temperature", "t", 0, "Sampling temperature (overrides settings)")
	modifyCmd.Flags().StringP("out", "o", "", "Write the diagram to this file instead of stdout")
	modifyCmd.Flags().Bool("publish", false, "Publish the diagram as a secret GitHub Gist")
}
