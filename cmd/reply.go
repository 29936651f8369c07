package cmd

import (
	"fmt"
	"strings"

	"github.com/kaizenlab/fishbone-assistant/common"
	"github.com/kaizenlab/fishbone-assistant/llm"
	"github.com/kaizenlab/fishbone-assistant/prompt"
	"github.com/spf13/cobra"
)

var replyCmd = &cobra.Command{
	Use:   "reply",
	Short: "Draft a reply to a business email using AI",
	Long: `Read an incoming email, have the LLM extract the sender's company and name
for the salutation, and draft a complete businesslike reply.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := common.WithYamlFile()

		originalEmail, err := readInput(cmd)
		if err != nil {
			fmt.Printf("Error reading email: %v\n", err)
			return
		}

		userPrompt, err := prompt.Build(prompt.Request{
			Kind: prompt.TaskReply,
			Fields: map[string]string{
				prompt.FieldOriginalText:   strings.TrimSpace(originalEmail),
				prompt.FieldSenderIdentity: settings.Reply.SenderIdentity,
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

		// Reply drafting has no structural payload; the whole trimmed
		// response is the draft.
		if err := writeOutput(cmd, strings.TrimSpace(resp.Content)); err != nil {
			fmt.Printf("Error writing reply: %v\n", err)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(replyCmd)

	replyCmd.Flags().StringP("in", "i", "", "Read the original email from this file (default: stdin)")
	replyCmd.Flags().StringP("model", "m", "", "LLM model to use (overrides settings)")
	replyCmd.Flags().Float64P("temperature", "t", 0, "Sampling temperature (overrides settings)")
	replyCmd.Flags().StringP("out", "o", "", "Write the reply to this file instead of stdout")
}
