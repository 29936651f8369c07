package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/kaizenlab/fishbone-assistant/common"
	"github.com/kaizenlab/fishbone-assistant/llm"
	"github.com/kaizenlab/fishbone-assistant/prompt"
	"github.com/spf13/cobra"
)

const chatWrapWidth = 100

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat interactively with the configured model",
	Long: `Start an interactive session against the configured LLM. The conversation
history lives only for the duration of the session.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := common.WithYamlFile()

		llmClient, err := newLLMClient(cmd, settings)
		if err != nil {
			fmt.Printf("Failed to create Client for LLM Provider: %v\n", err)
			return
		}

		systemPrompt := prompt.GetChatSystemPrompt(settings)
		conversation := llm.NewConversation()

		fmt.Println("Type your message and press Enter. Type \"exit\" to leave.")

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}

			input := scanner.Text()
			if input == "" {
				continue
			}
			if input == "exit" || input == "quit" {
				break
			}

			// History carries the turns before this one
			history := conversation.Messages()
			conversation.AddUser(input)

			resp := llmClient.Prompt(llm.Request{
				SystemPrompt: systemPrompt,
				UserPrompt:   input,
				History:      history,
			})
			if resp.Error != nil {
				fmt.Printf("Error getting response: %v\n", resp.Error)
				continue
			}

			conversation.AddAssistant(resp.Content)

			fmt.Println()
			fmt.Println(common.WrapString(resp.Content, chatWrapWidth))
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringP("model", "m", "", "LLM model to use (overrides settings)")
	chatCmd.Flags().Float64P("temperature", "t", 0, "Sampling temperature (overrides settings)")
}
