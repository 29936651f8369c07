package prompt

import (
	"fmt"

	"github.com/kaizenlab/fishbone-assistant/common"
)

func GetSystemPrompt(settings common.Settings) string {
	basePrompt := getRole(settings) + `
- Follow the output format demanded by the task exactly.
- Do not add commentary before or after the requested output.
- When the task asks for structured code, never invent syntax; produce code that parses.`
	if settings.Language != "" && settings.Language != "en-US" {
		basePrompt += fmt.Sprintf("\n- Use %s language.", settings.Language)
	}

	return basePrompt
}

func GetChatSystemPrompt(settings common.Settings) string {
	basePrompt := getRole(settings) + `
- Answer the user's questions directly, within the bounds of your knowledge.
- When producing code, always wrap it in a Markdown code block tagged with the language name.`
	if settings.Language != "" && settings.Language != "en-US" {
		basePrompt += fmt.Sprintf("\n- Use %s language.", settings.Language)
	}

	return basePrompt
}

func getRole(settings common.Settings) string {
	role := "You are a quality-engineering assistant trained to support failure analysis and business correspondence."
	if settings.Tone != "" {
		role = settings.Tone
	}

	return role
}
