package prompt

func GetModifyPrompt(currentDOT, instruction string) string {
	return `You are an assistant fluent in the Graphviz DOT language.
Below is an existing fishbone diagram written in DOT.

[Current DOT code]
` + "```dot\n" + currentDOT + "\n```" + `

Apply the modification request below to this DOT code.

[Modification request]
` + instruction + `

Output only the modified DOT code. No explanations or preamble.
Preserve the structure and styling of the original diagram as much as possible and reflect only the requested changes.
If the request is ambiguous, apply the most reasonable interpretation.
Output only DOT code starting with ` + DOTPrefix + ` { and nothing else.`
}
