package prompt

func GetReplyPrompt(originalEmail, senderIdentity string) string {
	if senderIdentity == "" {
		senderIdentity = "the recipient of the email below"
	}

	return `You are ` + senderIdentity + `. You received the following original email.

Task:
1. Identify the sender's company name and full name (without honorifics) from the original email.
2. Open the reply with a salutation built from what you extracted, in the form "<company name> <full name>,". If either cannot be determined, use a generic placeholder instead.
3. Follow the salutation with a short fixed greeting introducing yourself.
4. After the greeting, write a polite, businesslike reply body that responds to the concrete points of the original email and states clear next actions.
5. Close with an appropriate sign-off and your signature.

Produce the complete reply email combining steps 2 through 5 as the final output.

Original email:
---
` + originalEmail + `
---

Complete reply email:`
}
