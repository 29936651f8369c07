package llm

// Conversation is the caller-owned chat history. Commands create one per
// session and pass its messages into each request; no package-level state
// is kept.
type Conversation struct {
	messages []Message
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// AddUser appends a user turn.
func (c *Conversation) AddUser(content string) {
	c.messages = append(c.messages, Message{Role: RoleUser, Content: content})
}

// AddAssistant appends an assistant turn.
func (c *Conversation) AddAssistant(content string) {
	c.messages = append(c.messages, Message{Role: RoleAssistant, Content: content})
}

// Messages returns a copy of the history so callers cannot mutate it.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	return len(c.messages)
}
