package llm

import "testing"

func TestConversationOrder(t *testing.T) {
	conversation := NewConversation()
	conversation.AddUser("hello")
	conversation.AddAssistant("hi there")
	conversation.AddUser("generate a diagram")

	messages := conversation.Messages()
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	if messages[0].Role != RoleUser || messages[0].Content != "hello" {
		t.Error("Expected the first turn to be the user's greeting")
	}
	if messages[1].Role != RoleAssistant {
		t.Error("Expected the second turn to be the assistant's")
	}
}

func TestConversationMessagesIsACopy(t *testing.T) {
	conversation := NewConversation()
	conversation.AddUser("original")

	messages := conversation.Messages()
	messages[0].Content = "mutated"

	if conversation.Messages()[0].Content != "original" {
		t.Error("Mutating the returned slice must not affect the conversation")
	}
	if conversation.Len() != 1 {
		t.Errorf("Expected length 1, got %d", conversation.Len())
	}
}
