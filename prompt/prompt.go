package prompt

import "fmt"

// TaskKind selects which instruction template Build renders.
type TaskKind string

const (
	TaskGenerate TaskKind = "generate"
	TaskModify   TaskKind = "modify"
	TaskReply    TaskKind = "reply"
)

// Field names recognized by Build.
const (
	FieldProductName             = "product_name"
	FieldFailureMode             = "failure_mode"
	FieldPriorOutput             = "prior_output"
	FieldModificationInstruction = "modification_instruction"
	FieldOriginalText            = "original_text"
	FieldCategoryHint            = "category_hint"
	FieldSenderIdentity          = "sender_identity"
)

// Request carries the inputs for one prompt. Immutable once built.
type Request struct {
	Kind   TaskKind
	Fields map[string]string
}

// MissingFieldError reports a required field that was absent or empty.
type MissingFieldError struct {
	Kind  TaskKind
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("prompt: missing required field %q for task %q", e.Field, e.Kind)
}

func requiredFields(kind TaskKind) []string {
	switch kind {
	case TaskGenerate:
		return []string{FieldProductName, FieldFailureMode}
	case TaskModify:
		return []string{FieldPriorOutput, FieldModificationInstruction}
	case TaskReply:
		return []string{FieldOriginalText}
	}
	return nil
}

// Build renders the instruction string for the given request. Field values
// are inserted verbatim; Build checks presence, not content.
func Build(req Request) (string, error) {
	required := requiredFields(req.Kind)
	if required == nil {
		return "", fmt.Errorf("prompt: unknown task kind %q", req.Kind)
	}
	for _, field := range required {
		if req.Fields[field] == "" {
			return "", &MissingFieldError{Kind: req.Kind, Field: field}
		}
	}

	switch req.Kind {
	case TaskModify:
		return GetModifyPrompt(req.Fields[FieldPriorOutput], req.Fields[FieldModificationInstruction]), nil
	case TaskReply:
		return GetReplyPrompt(req.Fields[FieldOriginalText], req.Fields[FieldSenderIdentity]), nil
	default:
		return GetFishbonePrompt(req.Fields[FieldProductName], req.Fields[FieldFailureMode], req.Fields[FieldCategoryHint]), nil
	}
}
