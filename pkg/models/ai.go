package models

// ReplyOptionsRequest asks for short reply suggestions to an email
type ReplyOptionsRequest struct {
	EmailContent string `json:"email_content" validate:"required,max=50000"`
	Subject      string `json:"subject,omitempty"`
}

// ReplyOptionsResponse carries the generated reply suggestions
type ReplyOptionsResponse struct {
	Options []string `json:"options"`
}

// GenerateReplyRequest asks for a full reply draft
type GenerateReplyRequest struct {
	EmailContent string `json:"email_content" validate:"required,max=50000"`
	Instruction  string `json:"instruction,omitempty"`
	Tone         string `json:"tone,omitempty" validate:"omitempty,oneof=professional friendly casual formal"`
}

// GenerateComposeRequest asks for a new email drafted from an instruction
type GenerateComposeRequest struct {
	Instruction string `json:"instruction" validate:"required,max=5000"`
	Tone        string `json:"tone,omitempty" validate:"omitempty,oneof=professional friendly casual formal"`
}

// AnalyzeCategoryRequest asks for a category label for an email
type AnalyzeCategoryRequest struct {
	EmailContent string `json:"email_content" validate:"required,max=50000"`
	Subject      string `json:"subject,omitempty"`
}

// SummarizeRequest asks for a summary of an email thread
type SummarizeRequest struct {
	EmailContent string `json:"email_content" validate:"required,max=100000"`
}

// TextResponse carries a single generated text result
type TextResponse struct {
	Result string `json:"result"`
}

// UsageDeniedResponse is the 429 payload returned when an AI action is
// denied by the usage limits
type UsageDeniedResponse struct {
	Error      string `json:"error"`
	Type       string `json:"type"`
	Used       int    `json:"used"`
	Limit      int    `json:"limit"`
	Remaining  int    `json:"remaining"`
	UpgradeURL string `json:"upgrade_url,omitempty"`
}
