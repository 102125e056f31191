package llm

import "fmt"

// System prompts for the email assistant actions

const (
	// ReplyOptionsSystemPrompt asks for short reply suggestions as JSON
	ReplyOptionsSystemPrompt = `You are an AI assistant that suggests short email replies.

Given an email, produce three distinct reply suggestions the user could
send with one click. Each suggestion is a complete, ready-to-send reply
of one to three sentences.

Vary the suggestions:
1. A positive / accepting reply
2. A neutral or clarifying reply
3. A declining or deferring reply (when it makes sense)

Always respond with valid JSON in this exact format:
{"options": ["reply one", "reply two", "reply three"]}`

	// GenerateReplySystemPrompt asks for a full reply draft
	GenerateReplySystemPrompt = `You are an AI assistant that writes professional email replies.

Write a complete reply to the email the user provides. Follow the user's
instruction if one is given, and match the requested tone. Do not invent
facts the original email does not contain. Do not include a subject line.
Respond with the reply text only, no commentary.`

	// ComposeSystemPrompt asks for a new email drafted from an instruction
	ComposeSystemPrompt = `You are an AI assistant that writes professional emails from scratch.

Write a complete email based on the user's description, in the requested
tone. Start with a subject line in the form "Subject: ..." followed by a
blank line and the email body. Respond with the email only, no commentary.`

	// AnalyzeCategorySystemPrompt asks for a single category label
	AnalyzeCategorySystemPrompt = `You are an email classifier.

Classify the email into exactly one of these categories:
urgent, important, newsletter, promotional, social, personal, work, spam, other

Respond with the category name only, in lowercase, nothing else.`

	// SummarizeSystemPrompt asks for a thread summary
	SummarizeSystemPrompt = `You are an AI assistant that summarizes email threads.

Summarize the thread in two to four sentences: who wants what, what has
been decided, and what is still open. If the thread asks the user to do
something, end with a single line starting with "Action needed:".
Respond with the summary only, no commentary.`
)

// Prompt builders for the assistant actions

// ReplyOptionsPrompt builds the prompt for short reply suggestions
func ReplyOptionsPrompt(subject, emailContent string) string {
	return fmt.Sprintf(`Suggest replies to this email:

Subject: %s

%s`, subject, emailContent)
}

// GenerateReplyPrompt builds the prompt for a full reply draft
func GenerateReplyPrompt(emailContent, instruction, tone string) string {
	if instruction == "" {
		instruction = "Write an appropriate reply"
	}
	if tone == "" {
		tone = "professional"
	}
	return fmt.Sprintf(`Reply to this email.

Instruction: %s
Tone: %s

Email:
%s`, instruction, tone, emailContent)
}

// ComposePrompt builds the prompt for composing a new email
func ComposePrompt(instruction, tone string) string {
	if tone == "" {
		tone = "professional"
	}
	return fmt.Sprintf(`Write an email in a %s tone based on this description:

%s`, tone, instruction)
}

// AnalyzeCategoryPrompt builds the prompt for category classification
func AnalyzeCategoryPrompt(subject, emailContent string) string {
	return fmt.Sprintf(`Classify this email:

Subject: %s

%s`, subject, emailContent)
}

// SummarizePrompt builds the prompt for thread summarization
func SummarizePrompt(emailContent string) string {
	return fmt.Sprintf(`Summarize this email thread:

%s`, emailContent)
}
