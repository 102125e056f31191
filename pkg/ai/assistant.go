package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/replyflow/replyflow-api/pkg/ai/llm"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/models"
)

// Assistant generates email content via the configured LLM
type Assistant struct {
	llm    llm.LLMClient
	logger *log.Logger
}

// NewAssistant creates a new assistant service
func NewAssistant(llmClient llm.LLMClient, logger *log.Logger) *Assistant {
	if logger == nil {
		logger = log.Default()
	}

	return &Assistant{
		llm:    llmClient,
		logger: logger,
	}
}

var knownCategories = map[string]bool{
	"urgent":      true,
	"important":   true,
	"newsletter":  true,
	"promotional": true,
	"social":      true,
	"personal":    true,
	"work":        true,
	"spam":        true,
	"other":       true,
}

// ReplyOptions generates short reply suggestions for an email
func (a *Assistant) ReplyOptions(ctx context.Context, req models.ReplyOptionsRequest) (*models.ReplyOptionsResponse, error) {
	a.logger.Printf("🤖 Generating reply options (subject: %q)", req.Subject)

	raw, err := a.llm.CompleteJSON(ctx, llm.ReplyOptionsPrompt(req.Subject, req.EmailContent), llm.ReplyOptionsSystemPrompt)
	if err != nil {
		return nil, domain.NewExternalServiceError("openai", err)
	}

	var parsed struct {
		Options []string `json:"options"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, domain.NewExternalServiceError("openai", fmt.Errorf("unexpected reply options payload: %w", err))
	}
	if len(parsed.Options) == 0 {
		return nil, domain.NewExternalServiceError("openai", fmt.Errorf("no reply options generated"))
	}

	return &models.ReplyOptionsResponse{Options: parsed.Options}, nil
}

// GenerateReply drafts a full reply to an email
func (a *Assistant) GenerateReply(ctx context.Context, req models.GenerateReplyRequest) (*models.TextResponse, error) {
	a.logger.Printf("🤖 Generating reply draft (tone: %q)", req.Tone)

	result, err := a.llm.Complete(ctx, llm.GenerateReplyPrompt(req.EmailContent, req.Instruction, req.Tone), llm.GenerateReplySystemPrompt)
	if err != nil {
		return nil, domain.NewExternalServiceError("openai", err)
	}

	return &models.TextResponse{Result: strings.TrimSpace(result)}, nil
}

// Compose drafts a new email from an instruction
func (a *Assistant) Compose(ctx context.Context, req models.GenerateComposeRequest) (*models.TextResponse, error) {
	a.logger.Printf("🤖 Composing email (tone: %q)", req.Tone)

	result, err := a.llm.Complete(ctx, llm.ComposePrompt(req.Instruction, req.Tone), llm.ComposeSystemPrompt)
	if err != nil {
		return nil, domain.NewExternalServiceError("openai", err)
	}

	return &models.TextResponse{Result: strings.TrimSpace(result)}, nil
}

// AnalyzeCategory classifies an email into a single category
func (a *Assistant) AnalyzeCategory(ctx context.Context, req models.AnalyzeCategoryRequest) (*models.TextResponse, error) {
	a.logger.Printf("🤖 Classifying email (subject: %q)", req.Subject)

	result, err := a.llm.Complete(ctx, llm.AnalyzeCategoryPrompt(req.Subject, req.EmailContent), llm.AnalyzeCategorySystemPrompt)
	if err != nil {
		return nil, domain.NewExternalServiceError("openai", err)
	}

	category := strings.ToLower(strings.TrimSpace(result))
	if !knownCategories[category] {
		a.logger.Printf("⚠️ Unknown category %q, defaulting to other", category)
		category = "other"
	}

	return &models.TextResponse{Result: category}, nil
}

// Summarize produces a short summary of an email thread
func (a *Assistant) Summarize(ctx context.Context, req models.SummarizeRequest) (*models.TextResponse, error) {
	a.logger.Printf("🤖 Summarizing thread (%d tokens est.)", a.llm.CountTokens(req.EmailContent))

	result, err := a.llm.Complete(ctx, llm.SummarizePrompt(req.EmailContent), llm.SummarizeSystemPrompt)
	if err != nil {
		return nil, domain.NewExternalServiceError("openai", err)
	}

	return &models.TextResponse{Result: strings.TrimSpace(result)}, nil
}
