package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/replyflow/replyflow-api/pkg/ai"
	apierrors "github.com/replyflow/replyflow-api/pkg/api/errors"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/entitlement"
	"github.com/replyflow/replyflow-api/pkg/metrics"
	"github.com/replyflow/replyflow-api/pkg/models"
)

// llmTimeout bounds a single model call.
const llmTimeout = 60 * time.Second

// AIHandler handles the AI action endpoints. Every action runs the same
// pipeline: check the usage limits, call the model, record the action.
type AIHandler struct {
	evaluator *entitlement.Evaluator
	assistant *ai.Assistant
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewAIHandler creates a new AI handler
func NewAIHandler(evaluator *entitlement.Evaluator, assistant *ai.Assistant) *AIHandler {
	return &AIHandler{
		evaluator: evaluator,
		assistant: assistant,
		validator: validator.New(),
	}
}

// SetMetrics sets the metrics recorder
func (h *AIHandler) SetMetrics(m *metrics.Metrics) {
	h.metrics = m
}

// ReplyOptions generates short reply suggestions
func (h *AIHandler) ReplyOptions(c echo.Context) error {
	var req models.ReplyOptionsRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.runAction(c, models.ActionReplyOptions, func(ctx context.Context) (interface{}, error) {
		return h.assistant.ReplyOptions(ctx, req)
	})
}

// GenerateReply drafts a full reply
func (h *AIHandler) GenerateReply(c echo.Context) error {
	var req models.GenerateReplyRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.runAction(c, models.ActionGenerateReply, func(ctx context.Context) (interface{}, error) {
		return h.assistant.GenerateReply(ctx, req)
	})
}

// GenerateCompose drafts a new email from an instruction
func (h *AIHandler) GenerateCompose(c echo.Context) error {
	var req models.GenerateComposeRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.runAction(c, models.ActionGenerateCompose, func(ctx context.Context) (interface{}, error) {
		return h.assistant.Compose(ctx, req)
	})
}

// AnalyzeCategory classifies an email
func (h *AIHandler) AnalyzeCategory(c echo.Context) error {
	var req models.AnalyzeCategoryRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.runAction(c, models.ActionAnalyzeCategory, func(ctx context.Context) (interface{}, error) {
		return h.assistant.AnalyzeCategory(ctx, req)
	})
}

// Summarize summarizes an email thread
func (h *AIHandler) Summarize(c echo.Context) error {
	var req models.SummarizeRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	return h.runAction(c, models.ActionSummarize, func(ctx context.Context) (interface{}, error) {
		return h.assistant.Summarize(ctx, req)
	})
}

func (h *AIHandler) bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	return nil
}

// runAction gates the action on the usage limits, invokes the model and
// commits the usage record. A result is only returned to the client
// after the usage record is persisted.
func (h *AIHandler) runAction(c echo.Context, action string, invoke func(context.Context) (interface{}, error)) error {
	accountID, ok := c.Get("account_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "missing account id")
	}

	now := time.Now()

	decision, err := h.evaluator.Evaluate(c.Request().Context(), accountID, now)
	if err != nil {
		if domain.IsNotFound(err) {
			return apierrors.NotFoundError(c, "account")
		}
		return apierrors.DatabaseError(c, err)
	}

	if !decision.Allowed {
		if h.metrics != nil {
			h.metrics.RecordUsageDenial(decision.Reason)
		}
		return c.JSON(http.StatusTooManyRequests, models.UsageDeniedResponse{
			Error:      decision.Reason,
			Type:       decision.Type,
			Used:       decision.Used,
			Limit:      decision.Limit,
			Remaining:  decision.Remaining,
			UpgradeURL: decision.UpgradeURL,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), llmTimeout)
	defer cancel()

	result, err := invoke(ctx)
	if err != nil {
		log.Printf("❌ AI action %s failed for account %d: %v", action, accountID, err)
		return apierrors.InternalError(c, err)
	}

	if err := h.evaluator.Commit(c.Request().Context(), accountID, action, now); err != nil {
		log.Printf("❌ Failed to record usage for account %d: %v", accountID, err)
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordAIAction(action)
	}

	return c.JSON(http.StatusOK, result)
}
