package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/replyflow/replyflow-api/pkg/api/errors"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/metrics"
	"github.com/replyflow/replyflow-api/pkg/models"
	"github.com/replyflow/replyflow-api/pkg/trial"
)

// CronHandler exposes scheduled jobs as endpoints for external cron
// services. Requests must carry the shared secret.
type CronHandler struct {
	trialService *trial.Service
	cronSecret   string
	metrics      *metrics.Metrics
}

// NewCronHandler creates a new cron handler
func NewCronHandler(trialService *trial.Service, cronSecret string) *CronHandler {
	return &CronHandler{
		trialService: trialService,
		cronSecret:   cronSecret,
	}
}

// SetMetrics sets the metrics recorder
func (h *CronHandler) SetMetrics(m *metrics.Metrics) {
	h.metrics = m
}

// CheckTrialExpiry runs the trial expiry sweep
func (h *CronHandler) CheckTrialExpiry(c echo.Context) error {
	secret := c.Request().Header.Get("X-Cron-Secret")
	if h.cronSecret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(h.cronSecret)) != 1 {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid cron secret",
		})
	}

	result, err := h.trialService.Sweep(c.Request().Context(), time.Now())
	if err != nil {
		if domain.IsConflict(err) {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "sweep_in_progress",
				Message: "A trial sweep is already running",
			})
		}
		return apierrors.InternalError(c, err)
	}

	if h.metrics != nil {
		for i := 0; i < result.Converted; i++ {
			h.metrics.RecordTrialConversion()
		}
	}

	log.Printf("🧹 Trial sweep via cron endpoint: checked=%d converted=%d errors=%d",
		result.Checked, result.Converted, len(result.Errors))

	return c.JSON(http.StatusOK, models.SweepResponse{
		Checked:   result.Checked,
		Converted: result.Converted,
		Errors:    result.Errors,
	})
}
