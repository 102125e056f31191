package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/replyflow/replyflow-api/pkg/api/errors"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/trial"
)

// TrialHandler handles trial status endpoints
type TrialHandler struct {
	service *trial.Service
}

// NewTrialHandler creates a new trial handler
func NewTrialHandler(service *trial.Service) *TrialHandler {
	return &TrialHandler{service: service}
}

// Status returns the account's access level, trial state and usage
func (h *TrialHandler) Status(c echo.Context) error {
	accountID, ok := c.Get("account_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "missing account id")
	}

	resp, err := h.service.Status(c.Request().Context(), accountID, time.Now())
	if err != nil {
		if domain.IsNotFound(err) {
			return apierrors.NotFoundError(c, "account")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
