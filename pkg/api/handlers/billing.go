package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/replyflow/replyflow-api/pkg/api/errors"
	"github.com/replyflow/replyflow-api/pkg/billing"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/metrics"
	"github.com/replyflow/replyflow-api/pkg/models"
)

// maxWebhookBody caps the webhook payload size (Stripe events are small).
const maxWebhookBody = 1 << 16

// BillingHandler handles Stripe billing endpoints
type BillingHandler struct {
	service   *billing.Service
	returnURL string
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewBillingHandler creates a new billing handler. returnURL is where
// the customer portal sends the user back to.
func NewBillingHandler(service *billing.Service, returnURL string) *BillingHandler {
	return &BillingHandler{
		service:   service,
		returnURL: returnURL,
		validator: validator.New(),
	}
}

// SetMetrics sets the metrics recorder
func (h *BillingHandler) SetMetrics(m *metrics.Metrics) {
	h.metrics = m
}

func (h *BillingHandler) recordWebhook(eventType, status string) {
	if h.metrics != nil && eventType != "" {
		h.metrics.RecordWebhookEvent(eventType, status)
	}
}

// CreateCheckout creates a Stripe checkout session
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	accountID, ok := c.Get("account_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "missing account id")
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	resp, err := h.service.CreateCheckoutSession(c.Request().Context(), accountID, req.Plan)
	if err != nil {
		if domain.IsNotFound(err) {
			return apierrors.NotFoundError(c, "account")
		}
		if domain.IsValidation(err) || domain.IsBadRequest(err) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_plan",
				Message: err.Error(),
			})
		}
		log.Printf("❌ Checkout session failed for account %d: %v", accountID, err)
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// CreatePortal creates a Stripe customer portal session
func (h *BillingHandler) CreatePortal(c echo.Context) error {
	accountID, ok := c.Get("account_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "missing account id")
	}

	resp, err := h.service.CreateCustomerPortalSession(c.Request().Context(), accountID, h.returnURL)
	if err != nil {
		if domain.IsNotFound(err) {
			return apierrors.NotFoundError(c, "account")
		}
		if domain.IsBadRequest(err) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "no_billing_account",
				Message: "No billing account exists yet",
			})
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// CancelSubscription schedules the subscription to cancel at period end
func (h *BillingHandler) CancelSubscription(c echo.Context) error {
	accountID, ok := c.Get("account_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "missing account id")
	}

	if err := h.service.CancelSubscription(c.Request().Context(), accountID); err != nil {
		if domain.IsNotFound(err) {
			return apierrors.NotFoundError(c, "account")
		}
		if domain.IsBadRequest(err) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "no_subscription",
				Message: "No active subscription to cancel",
			})
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Subscription will cancel at the end of the billing period",
	})
}

// ReactivateSubscription undoes a scheduled cancellation
func (h *BillingHandler) ReactivateSubscription(c echo.Context) error {
	accountID, ok := c.Get("account_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "missing account id")
	}

	if err := h.service.ReactivateSubscription(c.Request().Context(), accountID); err != nil {
		if domain.IsNotFound(err) {
			return apierrors.NotFoundError(c, "account")
		}
		if domain.IsBadRequest(err) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "no_subscription",
				Message: "No subscription to reactivate",
			})
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Subscription reactivated",
	})
}

// GetSubscription returns the account's subscription state
func (h *BillingHandler) GetSubscription(c echo.Context) error {
	accountID, ok := c.Get("account_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "missing account id")
	}

	info, err := h.service.GetSubscriptionInfo(c.Request().Context(), accountID)
	if err != nil {
		if domain.IsNotFound(err) {
			return apierrors.NotFoundError(c, "account")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, info)
}

// Webhook receives Stripe webhook events. The signature is verified
// against the raw body before any parsing.
func (h *BillingHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_payload",
			Message: "Failed to read request body",
		})
	}

	signature := c.Request().Header.Get("Stripe-Signature")

	eventType, err := h.service.HandleWebhook(c.Request().Context(), payload, signature)
	if err != nil {
		if domain.IsUnauthorized(err) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_signature",
				Message: "Webhook signature verification failed",
			})
		}
		if domain.IsStaleEvent(err) {
			// Acknowledge stale events so Stripe stops retrying them
			log.Printf("⚠️ Ignored stale webhook event: %v", err)
			h.recordWebhook(eventType, "stale")
			return c.JSON(http.StatusOK, models.SuccessResponse{
				Success: true,
				Message: "Event ignored as stale",
			})
		}
		log.Printf("❌ Webhook processing failed: %v", err)
		h.recordWebhook(eventType, "failed")
		return apierrors.InternalError(c, err)
	}

	h.recordWebhook(eventType, "accepted")
	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
