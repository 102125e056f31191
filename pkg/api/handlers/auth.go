package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/replyflow/replyflow-api/config"
	apierrors "github.com/replyflow/replyflow-api/pkg/api/errors"
	"github.com/replyflow/replyflow-api/pkg/auth"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/metrics"
	"github.com/replyflow/replyflow-api/pkg/models"
	"github.com/replyflow/replyflow-api/pkg/oauth"
)

// AuthEmailSender sends the account lifecycle emails.
type AuthEmailSender interface {
	SendWelcomeEmail(toEmail, toName string) error
	SendPasswordResetEmail(toEmail, toName, resetToken string) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	store        domain.Store
	config       *config.Config
	blacklist    *auth.TokenBlacklist
	oauthService *oauth.Service
	cache        domain.CacheRepository
	emailService AuthEmailSender
	metrics      *metrics.Metrics
	validator    *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store domain.Store, cfg *config.Config, blacklist *auth.TokenBlacklist, oauthService *oauth.Service) *AuthHandler {
	return &AuthHandler{
		store:        store,
		config:       cfg,
		blacklist:    blacklist,
		oauthService: oauthService,
		validator:    validator.New(),
	}
}

// SetEmailService sets the lifecycle email sender
func (h *AuthHandler) SetEmailService(e AuthEmailSender) {
	h.emailService = e
}

// SetCache sets the cache used for password reset tokens
func (h *AuthHandler) SetCache(cache domain.CacheRepository) {
	h.cache = cache
}

// SetMetrics sets the metrics recorder
func (h *AuthHandler) SetMetrics(m *metrics.Metrics) {
	h.metrics = m
}

// Register creates a new account with email and password
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	_, err := h.store.GetAccountByEmail(ctx, req.Email)
	if err == nil {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "account_exists",
			Message: "Account with this email already exists",
		})
	}
	if !domain.IsNotFound(err) {
		return apierrors.DatabaseError(c, err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	newAcct := &models.Account{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hashedPassword,
	}
	newAcct.StartTrial(time.Now().UTC(), h.config.TrialPeriodDays)

	acct, err := h.store.CreateAccount(ctx, newAcct)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	log.Printf("✅ New account registered: %s (ID: %d), trial until %s",
		acct.Email, acct.ID, acct.TrialEndDate.Format("2006-01-02"))

	if h.metrics != nil {
		h.metrics.RecordAccountRegistered()
	}

	if h.emailService != nil {
		go func(email, name string) {
			if err := h.emailService.SendWelcomeEmail(email, name); err != nil {
				log.Printf("⚠️ Failed to send welcome email to %s: %v", email, err)
			}
		}(acct.Email, acct.Name)
	}

	token, err := auth.GenerateJWT(acct.ID, acct.Email, h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token:   token,
		Account: accountInfo(acct),
	})
}

// Login authenticates an account with email and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.store.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			h.recordLogin(false)
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid email or password",
			})
		}
		return apierrors.DatabaseError(c, err)
	}

	if acct.PasswordHash == "" || !auth.CheckPassword(acct.PasswordHash, req.Password) {
		h.recordLogin(false)
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	h.recordLogin(true)

	token, err := auth.GenerateJWT(acct.ID, acct.Email, h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		Account: accountInfo(acct),
	})
}

// GoogleLogin authenticates via a Google OAuth authorization code
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req models.GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	userInfo, err := h.oauthService.HandleCallback(ctx, req.Code, req.RedirectURI)
	if err != nil {
		log.Printf("⚠️ Google sign-in failed: %v", err)
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "google_auth_failed",
			Message: "Google authentication failed",
		})
	}

	acct, created, err := h.oauthService.FindOrCreateAccount(ctx, userInfo)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	if created {
		if h.metrics != nil {
			h.metrics.RecordAccountRegistered()
		}
		if h.emailService != nil {
			go func(email, name string) {
				if err := h.emailService.SendWelcomeEmail(email, name); err != nil {
					log.Printf("⚠️ Failed to send welcome email to %s: %v", email, err)
				}
			}(acct.Email, acct.Name)
		}
	}

	h.recordLogin(true)

	token, err := auth.GenerateJWT(acct.ID, acct.Email, h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		Account: accountInfo(acct),
	})
}

// Logout revokes the current token
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_token",
			Message: "No token to revoke",
		})
	}

	if h.blacklist != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		expiration := time.Duration(h.config.JWTExpirationHours) * time.Hour
		if err := h.blacklist.Add(ctx, token, expiration); err != nil {
			return apierrors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// Me returns the authenticated account
func (h *AuthHandler) Me(c echo.Context) error {
	accountID, ok := c.Get("account_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "missing account id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.store.GetAccount(ctx, accountID)
	if err != nil {
		if domain.IsNotFound(err) {
			return apierrors.NotFoundError(c, "account")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, accountInfo(acct))
}

// ForgotPassword generates a reset token and emails the reset link.
// The response never reveals whether the email exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	if h.cache == nil {
		return apierrors.InternalError(c, errResetUnavailable)
	}

	genericResponse := models.SuccessResponse{
		Success: true,
		Message: "If an account exists with this email, you will receive a password reset link",
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.store.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusOK, genericResponse)
		}
		return apierrors.DatabaseError(c, err)
	}

	resetToken, err := auth.GenerateResetToken()
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	tokenKey := resetTokenKey(resetToken)
	if err := h.cache.Set(ctx, tokenKey, acct.ID, time.Hour); err != nil {
		return apierrors.InternalError(c, err)
	}

	log.Printf("🔐 Password reset requested for account %d", acct.ID)

	if h.emailService != nil {
		go func(email, name, token string) {
			if err := h.emailService.SendPasswordResetEmail(email, name, token); err != nil {
				log.Printf("⚠️ Failed to send password reset email to %s: %v", email, err)
			}
		}(acct.Email, acct.Name, resetToken)
	}

	return c.JSON(http.StatusOK, genericResponse)
}

// ResetPassword validates the reset token and updates the password
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	if h.cache == nil {
		return apierrors.InternalError(c, errResetUnavailable)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tokenKey := resetTokenKey(req.Token)
	accountIDStr, err := h.cache.Get(ctx, tokenKey)
	if err != nil || accountIDStr == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired reset token",
		})
	}

	accountID, err := strconv.Atoi(accountIDStr)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	acct, err := h.store.GetAccount(ctx, accountID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_token",
				Message: "Invalid or expired reset token",
			})
		}
		return apierrors.DatabaseError(c, err)
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	acct.PasswordHash = hashedPassword
	if err := h.store.UpdateAccount(ctx, acct); err != nil {
		return apierrors.DatabaseError(c, err)
	}

	// One-time use
	if err := h.cache.Delete(ctx, tokenKey); err != nil {
		log.Printf("⚠️ Failed to delete reset token for account %d: %v", accountID, err)
	}

	log.Printf("✅ Password reset for account %d", accountID)

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Password reset successfully",
	})
}

var errResetUnavailable = errors.New("password reset storage not configured")

func resetTokenKey(token string) string {
	return "password_reset:" + auth.HashResetToken(token)
}

func (h *AuthHandler) recordLogin(success bool) {
	if h.metrics != nil {
		h.metrics.RecordLoginAttempt(success)
	}
}

func accountInfo(acct *models.Account) *models.AccountInfo {
	return &models.AccountInfo{
		ID:                 acct.ID,
		Email:              acct.Email,
		Name:               acct.Name,
		SubscriptionStatus: acct.SubscriptionStatus,
		IsPremium:          acct.IsPremium,
		TrialActive:        acct.TrialActive,
	}
}
