package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replyflow/replyflow-api/config"
	"github.com/replyflow/replyflow-api/pkg/auth"
	"github.com/replyflow/replyflow-api/pkg/cache"
	"github.com/replyflow/replyflow-api/pkg/models"
	"github.com/replyflow/replyflow-api/pkg/store"
)

type mockWelcomeSender struct {
	mu          sync.Mutex
	sent        []string
	resetTokens map[string]string
	errCh       chan struct{}
}

func (m *mockWelcomeSender) SendWelcomeEmail(toEmail, toName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, toEmail)
	if m.errCh != nil {
		close(m.errCh)
	}
	return nil
}

func (m *mockWelcomeSender) SendPasswordResetEmail(toEmail, toName, resetToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resetTokens == nil {
		m.resetTokens = make(map[string]string)
	}
	m.resetTokens[toEmail] = resetToken
	if m.errCh != nil {
		close(m.errCh)
	}
	return nil
}

var _ AuthEmailSender = (*mockWelcomeSender)(nil)

func newAuthTestHandler(st *store.MemoryStore) *AuthHandler {
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 168,
		TrialPeriodDays:    30,
	}
	return NewAuthHandler(st, cfg, nil, nil)
}

func doJSON(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, method, path, body string, setup func(echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	require.NoError(t, handler(c))
	return rec
}

func TestRegisterCreatesAccountAndReturnsToken(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	e := echo.New()

	rec := doJSON(t, e, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"new@example.com","password":"password123","name":"New User"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "new@example.com", resp.Account.Email)
	assert.Equal(t, models.StatusTrialing, resp.Account.SubscriptionStatus)
	assert.True(t, resp.Account.TrialActive)
	assert.True(t, resp.Account.IsPremium)

	claims, err := auth.ValidateJWT(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.Account.ID, claims.AccountID)

	acct, err := st.GetAccountByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", acct.PasswordHash)
	require.NotNil(t, acct.TrialEndDate)
	assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 30), *acct.TrialEndDate, time.Minute)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	e := echo.New()

	_, err := st.CreateAccount(context.Background(), &models.Account{Email: "taken@example.com"})
	require.NoError(t, err)

	rec := doJSON(t, e, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"taken@example.com","password":"password123","name":"Someone"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "account_exists")
}

func TestRegisterValidationRejectsShortPassword(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	e := echo.New()

	rec := doJSON(t, e, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"new@example.com","password":"short","name":"New User"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterSendsWelcomeEmail(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	sender := &mockWelcomeSender{errCh: make(chan struct{})}
	h.SetEmailService(sender)
	e := echo.New()

	rec := doJSON(t, e, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"welcome@example.com","password":"password123","name":"Welcome"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	<-sender.errCh
	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.Equal(t, []string{"welcome@example.com"}, sender.sent)
}

func TestLoginSuccess(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	e := echo.New()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	_, err = st.CreateAccount(context.Background(), &models.Account{
		Email:        "login@example.com",
		PasswordHash: hash,
	})
	require.NoError(t, err)

	rec := doJSON(t, e, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"login@example.com","password":"password123"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	e := echo.New()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	_, err = st.CreateAccount(context.Background(), &models.Account{
		Email:        "login@example.com",
		PasswordHash: hash,
	})
	require.NoError(t, err)

	rec := doJSON(t, e, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"login@example.com","password":"not-the-password"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")
}

func TestLoginUnknownEmailSameErrorAsWrongPassword(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	e := echo.New()

	rec := doJSON(t, e, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"whatever123"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_credentials")
}

func TestMeReturnsAccount(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	e := echo.New()

	acct, err := st.CreateAccount(context.Background(), &models.Account{
		Email:              "me@example.com",
		Name:               "Me",
		SubscriptionStatus: models.StatusTrialing,
		TrialActive:        true,
	})
	require.NoError(t, err)

	rec := doJSON(t, e, h.Me, http.MethodGet, "/api/auth/me", "", func(c echo.Context) {
		c.Set("account_id", acct.ID)
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var info models.AccountInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, acct.ID, info.ID)
	assert.Equal(t, models.StatusTrialing, info.SubscriptionStatus)
	assert.True(t, info.TrialActive)
}

func TestMeWithoutContextIsUnauthorized(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	e := echo.New()

	rec := doJSON(t, e, h.Me, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func newResetTestCache(t *testing.T) *cache.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	c := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestPasswordResetFlow(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	h.SetCache(newResetTestCache(t))
	sender := &mockWelcomeSender{errCh: make(chan struct{})}
	h.SetEmailService(sender)
	e := echo.New()

	hashed, err := auth.HashPassword("oldpassword123")
	require.NoError(t, err)
	acct, err := st.CreateAccount(context.Background(), &models.Account{
		Email:        "reset@example.com",
		Name:         "Reset Me",
		PasswordHash: hashed,
	})
	require.NoError(t, err)

	rec := doJSON(t, e, h.ForgotPassword, http.MethodPost, "/api/auth/forgot-password",
		`{"email":"reset@example.com"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "If an account exists")

	<-sender.errCh
	sender.mu.Lock()
	token := sender.resetTokens["reset@example.com"]
	sender.mu.Unlock()
	require.NotEmpty(t, token)

	rec = doJSON(t, e, h.ResetPassword, http.MethodPost, "/api/auth/reset-password",
		`{"token":"`+token+`","new_password":"newpassword123"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	got, err := st.GetAccount(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(got.PasswordHash, "newpassword123"))
	assert.False(t, auth.CheckPassword(got.PasswordHash, "oldpassword123"))

	// Token is single use
	rec = doJSON(t, e, h.ResetPassword, http.MethodPost, "/api/auth/reset-password",
		`{"token":"`+token+`","new_password":"anotherpassword123"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_token")
}

func TestForgotPasswordUnknownEmailGetsGenericResponse(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	h.SetCache(newResetTestCache(t))
	sender := &mockWelcomeSender{}
	h.SetEmailService(sender)
	e := echo.New()

	rec := doJSON(t, e, h.ForgotPassword, http.MethodPost, "/api/auth/forgot-password",
		`{"email":"nobody@example.com"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "If an account exists")

	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.Empty(t, sender.resetTokens)
}

func TestResetPasswordRejectsUnknownToken(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	h.SetCache(newResetTestCache(t))
	e := echo.New()

	rec := doJSON(t, e, h.ResetPassword, http.MethodPost, "/api/auth/reset-password",
		`{"token":"never-issued","new_password":"newpassword123"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_token")
}

func TestResetPasswordRejectsShortPassword(t *testing.T) {
	st := store.NewMemoryStore()
	h := newAuthTestHandler(st)
	h.SetCache(newResetTestCache(t))
	e := echo.New()

	rec := doJSON(t, e, h.ResetPassword, http.MethodPost, "/api/auth/reset-password",
		`{"token":"whatever","new_password":"short"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
