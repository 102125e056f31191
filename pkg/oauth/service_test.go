package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replyflow/replyflow-api/config"
	"github.com/replyflow/replyflow-api/pkg/models"
	"github.com/replyflow/replyflow-api/pkg/store"
)

func newTestService(t *testing.T, st *store.MemoryStore) (*Service, *httptest.Server) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "test-access-token",
			"id_token":     "test-id-token",
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-access-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"id":      "google-123",
			"email":   "user@example.com",
			"name":    "Test User",
			"picture": "https://example.com/pic.jpg",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		OAuthCallbackURL:   "http://localhost:3000/callback",
		TrialPeriodDays:    30,
	}

	svc := NewService(st, cfg)
	svc.tokenURL = srv.URL + "/token"
	svc.userInfoURL = srv.URL + "/userinfo"

	return svc, srv
}

func TestHandleCallbackReturnsUserInfo(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())

	info, err := svc.HandleCallback(context.Background(), "good-code", "")
	require.NoError(t, err)
	assert.Equal(t, "google-123", info.ID)
	assert.Equal(t, "user@example.com", info.Email)
	assert.Equal(t, "Test User", info.Name)
}

func TestHandleCallbackRejectsBadCode(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())

	_, err := svc.HandleCallback(context.Background(), "bad-code", "")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestFindOrCreateAccount_CreatesNewAccount(t *testing.T) {
	st := store.NewMemoryStore()
	svc, _ := newTestService(t, st)

	acct, created, err := svc.FindOrCreateAccount(context.Background(), &UserInfo{
		ID:    "google-123",
		Email: "new@example.com",
		Name:  "New User",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "new@example.com", acct.Email)
	assert.Equal(t, "google-123", acct.GoogleID)
	assert.Equal(t, models.StatusTrialing, acct.SubscriptionStatus)
	assert.True(t, acct.TrialActive)
	require.NotNil(t, acct.TrialEndDate)
}

func TestFindOrCreateAccount_LinksExistingByEmail(t *testing.T) {
	st := store.NewMemoryStore()
	svc, _ := newTestService(t, st)

	existing, err := st.CreateAccount(context.Background(), &models.Account{
		Email:              "existing@example.com",
		Name:               "Existing User",
		SubscriptionStatus: models.StatusFreemium,
	})
	require.NoError(t, err)

	acct, created, err := svc.FindOrCreateAccount(context.Background(), &UserInfo{
		ID:    "google-456",
		Email: "existing@example.com",
		Name:  "Existing User",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, acct.ID)
	assert.Equal(t, "google-456", acct.GoogleID)

	reloaded, err := st.GetAccount(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "google-456", reloaded.GoogleID)
}
