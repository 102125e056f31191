package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/replyflow/replyflow-api/config"
	"github.com/replyflow/replyflow-api/pkg/domain"
	"github.com/replyflow/replyflow-api/pkg/models"
)

var (
	// ErrInvalidCode is returned when the authorization code is invalid
	ErrInvalidCode = errors.New("invalid authorization code")
	// ErrProviderAPIError is returned when the provider API returns an error
	ErrProviderAPIError = errors.New("OAuth provider API error")
)

// UserInfo holds basic user information from Google
type UserInfo struct {
	ID            string
	Email         string
	Name          string
	ProfilePicURL string
}

// Service handles Google OAuth operations
type Service struct {
	store  domain.Store
	config *config.Config
	client *http.Client

	tokenURL    string
	userInfoURL string
}

// NewService creates a new OAuth service
func NewService(store domain.Store, cfg *config.Config) *Service {
	return &Service{
		store:  store,
		config: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		tokenURL:    "https://oauth2.googleapis.com/token",
		userInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
	}
}

// GetAuthURL returns the Google OAuth authorization URL
func (s *Service) GetAuthURL(state string) string {
	baseURL := "https://accounts.google.com/o/oauth2/v2/auth"
	params := url.Values{}
	params.Add("client_id", s.config.GoogleClientID)
	params.Add("redirect_uri", s.config.OAuthCallbackURL)
	params.Add("response_type", "code")
	params.Add("scope", "openid email profile")
	params.Add("state", state)
	return baseURL + "?" + params.Encode()
}

// HandleCallback exchanges the authorization code and returns user info
func (s *Service) HandleCallback(ctx context.Context, code, redirectURI string) (*UserInfo, error) {
	if redirectURI == "" {
		redirectURI = s.config.OAuthCallbackURL
	}

	data := url.Values{}
	data.Set("code", code)
	data.Set("client_id", s.config.GoogleClientID)
	data.Set("client_secret", s.config.GoogleClientSecret)
	data.Set("redirect_uri", redirectURI)
	data.Set("grant_type", "authorization_code")

	resp, err := s.client.PostForm(s.tokenURL, data)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidCode
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		IDToken     string `json:"id_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", s.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tokenResp.AccessToken)

	resp, err = s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrProviderAPIError
	}

	var googleUser struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	if googleUser.Email == "" {
		return nil, fmt.Errorf("%w: no email in user info", ErrProviderAPIError)
	}

	return &UserInfo{
		ID:            googleUser.ID,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		ProfilePicURL: googleUser.Picture,
	}, nil
}

// FindOrCreateAccount finds an existing account for the Google identity or
// creates a new one. Returns the account and whether it was created.
func (s *Service) FindOrCreateAccount(ctx context.Context, userInfo *UserInfo) (*models.Account, bool, error) {
	acct, err := s.store.GetAccountByEmail(ctx, userInfo.Email)
	if err == nil {
		if acct.GoogleID == "" {
			// Link the Google identity to the existing account
			acct.GoogleID = userInfo.ID
			if err := s.store.UpdateAccount(ctx, acct); err != nil {
				return nil, false, fmt.Errorf("failed to link google account: %w", err)
			}
			log.Printf("🔗 Linked Google identity to account %d", acct.ID)
		}
		return acct, false, nil
	}

	if !domain.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query account: %w", err)
	}

	acct = &models.Account{
		Email:    userInfo.Email,
		Name:     userInfo.Name,
		GoogleID: userInfo.ID,
	}
	acct.StartTrial(time.Now().UTC(), s.config.TrialPeriodDays)

	newAcct, err := s.store.CreateAccount(ctx, acct)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create account: %w", err)
	}

	log.Printf("✅ Created account %d via Google sign-in", newAcct.ID)
	return newAcct, true, nil
}
