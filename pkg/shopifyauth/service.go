package shopifyauth

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultTokenURLTemplate = "https://%s/admin/oauth/access_token"

// Credentials holds the Shopify app's API key pair. The secret keys the
// callback HMAC and is sent on the token exchange; it must never appear in
// logs or rendered output.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// AuthService performs the server side of the Shopify OAuth flow
type AuthService struct {
	creds              Credentials
	httpClient         *http.Client
	scopes             string
	redirectURL        string
	tokenURLTemplate   string
	validateShopDomain bool
}

// Option is a function that configures an AuthService
type Option func(*AuthService)

// WithHTTPClient sets the HTTP client used for the token exchange
func WithHTTPClient(client *http.Client) Option {
	return func(s *AuthService) {
		s.httpClient = client
	}
}

// WithScopes sets the comma-separated access scopes requested on install
func WithScopes(scopes string) Option {
	return func(s *AuthService) {
		s.scopes = scopes
	}
}

// WithRedirectURL sets the callback URL registered with the Shopify app
func WithRedirectURL(redirectURL string) Option {
	return func(s *AuthService) {
		s.redirectURL = redirectURL
	}
}

// WithTokenURLTemplate overrides the token endpoint template. The template
// must contain one %s verb for the shop domain. Intended for tests.
func WithTokenURLTemplate(template string) Option {
	return func(s *AuthService) {
		s.tokenURLTemplate = template
	}
}

// WithShopDomainValidation enables or disables the myshopify.com hostname
// check applied before the shop value is used to build an outbound URL
func WithShopDomainValidation(enabled bool) Option {
	return func(s *AuthService) {
		s.validateShopDomain = enabled
	}
}

// NewAuthService creates a new auth service with functional options
func NewAuthService(creds Credentials, opts ...Option) *AuthService {
	service := &AuthService{
		creds:              creds,
		httpClient:         &http.Client{Timeout: 15 * time.Second},
		tokenURLTemplate:   defaultTokenURLTemplate,
		validateShopDomain: true,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// AccessToken is the result of a successful code exchange
type AccessToken struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
}

// CheckCredentials returns an error when the app key pair is not configured
func (s *AuthService) CheckCredentials() error {
	if s.creds.ClientID == "" || s.creds.ClientSecret == "" {
		return ErrMissingCredentials{}
	}
	return nil
}

// ValidatesShopDomain reports whether shop domain validation is enabled
func (s *AuthService) ValidatesShopDomain() bool {
	return s.validateShopDomain
}

// VerifyCallback verifies the HMAC signature of the callback query parameters
func (s *AuthService) VerifyCallback(values url.Values) bool {
	return VerifyCallbackHMAC(values, s.creds.ClientSecret)
}

// ExchangeCode exchanges an authorization code for an access token against
// the shop's admin API. Single attempt, no retry.
func (s *AuthService) ExchangeCode(ctx context.Context, shop, code string) (*AccessToken, error) {
	payload, err := json.Marshal(map[string]string{
		"client_id":     s.creds.ClientID,
		"client_secret": s.creds.ClientSecret,
		"code":          code,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token request: %w", err)
	}

	tokenURL := fmt.Sprintf(s.tokenURLTemplate, shop)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrTokenExchangeFailed{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var token AccessToken
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token response contained no access_token")
	}

	slog.Info("Token exchange successful", "shop", shop, "scope", token.Scope)
	return &token, nil
}

// AuthorizeURL builds the Shopify consent screen URL for a shop
func (s *AuthService) AuthorizeURL(shop, state string) string {
	q := url.Values{}
	q.Set("client_id", s.creds.ClientID)
	q.Set("scope", s.scopes)
	q.Set("redirect_uri", s.redirectURL)
	q.Set("state", state)
	return fmt.Sprintf("https://%s/admin/oauth/authorize?%s", shop, q.Encode())
}

// GenerateState generates a cryptographically secure random state parameter
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
