package shopifyauth

import "fmt"

// ErrMissingCredentials is returned when the app's client ID or client secret is not configured
type ErrMissingCredentials struct{}

func (e ErrMissingCredentials) Error() string {
	return "shopify app credentials are not configured"
}

// ErrInvalidSignature is returned when the callback query string fails HMAC verification
type ErrInvalidSignature struct{}

func (e ErrInvalidSignature) Error() string {
	return "hmac verification failed"
}

// ErrInvalidShopDomain is returned when the shop parameter is not a myshopify.com hostname
type ErrInvalidShopDomain struct {
	Shop string
}

func (e ErrInvalidShopDomain) Error() string {
	return fmt.Sprintf("invalid shop domain: %s", e.Shop)
}

// ErrTokenExchangeFailed is returned when the access token request is rejected upstream
type ErrTokenExchangeFailed struct {
	StatusCode int
	Status     string
}

func (e ErrTokenExchangeFailed) Error() string {
	return fmt.Sprintf("token exchange failed: %s", e.Status)
}
