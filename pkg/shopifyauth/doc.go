// Package shopifyauth completes the Shopify OAuth2 authorization-code flow.
//
// This package verifies the HMAC signature Shopify attaches to its OAuth
// redirect, exchanges the authorization code for an access token against the
// shop's admin API, and renders the confirmation pages shown to the merchant.
//
// # Overview
//
// The shopifyauth package provides:
//   - Callback query-string HMAC-SHA256 verification (constant-time)
//   - Authorization code to access token exchange
//   - Authorize URL construction for starting an install
//   - Webhook body HMAC verification
//   - HTML success and error pages for the OAuth popup
//
// # Basic Usage
//
//	import "github.com/tendant/shopify-connect/pkg/shopifyauth"
//
//	// Create service
//	authService := shopifyauth.NewAuthService(
//		shopifyauth.Credentials{ClientID: clientID, ClientSecret: clientSecret},
//		shopifyauth.WithScopes("read_orders"),
//		shopifyauth.WithRedirectURL("https://app.example.com/auth/shopify/callback"),
//	)
//
//	// Mount routes
//	handle := shopifyauth.NewHandle(authService)
//	shopifyauth.Routes(r, handle)
//
// # OAuth Flow
//
// Step 1: the merchant opens /auth/shopify?shop=example.myshopify.com and is
// redirected to the Shopify consent screen.
//
// Step 2: Shopify redirects back to /auth/shopify/callback with code, shop,
// state and hmac query parameters. The handler verifies the hmac, exchanges
// the code for an access token, and renders a confirmation page that closes
// the popup window.
//
// Access tokens are not persisted by this package; a deployment is expected
// to store them elsewhere.
package shopifyauth
