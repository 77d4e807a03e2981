package shopifyauth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// Handle exposes the OAuth endpoints over HTTP
type Handle struct {
	authService *AuthService
}

// NewHandle creates a new Shopify auth handler
func NewHandle(authService *AuthService) Handle {
	return Handle{
		authService: authService,
	}
}

// HandleAuthorize starts an install by redirecting the merchant to the
// Shopify consent screen.
func (h Handle) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.renderError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	shop := r.URL.Query().Get("shop")

	if err := h.authService.CheckCredentials(); err != nil {
		slog.Error("Shopify app credentials missing", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if h.authService.ValidatesShopDomain() && !ValidShopDomain(shop) {
		err := ErrInvalidShopDomain{Shop: shop}
		slog.Error("Rejected authorize request", "shop", shop)
		h.renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	state, err := GenerateState()
	if err != nil {
		slog.Error("Failed to generate state", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, "failed to generate state")
		return
	}

	authURL := h.authService.AuthorizeURL(shop, state)
	slog.Info("Redirecting to Shopify consent screen", "shop", shop)
	http.Redirect(w, r, authURL, http.StatusFound)
}

// HandleCallback processes the OAuth redirect from Shopify: verifies the
// query-string HMAC, exchanges the authorization code for an access token,
// and renders a confirmation page. Every failure is converted here into a
// rendered error page; nothing propagates past the handler.
func (h Handle) HandleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.renderError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	params := r.URL.Query()
	shop := params.Get("shop")

	if err := h.authService.CheckCredentials(); err != nil {
		slog.Error("Shopify app credentials missing", "error", err)
		h.renderError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	if !h.authService.VerifyCallback(params) {
		err := ErrInvalidSignature{}
		slog.Error("Rejected callback with bad signature", "shop", shop)
		h.renderError(w, r, http.StatusUnauthorized, err.Error())
		return
	}

	if h.authService.ValidatesShopDomain() && !ValidShopDomain(shop) {
		err := ErrInvalidShopDomain{Shop: shop}
		slog.Error("Rejected callback", "shop", shop)
		h.renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.ExchangeCode(r.Context(), shop, params.Get("code"))
	if err != nil {
		slog.Error("Failed to exchange authorization code", "shop", shop, "error", err)
		h.renderError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("Shop connected", "shop", shop, "scope", token.Scope)

	render.Status(r, http.StatusOK)
	render.HTML(w, r, SuccessPage(shop, token.Scope))
}

func (h Handle) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.HTML(w, r, ErrorPage(message))
}
