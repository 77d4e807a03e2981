package shopifyauth

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the OAuth endpoints. The callback is registered for all
// methods so the handler's own method gate can answer non-GET requests with
// a rendered 405 page.
func Routes(r *chi.Mux, handle Handle) {
	r.Get("/auth/shopify", handle.HandleAuthorize)
	r.HandleFunc("/auth/shopify/callback", handle.HandleCallback)
}
