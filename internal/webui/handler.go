package webui

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed static
var assets embed.FS

// Handler serves the embedded contact page. The page's data-testid
// attributes are a stable contract for browser test suites and must not
// be renamed without coordinating with them.
type Handler struct{}

// NewHandler creates the static page handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Routes registers the page routes on the router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/contact", h.Index)
}

// Index serves the contact page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := assets.ReadFile("static/contact.html")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
