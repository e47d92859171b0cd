package handler

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// PagesHandler serves the three static consoles. They talk to the API only via XHR.
type PagesHandler struct {
	dir string
}

func NewPagesHandler(dir string) *PagesHandler {
	return &PagesHandler{dir: dir}
}

func (h *PagesHandler) Init(r chi.Router) {
	r.Get("/passenger/order", h.serve("passenger-order.html"))
	r.Get("/dispatcher", h.serve("dispatcher-orders.html"))
	r.Get("/driver", h.serve("driver-orders.html"))
}

func (h *PagesHandler) serve(name string) http.HandlerFunc {
	path := filepath.Join(h.dir, name)
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}
