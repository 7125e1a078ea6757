package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const welcomeMessage = "Welcome to the Boba Order API! The server is running."

type IndexHandler struct{}

func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

func (h *IndexHandler) Init(r chi.Router) {
	r.Get("/", h.Welcome)
}

func (h *IndexHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, welcomeMessage)
}
