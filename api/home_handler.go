package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

type homeHandler struct {
	responder Responder
}

func newHomeHandler() homeHandler {
	logger := log.With().Str("handlerName", "homeHandler").Logger()
	return homeHandler{responder: NewResponder(logger)}
}

// getRoot returns a welcome message; doubles as a liveness check.
func (h homeHandler) getRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"message": "Welcome to the blog API",
		})
	}
}
