package handlers

import (
	"net/http"

	"github.com/JadKHaddad/JobHub/internal/api"
)

// RequestChatIDHandler implements GET /api/request_chat_id: it hands out a
// fresh opaque chat id that the caller then carries on every subsequent
// request.
type RequestChatIDHandler struct {
	facade Facade
}

func NewRequestChatIDHandler(f Facade) *RequestChatIDHandler {
	return &RequestChatIDHandler{facade: f}
}

func (h *RequestChatIDHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, idResponse{ID: h.facade.RequestChatID()})
}
