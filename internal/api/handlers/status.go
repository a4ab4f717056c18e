package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JadKHaddad/JobHub/internal/api"
)

// StatusHandler implements GET /api/status/{id}: it reports the current
// tagged status of a job owned by the caller's chat_id.
type StatusHandler struct {
	facade Facade
}

func NewStatusHandler(f Facade) *StatusHandler {
	return &StatusHandler{facade: f}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	chatID, ok := requireChatID(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	status, err := h.facade.JobStatus(id, chatID)
	if err != nil {
		writeNotFoundOrInternal(w, err)
		return
	}

	api.JSON(w, http.StatusOK, statusResponse{Status: status})
}
