package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JadKHaddad/JobHub/internal/api"
)

// CancelHandler implements PUT /api/cancel/{id}: it signals best-effort
// cancellation for a job owned by the caller's chat_id.
type CancelHandler struct {
	facade Facade
}

func NewCancelHandler(f Facade) *CancelHandler {
	return &CancelHandler{facade: f}
}

func (h *CancelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	chatID, ok := requireChatID(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	gotID, err := h.facade.CancelJob(id, chatID)
	if err != nil {
		writeNotFoundOrInternal(w, err)
		return
	}

	api.JSON(w, http.StatusOK, idResponse{ID: gotID})
}
