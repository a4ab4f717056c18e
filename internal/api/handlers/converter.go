package handlers

import (
	"net/http"

	"github.com/JadKHaddad/JobHub/internal/api"
	"github.com/JadKHaddad/JobHub/internal/jobs"
)

// ConverterHandler implements POST /api/gs_log_to_locust_converter: it runs
// the fixed converter command against an already-extracted project
// directory.
type ConverterHandler struct {
	facade Facade
}

func NewConverterHandler(f Facade) *ConverterHandler {
	return &ConverterHandler{facade: f}
}

func (h *ConverterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	chatID, ok := requireChatID(w, r)
	if !ok {
		return
	}
	projectName, ok := requireQueryParam(w, r, "project_name")
	if !ok {
		return
	}

	id, err := h.facade.SubmitConverterJob(chatID, projectName)
	if err != nil {
		if err == jobs.ErrNotFound {
			api.Error(w, http.StatusNotFound, api.ErrNotFound, "project not found")
			return
		}
		api.Error(w, http.StatusInternalServerError, api.ErrInternalServer, err.Error())
		return
	}

	api.JSON(w, http.StatusCreated, idResponse{ID: id})
}
