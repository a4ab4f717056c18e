package handlers

import (
	"net/http"

	"github.com/JadKHaddad/JobHub/internal/api"
)

// SearchProjectFilesHandler implements GET /api/search_project_files, a
// supplemental operation not present in the core spec: a full-text query
// over a project's indexed files. It returns an empty list, not an error,
// when no search index backs the registry.
type SearchProjectFilesHandler struct {
	facade Facade
}

func NewSearchProjectFilesHandler(f Facade) *SearchProjectFilesHandler {
	return &SearchProjectFilesHandler{facade: f}
}

func (h *SearchProjectFilesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireChatID(w, r); !ok {
		return
	}
	projectName, ok := requireQueryParam(w, r, "project_name")
	if !ok {
		return
	}
	query, ok := requireQueryParam(w, r, "query")
	if !ok {
		return
	}

	files, err := h.facade.SearchProjectFiles(r.Context(), projectName, query)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, api.ErrInternalServer, err.Error())
		return
	}

	api.JSON(w, http.StatusOK, filesResponse{Files: files})
}
