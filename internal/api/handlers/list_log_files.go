package handlers

import (
	"net/http"

	"github.com/JadKHaddad/JobHub/internal/api"
)

// ListLogFilesHandler implements GET /api/list_log_files: it lists the
// basenames of every file directly under a project directory.
type ListLogFilesHandler struct {
	facade Facade
}

func NewListLogFilesHandler(f Facade) *ListLogFilesHandler {
	return &ListLogFilesHandler{facade: f}
}

func (h *ListLogFilesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireChatID(w, r); !ok {
		return
	}
	projectName, ok := requireQueryParam(w, r, "project_name")
	if !ok {
		return
	}

	files, err := h.facade.ListProjectFiles(projectName)
	if err != nil {
		writeNotFoundOrInternal(w, err)
		return
	}

	api.JSON(w, http.StatusOK, filesResponse{Files: files})
}
