package handlers

import (
	"net/http"
)

// GetLogFileTextHandler implements GET /api/get_log_file_text: it returns
// the full text content of one file within a project directory.
type GetLogFileTextHandler struct {
	facade Facade
}

func NewGetLogFileTextHandler(f Facade) *GetLogFileTextHandler {
	return &GetLogFileTextHandler{facade: f}
}

func (h *GetLogFileTextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireChatID(w, r); !ok {
		return
	}
	projectName, ok := requireQueryParam(w, r, "project_name")
	if !ok {
		return
	}
	fileName, ok := requireQueryParam(w, r, "file_name")
	if !ok {
		return
	}

	text, err := h.facade.ReadProjectFile(projectName, fileName)
	if err != nil {
		writeNotFoundOrInternal(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
