package handlers

import (
	"errors"
	"net/http"

	"github.com/JadKHaddad/JobHub/internal/api"
	"github.com/JadKHaddad/JobHub/internal/jobs"
)

// DownloadZipFileHandler implements POST /api/download_zip_file: it
// converts a Google Drive share/view link to a direct-download URL and
// submits a download-and-unzip job against it.
type DownloadZipFileHandler struct {
	facade Facade
}

func NewDownloadZipFileHandler(f Facade) *DownloadZipFileHandler {
	return &DownloadZipFileHandler{facade: f}
}

func (h *DownloadZipFileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	chatID, ok := requireChatID(w, r)
	if !ok {
		return
	}
	projectName, ok := requireQueryParam(w, r, "project_name")
	if !ok {
		return
	}
	shareLink, ok := requireQueryParam(w, r, "google_drive_share_link")
	if !ok {
		return
	}

	downloadURL, err := jobs.ConvertGoogleShareOrViewURLToDownloadURL(shareLink)
	if err != nil {
		var convErr *jobs.GoogleConvertLinkError
		if errors.As(err, &convErr) {
			api.Error(w, http.StatusBadRequest, string(convErr.Kind), "google_drive_share_link: "+convErr.Error())
			return
		}
		api.Error(w, http.StatusBadRequest, api.ErrGoogleConvertLink, err.Error())
		return
	}

	id, err := h.facade.SubmitDownloadJob(chatID, downloadURL, projectName)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, api.ErrInternalServer, err.Error())
		return
	}

	api.JSON(w, http.StatusCreated, idResponse{ID: id})
}
