package handlers

import (
	"net/http"

	"github.com/JadKHaddad/JobHub/internal/api"
	"github.com/JadKHaddad/JobHub/internal/jobs"
)

// idResponse is the {"id":"..."} body returned by every job-submission and
// the cancel endpoint.
type idResponse struct {
	ID string `json:"id"`
}

// statusResponse wraps a job's tagged status under the "status" key per
// spec §6.
type statusResponse struct {
	Status jobs.Status `json:"status"`
}

// filesResponse wraps a file-name list under a "files" key rather than a
// bare array, leaving room to add per-file metadata later without breaking
// the contract.
type filesResponse struct {
	Files []string `json:"files"`
}

// requireChatID reads chat_id from the query string, writing the
// ChatIdMissing error and returning ok=false if it is absent.
func requireChatID(w http.ResponseWriter, r *http.Request) (string, bool) {
	chatID := r.URL.Query().Get("chat_id")
	if chatID == "" {
		api.Error(w, http.StatusBadRequest, api.ErrChatIDMissing, "chat_id query parameter is required")
		return "", false
	}
	return chatID, true
}

// requireQueryParam reads a required, named query parameter, writing the
// QueryInvalid error and returning ok=false if it is absent.
func requireQueryParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		api.Error(w, http.StatusBadRequest, api.ErrQueryInvalid, name+" query parameter is required")
		return "", false
	}
	return v, true
}

// writeNotFoundOrInternal maps the registry's sentinel ErrNotFound to 404
// and anything else to 500.
func writeNotFoundOrInternal(w http.ResponseWriter, err error) {
	if err == jobs.ErrNotFound {
		api.Error(w, http.StatusNotFound, api.ErrNotFound, "no such job or project for this chat_id")
		return
	}
	api.Error(w, http.StatusInternalServerError, api.ErrInternalServer, err.Error())
}
