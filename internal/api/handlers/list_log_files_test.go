package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JadKHaddad/JobHub/internal/api"
	"github.com/JadKHaddad/JobHub/internal/jobs"
)

func TestListLogFilesHandler_ServeHTTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		url         string
		list        func(projectName string) ([]string, error)
		wantStatus  int
		wantErrType string
		wantFiles   []string
	}{
		{
			name: "happy_path",
			url:  "/api/list_log_files?chat_id=chat-1&project_name=proj",
			list: func(projectName string) ([]string, error) {
				assert.Equal(t, "proj", projectName)
				return []string{"a.log", "b.log"}, nil
			},
			wantStatus: http.StatusOK,
			wantFiles:  []string{"a.log", "b.log"},
		},
		{
			name:        "missing_chat_id",
			url:         "/api/list_log_files?project_name=proj",
			wantStatus:  http.StatusBadRequest,
			wantErrType: api.ErrChatIDMissing,
		},
		{
			name:        "missing_project_name",
			url:         "/api/list_log_files?chat_id=chat-1",
			wantStatus:  http.StatusBadRequest,
			wantErrType: api.ErrQueryInvalid,
		},
		{
			name: "project_not_found",
			url:  "/api/list_log_files?chat_id=chat-1&project_name=missing",
			list: func(projectName string) ([]string, error) {
				return nil, jobs.ErrNotFound
			},
			wantStatus:  http.StatusNotFound,
			wantErrType: api.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := &stubFacade{
				listProjectFiles: func(projectName string) ([]string, error) {
					if tc.list != nil {
						return tc.list(projectName)
					}
					return nil, nil
				},
			}
			h := NewListLogFilesHandler(f)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			require.Equal(t, tc.wantStatus, w.Code)

			if tc.wantStatus == http.StatusOK {
				var resp filesResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tc.wantFiles, resp.Files)
			} else {
				var resp api.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tc.wantErrType, resp.Type)
			}
		})
	}
}
