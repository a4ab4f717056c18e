package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JadKHaddad/JobHub/internal/api/middleware"
)

// RouterConfig holds all dependencies required to build the API router.
type RouterConfig struct {
	// AllowedOrigins for CORS. Use ["*"] during development.
	AllowedOrigins []string

	// APIToken is the shared secret checked against the api_key header on
	// every /api/* route.
	APIToken string

	// Handlers -----------------------------------------------------------

	HealthHandler             http.Handler // GET  /health
	RequestChatIDHandler      http.Handler // GET  /api/request_chat_id
	DownloadZipFileHandler    http.Handler // POST /api/download_zip_file
	ConverterHandler          http.Handler // POST /api/gs_log_to_locust_converter
	CancelHandler             http.Handler // PUT  /api/cancel/{id}
	StatusHandler             http.Handler // GET  /api/status/{id}
	ListLogFilesHandler       http.Handler // GET  /api/list_log_files
	GetLogFileTextHandler     http.Handler // GET  /api/get_log_file_text
	SearchProjectFilesHandler http.Handler // GET  /api/search_project_files
	WSHandler                 http.Handler // GET  /ws
}

// NewRouter builds a fully-configured *mux.Router with every route from the
// external interface and the middleware chain applied.
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.BodyLimitMiddleware)

	r.Handle("/health", handlerOrStub(cfg.HealthHandler)).Methods(http.MethodGet, http.MethodOptions)

	// The WebSocket upgrade is intentionally left outside the api_key check:
	// the spec does not mandate auth on /ws.
	r.Handle("/ws", handlerOrStub(cfg.WSHandler)).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	authMW := middleware.NewAuthMiddleware(cfg.APIToken)
	api.Use(authMW.Authenticate)

	api.Handle("/request_chat_id", handlerOrStub(cfg.RequestChatIDHandler)).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/download_zip_file", handlerOrStub(cfg.DownloadZipFileHandler)).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/gs_log_to_locust_converter", handlerOrStub(cfg.ConverterHandler)).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/cancel/{id}", handlerOrStub(cfg.CancelHandler)).Methods(http.MethodPut, http.MethodOptions)
	api.Handle("/status/{id}", handlerOrStub(cfg.StatusHandler)).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/list_log_files", handlerOrStub(cfg.ListLogFilesHandler)).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/get_log_file_text", handlerOrStub(cfg.GetLogFileTextHandler)).Methods(http.MethodGet, http.MethodOptions)
	api.Handle("/search_project_files", handlerOrStub(cfg.SearchProjectFilesHandler)).Methods(http.MethodGet, http.MethodOptions)

	return r
}

// handlerOrStub returns the provided handler if non-nil, otherwise a stub
// that responds with 501 Not Implemented.
func handlerOrStub(h http.Handler) http.Handler {
	if h != nil {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Error(w, http.StatusNotImplemented, "InternalServerError", "this endpoint is not yet implemented")
	})
}
