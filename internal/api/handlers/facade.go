package handlers

import (
	"context"

	"github.com/gorilla/websocket"

	"github.com/JadKHaddad/JobHub/internal/jobs"
)

// Facade is the subset of internal/facade.Facade the HTTP handlers depend
// on. Declaring it here, rather than importing the concrete type directly,
// lets each handler's tests substitute a stub without spinning up a real
// registry and bus.
type Facade interface {
	RequestChatID() string
	SubmitProcessJob(chatID, command string, args []string) string
	SubmitDownloadJob(chatID, downloadURL, projectName string) (string, error)
	SubmitConverterJob(chatID, projectName string) (string, error)
	CancelJob(id, chatID string) (string, error)
	JobStatus(id, chatID string) (jobs.Status, error)
	ListProjectFiles(projectName string) ([]string, error)
	ReadProjectFile(projectName, fileName string) (string, error)
	SearchProjectFiles(ctx context.Context, projectName, query string) ([]string, error)
	SubscribeWS(conn *websocket.Conn, peerAddr string)
}
