package handlers

import (
	"context"

	"github.com/gorilla/websocket"

	"github.com/JadKHaddad/JobHub/internal/jobs"
)

// stubFacade is a fully scriptable Facade implementation for handler tests:
// each field is filled in by the test case that needs it, and the rest stay
// nil/zero since a given handler only calls a subset of the interface.
type stubFacade struct {
	requestChatID func() string

	submitProcessJob func(chatID, command string, args []string) string

	submitDownloadJob func(chatID, downloadURL, projectName string) (string, error)

	submitConverterJob func(chatID, projectName string) (string, error)

	cancelJob func(id, chatID string) (string, error)

	jobStatus func(id, chatID string) (jobs.Status, error)

	listProjectFiles func(projectName string) ([]string, error)

	readProjectFile func(projectName, fileName string) (string, error)

	searchProjectFiles func(ctx context.Context, projectName, query string) ([]string, error)

	subscribeWS func(conn *websocket.Conn, peerAddr string)
}

func (s *stubFacade) RequestChatID() string {
	return s.requestChatID()
}

func (s *stubFacade) SubmitProcessJob(chatID, command string, args []string) string {
	return s.submitProcessJob(chatID, command, args)
}

func (s *stubFacade) SubmitDownloadJob(chatID, downloadURL, projectName string) (string, error) {
	return s.submitDownloadJob(chatID, downloadURL, projectName)
}

func (s *stubFacade) SubmitConverterJob(chatID, projectName string) (string, error) {
	return s.submitConverterJob(chatID, projectName)
}

func (s *stubFacade) CancelJob(id, chatID string) (string, error) {
	return s.cancelJob(id, chatID)
}

func (s *stubFacade) JobStatus(id, chatID string) (jobs.Status, error) {
	return s.jobStatus(id, chatID)
}

func (s *stubFacade) ListProjectFiles(projectName string) ([]string, error) {
	return s.listProjectFiles(projectName)
}

func (s *stubFacade) ReadProjectFile(projectName, fileName string) (string, error) {
	return s.readProjectFile(projectName, fileName)
}

func (s *stubFacade) SearchProjectFiles(ctx context.Context, projectName, query string) ([]string, error) {
	return s.searchProjectFiles(ctx, projectName, query)
}

func (s *stubFacade) SubscribeWS(conn *websocket.Conn, peerAddr string) {
	s.subscribeWS(conn, peerAddr)
}
