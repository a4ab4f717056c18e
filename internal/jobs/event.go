package jobs

import "encoding/json"

// IoType distinguishes which stream a TaskIoChunk came from.
type IoType string

const (
	Stdout IoType = "Stdout"
	Stderr IoType = "Stderr"
)

// TaskIoChunk is the mandatory bus event: a slice of a job's output stream.
type TaskIoChunk struct {
	ID      string `json:"id"`
	Chunk   string `json:"chunk"`
	IoType  IoType `json:"io_type"`
}

// Event is the forward-compatible tagged envelope published on the bus and
// forwarded verbatim to WebSocket subscribers as
// {"server_message":"TaskIoChunk","content":{...}}. Subscribers unaware of a
// variant can ignore it since every event carries the same two top-level
// fields.
type Event struct {
	ServerMessage string
	Content       any
}

func NewTaskIoChunkEvent(id string, chunk string, io IoType) Event {
	return Event{
		ServerMessage: "TaskIoChunk",
		Content: TaskIoChunk{
			ID:     id,
			Chunk:  chunk,
			IoType: io,
		},
	}
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ServerMessage string `json:"server_message"`
		Content       any    `json:"content"`
	}{e.ServerMessage, e.Content})
}
