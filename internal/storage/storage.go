package storage

import "time"

// Event is one recorded turn of a conversation.
type Event struct {
	Timestamp        time.Time `json:"timestamp"`
	SessionID        string    `json:"session_id"`
	Question         string    `json:"question"`
	Query            string    `json:"query"`
	Answer           string    `json:"answer"`
	Model            string    `json:"model,omitempty"`
	PromptTokens     int       `json:"prompt_tokens,omitempty"`
	CompletionTokens int       `json:"completion_tokens,omitempty"`
	TotalTokens      int       `json:"total_tokens,omitempty"`
}

type Recorder interface {
	AppendTurn(event Event) error
}
