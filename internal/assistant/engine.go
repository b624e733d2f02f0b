package assistant

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"web-chatter/internal/session"
	"web-chatter/internal/storage"
)

// ErrEmptyQuestion is returned when the question is blank after trimming.
var ErrEmptyQuestion = errors.New("question must not be empty")

// Engine runs the fixed per-turn pipeline: resolve the query, retrieve web
// context, respond, then record the turn into the session.
type Engine struct {
	retriever *Retriever
	responder *Responder
	recorder  storage.Recorder
}

// NewEngine composes the pipeline. recorder may be nil to disable the
// transcript log.
func NewEngine(retriever *Retriever, responder *Responder, recorder storage.Recorder) *Engine {
	return &Engine{retriever: retriever, responder: responder, recorder: recorder}
}

// Ask processes one user turn against the given session. Retrieval failures
// degrade silently; only input validation and model failures surface.
func (e *Engine) Ask(ctx context.Context, sess *session.Session, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	rq := Resolve(question, sess.Entity())
	contextText := e.retriever.Retrieve(ctx, sess, question, rq)

	resp, err := e.responder.Respond(ctx, sess, question, contextText)
	if err != nil {
		return "", err
	}

	sess.AppendTurn(session.Turn{
		Question: question,
		Query:    rq.Query,
		Context:  contextText,
		Answer:   resp.Content,
	})

	if e.recorder != nil {
		ev := storage.Event{
			Timestamp:        time.Now().UTC(),
			SessionID:        sess.ID,
			Question:         question,
			Query:            rq.Query,
			Answer:           resp.Content,
			Model:            resp.Model,
			PromptTokens:     resp.PromptTokens,
			CompletionTokens: resp.CompletionTokens,
			TotalTokens:      resp.TotalTokens,
		}
		if err := e.recorder.AppendTurn(ev); err != nil {
			log.Printf("failed to record turn: %v", err)
		}
	}

	return resp.Content, nil
}
