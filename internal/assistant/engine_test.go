package assistant

import (
	"context"
	"path/filepath"
	"testing"

	"web-chatter/internal/search"
	"web-chatter/internal/session"
	"web-chatter/internal/storage"
)

func newTestEngine(t *testing.T, provider search.Provider, pages map[string]string, client *fakeLLM) (*Engine, *storage.FileRecorder) {
	t.Helper()
	rec, err := storage.NewFileRecorder(filepath.Join(t.TempDir(), "turns.jsonl"))
	if err != nil {
		t.Fatalf("failed to create recorder: %v", err)
	}
	retriever := newTestRetriever(provider, pages, nil)
	responder := NewResponder(client, 6, 10000)
	return NewEngine(retriever, responder, rec), rec
}

func TestEngineAskRecordsTurn(t *testing.T) {
	provider := &fakeProvider{results: []search.Result{{Link: "https://a.example.com"}}}
	pages := map[string]string{"https://a.example.com": "page text"}
	client := &fakeLLM{reply: "the answer"}
	engine, rec := newTestEngine(t, provider, pages, client)
	sess := session.New()

	answer, err := engine.Ask(context.Background(), sess, "history of the eiffel tower")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if answer != "the answer" {
		t.Fatalf("unexpected answer: %q", answer)
	}
	if sess.TurnCount() != 1 {
		t.Fatalf("turn not appended: %d", sess.TurnCount())
	}

	events, err := rec.LoadTurns()
	if err != nil {
		t.Fatalf("failed to load transcript: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 recorded event, got %d", len(events))
	}
	if events[0].Question != "history of the eiffel tower" || events[0].Answer != "the answer" {
		t.Fatalf("unexpected event: %+v", events[0])
	}
	if events[0].SessionID != sess.ID {
		t.Fatalf("event session id mismatch: %q vs %q", events[0].SessionID, sess.ID)
	}
}

func TestEngineRejectsEmptyQuestion(t *testing.T) {
	engine, _ := newTestEngine(t, &fakeProvider{}, nil, &fakeLLM{reply: "x"})
	sess := session.New()

	if _, err := engine.Ask(context.Background(), sess, "   "); err != ErrEmptyQuestion {
		t.Fatalf("expected ErrEmptyQuestion, got %v", err)
	}
	if sess.TurnCount() != 0 {
		t.Fatalf("rejected input must not mutate the session")
	}
}

func TestEngineFollowUpUsesTrackedEntity(t *testing.T) {
	provider := &fakeProvider{results: []search.Result{{Link: "https://a.example.com"}}}
	pages := map[string]string{"https://a.example.com": "page text"}
	client := &fakeLLM{reply: "ok"}
	engine, _ := newTestEngine(t, provider, pages, client)
	sess := session.New()

	if _, err := engine.Ask(context.Background(), sess, "history of the eiffel tower"); err != nil {
		t.Fatalf("first ask failed: %v", err)
	}
	if _, err := engine.Ask(context.Background(), sess, "tell me more"); err != nil {
		t.Fatalf("follow-up ask failed: %v", err)
	}

	if provider.lastQuery != "history of the eiffel tower" {
		t.Fatalf("follow-up searched %q, want the tracked entity", provider.lastQuery)
	}
	turns := sess.Window(2)
	if turns[1].Query != "history of the eiffel tower" {
		t.Fatalf("turn recorded wrong resolved query: %+v", turns[1])
	}
}

func TestEngineFirstQuestionAcrossTurns(t *testing.T) {
	provider := &fakeProvider{}
	client := &fakeLLM{reply: "answer"}
	engine, _ := newTestEngine(t, provider, nil, client)
	sess := session.New()

	for _, q := range []string{"who invented the telephone exactly", "when did that happen then", "where was he born though"} {
		if _, err := engine.Ask(context.Background(), sess, q); err != nil {
			t.Fatalf("ask %q failed: %v", q, err)
		}
	}

	answer, err := engine.Ask(context.Background(), sess, "what was my first question")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if answer != "who invented the telephone exactly" {
		t.Fatalf("expected first question verbatim, got %q", answer)
	}
}

func TestEngineModelFailureDoesNotAppendTurn(t *testing.T) {
	provider := &fakeProvider{}
	client := &fakeLLM{err: context.DeadlineExceeded}
	engine, _ := newTestEngine(t, provider, nil, client)
	sess := session.New()

	if _, err := engine.Ask(context.Background(), sess, "some failing question here"); err == nil {
		t.Fatalf("expected model failure to propagate")
	}
	if sess.TurnCount() != 0 {
		t.Fatalf("failed turn must not enter history")
	}
}
