package assistant

import (
	"context"
	"fmt"
	"strings"

	"web-chatter/internal/llm"
	"web-chatter/internal/session"
)

const systemPrompt = `You are a careful research assistant that answers from retrieved web content.

Rules:
- Ground every factual claim in the web context you are given; never invent facts.
- If the question is a vague follow-up, answer about the topic tracked earlier in the conversation.
- If the question names a concrete new subject, treat it as a new topic even when an older one is tracked.
- If the question is ambiguous, ask a short clarifying question instead of guessing.
- If your sources disagree, say so explicitly instead of silently picking one.
- Be concise. No meta-commentary, no markdown emphasis markers.`

const firstQuestionPhrase = "first question"

// Responder assembles the turn prompt and invokes the model.
type Responder struct {
	client    llm.Client
	window    int
	charLimit int
}

func NewResponder(client llm.Client, historyWindow, promptCharLimit int) *Responder {
	if historyWindow <= 0 {
		historyWindow = 6
	}
	if promptCharLimit <= 0 {
		promptCharLimit = 10000
	}
	return &Responder{client: client, window: historyWindow, charLimit: promptCharLimit}
}

// Respond produces the answer for one turn. A model failure propagates to
// the caller unretried. Asking about the "first question" returns the
// stored value verbatim without touching the model.
func (r *Responder) Respond(ctx context.Context, sess *session.Session, question, contextText string) (llm.Response, error) {
	if strings.Contains(strings.ToLower(question), firstQuestionPhrase) {
		if first := sess.FirstQuestion(); first != "" {
			return llm.Response{Content: first}, nil
		}
	}

	messages := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: r.buildPrompt(sess, question, contextText)},
	}

	resp, err := r.client.Generate(ctx, messages)
	if err != nil {
		return llm.Response{}, fmt.Errorf("model invocation failed: %w", err)
	}
	resp.Content = strings.TrimSpace(resp.Content)
	return resp, nil
}

func (r *Responder) buildPrompt(sess *session.Session, question, contextText string) string {
	var b strings.Builder

	if turns := sess.Window(r.window); len(turns) > 0 {
		b.WriteString("Previous questions in this conversation:\n")
		for i, t := range turns {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, t.Question))
		}
		b.WriteString("\n")
	}

	b.WriteString("Current question: ")
	b.WriteString(question)

	if contextText != "" && contextText != NoContent {
		if len(contextText) > r.charLimit {
			contextText = contextText[:r.charLimit]
		}
		b.WriteString("\n\nWeb context:\n")
		b.WriteString(contextText)
	}

	return b.String()
}
