package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"web-chatter/internal/assistant"
	"web-chatter/internal/session"
)

// ChatParams is the input schema of the web_chat tool.
type ChatParams struct {
	Message   string `json:"message" mcp:"the user question to answer"`
	SessionID string `json:"session_id,omitempty" mcp:"session id from a previous call to continue that conversation"`
}

// Server exposes the assistant as an MCP tool over stdio.
type Server struct {
	engine   *assistant.Engine
	sessions *session.Manager
}

func New(engine *assistant.Engine, sessions *session.Manager) *Server {
	return &Server{engine: engine, sessions: sessions}
}

func (s *Server) Chat(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[ChatParams]) (*mcp.CallToolResultFor[any], error) {
	sess := s.sessions.GetOrCreate(params.Arguments.SessionID)
	answer, err := s.engine.Ask(ctx, sess, params.Arguments.Message)
	if err != nil {
		return &mcp.CallToolResultFor[any]{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("chat failed: %v", err)},
			},
		}, nil
	}

	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("%s\n\n[session_id: %s]", answer, sess.ID)},
		},
	}, nil
}

// Run registers the tool and serves on stdin/stdout until the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "web-chatter-mcp",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "web_chat",
		Description: "Answers a question using live web search results and conversation memory",
	}, s.Chat)

	return server.Run(ctx, mcp.NewStdioTransport())
}
