// ABOUTME: MCP server setup for the workout tracker.
// ABOUTME: Wraps the MCP server with a logged-in session.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/irontrack/internal/store"
)

// Server wraps the MCP server with session access. The session must be
// logged in before serving; tools act on that user's data.
type Server struct {
	mcpServer *mcp.Server
	session   *store.Session
}

// NewServer creates a new MCP server over the given session.
func NewServer(session *store.Session) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "irontrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		session:   session,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
