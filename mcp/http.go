package mcp

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"
)

// HTTPHandler returns the streamable HTTP transport for the server.
//
// The handler tunnels the same JSON-RPC framing as the stdio transport:
// each request carries its own tool-call (or discovery) message and is
// dispatched through the same Server, so both transports produce
// identical envelope payloads. Stateless mode is used because every
// invocation is independent; there is no session to resume.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	)
}
