package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// Server owns the MCP surface of the schema engine. Tool packages register
// against the underlying MCPServer; transport construction stays here so
// the CLI only decides where to mount it.
type Server struct {
	mcp *server.MCPServer
}

// NewServer creates the MCP server with tool capabilities enabled.
func NewServer(name, version string) *Server {
	return &Server{
		mcp: server.NewMCPServer(
			name,
			version,
			server.WithToolCapabilities(true),
		),
	}
}

// MCP returns the underlying MCPServer for tool registration.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// NewStreamableHTTPServer wraps the MCP server in a stateless HTTP
// transport. Every exposed tool is a pure read, so no session state is
// worth keeping between calls.
func (s *Server) NewStreamableHTTPServer() *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(
		s.mcp,
		server.WithStateLess(true),
	)
}
