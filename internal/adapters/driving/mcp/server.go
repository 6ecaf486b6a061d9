package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsearch/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for docsearch.
type Server struct {
	ports        *Ports
	server       *mcp.Server
	instructions string
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "docsearch",
		Version: Version,
	}

	instructions := buildInstructions(ports)
	s := &Server{
		ports:        ports,
		instructions: instructions,
		server: mcp.NewServer(impl, &mcp.ServerOptions{
			Instructions: instructions,
		}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Instructions returns the usage notes sent to clients on initialise.
func (s *Server) Instructions() string {
	return s.instructions
}

// buildInstructions describes what the server can do with the services it
// was given. Search may be unconfigured and page reading is optional.
func buildInstructions(ports *Ports) string {
	var b strings.Builder
	if ports.Search.Enabled() {
		b.WriteString("Use search_docs to find documentation pages by keyword.")
	} else {
		b.WriteString("Search is not configured: search_docs will fail until " +
			"search.app_id, search.api_key and search.index_name are set " +
			"with 'docsearch config set'.")
	}
	if ports.Pages != nil {
		b.WriteString(" Use read_page with a result path to read a page as markdown, " +
			"or read the docsearch://pages/{path} resource.")
	}
	return b.String()
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("MCP server on stdio (search enabled: %t)", s.ports.Search.Enabled())
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Debug("MCP server on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
