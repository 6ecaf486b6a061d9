package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for docsearch resources.
	uriScheme = "docsearch://"

	pagesPrefix = uriScheme + "pages/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: pagesPrefix + "{+path}",
		Name:        "docs-page",
		Description: "Markdown content of a documentation page",
		MIMEType:    "text/markdown",
	}, s.handlePageResource)
}

// handlePageResource returns a docs page as markdown.
func (s *Server) handlePageResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	path := extractPagePath(req.Params.URI)
	if path == "" || s.ports.Pages == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	page, err := s.loadPage(ctx, path)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     page.Markdown,
		}},
	}, nil
}

// extractPagePath extracts the site path from a URI like docsearch://pages/docs/install.
func extractPagePath(uri string) string {
	if !strings.HasPrefix(uri, pagesPrefix) {
		return ""
	}

	path := strings.TrimPrefix(uri, pagesPrefix)
	if path == "" {
		return ""
	}
	return "/" + strings.TrimPrefix(path, "/")
}
