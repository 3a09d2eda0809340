package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for LifeOS resources.
const uriScheme = "lifeos://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "inbox",
		Name:        "inbox",
		Description: "Entries waiting in the inbox",
		MIMEType:    "application/json",
	}, s.handleInboxResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "inbox/{entryId}",
		Name:        "inbox-entry",
		Description: "Raw text of a pending journal entry",
		MIMEType:    "text/markdown",
	}, s.handleEntryResource)
}

func (s *Server) handleInboxResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.Inspect.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing inbox: %w", err)
	}

	infos := make([]PendingEntry, len(entries))
	for i := range entries {
		infos[i] = pendingEntry(&entries[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling inbox: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleEntryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractEntryID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entries, err := s.ports.Inspect.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing inbox: %w", err)
	}
	for i := range entries {
		if entries[i].ID == id {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "text/markdown",
					Text:     entries[i].RawText,
				}},
			}, nil
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractEntryID extracts the id from a URI like lifeos://inbox/{entryId}.
func extractEntryID(uri string) string {
	const prefix = uriScheme + "inbox/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
