// Package mcp provides an MCP (Model Context Protocol) server adapter for LifeOS.
// It lets AI assistants parse journal text, mine tasks and read the inbox.
package mcp

import "errors"

// ErrMissingInspectService is returned when the inspect service is not provided.
var ErrMissingInspectService = errors.New("mcp: inspect service is required")
