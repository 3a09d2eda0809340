package mcp

import (
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Inspect parses text, extracts tasks and lists the inbox.
	Inspect driving.InspectService

	// Capture stores new entries. Optional; without it capture_entry is not offered.
	Capture driving.CaptureService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Inspect == nil {
		return ErrMissingInspectService
	}
	return nil
}
