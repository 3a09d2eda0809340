package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// TextInput is the input schema for tools that take journal text.
type TextInput struct {
	Text string `json:"text" jsonschema:"the raw journal entry text"`
}

// ParseOutput is the output schema for the parse_entry tool.
type ParseOutput struct {
	PrimaryTag     string   `json:"primary_tag"`
	Tags           []string `json:"tags"`
	ProjectContent string   `json:"project_content"`
	LifeContent    string   `json:"life_content"`
	NextActions    []string `json:"next_actions"`
}

// TaskOutput is one extracted task.
type TaskOutput struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Context  string `json:"context"`
}

// TasksOutput is the output schema for the extract_tasks tool.
type TasksOutput struct {
	Tasks []TaskOutput `json:"tasks"`
	Count int          `json:"count"`
}

// ListPendingInput is the input schema for the list_pending tool.
type ListPendingInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return (default all)"`
}

// PendingEntry summarises one inbox entry.
type PendingEntry struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	ActionItems int      `json:"action_items"`
}

// PendingOutput is the output schema for the list_pending tool.
type PendingOutput struct {
	Entries []PendingEntry `json:"entries"`
	Count   int            `json:"count"`
}

// CaptureOutput is the output schema for the capture_entry tool.
type CaptureOutput struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_entry",
		Description: "Split a dual-track journal entry into project and life sections",
	}, s.handleParse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_tasks",
		Description: "Extract action items from journal text with the built-in rules",
	}, s.handleExtractTasks)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_pending",
		Description: "List journal entries waiting in the inbox",
	}, s.handleListPending)

	if s.ports.Capture != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "capture_entry",
			Description: "Store a new journal entry in the inbox",
		}, s.handleCapture)
	}
}

func (s *Server) handleParse(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	parsed := s.ports.Inspect.Parse(input.Text)
	return nil, ParseOutput{
		PrimaryTag:     parsed.Project.PrimaryTag,
		Tags:           nonNil(parsed.Project.Tags),
		ProjectContent: parsed.Project.Content,
		LifeContent:    parsed.Life.Content,
		NextActions:    nonNil(parsed.Project.NextActions),
	}, nil
}

func (s *Server) handleExtractTasks(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, TasksOutput, error) {
	tasks := s.ports.Inspect.ExtractTasks(input.Text)

	output := TasksOutput{
		Tasks: make([]TaskOutput, len(tasks)),
		Count: len(tasks),
	}
	for i, task := range tasks {
		output.Tasks[i] = TaskOutput{
			Title:    task.Title,
			Priority: task.Priority.String(),
			Context:  task.Context,
		}
	}
	return nil, output, nil
}

func (s *Server) handleListPending(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListPendingInput,
) (*mcp.CallToolResult, PendingOutput, error) {
	entries, err := s.ports.Inspect.ListPending(ctx)
	if err != nil {
		return nil, PendingOutput{}, err
	}
	if input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}

	output := PendingOutput{
		Entries: make([]PendingEntry, len(entries)),
		Count:   len(entries),
	}
	for i := range entries {
		output.Entries[i] = pendingEntry(&entries[i])
	}
	return nil, output, nil
}

func (s *Server) handleCapture(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, CaptureOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, CaptureOutput{}, errors.New("text is required")
	}
	entry, err := s.ports.Capture.Capture(ctx, input.Text)
	if err != nil {
		return nil, CaptureOutput{}, err
	}
	return nil, CaptureOutput{ID: entry.ID, Date: entry.Date}, nil
}

func pendingEntry(entry *domain.RawEntry) PendingEntry {
	out := PendingEntry{
		ID:          entry.ID,
		Date:        entry.Date,
		Tags:        entry.Tags,
		ActionItems: len(entry.ActionItems()),
	}
	if entry.Analysis != nil {
		out.Summary = entry.Analysis.Summary
	}
	return out
}

// nonNil keeps empty lists as [] in tool output.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
