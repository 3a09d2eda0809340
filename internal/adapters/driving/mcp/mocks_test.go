package mcp

import (
	"context"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

// mockInspectService is a mock implementation of driving.InspectService.
type mockInspectService struct {
	parsed  domain.ParsedSections
	tasks   []domain.Task
	entries []domain.RawEntry
	err     error

	lastText string
}

func (m *mockInspectService) Parse(rawText string) domain.ParsedSections {
	m.lastText = rawText
	return m.parsed
}

func (m *mockInspectService) ExtractTasks(content string) []domain.Task {
	m.lastText = content
	return m.tasks
}

func (m *mockInspectService) ListPending(_ context.Context) ([]domain.RawEntry, error) {
	return m.entries, m.err
}

// mockCaptureService is a mock implementation of driving.CaptureService.
type mockCaptureService struct {
	entry *domain.RawEntry
	err   error
	texts []string
}

func (m *mockCaptureService) Capture(_ context.Context, rawText string) (*domain.RawEntry, error) {
	m.texts = append(m.texts, rawText)
	return m.entry, m.err
}
