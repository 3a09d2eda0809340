package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil inspect service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingInspectService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Inspect: &mockInspectService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{Capture: &mockCaptureService{}}).Validate(), ErrMissingInspectService)
	assert.NoError(t, (&Ports{Inspect: &mockInspectService{}}).Validate())
}

func connect(t *testing.T, ports *Ports) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server, err := NewServer(ports)
	require.NoError(t, err)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func toolNames(t *testing.T, session *mcp.ClientSession) []string {
	t.Helper()
	result, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	return names
}

func TestServer_ToolsOverSession(t *testing.T) {
	t.Run("capture tool only with capture port", func(t *testing.T) {
		session := connect(t, &Ports{Inspect: &mockInspectService{}})
		assert.ElementsMatch(t, []string{"parse_entry", "extract_tasks", "list_pending"}, toolNames(t, session))
	})

	t.Run("capture tool registered", func(t *testing.T) {
		session := connect(t, &Ports{Inspect: &mockInspectService{}, Capture: &mockCaptureService{}})
		assert.Contains(t, toolNames(t, session), "capture_entry")
	})

	t.Run("call parse_entry", func(t *testing.T) {
		inspect := &mockInspectService{}
		session := connect(t, &Ports{Inspect: inspect})

		result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      "parse_entry",
			Arguments: map[string]any{"text": "A. Project Log #Garden"},
		})
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "A. Project Log #Garden", inspect.lastText)
	})
}
