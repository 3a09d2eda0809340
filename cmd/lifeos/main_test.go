package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lifeos-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(envAnalyzerKey, "sk-analyzer")
	t.Setenv(envEmbeddingKey, "sk-embed")
	t.Setenv(envTaskWebhook, "https://hooks.example.com/tasks")
	t.Setenv(envGoogleCreds, "/secrets/google.json")

	settings := domain.DefaultSettings()
	settings.Tasks.WebhookURL = "https://old.example.com"
	applyEnv(&settings)

	assert.Equal(t, "sk-analyzer", settings.Analyzer.APIKey)
	assert.Equal(t, "sk-embed", settings.Embedding.APIKey)
	assert.Equal(t, "https://hooks.example.com/tasks", settings.Tasks.WebhookURL)
	assert.Equal(t, "/secrets/google.json", settings.Tasks.GoogleCredentials)
}

func TestApplyEnv_KeepsStoredValuesWhenUnset(t *testing.T) {
	t.Setenv(envTaskWebhook, "")

	settings := domain.DefaultSettings()
	settings.Tasks.WebhookURL = "https://stored.example.com"
	applyEnv(&settings)

	assert.Equal(t, "https://stored.example.com", settings.Tasks.WebhookURL)
	assert.Empty(t, settings.Analyzer.APIKey)
}

func TestTaskSinks(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.TaskSettings
		want []string
	}{
		{name: "none", cfg: domain.TaskSettings{}},
		{name: "webhook", cfg: domain.TaskSettings{WebhookURL: "https://hooks.example.com"}, want: []string{"webhook"}},
		{name: "invalid webhook dropped", cfg: domain.TaskSettings{WebhookURL: "ftp://nope"}},
		{
			name: "google list without readable creds dropped",
			cfg: domain.TaskSettings{
				GoogleTaskListID:  "list",
				GoogleCredentials: filepath.Join(t.TempDir(), "missing.json"),
			},
		},
		{
			name: "google list with malformed inline creds dropped",
			cfg: domain.TaskSettings{
				GoogleTaskListID:  "list",
				GoogleCredentials: `{"type": "service_account"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, sink := range taskSinks(context.Background(), tt.cfg) {
				names = append(names, sink.Name())
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestBootstrap_WiresEveryService(t *testing.T) {
	for _, env := range []string{envAnalyzerKey, envEmbeddingKey, envTaskWebhook, envGoogleCreds} {
		t.Setenv(env, "")
	}
	dir := t.TempDir()

	svc, err := bootstrap(context.Background(), cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	assert.NotNil(t, svc.Capture)
	assert.NotNil(t, svc.Processor)
	assert.NotNil(t, svc.Compactor)
	assert.NotNil(t, svc.TaskSync)
	assert.NotNil(t, svc.Inspect)
	assert.NotNil(t, svc.Settings)
	assert.Equal(t, filepath.Join(dir, "data", "inbox"), svc.InboxDir)
	assert.FileExists(t, filepath.Join(dir, "data", "index", "routes.db"))
}

func TestBootstrap_CaptureAndProcess(t *testing.T) {
	for _, env := range []string{envAnalyzerKey, envEmbeddingKey, envTaskWebhook, envGoogleCreds} {
		t.Setenv(env, "")
	}
	dir := t.TempDir()
	ctx := context.Background()

	svc, err := bootstrap(ctx, cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	entry, err := svc.Capture.Capture(ctx, "# 2025-03-01\n## Project Log\n#Garden planted beans\n## Life Log\nslept well\n")
	require.NoError(t, err)

	result, err := svc.Processor.ProcessInbox(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Entries)
	assert.Equal(t, 2, result.Written)
	assert.FileExists(t, filepath.Join(dir, "data", "projects", "Garden.md"))
	assert.NotEmpty(t, entry.ID)
}
