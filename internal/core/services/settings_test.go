package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), *settings)
	assert.Equal(t, domain.DefaultSettings(), service.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set(keyDataDir, "/srv/lifeos"))
	require.NoError(t, store.Set(keyLifeBucket, "year"))
	require.NoError(t, store.Set(keyStopMarkers, []any{"Seeds", "Appendix"}))
	require.NoError(t, store.Set(keyUseIndex, false))
	require.NoError(t, store.Set(keyAnalyzerProvider, "anthropic"))
	require.NoError(t, store.Set(keyRequestsPerSecond, 2.5))

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	assert.Equal(t, "/srv/lifeos", settings.Paths.DataDir)
	assert.Equal(t, domain.LifeBucketYear, settings.Router.LifeBucket)
	assert.Equal(t, []string{"Seeds", "Appendix"}, settings.Parser.StopMarkers)
	assert.False(t, settings.Router.UseIndex)
	assert.Equal(t, domain.AIProviderAnthropic, settings.Analyzer.Provider)
	assert.InDelta(t, 2.5, settings.Tasks.RequestsPerSecond, 1e-9)
}

func TestSettingsService_Get_InvalidValuesUseDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set(keyLifeBucket, "week"))
	require.NoError(t, store.Set(keyCompression, "gzip"))
	require.NoError(t, store.Set(keyTailWindow, -5))

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	d := domain.DefaultSettings()
	assert.Equal(t, d.Router.LifeBucket, settings.Router.LifeBucket)
	assert.Equal(t, d.Archive.Compression, settings.Archive.Compression)
	assert.Equal(t, d.Router.TailWindow, settings.Router.TailWindow)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  any
	}{
		{"string", keyProjectMarker, " Work Log ", "Work Log"},
		{"list", keyTagDenylist, "journal, daily ,,life", []string{"journal", "daily", "life"}},
		{"empty list", keyTagDenylist, "", []string{}},
		{"int", keyTailWindow, "500", 500},
		{"float", keyRequestsPerSecond, "0.5", 0.5},
		{"bool", keyUseIndex, "false", false},
		{"enum", keyCompression, "lz4", "lz4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			require.NoError(t, NewSettingsService(store).Set(tt.key, tt.value))

			got, ok := store.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsService_Set_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "search.mode", "hybrid"},
		{"zero int", keyTailWindow, "0"},
		{"not an int", keyBurst, "many"},
		{"negative float", keyRequestsPerSecond, "-1"},
		{"not a bool", keyUseIndex, "maybe"},
		{"bad bucket", keyLifeBucket, "week"},
		{"bad compression", keyCompression, "gzip"},
		{"bad provider", keyEmbedProvider, "ollama"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			err := NewSettingsService(store).Set(tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			_, ok := store.Get(tt.key)
			assert.False(t, ok)
		})
	}
}

func TestSettingsService_Set_ClearsProvider(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	require.NoError(t, service.Set(keyAnalyzerProvider, "openai"))
	require.NoError(t, service.Set(keyAnalyzerProvider, ""))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderNone, settings.Analyzer.Provider)
}

func TestSettingsService_Keys(t *testing.T) {
	keys := NewSettingsService(memory.NewConfigStore()).Keys()

	assert.Len(t, keys, len(settingKeys))
	assert.Equal(t, keyDataDir, keys[0])
	assert.Contains(t, keys, keyWebhookURL)
}
