package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage. API keys are never stored in config;
// they come from the environment.
const (
	keyDataDir           = "paths.data_dir"
	keyProjectMarker     = "parser.project_marker"
	keyLifeMarker        = "parser.life_marker"
	keyStopMarkers       = "parser.stop_markers"
	keyNextActionHeaders = "parser.next_action_headers"
	keyPrimaryDenylist   = "parser.primary_tag_denylist"
	keyTagDenylist       = "router.tag_denylist"
	keyLifeBucket        = "router.life_bucket"
	keyTailWindow        = "router.tail_window"
	keyUseIndex          = "router.use_index"
	keyCompression       = "archive.compression"
	keyAnalyzerProvider  = "analyzer.provider"
	keyAnalyzerModel     = "analyzer.model"
	keyAnalyzerBaseURL   = "analyzer.base_url"
	keyEmbedProvider     = "embedding.provider"
	keyEmbedModel        = "embedding.model"
	keyEmbedBaseURL      = "embedding.base_url"
	keyWebhookURL        = "tasks.webhook_url"
	keyGoogleTaskList    = "tasks.google_tasklist_id"
	keyGoogleCredentials = "tasks.google_credentials_file"
	keyRequestsPerSecond = "tasks.requests_per_second"
	keyBurst             = "tasks.burst"
	keyTaskTitlePrefix   = "tasks.title_prefix"
	keyTaskDue           = "tasks.due"
)

type valueKind int

const (
	kindString valueKind = iota
	kindStrings
	kindInt
	kindFloat
	kindBool
)

type settingKey struct {
	key      string
	kind     valueKind
	validate func(string) error
}

var settingKeys = []settingKey{
	{key: keyDataDir, kind: kindString},
	{key: keyProjectMarker, kind: kindString},
	{key: keyLifeMarker, kind: kindString},
	{key: keyStopMarkers, kind: kindStrings},
	{key: keyNextActionHeaders, kind: kindStrings},
	{key: keyPrimaryDenylist, kind: kindStrings},
	{key: keyTagDenylist, kind: kindStrings},
	{key: keyLifeBucket, kind: kindString, validate: validateLifeBucket},
	{key: keyTailWindow, kind: kindInt},
	{key: keyUseIndex, kind: kindBool},
	{key: keyCompression, kind: kindString, validate: validateCompression},
	{key: keyAnalyzerProvider, kind: kindString, validate: validateProvider},
	{key: keyAnalyzerModel, kind: kindString},
	{key: keyAnalyzerBaseURL, kind: kindString},
	{key: keyEmbedProvider, kind: kindString, validate: validateProvider},
	{key: keyEmbedModel, kind: kindString},
	{key: keyEmbedBaseURL, kind: kindString},
	{key: keyWebhookURL, kind: kindString},
	{key: keyGoogleTaskList, kind: kindString},
	{key: keyGoogleCredentials, kind: kindString},
	{key: keyRequestsPerSecond, kind: kindFloat},
	{key: keyBurst, kind: kindInt},
	{key: keyTaskTitlePrefix, kind: kindString},
	{key: keyTaskDue, kind: kindString},
}

// SettingsService maps the config store onto domain.Settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns settings from config, with defaults for anything unset or invalid.
func (s *SettingsService) Get() (*domain.Settings, error) {
	d := domain.DefaultSettings()

	settings := &domain.Settings{
		Paths: domain.PathSettings{
			DataDir: s.getString(keyDataDir, d.Paths.DataDir),
		},
		Parser: domain.ParserSettings{
			ProjectMarker:      s.getString(keyProjectMarker, d.Parser.ProjectMarker),
			LifeMarker:         s.getString(keyLifeMarker, d.Parser.LifeMarker),
			StopMarkers:        s.getStrings(keyStopMarkers, d.Parser.StopMarkers),
			NextActionHeaders:  s.getStrings(keyNextActionHeaders, d.Parser.NextActionHeaders),
			PrimaryTagDenylist: s.getStrings(keyPrimaryDenylist, d.Parser.PrimaryTagDenylist),
		},
		Router: domain.RouterSettings{
			TagDenylist: s.getStrings(keyTagDenylist, d.Router.TagDenylist),
			LifeBucket:  s.getLifeBucket(d.Router.LifeBucket),
			TailWindow:  s.getInt(keyTailWindow, d.Router.TailWindow),
			UseIndex:    s.getBool(keyUseIndex, d.Router.UseIndex),
		},
		Archive: domain.ArchiveSettings{
			Compression: s.getCompression(d.Archive.Compression),
		},
		Analyzer: domain.AnalyzerSettings{
			Provider: s.getProvider(keyAnalyzerProvider, d.Analyzer.Provider),
			Model:    s.getString(keyAnalyzerModel, d.Analyzer.Model),
			BaseURL:  s.configStore.GetString(keyAnalyzerBaseURL),
		},
		Embedding: domain.EmbeddingSettings{
			Provider: s.getProvider(keyEmbedProvider, d.Embedding.Provider),
			Model:    s.getString(keyEmbedModel, d.Embedding.Model),
			BaseURL:  s.configStore.GetString(keyEmbedBaseURL),
		},
		Tasks: domain.TaskSettings{
			WebhookURL:        s.configStore.GetString(keyWebhookURL),
			GoogleTaskListID:  s.configStore.GetString(keyGoogleTaskList),
			GoogleCredentials: s.configStore.GetString(keyGoogleCredentials),
			RequestsPerSecond: s.getFloat(keyRequestsPerSecond, d.Tasks.RequestsPerSecond),
			Burst:             s.getInt(keyBurst, d.Tasks.Burst),
			TitlePrefix:       s.getString(keyTaskTitlePrefix, d.Tasks.TitlePrefix),
			Due:               s.getString(keyTaskDue, d.Tasks.Due),
		},
	}

	return settings, nil
}

// Set parses value for the key's type, validates it and persists it.
// List values are comma separated.
func (s *SettingsService) Set(key, value string) error {
	def, ok := lookupKey(key)
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	value = strings.TrimSpace(value)
	if def.validate != nil {
		if err := def.validate(value); err != nil {
			return err
		}
	}

	var parsed any
	switch def.kind {
	case kindStrings:
		parsed = splitList(value)
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		parsed = n
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, key)
		}
		parsed = f
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	default:
		parsed = value
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the settable keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	for i, k := range settingKeys {
		keys[i] = k.key
	}
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func lookupKey(key string) (settingKey, bool) {
	for _, k := range settingKeys {
		if k.key == key {
			return k, true
		}
	}
	return settingKey{}, false
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validateLifeBucket(v string) error {
	if !domain.LifeBucket(v).IsValid() {
		return fmt.Errorf("%w: life bucket must be month or year", domain.ErrInvalidInput)
	}
	return nil
}

func validateCompression(v string) error {
	if !domain.Compression(v).IsValid() {
		return fmt.Errorf("%w: compression must be zstd, lz4 or none", domain.ErrInvalidInput)
	}
	return nil
}

func validateProvider(v string) error {
	if v != "" && !domain.AIProvider(v).IsValid() {
		return fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, v)
	}
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStrings(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetStringSlice(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getLifeBucket(defaultVal domain.LifeBucket) domain.LifeBucket {
	bucket := domain.LifeBucket(s.configStore.GetString(keyLifeBucket))
	if !bucket.IsValid() {
		return defaultVal
	}
	return bucket
}

func (s *SettingsService) getCompression(defaultVal domain.Compression) domain.Compression {
	c := domain.Compression(s.configStore.GetString(keyCompression))
	if !c.IsValid() {
		return defaultVal
	}
	return c
}

func (s *SettingsService) getProvider(key string, defaultVal domain.AIProvider) domain.AIProvider {
	provider := domain.AIProvider(s.configStore.GetString(key))
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
