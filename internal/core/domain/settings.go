package domain

import "path/filepath"

const unknownDescription = "Unknown"

// LifeBucket is the period granularity of life log files.
type LifeBucket string

// Available life log buckets.
const (
	// LifeBucketMonth writes life_log_YYYY-MM.md files.
	LifeBucketMonth LifeBucket = "month"

	// LifeBucketYear writes life_log_YYYY.md files.
	LifeBucketYear LifeBucket = "year"
)

// IsValid returns true if the bucket is recognised.
func (b LifeBucket) IsValid() bool {
	return b == LifeBucketMonth || b == LifeBucketYear
}

// Period truncates an ISO date to the bucket.
func (b LifeBucket) Period(date string) string {
	switch b {
	case LifeBucketYear:
		if len(date) >= 4 {
			return date[:4]
		}
	default:
		if len(date) >= 7 {
			return date[:7]
		}
	}
	return date
}

// String returns the string representation.
func (b LifeBucket) String() string {
	return string(b)
}

// Compression identifies the block compression of the columnar archive.
type Compression string

// Available archive compressions.
const (
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
	CompressionNone Compression = "none"
)

// IsValid returns true if the compression is recognised.
func (c Compression) IsValid() bool {
	switch c {
	case CompressionZstd, CompressionLZ4, CompressionNone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Compression) String() string {
	return string(c)
}

// AIProvider identifies an AI service provider for analysis or embeddings.
type AIProvider string

// Available AI providers.
const (
	// AIProviderNone disables the collaborator.
	AIProviderNone AIProvider = ""

	// AIProviderOpenAI is OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderNone:
		return "Disabled"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// PathSettings locates the pipeline's files.
type PathSettings struct {
	// DataDir is the root of inbox, logs, archive and status files.
	DataDir string
}

// InboxDir holds pending entries.
func (p PathSettings) InboxDir() string { return filepath.Join(p.DataDir, "inbox") }

// ProjectsDir holds per-project logs.
func (p PathSettings) ProjectsDir() string { return filepath.Join(p.DataDir, "projects") }

// LifeDir holds per-period life logs.
func (p PathSettings) LifeDir() string { return filepath.Join(p.DataDir, "life") }

// ArchiveDir holds the archive, its JSON export and the system state.
func (p PathSettings) ArchiveDir() string { return filepath.Join(p.DataDir, "archive") }

// StatusFile is the latest next-actions report.
func (p PathSettings) StatusFile() string {
	return filepath.Join(p.DataDir, "status", "latest_actions.json")
}

// IndexDir holds the route index database.
func (p PathSettings) IndexDir() string { return filepath.Join(p.DataDir, "index") }

// ParserSettings configures dual-track segmentation.
type ParserSettings struct {
	// ProjectMarker opens the project section.
	ProjectMarker string

	// LifeMarker opens the life section.
	LifeMarker string

	// StopMarkers end a section without opening another one.
	StopMarkers []string

	// NextActionHeaders open the next-actions block. An apostrophe matches ' or ’.
	NextActionHeaders []string

	// PrimaryTagDenylist are glob patterns skipped when picking the primary tag,
	// unless every tag matches.
	PrimaryTagDenylist []string
}

// RouterSettings configures log routing.
type RouterSettings struct {
	// TagDenylist are glob patterns never routed to a project log.
	TagDenylist []string

	// LifeBucket is the life log period granularity.
	LifeBucket LifeBucket

	// TailWindow is how many trailing bytes are scanned for an existing entry id.
	TailWindow int

	// UseIndex enables the exact route index alongside the tail scan.
	UseIndex bool
}

// ArchiveSettings configures compaction output.
type ArchiveSettings struct {
	Compression Compression
}

// AnalyzerSettings configures the analysis collaborator.
type AnalyzerSettings struct {
	Provider AIProvider
	Model    string
	BaseURL  string
	APIKey   string
}

// IsConfigured returns true if the analyzer can be called.
func (a AnalyzerSettings) IsConfigured() bool {
	return a.Provider.IsValid() && a.APIKey != ""
}

// EmbeddingSettings configures the embedding collaborator.
type EmbeddingSettings struct {
	Provider AIProvider
	Model    string
	BaseURL  string
	APIKey   string
}

// IsConfigured returns true if embeddings can be requested.
func (e EmbeddingSettings) IsConfigured() bool {
	return e.Provider == AIProviderOpenAI && e.APIKey != ""
}

// TaskSettings configures task sync.
type TaskSettings struct {
	// WebhookURL receives one JSON POST per task.
	WebhookURL string

	// GoogleTaskListID and GoogleCredentials enable the Google Tasks sink.
	// GoogleCredentials is a credentials JSON path or the JSON itself.
	GoogleTaskListID  string
	GoogleCredentials string

	// RequestsPerSecond and Burst rate limit calls to each sink.
	RequestsPerSecond float64
	Burst             int

	// TitlePrefix is prepended to every task title.
	TitlePrefix string

	// Due is passed through to sinks.
	Due string
}

// Settings holds all pipeline configuration. Components receive the parts
// they need at construction; nothing reads global state.
type Settings struct {
	Paths     PathSettings
	Parser    ParserSettings
	Router    RouterSettings
	Archive   ArchiveSettings
	Analyzer  AnalyzerSettings
	Embedding EmbeddingSettings
	Tasks     TaskSettings
}

// DefaultSettings returns settings with sensible defaults.
// Analyzer, embedding and task sinks are left unconfigured.
func DefaultSettings() Settings {
	return Settings{
		Paths: PathSettings{DataDir: "data"},
		Parser: ParserSettings{
			ProjectMarker:      "Project Log",
			LifeMarker:         "Life Log",
			StopMarkers:        []string{"Graph Seeds"},
			NextActionHeaders:  []string{"Tomorrow's MIT", "Next Steps"},
			PrimaryTagDenylist: []string{"LifeOS", "DualMemory"},
		},
		Router: RouterSettings{
			TagDenylist: []string{"journal", "daily", "life"},
			LifeBucket:  LifeBucketMonth,
			TailWindow:  2000,
			UseIndex:    true,
		},
		Archive: ArchiveSettings{Compression: CompressionZstd},
		Analyzer: AnalyzerSettings{
			Model: "claude-3-5-haiku-latest",
		},
		Embedding: EmbeddingSettings{
			Model: "text-embedding-3-small",
		},
		Tasks: TaskSettings{
			RequestsPerSecond: 1,
			Burst:             1,
			TitlePrefix:       "[LifeOS]",
			Due:               "tomorrow",
		},
	}
}
