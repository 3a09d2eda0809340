// Command lifeos is the LifeOS journaling pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/archive/columnar"
	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/ratelimit"
	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/storage/fs"
	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/tasksink/googletasks"
	"github.com/custodia-labs/lifeos-cli/internal/adapters/driven/tasksink/webhook"
	"github.com/custodia-labs/lifeos-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lifeos-cli/internal/core/services"
	"github.com/custodia-labs/lifeos-cli/internal/logger"
	"github.com/custodia-labs/lifeos-cli/internal/normalisers/dualtrack"
)

// Secrets are only ever read from the environment.
const (
	envAnalyzerKey  = "LIFEOS_ANALYZER_API_KEY"
	envEmbeddingKey = "LIFEOS_EMBEDDING_API_KEY"
	envTaskWebhook  = "LIFEOS_TASK_WEBHOOK"
	envGoogleCreds  = "GOOGLE_TASKS_CREDS"
)

const webhookTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cli.SetBootstrap(bootstrap)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}

// bootstrap wires the adapters and services for one command run.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	configDir, err := resolveConfigDir(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	applyEnv(settings)
	if !filepath.IsAbs(settings.Paths.DataDir) {
		settings.Paths.DataDir = filepath.Join(configDir, settings.Paths.DataDir)
	}
	paths := settings.Paths
	logger.Debug("config dir %s, data dir %s", configDir, paths.DataDir)

	parser, err := dualtrack.NewParser(settings.Parser)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	extractor := dualtrack.NewTaskExtractor(settings.Parser.NextActionHeaders)

	prompts, err := file.NewPromptStore(filepath.Join(configDir, "prompts"))
	if err != nil {
		return nil, err
	}
	analyzer, err := ai.NewAnalyzer(settings.Analyzer, prompts)
	if err != nil {
		logger.Warn("analyzer disabled: %v", err)
		analyzer = nil
	}
	embedder, err := ai.NewEmbeddingService(settings.Embedding)
	if err != nil {
		logger.Warn("embeddings disabled: %v", err)
		embedder = nil
	}

	inbox := fs.NewInbox(paths.InboxDir())
	status := fs.NewStatusStore(paths)

	var closers []func() error
	var index driven.RouteIndex
	if settings.Router.UseIndex {
		store, err := sqlite.NewStore(paths.IndexDir())
		if err != nil {
			logger.Warn("route index disabled: %v", err)
		} else {
			index = store
			closers = append(closers, store.Close)
		}
	}

	router, err := services.NewRouter(fs.NewLogStore(paths.DataDir, settings.Router.TailWindow), index, settings.Router)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("router: %w", err), closeAll(closers))
	}

	return &cli.Services{
		Capture:   services.NewCaptureService(inbox, extractor, analyzer, embedder),
		Processor: services.NewProcessor(inbox, parser, router, status),
		Compactor: services.NewCompactor(
			inbox,
			columnar.NewStore(paths, settings.Archive.Compression),
			fs.NewJSONExporter(paths),
			status,
			services.NewAnalytics(),
		),
		TaskSync: services.NewTaskSyncService(
			inbox,
			taskSinks(ctx, settings.Tasks),
			ratelimit.New(ratelimit.Config{
				RequestsPerSecond: settings.Tasks.RequestsPerSecond,
				Burst:             settings.Tasks.Burst,
			}),
			settings.Tasks,
		),
		Inspect:  services.NewInspectService(inbox, parser, extractor),
		Settings: settingsService,
		InboxDir: paths.InboxDir(),
		Close:    func() error { return closeAll(closers) },
	}, nil
}

func resolveConfigDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return file.DefaultDir(home), nil
}

// applyEnv fills secrets from the environment. The webhook variable
// overrides a stored URL.
func applyEnv(settings *domain.Settings) {
	if key := os.Getenv(envAnalyzerKey); key != "" {
		settings.Analyzer.APIKey = key
	}
	if key := os.Getenv(envEmbeddingKey); key != "" {
		settings.Embedding.APIKey = key
	}
	if url := os.Getenv(envTaskWebhook); url != "" {
		settings.Tasks.WebhookURL = url
	}
	if creds := os.Getenv(envGoogleCreds); creds != "" {
		settings.Tasks.GoogleCredentials = creds
	}
}

// taskSinks builds every configured sink. A sink that cannot be built is
// logged and left out.
func taskSinks(ctx context.Context, cfg domain.TaskSettings) []driven.TaskSink {
	var sinks []driven.TaskSink
	if cfg.WebhookURL != "" {
		sink, err := webhook.New(cfg.WebhookURL, webhookTimeout)
		if err != nil {
			logger.Warn("webhook sink disabled: %v", err)
		} else {
			sinks = append(sinks, sink)
		}
	}
	if cfg.GoogleTaskListID != "" && cfg.GoogleCredentials != "" {
		sink, err := googletasks.New(ctx, cfg.GoogleCredentials, cfg.GoogleTaskListID)
		if err != nil {
			logger.Warn("google tasks sink disabled: %v", err)
		} else {
			sinks = append(sinks, sink)
		}
	}
	return sinks
}

func closeAll(closers []func() error) error {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
