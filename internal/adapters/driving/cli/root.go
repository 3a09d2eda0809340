// Package cli provides the lifeos command line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lifeos-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Options are the global flags handed to the bootstrap function.
type Options struct {
	// ConfigDir overrides the configuration directory (default ~/.lifeos).
	ConfigDir string

	// Verbose enables debug output.
	Verbose bool
}

// Services are the driving ports the commands use.
type Services struct {
	Capture   driving.CaptureService
	Processor driving.InboxProcessor
	Compactor driving.Compactor
	TaskSync  driving.TaskSyncService
	Inspect   driving.InspectService
	Settings  driving.SettingsService

	// InboxDir is the directory watched by "lifeos watch".
	InboxDir string

	// Close releases resources; may be nil.
	Close func() error
}

// BootstrapFunc builds the services once flags are parsed.
type BootstrapFunc func(ctx context.Context, opts Options) (*Services, error)

var (
	captureService  driving.CaptureService
	inboxProcessor  driving.InboxProcessor
	compactor       driving.Compactor
	taskSyncService driving.TaskSyncService
	inspectService  driving.InspectService
	settingsService driving.SettingsService
	inboxDir        string
	closeServices   func() error

	bootstrap BootstrapFunc
	opts      Options
)

// skipBootstrap marks commands that run without services.
const skipBootstrap = "skip-bootstrap"

var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "LifeOS journaling pipeline",
	Long: `LifeOS turns raw diary entries into per-project and life logs,
mines them for action items and compacts them into a columnar archive.

Typical flow:
  lifeos capture < today.md   # analyse and store in the inbox
  lifeos process              # route entries into project and life logs
  lifeos tasks sync           # push action items to task sinks
  lifeos compact              # merge the inbox into the archive`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.lifeos)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")
}

// SetBootstrap registers the function that wires services after flag parsing.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, teardown())
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)

	if bootstrap == nil || cmd.Annotations[skipBootstrap] == "true" {
		return nil
	}
	svc, err := bootstrap(cmd.Context(), opts)
	if err != nil {
		return err
	}
	setServices(svc)
	return nil
}

func setServices(svc *Services) {
	captureService = svc.Capture
	inboxProcessor = svc.Processor
	compactor = svc.Compactor
	taskSyncService = svc.TaskSync
	inspectService = svc.Inspect
	settingsService = svc.Settings
	inboxDir = svc.InboxDir
	closeServices = svc.Close
}

func teardown() error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

// errNotConfigured reports a command run without its service.
func errNotConfigured(name string) error {
	return errors.New(name + " service not configured")
}
