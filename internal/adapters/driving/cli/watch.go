package cli

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lifeos-cli/internal/adapters/driving/watcher"
	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driving"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process the inbox whenever new entries arrive",
	Long: `Watches the inbox directory and routes new entries into the logs as
soon as their files settle. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "quiet period before processing")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if inboxProcessor == nil || inboxDir == "" {
		return errNotConfigured("processor")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watcher.New(inboxDir, inboxProcessor, watchDebounce)
	w.OnRun = func(result *driving.ProcessResult, err error) {
		if err != nil || result == nil || result.Entries == 0 {
			return
		}
		cmd.Printf("%s %d written, %d duplicate, %d failed\n",
			successStyle.Render("processed"), result.Written, result.Duplicates, result.Failed)
	}

	cmd.Println(mutedStyle.Render("Watching " + inboxDir + " (Ctrl-C to stop)"))
	return w.Run(ctx)
}
