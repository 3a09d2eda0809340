package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Work with action items from pending entries",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List unique action items waiting in the inbox",
	Args:  cobra.NoArgs,
	RunE:  runTasksList,
}

var tasksSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Send action items to the configured task sinks",
	Long: `Sends every unique action item of the pending entries to each configured
sink (webhook, Google Tasks), one request per task and rate limited.

A failed task is reported and counted; the remaining tasks are still sent.`,
	Args: cobra.NoArgs,
	RunE: runTasksSync,
}

func init() {
	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksSyncCmd)
	rootCmd.AddCommand(tasksCmd)
}

func runTasksList(cmd *cobra.Command, _ []string) error {
	if taskSyncService == nil {
		return errNotConfigured("task sync")
	}

	tasks, err := taskSyncService.PendingTasks(cmd.Context())
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		cmd.Println(mutedStyle.Render("No pending action items."))
		return nil
	}
	printTasks(cmd, tasks)
	return nil
}

func runTasksSync(cmd *cobra.Command, _ []string) error {
	if taskSyncService == nil {
		return errNotConfigured("task sync")
	}

	result, err := taskSyncService.Sync(cmd.Context())
	if errors.Is(err, domain.ErrNoTaskSink) {
		return errors.New("no task sink configured: set LIFEOS_TASK_WEBHOOK or tasks.google_tasklist_id with GOOGLE_TASKS_CREDS")
	}
	if err != nil {
		return err
	}

	cmd.Println(titleStyle.Render("Task sync complete"))
	cmd.Println(field("Tasks", result.Tasks))
	cmd.Println(field("Sent", result.Sent))
	if result.Failed > 0 {
		cmd.Println(warningStyle.Render(field("Failed", result.Failed)))
	}
	return nil
}

func printTasks(cmd *cobra.Command, tasks []domain.Task) {
	for _, task := range tasks {
		cmd.Println(priority(task.Priority.String()) + " " + task.Title + " " + mutedStyle.Render("("+task.Context+")"))
	}
}
