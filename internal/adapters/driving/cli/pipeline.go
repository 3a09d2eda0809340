package cli

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Route inbox entries into project and life logs",
	Long: `Parses every pending inbox entry into its project and life sections and
appends them to projects/<tag>.md and life/life_log_<period>.md.

Entries already present in a log are skipped, so re-running is safe. The
latest next actions per project are written to status/latest_actions.json.`,
	Args: cobra.NoArgs,
	RunE: runProcess,
}

var compactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Merge the inbox into the archive",
	Long: `Merges pending inbox entries into archive/journal.lfa, rewrites the JSON
export and system state, and only then deletes the merged inbox files.

Entries with the same id replace older archive records. If the archive
cannot be read or written the inbox is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runCompact,
}

func init() {
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(compactCmd)
}

func runProcess(cmd *cobra.Command, _ []string) error {
	if inboxProcessor == nil {
		return errNotConfigured("processor")
	}

	result, err := inboxProcessor.ProcessInbox(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Println(titleStyle.Render("Inbox processed"))
	cmd.Println(field("Entries", result.Entries))
	cmd.Println(field("Written", result.Written))
	cmd.Println(field("Duplicates", result.Duplicates))
	if result.Failed > 0 {
		cmd.Println(warningStyle.Render(field("Failed", result.Failed)))
	}

	projects := make([]string, 0, len(result.NextActions))
	for project := range result.NextActions {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	for _, project := range projects {
		status := result.NextActions[project]
		cmd.Println()
		cmd.Println(headingStyle.Render(project) + " " + mutedStyle.Render(status.Date))
		for _, action := range status.Actions {
			cmd.Println("  - " + action)
		}
	}
	return nil
}

func runCompact(cmd *cobra.Command, _ []string) error {
	if compactor == nil {
		return errNotConfigured("compactor")
	}

	result, err := compactor.Compact(cmd.Context())
	if err != nil {
		return err
	}

	for _, skipped := range result.Skipped {
		cmd.PrintErrln(warningStyle.Render("skipped " + skipped.Path + ": " + skipped.Err.Error()))
	}

	if result.NoOp {
		cmd.Println(mutedStyle.Render("Nothing to compact."))
		return nil
	}

	cmd.Println(titleStyle.Render("Compaction complete"))
	cmd.Println(field("Merged", result.Pending))
	cmd.Println(field("Records", result.Records))
	cmd.Println(field("Removed", result.Removed))
	if state := result.State; state != nil {
		cmd.Println(field("Streak", state.Streak))
		if state.Mood.Average != nil {
			cmd.Println(field("Avg mood", strconv.FormatFloat(*state.Mood.Average, 'f', 1, 64)))
		}
		cmd.Println(field("Open actions", len(state.OpenActions)))
	}
	return nil
}
