package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var inspectFile string

var parseCmd = &cobra.Command{
	Use:   "parse [text...]",
	Short: "Show how an entry splits into project and life sections",
	Long: `Runs the dual-track parser on an entry without writing anything.
Text comes from the arguments, --file, or stdin.`,
	RunE: runParse,
}

var extractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "Show the action items the built-in rules find",
	RunE:  runExtract,
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List entries waiting in the inbox",
	Args:  cobra.NoArgs,
	RunE:  runPending,
}

func init() {
	parseCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "read the entry from a file")
	extractCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "read the entry from a file")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(pendingCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if inspectService == nil {
		return errNotConfigured("inspect")
	}
	text, err := readInput(cmd, args, inspectFile)
	if err != nil {
		return err
	}

	parsed := inspectService.Parse(text)

	cmd.Println(titleStyle.Render("Project"))
	cmd.Println(field("Primary tag", parsed.Project.PrimaryTag))
	cmd.Println(field("Tags", strings.Join(parsed.Project.Tags, ", ")))
	if parsed.HasProject() {
		cmd.Println(parsed.Project.Content)
	} else {
		cmd.Println(mutedStyle.Render("(no project section)"))
	}
	if len(parsed.Project.NextActions) > 0 {
		cmd.Println(headingStyle.Render("Next actions"))
		for _, action := range parsed.Project.NextActions {
			cmd.Println("  - " + action)
		}
	}

	cmd.Println()
	cmd.Println(titleStyle.Render("Life"))
	if parsed.Life.Content != "" {
		cmd.Println(parsed.Life.Content)
	} else {
		cmd.Println(mutedStyle.Render("(no life section)"))
	}
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	if inspectService == nil {
		return errNotConfigured("inspect")
	}
	text, err := readInput(cmd, args, inspectFile)
	if err != nil {
		return err
	}

	tasks := inspectService.ExtractTasks(text)
	if len(tasks) == 0 {
		cmd.Println(mutedStyle.Render("No action items found."))
		return nil
	}
	printTasks(cmd, tasks)
	return nil
}

func runPending(cmd *cobra.Command, _ []string) error {
	if inspectService == nil {
		return errNotConfigured("inspect")
	}

	entries, err := inspectService.ListPending(cmd.Context())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println(mutedStyle.Render("Inbox is empty."))
		return nil
	}

	for i := range entries {
		entry := &entries[i]
		line := headingStyle.Render(entry.Date) + " " + entry.ID
		if entry.Analysis != nil && entry.Analysis.Summary != "" {
			line += " " + mutedStyle.Render(entry.Analysis.Summary)
		}
		cmd.Println(line)
	}
	cmd.Println(mutedStyle.Render(field("Pending", len(entries))))
	return nil
}
