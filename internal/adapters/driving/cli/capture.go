package cli

import (
	"github.com/spf13/cobra"
)

var captureFile string

var captureCmd = &cobra.Command{
	Use:   "capture [text...]",
	Short: "Capture a journal entry into the inbox",
	Long: `Analyses a raw journal entry and stores it in the inbox as a Markdown
body plus JSON sidecar. Text comes from the arguments, --file, or stdin.

When an analyzer is configured its action items are kept; otherwise the
built-in task rules mine the text. Analyzer and embedding failures never
block the capture.`,
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().StringVarP(&captureFile, "file", "f", "", "read the entry from a file")
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	if captureService == nil {
		return errNotConfigured("capture")
	}

	text, err := readInput(cmd, args, captureFile)
	if err != nil {
		return err
	}

	entry, err := captureService.Capture(cmd.Context(), text)
	if err != nil {
		return err
	}

	cmd.Println(successStyle.Render("Captured " + entry.ID))
	cmd.Println(field("Date", entry.Date))
	if entry.Analysis != nil {
		if entry.Analysis.Summary != "" {
			cmd.Println(field("Summary", entry.Analysis.Summary))
		}
		if entry.Analysis.Mood != nil {
			cmd.Println(field("Mood", *entry.Analysis.Mood))
		}
	}
	cmd.Println(field("Action items", len(entry.ActionItems())))
	if entry.MarkdownPath != "" {
		cmd.Println(mutedStyle.Render(entry.MarkdownPath))
	}
	return nil
}
