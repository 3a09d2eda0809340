package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change LifeOS settings stored in config.toml.

API keys and the task webhook are never stored; they are read from
LIFEOS_ANALYZER_API_KEY, LIFEOS_EMBEDDING_API_KEY, LIFEOS_TASK_WEBHOOK and
GOOGLE_TASKS_CREDS.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting by key. Lists are comma separated; an empty value
clears a list.

Examples:
  lifeos settings set router.life_bucket year
  lifeos settings set router.tag_denylist "journal,daily,life"
  lifeos settings set analyzer.provider anthropic`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	section := func(name string) {
		cmd.Println()
		cmd.Println(headingStyle.Render("[" + name + "]"))
	}

	cmd.Println(titleStyle.Render("Current Settings"))

	section("Paths")
	cmd.Println(field("Data dir", settings.Paths.DataDir))
	cmd.Println(field("Inbox", settings.Paths.InboxDir()))
	cmd.Println(field("Projects", settings.Paths.ProjectsDir()))
	cmd.Println(field("Life logs", settings.Paths.LifeDir()))
	cmd.Println(field("Archive", settings.Paths.ArchiveDir()))

	section("Parser")
	cmd.Println(field("Project", settings.Parser.ProjectMarker))
	cmd.Println(field("Life", settings.Parser.LifeMarker))
	cmd.Println(field("Stop", joinList(settings.Parser.StopMarkers)))
	cmd.Println(field("Next actions", joinList(settings.Parser.NextActionHeaders)))
	cmd.Println(field("Tag denylist", joinList(settings.Parser.PrimaryTagDenylist)))

	section("Router")
	cmd.Println(field("Tag denylist", joinList(settings.Router.TagDenylist)))
	cmd.Println(field("Life bucket", settings.Router.LifeBucket))
	cmd.Println(field("Tail window", settings.Router.TailWindow))
	cmd.Println(field("Route index", settings.Router.UseIndex))

	section("Archive")
	cmd.Println(field("Compression", settings.Archive.Compression))

	section("Analyzer")
	cmd.Println(field("Provider", settings.Analyzer.Provider.Description()))
	cmd.Println(field("Model", settings.Analyzer.Model))
	if settings.Analyzer.BaseURL != "" {
		cmd.Println(field("Base URL", settings.Analyzer.BaseURL))
	}
	cmd.Println(field("API key", keyStatus(settings.Analyzer.APIKey)))
	cmd.Println(field("Status", configuredStatus(settings.Analyzer.IsConfigured())))

	section("Embedding")
	cmd.Println(field("Provider", settings.Embedding.Provider.Description()))
	cmd.Println(field("Model", settings.Embedding.Model))
	if settings.Embedding.BaseURL != "" {
		cmd.Println(field("Base URL", settings.Embedding.BaseURL))
	}
	cmd.Println(field("API key", keyStatus(settings.Embedding.APIKey)))
	cmd.Println(field("Status", configuredStatus(settings.Embedding.IsConfigured())))

	section("Tasks")
	cmd.Println(field("Webhook", configuredStatus(settings.Tasks.WebhookURL != "")))
	cmd.Println(field("Google list", orNone(settings.Tasks.GoogleTaskListID)))
	cmd.Println(field("Google creds", credentialsStatus(settings.Tasks.GoogleCredentials)))
	cmd.Println(field("Rate", fmt.Sprintf("%g/s burst %d", settings.Tasks.RequestsPerSecond, settings.Tasks.Burst)))
	cmd.Println(field("Title prefix", settings.Tasks.TitlePrefix))
	cmd.Println(field("Due", settings.Tasks.Due))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return err
	}
	cmd.Println(successStyle.Render("Set " + key + " = " + value))
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}
	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

// maskAPIKey masks an API key for display, showing only first and last 4 chars.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func keyStatus(key string) string {
	if key == "" {
		return "(not set)"
	}
	return maskAPIKey(key)
}

func configuredStatus(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}

func joinList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

// credentialsStatus never prints inline credential JSON.
func credentialsStatus(creds string) string {
	if strings.HasPrefix(strings.TrimSpace(creds), "{") {
		return "(inline JSON)"
	}
	return orNone(creds)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
