package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the theme, conversion delay, analytics and rule tables.

Use subcommands to change a single key or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single setting",
	Long: `Set a single configuration key.

Common keys:
  theme.mode            - auto, dark or light
  pipeline.debounce_ms  - quiet period before converting, in milliseconds
  analytics.enabled     - true or false
  analytics.persist     - keep events in the local database
  rules.custom          - load rule tables from the rules directory
  log.level             - debug, info, warn or error`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	b, err := requireBackend()
	if err != nil {
		return err
	}
	svc := b.Settings()

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	app := svc.AppConfig()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[App]")
	cmd.Printf("  Name: %s\n", app.AppName)
	cmd.Printf("  Version: %s\n", app.AppVersion)
	cmd.Printf("  Privacy: %s\n", app.PrivacyURL)
	cmd.Println()

	cmd.Println("[Converter]")
	cmd.Printf("  Debounce: %s\n", settings.Pipeline.DebounceInterval)
	rules := "built-in"
	if settings.Rules.Custom {
		rules = "custom"
	}
	cmd.Printf("  Rule tables: %s\n", rules)
	cmd.Println()

	cmd.Println("[Appearance]")
	cmd.Printf("  Theme: %s\n", settings.Theme)
	cmd.Println()

	cmd.Println("[Analytics]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.Analytics.Enabled))
	cmd.Printf("  Persist: %s\n", yesNo(settings.Analytics.Persist))
	cmd.Println()

	cmd.Println("[Logging]")
	cmd.Printf("  Level: %s\n", settings.LogLevel)

	if values := svc.Values(); len(values) > 0 {
		cmd.Println()
		cmd.Println("[Stored]")
		for _, kv := range values {
			cmd.Printf("  %s = %v\n", kv.Key, kv.Value)
		}
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	b, err := requireBackend()
	if err != nil {
		return err
	}

	if err := b.Settings().SetValue(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	b, err := requireBackend()
	if err != nil {
		return err
	}
	svc := b.Settings()

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("zuc Settings Wizard")
	cmd.Println("===================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Theme
	cmd.Println("Step 1: Select Theme")
	cmd.Println("--------------------")
	modes := domain.AllThemeModes()
	current := 1
	for i, mode := range modes {
		cmd.Printf("  %d. %s\n", i+1, mode)
		if mode == settings.Theme {
			current = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	settings.Theme = modes[parseChoice(readLine(reader), len(modes), current)-1]
	cmd.Printf("Theme: %s\n\n", settings.Theme)

	// Step 2: Conversion delay
	cmd.Println("Step 2: Conversion Delay")
	cmd.Println("------------------------")
	ms := int(settings.Pipeline.DebounceInterval.Milliseconds())
	cmd.Printf("Milliseconds to wait after typing [%d]: ", ms)
	if n, err := strconv.Atoi(readLine(reader)); err == nil && n > 0 {
		settings.Pipeline.DebounceInterval = time.Duration(n) * time.Millisecond
	}
	cmd.Printf("Delay: %s\n\n", settings.Pipeline.DebounceInterval)

	// Step 3: Analytics
	cmd.Println("Step 3: Analytics")
	cmd.Println("-----------------")
	cmd.Printf("Record conversion events? [%s]: ", yesNo(settings.Analytics.Enabled))
	settings.Analytics.Enabled = parseYesNo(readLine(reader), settings.Analytics.Enabled)
	if settings.Analytics.Enabled {
		cmd.Printf("Keep events in the local database? [%s]: ", yesNo(settings.Analytics.Persist))
		settings.Analytics.Persist = parseYesNo(readLine(reader), settings.Analytics.Persist)
	}
	cmd.Println()

	// Step 4: Rule tables
	cmd.Println("Step 4: Rule Tables")
	cmd.Println("-------------------")
	cmd.Printf("Load editable rule tables from the config directory? [%s]: ", yesNo(settings.Rules.Custom))
	settings.Rules.Custom = parseYesNo(readLine(reader), settings.Rules.Custom)
	cmd.Println()

	if err := svc.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	cmd.Println("All settings are saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseYesNo(input string, defaultVal bool) bool {
	switch strings.ToLower(input) {
	case "y", "yes", "true":
		return true
	case "n", "no", "false":
		return false
	default:
		return defaultVal
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
