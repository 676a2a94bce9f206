package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

var (
	tailCount int
	tailJSON  bool
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Inspect locally recorded analytics events",
}

var analyticsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print the newest events from the event log",
	Long: `Prints the newest events written to events.jsonl in the data directory,
oldest first. Nothing is printed when analytics is disabled or no event
has been recorded yet.`,
	Args: cobra.NoArgs,
	RunE: runAnalyticsTail,
}

func init() {
	analyticsTailCmd.Flags().IntVarP(&tailCount, "lines", "n", 20, "number of events to print")
	analyticsTailCmd.Flags().BoolVar(&tailJSON, "json", false, "output the events as JSON")
	analyticsCmd.AddCommand(analyticsTailCmd)
	rootCmd.AddCommand(analyticsCmd)
}

// eventOutput is the JSON shape of a logged event.
type eventOutput struct {
	Name       string         `json:"name"`
	SessionID  string         `json:"session_id"`
	Properties map[string]any `json:"properties,omitempty"`
	Time       time.Time      `json:"time"`
}

func runAnalyticsTail(cmd *cobra.Command, _ []string) error {
	if tailCount <= 0 {
		return fmt.Errorf("%w: --lines must be positive", domain.ErrInvalidInput)
	}

	b, err := requireBackend()
	if err != nil {
		return err
	}

	events, err := b.EventLog(tailCount)
	if err != nil {
		return err
	}

	if tailJSON {
		out := make([]eventOutput, 0, len(events))
		for _, ev := range events {
			out = append(out, eventOutput{
				Name:       ev.Name,
				SessionID:  ev.SessionID,
				Properties: ev.Properties,
				Time:       ev.Time,
			})
		}
		return printJSON(cmd, out)
	}

	w := cmd.OutOrStdout()
	for _, ev := range events {
		fmt.Fprintf(w, "%s  %s", ev.Time.Format(time.RFC3339), ev.Name)
		if props := formatProps(ev.Properties); props != "" {
			fmt.Fprintf(w, "  %s", props)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// formatProps renders properties as key=value pairs in key order.
func formatProps(props map[string]any) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, props[k]))
	}
	return strings.Join(parts, " ")
}
