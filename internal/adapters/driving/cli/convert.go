package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

var (
	convertFrom string
	convertJSON bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [text]",
	Short: "Convert text between Zawgyi and Unicode",
	Long: `Converts Myanmar text. With --from auto (the default) the encoding is
detected and the text is converted to the other one; text that is not
recognisably Myanmar is printed unchanged.

Reads standard input when no text argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", string(domain.EncodingAuto), "source encoding: auto, zg or uni")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(convertCmd)
}

// convertOutput is the JSON shape of a conversion.
type convertOutput struct {
	Output     string `json:"output"`
	Rule       string `json:"rule"`
	Replaced   bool   `json:"replaced"`
	DurationMs int64  `json:"duration_ms"`
	Detected   string `json:"detected"`
	Target     string `json:"target"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	mode, err := domain.ParseEncodingMode(convertFrom)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	b, err := requireBackend()
	if err != nil {
		return err
	}

	res, err := b.Converter(domain.ProvenanceCLI).Convert(cmd.Context(), text, mode)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if convertJSON {
		return printJSON(cmd, convertOutput{
			Output:     res.OutputText,
			Rule:       res.RuleApplied.String(),
			Replaced:   res.WasReplaced,
			DurationMs: res.DurationMs(),
			Detected:   res.Detected.String(),
			Target:     res.Target.String(),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.OutputText)
	return nil
}

// readInput returns the text argument, or standard input without its
// final newline.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	if text == "" {
		return "", errors.New("no text given")
	}
	return text, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
