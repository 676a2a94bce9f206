package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myanmartools/zuc-cli/internal/core/domain"
)

var detectJSON bool

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Report whether text is Zawgyi or Unicode",
	Long: `Prints "zg" for Zawgyi, "uni" for Unicode and "none" when the text is
not recognisably Myanmar. Reads standard input when no text argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	b, err := requireBackend()
	if err != nil {
		return err
	}

	detected, err := b.Converter(domain.ProvenanceCLI).Detect(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	if detectJSON {
		return printJSON(cmd, map[string]string{
			"encoding": detected.String(),
			"label":    domain.EncodingLabel(detected),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), detected.String())
	return nil
}
