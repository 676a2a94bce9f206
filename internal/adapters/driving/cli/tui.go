package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/myanmartools/zuc-cli/internal/adapters/driving/tui"
	"github.com/myanmartools/zuc-cli/internal/bootstrap"
	"github.com/myanmartools/zuc-cli/internal/logger"
)

var (
	tuiText  string
	tuiLinks []string
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive converter",
	Long: `Launch the interactive terminal converter.

Type or paste into the top area; the converted text appears below once
you stop typing. Text piped on standard input or given with --text is
loaded as if shared from another app.

Controls:
  Tab      - Cycle encoding: auto, Zawgyi, Unicode
  Ctrl+Y   - Copy the output
  Ctrl+L   - Clear
  Ctrl+O   - Menu
  Esc      - Back (twice to exit)
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiText, "text", "", "text to load on start")
	tuiCmd.Flags().StringSliceVar(&tuiLinks, "link", nil, "dynamic link to open on start (repeatable)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	b, err := requireBackend()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so diagnostics go to a file.
	closeLog, err := logger.OpenFile(b.LogPath())
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	text := tuiText
	var opts []tea.ProgramOption
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		piped, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if text == "" {
			text = strings.TrimSuffix(string(piped), "\n")
		}
		opts = append(opts, tea.WithInputTTY())
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	session, err := b.NewSession(ctx, bootstrap.SessionOptions{Text: text, Links: tuiLinks})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.Close()

	app, err := tui.NewApp(session.Ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return app.Run(gctx, opts...)
	})
	g.Go(func() error {
		if err := session.Watch(gctx); err != nil {
			logger.Warn("config watcher stopped: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
