// Command zuc converts Myanmar text between Zawgyi and Unicode.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/myanmartools/zuc-cli/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
