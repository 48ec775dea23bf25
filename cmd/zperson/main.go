package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zperson/internal/cli"
	"github.com/zarlcorp/zperson/internal/corpus"
	"github.com/zarlcorp/zperson/internal/person"
	"github.com/zarlcorp/zperson/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// .env may set ZPERSON_DATA_DIR
	_ = godotenv.Load()

	app := zapp.New(zapp.WithName("zperson"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	root := cli.NewRootCommand(version, runTUI)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "zperson: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runTUI(src corpus.Source) error {
	m := tui.New(version, person.New(src))
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
