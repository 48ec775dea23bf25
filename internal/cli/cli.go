// Package cli implements zperson's command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zperson/internal/corpus"
	"github.com/zarlcorp/zperson/internal/format"
	"github.com/zarlcorp/zperson/internal/person"
	"golang.org/x/term"
)

// EnvDataDir names the environment variable holding the corpus directory.
const EnvDataDir = "ZPERSON_DATA_DIR"

// Interactive runs the interactive generator over src.
type Interactive func(src corpus.Source) error

// stdoutIsTerminal reports whether w is a terminal; swapped out in tests.
var stdoutIsTerminal = isTerminal

// generateFlags are the flags that ask for a batch run instead of the
// interactive generator.
var generateFlags = []string{"sex", "min-age", "max-age", "count", "format", "seed"}

// DataDir returns the corpus directory to use, or "" for the embedded
// corpus. An explicit flag wins over ZPERSON_DATA_DIR, which wins over an
// existing $XDG_DATA_HOME/zperson.
func DataDir(flag string) string {
	if flag != "" {
		return flag
	}
	if d := os.Getenv(EnvDataDir); d != "" {
		return d
	}
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		dir := d + "/zperson"
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

// OpenSource returns the corpus source for dir, falling back to the
// embedded corpus when dir is empty.
func OpenSource(dir string) corpus.Source {
	if dir == "" {
		slog.Debug("corpus", "source", "embedded")
		return corpus.Embedded()
	}
	slog.Debug("corpus", "dir", dir)
	return zfilesystem.NewOSFileSystem(dir)
}

// NewRootCommand builds the zperson command tree. interactive is started
// when zperson runs without a subcommand on a terminal.
func NewRootCommand(version string, interactive Interactive) *cobra.Command {
	var (
		verbose bool
		dataDir string
		req     GenerateRequest
	)

	root := &cobra.Command{
		Use:           "zperson",
		Short:         "Generate synthetic person records",
		Long:          "zperson generates fake people (name, sex, age, job, email, phone) from name and occupation corpora.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := OpenSource(DataDir(dataDir))
			if interactive != nil && !batchRequested(cmd) && stdoutIsTerminal(cmd.OutOrStdout()) {
				return interactive(src)
			}
			return Generate(cmd.OutOrStdout(), src, req)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding corpus files (default: $"+EnvDataDir+" or embedded)")
	addGenerateFlags(root, &req)

	gen := &cobra.Command{
		Use:   "generate",
		Short: "Print one or more generated people",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Generate(cmd.OutOrStdout(), OpenSource(DataDir(dataDir)), req)
		},
	}
	addGenerateFlags(gen, &req)

	ver := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zperson %s\n", version)
		},
	}

	root.AddCommand(gen, ver)
	return root
}

// batchRequested reports whether any generate flag was set explicitly.
func batchRequested(cmd *cobra.Command) bool {
	for _, name := range generateFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func addGenerateFlags(cmd *cobra.Command, req *GenerateRequest) {
	f := cmd.Flags()
	f.StringVar(&req.Sex, "sex", "", "Force the sex of generated people (male or female)")
	f.IntVar(&req.MinAge, "min-age", 0, "Minimum age, inclusive")
	f.IntVar(&req.MaxAge, "max-age", 100, "Maximum age, inclusive")
	f.IntVarP(&req.Count, "count", "n", 1, "Number of people to generate")
	f.StringVarP(&req.Format, "format", "f", format.Table.String(), "Output format: oneline, table, pretty or json")
	f.Uint64Var(&req.Seed, "seed", 0, "Seed for reproducible output (0 for random)")
}

// Generate validates req, generates req.Count people from src and renders
// them to w. The first failed record aborts the batch.
func Generate(w io.Writer, src corpus.Source, req GenerateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	f, err := format.Parse(req.Format)
	if err != nil {
		return err
	}

	opts, err := req.Options()
	if err != nil {
		return err
	}

	var genOpts []person.Option
	if req.Seed != 0 {
		genOpts = append(genOpts, person.WithRand(rand.New(rand.NewPCG(req.Seed, req.Seed))))
	}
	g := person.New(src, genOpts...)

	slog.Debug("generate", "count", req.Count, "format", f, "min_age", req.MinAge, "max_age", req.MaxAge)

	people := make([]person.Person, 0, req.Count)
	for i := range req.Count {
		p, err := g.Generate(opts)
		if err != nil {
			return fmt.Errorf("person %d: %w", i+1, Describe(err))
		}
		people = append(people, p)
	}

	return f.Render(w, people)
}

// Describe prefixes corpus errors with a diagnostic naming the problem.
func Describe(err error) error {
	switch {
	case errors.Is(err, corpus.ErrResourceNotFound):
		return fmt.Errorf("corpus file missing: %w", err)
	case errors.Is(err, corpus.ErrNoCandidates):
		return fmt.Errorf("corpus file has no usable entries: %w", err)
	}
	return err
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
