package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/dc4u/internal/config"
	"github.com/dgallion1/dc4u/internal/source"
)

var (
	cfgFile string
	verbose bool

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dc4u",
	Short: "Draft charge compiler",
	Long: `dc4u compiles draft charge descriptions written in the DC markup into
charge sheets (PDF, HTML, TXT, MD or DOCX).

A source file may hold several charges separated by a line of "---".
Sources may be plain text (.dc, .txt), Word (.docx) or PDF documents.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the command line.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $DC4U_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func setup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = os.Getenv("DC4U_CONFIG")
	}
	var err error
	cfg, err = config.LoadFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// loadFile reads a DC source from disk with the loader for its extension.
func loadFile(path string) (*source.Source, error) {
	loader, err := source.ForFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := loader.Load(f, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Debug("loaded source", "path", path, "bytes", len(src.Text))
	return src, nil
}
