package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dgallion1/dc4u/internal/pipeline"
	"github.com/dgallion1/dc4u/internal/register"
)

var (
	outDir       string
	registerPath string
)

var compileCmd = &cobra.Command{
	Use:   "compile FILE...",
	Short: "Compile DC sources into draft charge documents",
	Long: `Compile every charge block of each FILE and write one document per
block as {source}-Draft-Charge-{n}.{ext}. Blocks that fail are reported and
skipped; the command exits non-zero if any block failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: $OUTPUT_DIR or .)")
	compileCmd.Flags().StringVar(&registerPath, "register", "", "also write an XLSX charge register to this path")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	dir := outDir
	if dir == "" {
		dir = cfg.OutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	opts := pipeline.Options{
		Separator:     cfg.BlockSeparator,
		MaxConcurrent: cfg.MaxConcurrentBlocks,
	}

	var (
		batches []*pipeline.Batch
		total   int
		failed  int
	)
	for _, path := range args {
		src, err := loadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			failed++
			continue
		}

		batch := pipeline.Compile(cmd.Context(), src, opts)
		batches = append(batches, batch)
		total += len(batch.Results)

		for _, res := range batch.Results {
			if res.Err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, res.Err)
				continue
			}
			target := filepath.Join(dir, res.Output.FileName)
			if err := os.WriteFile(target, res.Output.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)
		}
		logger.Info("compiled source", "path", path, "blocks", len(batch.Results), "failed", batch.Failed())
	}

	if registerPath != "" {
		if err := writeRegister(registerPath, batches); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", registerPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d blocks failed", failed, max(total, failed))
	}
	return nil
}

func writeRegister(path string, batches []*pipeline.Batch) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create register: %w", err)
	}
	if err := register.Write(f, batches...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
