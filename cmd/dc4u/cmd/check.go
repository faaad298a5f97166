package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/dc4u/internal/block"
	"github.com/dgallion1/dc4u/internal/dc"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate DC sources without rendering",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		src, err := loadFile(path)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			failed++
			continue
		}

		blocks := block.Split(src.Text, block.Config{Separator: cfg.BlockSeparator})
		if len(blocks) == 0 {
			fmt.Fprintf(out, "%s: no charge blocks\n", path)
			failed++
			continue
		}
		for _, b := range blocks {
			rec, err := dc.ParseBlock(b.Text)
			if err != nil {
				failed++
				fmt.Fprintf(out, "%s:%d: Draft Charge %d: %s: %v\n", path, b.Line, b.Index, dc.Classify(err), err)
				continue
			}
			fmt.Fprintf(out, "%s:%d: Draft Charge %d: ok (%s, %s)\n", path, b.Line, b.Index, rec.OutputFormat, rec.SuspectName)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}
