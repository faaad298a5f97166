package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dgallion1/dc4u/internal/dc"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a DC source",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "print tokens as JSON")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := loadFile(args[0])
	if err != nil {
		return err
	}
	tokens, err := dc.Tokenize(src.Text)
	if err != nil {
		return err
	}

	if tokensJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OFFSET\tKIND\tTEXT")
	for _, tok := range tokens {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", tok.Offset, tok.Kind, tok.Text)
	}
	return tw.Flush()
}
