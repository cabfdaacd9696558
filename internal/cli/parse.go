package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcmtools/claimnotes/internal/extract"
)

var parseCode string

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <notes>",
	Short: "Clean up raw call notes into a readable sentence",
	Long: `Parse interprets Q&A-style call notes: for CO-22 with
coordination-of-benefits wording it renders a COB summary sentence;
anything else gets the generic cleanup (shorthand expansion,
punctuation, capitalization).

Example:
  claimnotes parse "pt said dup claim, payed on 3/24/25"
  claimnotes parse --code CO-22 "has medicare and aetna, medicare 1st, never billed"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseCode, "code", "", "denial code context (e.g. CO-22)")
}

func runParse(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	fmt.Println(extract.ParseQAResponse(text, parseCode))
	return nil
}
