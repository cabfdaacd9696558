package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcmtools/claimnotes/internal/model"
	"github.com/rcmtools/claimnotes/internal/pipeline"
)

var (
	repName       string
	insuranceName string
	denialCode    string
	callReference string
	notes         string
	outputFormat  string
	withGuidance  bool
)

// commentCmd represents the comment command
var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Generate an RCM comment from one call record",
	Long: `Comment composes the normalized RCM system comment for a single
payer call:
- Extracts claim numbers, dates, amounts and payer names from the notes
- Picks the denial-specific phrasing for the code
- Substitutes bracketed placeholders for any missing field

Example:
  claimnotes comment --code CO-18 --rep Jane --insurance aetna \
    --notes "clm@1213422 paid on 3/24/25 need to void"
  claimnotes comment --code CO-22 --notes "pt has mcr and aetna, mcr is primary" --format json
  claimnotes comment --code CO-29 --notes "90 days tfl, dos was 1/12/25" --guidance`,
	RunE: runComment,
}

func init() {
	rootCmd.AddCommand(commentCmd)

	commentCmd.Flags().StringVar(&repName, "rep", "", "payer representative spoken with")
	commentCmd.Flags().StringVar(&insuranceName, "insurance", "", "insurer option value (e.g. aetna, uhc)")
	commentCmd.Flags().StringVar(&denialCode, "code", "", "denial code (e.g. CO-18, PR-1)")
	commentCmd.Flags().StringVar(&callReference, "reference", "", "call reference number")
	commentCmd.Flags().StringVar(&notes, "notes", "", "free-text notes taken during the call")
	commentCmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, json)")
	commentCmd.Flags().BoolVar(&withGuidance, "guidance", false, "include questions/next steps for the code")
}

func runComment(cmd *cobra.Command, args []string) error {
	form := model.FormData{
		RepName:         repName,
		InsuranceName:   insuranceName,
		DenialCode:      denialCode,
		CallReference:   callReference,
		AdditionalNotes: notes,
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false // single record, nothing to memoize
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeGuidance = withGuidance
	cfg.Output.Format = outputFormat

	if verbose {
		fmt.Fprintf(os.Stderr, "Denial code: %s\n", denialCode)
		fmt.Fprintf(os.Stderr, "Notes: %d bytes\n", len(notes))
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)
	result := p.Process(form)

	renderer := pipeline.NewRenderer(cfg.Output.Format)
	if err := renderer.Render(os.Stdout, result); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}
