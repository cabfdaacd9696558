package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rcmtools/claimnotes/internal/refdata"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <denial-code>",
	Short: "Show follow-up guidance for a denial code",
	Long: `Lookup prints the questions to ask the payer rep, the form fields
that matter, and the next steps for a denial code.

Example:
  claimnotes lookup CO-22
  claimnotes lookup codes`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

// optionsCmd represents the options command
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the insurer and eligibility pick-lists",
	Long:  `Options prints the pick-lists the call form is built from: insurers sorted by label, eligibility statuses in domain order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(map[string]interface{}{
			"insurance":   refdata.InsuranceOptions(),
			"eligibility": refdata.EligibilityStatusOptions(),
		})
		if err != nil {
			return fmt.Errorf("marshal options: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(optionsCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	code := args[0]

	// "codes" lists everything we have guidance for
	if code == "codes" {
		for _, c := range refdata.Codes() {
			mapping, _ := refdata.Lookup(c)
			fmt.Printf("%-8s %s\n", c, mapping.Description)
		}
		return nil
	}

	mapping, ok := refdata.Lookup(code)
	if !ok {
		// Not an error: the code just has no recorded guidance.
		fmt.Fprintf(os.Stderr, "No guidance recorded for %s\n", code)
		return nil
	}

	out, err := yaml.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("marshal guidance: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
