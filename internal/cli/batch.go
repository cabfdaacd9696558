package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcmtools/claimnotes/internal/model"
	"github.com/rcmtools/claimnotes/internal/pipeline"
)

var (
	batchOutput   string
	batchFormat   string
	batchGuidance bool
	noCache       bool
	cacheTTL      time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Generate comments for a call-log export",
	Long: `Batch processes a file of call records (JSON Lines, one form record
per line) and generates one comment per record.

Call-log exports repeat the same notes across rows, so identical
records are memoized instead of re-parsed.

Example:
  claimnotes batch calls.jsonl
  claimnotes batch calls.jsonl --output comments.txt
  claimnotes batch calls.jsonl --format json --guidance`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchOutput, "output", "", "output file (default stdout)")
	batchCmd.Flags().StringVar(&batchFormat, "format", "text", "output format (text, json)")
	batchCmd.Flags().BoolVar(&batchGuidance, "guidance", false, "include questions/next steps per record")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable comment memoization")
	batchCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 15*time.Minute, "memoization TTL")
}

func runBatch(cmd *cobra.Command, args []string) (err error) {
	file := args[0]

	// Build configuration
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Cache.TTL = cacheTTL
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeGuidance = batchGuidance
	cfg.Output.Format = batchFormat

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	out := os.Stdout
	if batchOutput != "" {
		out, err = os.Create(batchOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if closeErr := out.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close output: %w", closeErr)
			}
		}()
	}

	p := pipeline.NewPipeline(cfg)
	renderer := pipeline.NewRenderer(cfg.Output.Format)

	var processed, failed int

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var form model.FormData
		if jsonErr := json.Unmarshal([]byte(line), &form); jsonErr != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ line %d: %v\n", processed+failed, jsonErr)
			continue
		}

		result := p.Process(form)
		if renderErr := renderer.Render(out, result); renderErr != nil {
			return fmt.Errorf("render: %w", renderErr)
		}
		processed++
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return fmt.Errorf("read input: %w", scanErr)
	}

	if verbose || failed > 0 {
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "  Records:   %d\n", processed+failed)
		fmt.Fprintf(os.Stderr, "  Success:   %d\n", processed)
		fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failed)
	}

	return nil
}
