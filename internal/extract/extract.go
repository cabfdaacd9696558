// Package extract turns free-text payer call notes into structured
// facts, keyed by denial code. Extraction is pure and stateless:
// unmatched patterns drop facts silently, empty notes yield zero
// facts, nothing ever fails.
package extract

import (
	"regexp"
	"strings"

	"github.com/rcmtools/claimnotes/internal/extract/extractors"
	"github.com/rcmtools/claimnotes/internal/model"
	"github.com/rcmtools/claimnotes/internal/normalize"
)

var registry = extractors.NewRegistry()

// Facts extracts structured facts from call notes for a denial code.
// A generic pass (claim number, paid date, void request) runs for
// every code; the registry then dispatches to the code-specific
// extractor, with a generic fallback for unknown codes.
func Facts(notes, denialCode string) model.NoteFacts {
	if strings.TrimSpace(notes) == "" {
		return model.NoteFacts{}
	}

	lower := strings.ToLower(notes)
	note := extractors.Note{
		Raw:      notes,
		Lower:    lower,
		Insurers: InsurerNames(notes),
	}

	facts := registry.Find(denialCode).Extract(note)
	facts.OriginalClaim = originalClaim(notes)
	facts.PaidDate = paidDate(notes)
	facts.NeedsVoid = needsVoid(lower)

	return facts
}

// Signals that a note is a Q&A-style transcription worth parsing
// rather than just cleaning up.
var qaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)medicare`),
	regexp.MustCompile(`(?i)mcr`),
	regexp.MustCompile(`(?i)aetna`),
	regexp.MustCompile(`(?i)no.*billed`),
	regexp.MustCompile(`(?i)primary`),
	regexp.MustCompile(`(?i)secondary`),
	regexp.MustCompile(`(?i)1st`),
	regexp.MustCompile(`(?i)2nd`),
	regexp.MustCompile(`(?i)never.*billed`),
	regexp.MustCompile(`(?i)cob`),
	regexp.MustCompile(`(?i)coordination`),
}

// ParseQAResponse interprets Q&A-style call notes. For CO-22 with COB
// signal words it renders a free-standing coordination-of-benefits
// summary; everything else falls back to generic normalization.
func ParseQAResponse(notes, denialCode string) string {
	if strings.TrimSpace(notes) == "" {
		return ""
	}

	hasQAFormat := false
	for _, re := range qaPatterns {
		if re.MatchString(notes) {
			hasQAFormat = true
			break
		}
	}

	if hasQAFormat && denialCode == "CO-22" {
		note := extractors.Note{
			Raw:      notes,
			Lower:    strings.ToLower(notes),
			Insurers: InsurerNames(notes),
		}
		if s := (extractors.CoordinationOfBenefits{}).Sentence(note); s != "" {
			return s
		}
	}

	return normalize.Notes(notes)
}
