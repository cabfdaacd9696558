package extractors

import (
	"regexp"
	"strings"

	"github.com/rcmtools/claimnotes/internal/model"
)

// Extractors for claim-data problems: missing submission info (CO-16),
// unidentifiable patient (CO-31) and duplicate claims (CO-18).

// itemPattern pairs a detection regex with the short label used in the
// itemized fragment.
type itemPattern struct {
	re    *regexp.Regexp
	label string
}

var missingItems = []itemPattern{
	{regexp.MustCompile(`(?i)missing\s*(?:member|patient)\s*id`), "patient ID"},
	{regexp.MustCompile(`(?i)missing\s*(?:date|dos)`), "DOS"},
	{regexp.MustCompile(`(?i)missing\s*(?:provider|npi)`), "provider info"},
	{regexp.MustCompile(`(?i)missing\s*(?:diagnosis|dx)`), "diagnosis"},
	{regexp.MustCompile(`(?i)missing\s*(?:procedure|proc)`), "procedure"},
	{regexp.MustCompile(`(?i)missing\s*modifier`), "modifier"},
}

var verifyItems = []itemPattern{
	{regexp.MustCompile(`(?i)member\s*id`), "member ID"},
	{regexp.MustCompile(`(?i)date\s*of\s*birth|dob`), "DOB"},
	{regexp.MustCompile(`(?i)name`), "name"},
	{regexp.MustCompile(`(?i)ssn`), "SSN"},
}

var (
	reIncorrectInfo  = regexp.MustCompile(`(?i)incorrect\s*information`)
	reResubmitOrCorr = regexp.MustCompile(`(?i)resubmit|corrected\s*claim`)
	reCorrectedClaim = regexp.MustCompile(`(?i)corrected\s*claim`)
)

func matchedLabels(items []itemPattern, lower string) []string {
	var labels []string
	for _, item := range items {
		if item.re.MatchString(lower) {
			labels = append(labels, item.label)
		}
	}
	return labels
}

// MissingInfo handles CO-16.
type MissingInfo struct{}

func (MissingInfo) Name() string { return "missing-info" }

func (MissingInfo) Codes() []string { return []string{"CO-16"} }

func (MissingInfo) Extract(n Note) model.NoteFacts {
	var info string
	if labels := matchedLabels(missingItems, n.Lower); len(labels) > 0 {
		info = "Missing: " + strings.Join(labels, ", ")
	} else if reIncorrectInfo.MatchString(n.Lower) {
		info = "Incorrect information"
	} else {
		info = "Missing/incorrect information"
	}

	if reResubmitOrCorr.MatchString(n.Lower) {
		info += ". Resubmit with corrections"
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// PatientID handles CO-31.
type PatientID struct{}

func (PatientID) Name() string { return "patient-id" }

func (PatientID) Codes() []string { return []string{"CO-31"} }

func (PatientID) Extract(n Note) model.NoteFacts {
	var info string
	if labels := matchedLabels(verifyItems, n.Lower); len(labels) > 0 {
		info = "Verify: " + strings.Join(labels, ", ")
	} else {
		info = "Patient demographics need verification"
	}

	if reCorrectedClaim.MatchString(n.Lower) {
		info += ". Submit corrected claim"
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// Duplicate handles CO-18. The generic pass already pulls the original
// claim number, paid date and void request; the composer turns those
// into clauses, so there is no fragment to add here.
type Duplicate struct{}

func (Duplicate) Name() string { return "duplicate" }

func (Duplicate) Codes() []string { return []string{"CO-18"} }

func (Duplicate) Extract(n Note) model.NoteFacts {
	return model.NoteFacts{}
}
