package extractors

import (
	"regexp"

	"github.com/rcmtools/claimnotes/internal/model"
)

// MedicalNecessity handles CO-50.
type MedicalNecessity struct{}

var (
	reCriteriaNotMet = regexp.MustCompile(`(?i)criteria\s*not\s*met`)
	reDocsRequired   = regexp.MustCompile(`(?i)additional\s*(?:documentation|docs)\s*required|medical\s*records|clinical\s*notes`)
	reAppealOption   = regexp.MustCompile(`(?i)can\s*appeal|appeal\s*available`)
)

func (MedicalNecessity) Name() string { return "medical-necessity" }

func (MedicalNecessity) Codes() []string { return []string{"CO-50"} }

func (MedicalNecessity) Extract(n Note) model.NoteFacts {
	info := "Medical necessity not established"
	if reCriteriaNotMet.MatchString(n.Raw) {
		info = "Criteria not met"
	}

	if reDocsRequired.MatchString(n.Lower) {
		info += ". Additional documentation required"
	}
	if reAppealOption.MatchString(n.Lower) {
		info += ". Can appeal with supporting documentation"
	}

	return model.NoteFacts{AdditionalInfo: info}
}
