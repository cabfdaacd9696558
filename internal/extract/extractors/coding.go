package extractors

import (
	"regexp"

	"github.com/rcmtools/claimnotes/internal/model"
)

// Extractors for coding problems: modifiers (CO-4), age limits
// (CO-6), diagnosis/procedure mismatch (CO-11) and non-covered
// diagnoses (CO-167).

var (
	reModifierCode   = regexp.MustCompile(`(?i)modifier\s*(\w+)`)
	reMissingMod     = regexp.MustCompile(`(?i)missing\s*modifier`)
	reIncorrectMod   = regexp.MustCompile(`(?i)incorrect\s*modifier`)
	reRequiredMod    = regexp.MustCompile(`(?i)required\s*modifier`)
	reResubmit       = regexp.MustCompile(`(?i)resubmit`)
	rePatientAge     = regexp.MustCompile(`(?i)age\s*(\d+)`)
	reProcedureCode  = regexp.MustCompile(`(?i)(?:procedure|proc)\s*(?:code)?\s*(\w+)`)
	reNotAgeApprop   = regexp.MustCompile(`(?i)not\s*age\s*appropriate`)
	reDiagnosisCode  = regexp.MustCompile(`(?i)(?:diagnosis|dx)\s*(?:code)?\s*([A-Z]\d+(?:\.\d+)?)`)
	reAdditionalDocs = regexp.MustCompile(`(?i)additional\s*documentation`)
	reAltDiagnosis   = regexp.MustCompile(`(?i)alternative\s*diagnosis`)
)

// Modifier handles CO-4. Priority: missing > incorrect > required.
type Modifier struct{}

func (Modifier) Name() string { return "modifier" }

func (Modifier) Codes() []string { return []string{"CO-4"} }

func (Modifier) Extract(n Note) model.NoteFacts {
	var info string
	switch {
	case reMissingMod.MatchString(n.Lower):
		info = "Missing modifier"
	case reIncorrectMod.MatchString(n.Lower):
		info = "Incorrect modifier"
	case reRequiredMod.MatchString(n.Lower):
		info = "Required modifier"
	}

	if m := reModifierCode.FindStringSubmatch(n.Raw); m != nil {
		if info != "" {
			info += " " + m[1]
		} else {
			info = "Modifier " + m[1]
		}
	}

	if reResubmit.MatchString(n.Lower) {
		if info != "" {
			info += ". Resubmit with correct modifier"
		} else {
			info = "Resubmit with correct modifier"
		}
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// AgeRestriction handles CO-6.
type AgeRestriction struct{}

func (AgeRestriction) Name() string { return "age-restriction" }

func (AgeRestriction) Codes() []string { return []string{"CO-6"} }

func (AgeRestriction) Extract(n Note) model.NoteFacts {
	var info string
	if m := rePatientAge.FindStringSubmatch(n.Raw); m != nil {
		info = "Patient age " + m[1]
	}

	if m := reProcedureCode.FindStringSubmatch(n.Raw); m != nil {
		if info != "" {
			info += ". Procedure " + m[1] + " not age-appropriate"
		} else {
			info = "Procedure " + m[1] + " not age-appropriate"
		}
	} else if reNotAgeApprop.MatchString(n.Lower) {
		if info != "" {
			info += ". Service not age-appropriate"
		} else {
			info = "Service not age-appropriate"
		}
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// DiagnosisProcedure handles CO-11.
type DiagnosisProcedure struct{}

func (DiagnosisProcedure) Name() string { return "diagnosis-procedure" }

func (DiagnosisProcedure) Codes() []string { return []string{"CO-11"} }

func (DiagnosisProcedure) Extract(n Note) model.NoteFacts {
	dx := reDiagnosisCode.FindStringSubmatch(n.Raw)
	proc := reProcedureCode.FindStringSubmatch(n.Raw)

	var info string
	switch {
	case dx != nil && proc != nil:
		info = "Diagnosis " + dx[1] + " doesn't support procedure " + proc[1]
	case dx != nil:
		info = "Diagnosis " + dx[1] + " doesn't support procedure"
	case proc != nil:
		info = "Procedure " + proc[1] + " not supported by diagnosis"
	default:
		info = "Diagnosis/procedure mismatch"
	}

	if reAdditionalDocs.MatchString(n.Lower) {
		info += ". Additional documentation required"
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// DiagnosisNotCovered handles CO-167.
type DiagnosisNotCovered struct{}

func (DiagnosisNotCovered) Name() string { return "diagnosis-not-covered" }

func (DiagnosisNotCovered) Codes() []string { return []string{"CO-167"} }

func (DiagnosisNotCovered) Extract(n Note) model.NoteFacts {
	info := "Diagnosis not covered"
	if m := reDiagnosisCode.FindStringSubmatch(n.Raw); m != nil {
		info = "Diagnosis " + m[1] + " not covered"
	}

	if reAltDiagnosis.MatchString(n.Lower) {
		info += ". Alternative diagnosis available"
	}

	return model.NoteFacts{AdditionalInfo: info}
}
