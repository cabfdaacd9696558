package extractors

import (
	"regexp"

	"github.com/rcmtools/claimnotes/internal/model"
)

// Coverage-shaped denials: terminated eligibility (CO-27), non-covered
// charges (CO-96), bundled services (CO-97), wrong payer (CO-109),
// frequency limits (CO-151), provider type restrictions (CO-170) and
// plan exclusions (PR-204).

var (
	reTerminatedOn    = regexp.MustCompile(`(?i)terminated\s*(\d{1,2}/\d{1,2}/\d{2,4})`)
	reDOSDate         = regexp.MustCompile(`(?i)dos\s*(\d{1,2}/\d{1,2}/\d{2,4})`)
	rePlanExclusion   = regexp.MustCompile(`(?i)plan\s*exclusion`)
	reNotCovered      = regexp.MustCompile(`(?i)not\s*covered`)
	reAltAvailable    = regexp.MustCompile(`(?i)alternative\s*available`)
	reBundledWith     = regexp.MustCompile(`(?i)bundled\s*with\s*(\w+)`)
	rePrimaryPaidFlag = regexp.MustCompile(`(?i)primary\s*paid`)
	reSendTo          = regexp.MustCompile(`(?i)send\s*to\s*(\w+(?:\s+\w+)*)`)
	reCoverageChanged = regexp.MustCompile(`(?i)coverage\s*changed`)
	reFrequencyLimit  = regexp.MustCompile(`(?i)(\d+)\s*(?:per|/)\s*(\w+)`)
	reMedNecessity    = regexp.MustCompile(`(?i)medical\s*necessity`)
	reProviderType    = regexp.MustCompile(`(?i)provider\s*type\s*(\w+)`)
	reCredentialing   = regexp.MustCompile(`(?i)credentialing`)
	rePriorAuth       = regexp.MustCompile(`(?i)prior\s*authorization`)
)

// Eligibility handles CO-27.
type Eligibility struct{}

func (Eligibility) Name() string { return "eligibility" }

func (Eligibility) Codes() []string { return []string{"CO-27"} }

func (Eligibility) Extract(n Note) model.NoteFacts {
	info := "Coverage terminated"
	if m := reTerminatedOn.FindStringSubmatch(n.Raw); m != nil {
		info = "Coverage terminated " + m[1]
	}

	if m := reDOSDate.FindStringSubmatch(n.Raw); m != nil {
		info += ". DOS " + m[1]
	}
	if rePatientResp.MatchString(n.Lower) {
		info += ". Patient responsibility"
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// NonCovered handles CO-96. Priority: plan exclusion > not covered >
// generic.
type NonCovered struct{}

func (NonCovered) Name() string { return "non-covered" }

func (NonCovered) Codes() []string { return []string{"CO-96"} }

func (NonCovered) Extract(n Note) model.NoteFacts {
	var info string
	switch {
	case rePlanExclusion.MatchString(n.Lower):
		info = "Plan exclusion"
	case reNotCovered.MatchString(n.Lower):
		info = "Service not covered"
	default:
		info = "Non-covered service"
	}

	if rePatientResp.MatchString(n.Lower) {
		info += ". Patient responsibility"
	}
	if reAltAvailable.MatchString(n.Lower) {
		info += ". Alternative available"
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// Bundled handles CO-97.
type Bundled struct{}

func (Bundled) Name() string { return "bundled" }

func (Bundled) Codes() []string { return []string{"CO-97"} }

func (Bundled) Extract(n Note) model.NoteFacts {
	info := "Bundled with primary procedure"
	if m := reBundledWith.FindStringSubmatch(n.Raw); m != nil {
		info = "Bundled with " + m[1]
	}

	if rePrimaryPaidFlag.MatchString(n.Lower) {
		info += ". Primary procedure paid"
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// WrongPayer handles CO-109.
type WrongPayer struct{}

func (WrongPayer) Name() string { return "wrong-payer" }

func (WrongPayer) Codes() []string { return []string{"CO-109"} }

func (WrongPayer) Extract(n Note) model.NoteFacts {
	info := "Wrong payer"
	if m := reSendTo.FindStringSubmatch(n.Raw); m != nil {
		info = "Send to " + m[1]
	}

	if reCoverageChanged.MatchString(n.Lower) {
		info += ". Coverage changed"
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// Frequency handles CO-151.
type Frequency struct{}

func (Frequency) Name() string { return "frequency" }

func (Frequency) Codes() []string { return []string{"CO-151"} }

func (Frequency) Extract(n Note) model.NoteFacts {
	info := "Frequency limit exceeded"
	if m := reFrequencyLimit.FindStringSubmatch(n.Raw); m != nil {
		info = "Limit: " + m[1] + " per " + m[2]
	}

	if reMedNecessity.MatchString(n.Lower) {
		info += ". Medical necessity required for additional units"
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// ProviderType handles CO-170.
type ProviderType struct{}

func (ProviderType) Name() string { return "provider-type" }

func (ProviderType) Codes() []string { return []string{"CO-170"} }

func (ProviderType) Extract(n Note) model.NoteFacts {
	info := "Provider type restriction"
	if m := reProviderType.FindStringSubmatch(n.Raw); m != nil {
		info = "Provider type " + m[1] + " not covered"
	}

	if reCredentialing.MatchString(n.Lower) {
		info += ". Credentialing required"
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// ServiceNotCovered handles PR-204. The lead fragment is fixed; flags
// append to it.
type ServiceNotCovered struct{}

func (ServiceNotCovered) Name() string { return "service-not-covered" }

func (ServiceNotCovered) Codes() []string { return []string{"PR-204"} }

func (ServiceNotCovered) Extract(n Note) model.NoteFacts {
	info := "Service not covered under plan"

	if rePriorAuth.MatchString(n.Lower) {
		info += ". Prior authorization required"
	}
	if rePlanExclusion.MatchString(n.Lower) {
		info += ". Plan exclusion"
	}
	if rePatientResp.MatchString(n.Lower) {
		info += ". Patient responsibility"
	}

	return model.NoteFacts{AdditionalInfo: info}
}
