package extractors

import (
	"regexp"

	"github.com/rcmtools/claimnotes/internal/model"
)

// Dollar-figure extractors: prior payer adjudication (CO-23), fee
// schedule (CO-45), deductible (PR-1), coinsurance (PR-2) and copay
// (PR-3).

// Thousands groups are explicit so a sentence comma right after the
// amount ("$500, met") is not captured as part of it.
const money = `(\d+(?:,\d{3})*(?:\.\d{2})?)`

var (
	rePrimaryPaid    = regexp.MustCompile(`(?i)primary\s*(?:payer|insurance)?\s*paid\s*\$?` + money)
	reAllowable      = regexp.MustCompile(`(?i)allowable\s*\$?` + money)
	reBalanceDue     = regexp.MustCompile(`(?i)balance\s*due`)
	reBilledAmt      = regexp.MustCompile(`(?i)billed\s*\$?` + money)
	reAllowedAmt     = regexp.MustCompile(`(?i)allowed\s*\$?` + money)
	reContractedRate = regexp.MustCompile(`(?i)contracted\s*rate`)
	reDeductibleAmt  = regexp.MustCompile(`(?i)deductible\s*\$?` + money)
	reMetAmt         = regexp.MustCompile(`(?i)met\s*\$?` + money)
	rePatientResp    = regexp.MustCompile(`(?i)patient\s*responsibility`)
	reCoinsurancePct = regexp.MustCompile(`(?i)(\d+)%\s*coinsurance`)
	reDollarAmt      = regexp.MustCompile(`\$` + money)
	reCopayAmt       = regexp.MustCompile(`(?i)copay\s*\$?` + money)
	reNotCollected   = regexp.MustCompile(`(?i)not\s*collected`)
	reCollected      = regexp.MustCompile(`(?i)collected`)
)

// PriorPayer handles CO-23.
type PriorPayer struct{}

func (PriorPayer) Name() string { return "prior-payer" }

func (PriorPayer) Codes() []string { return []string{"CO-23"} }

func (PriorPayer) Extract(n Note) model.NoteFacts {
	var info string
	if m := rePrimaryPaid.FindStringSubmatch(n.Raw); m != nil {
		info = "Primary paid $" + m[1]
	}

	if m := reAllowable.FindStringSubmatch(n.Raw); m != nil {
		if info != "" {
			info += ". Allowable $" + m[1]
		} else {
			info = "Allowable $" + m[1]
		}
	}

	if reBalanceDue.MatchString(n.Lower) {
		if info != "" {
			info += ". Balance due secondary"
		} else {
			info = "Balance due secondary"
		}
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// FeeSchedule handles CO-45.
type FeeSchedule struct{}

func (FeeSchedule) Name() string { return "fee-schedule" }

func (FeeSchedule) Codes() []string { return []string{"CO-45"} }

func (FeeSchedule) Extract(n Note) model.NoteFacts {
	billed := reBilledAmt.FindStringSubmatch(n.Raw)
	allowed := reAllowedAmt.FindStringSubmatch(n.Raw)

	var info string
	switch {
	case billed != nil && allowed != nil:
		info = "Billed $" + billed[1] + ", allowed $" + allowed[1]
	case allowed != nil:
		info = "Allowed amount $" + allowed[1]
	default:
		info = "Exceeds fee schedule"
	}

	if reContractedRate.MatchString(n.Lower) {
		info += ". Payment at contracted rate"
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// Deductible handles PR-1.
type Deductible struct{}

func (Deductible) Name() string { return "deductible" }

func (Deductible) Codes() []string { return []string{"PR-1"} }

func (Deductible) Extract(n Note) model.NoteFacts {
	var info string
	if m := reDeductibleAmt.FindStringSubmatch(n.Raw); m != nil {
		info = "Deductible $" + m[1]
	}

	if m := reMetAmt.FindStringSubmatch(n.Raw); m != nil {
		if info != "" {
			info += ". Met $" + m[1]
		} else {
			info = "Met $" + m[1]
		}
	}

	if rePatientResp.MatchString(n.Lower) {
		if info != "" {
			info += ". Patient responsibility"
		} else {
			info = "Patient responsibility"
		}
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// Coinsurance handles PR-2.
type Coinsurance struct{}

func (Coinsurance) Name() string { return "coinsurance" }

func (Coinsurance) Codes() []string { return []string{"PR-2"} }

func (Coinsurance) Extract(n Note) model.NoteFacts {
	info := "Coinsurance responsibility"
	if m := reCoinsurancePct.FindStringSubmatch(n.Raw); m != nil {
		info = m[1] + "% coinsurance"
	}

	if m := reDollarAmt.FindStringSubmatch(n.Raw); m != nil {
		info += " ($" + m[1] + ")"
	}

	return model.NoteFacts{AdditionalInfo: info}
}

// Copay handles PR-3. "not collected" is checked before "collected"
// since the latter matches inside the former.
type Copay struct{}

func (Copay) Name() string { return "copay" }

func (Copay) Codes() []string { return []string{"PR-3"} }

func (Copay) Extract(n Note) model.NoteFacts {
	info := "Copay responsibility"
	if m := reCopayAmt.FindStringSubmatch(n.Raw); m != nil {
		info = "Copay $" + m[1]
	}

	switch {
	case reNotCollected.MatchString(n.Lower):
		info += ". Not collected"
	case reCollected.MatchString(n.Lower):
		info += ". Collected at service"
	}

	return model.NoteFacts{AdditionalInfo: info}
}
