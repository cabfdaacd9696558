package extractors

import (
	"regexp"
	"strings"

	"github.com/rcmtools/claimnotes/internal/model"
)

// CoordinationOfBenefits handles CO-22: figure out which payer should
// be primary, which secondary, and whether the primary was billed
// first. This is the only extractor that fills more than
// AdditionalInfo.
type CoordinationOfBenefits struct{}

// Explicit wording reps use for the primary payer, tried in order.
var cobPrimaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+(?:is\s+)?primary`),
	regexp.MustCompile(`(?i)primary\s+(?:is\s+)?(\w+(?:\s+\w+)*)`),
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+(?:should be|must be)\s+primary`),
	regexp.MustCompile(`(?i)bill\s+(\w+(?:\s+\w+)*)\s+first`),
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+then\s+`),
}

var cobSecondaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)then\s+(\w+(?:\s+\w+)*)`),
	regexp.MustCompile(`(?i)secondary\s+(?:is\s+)?(\w+(?:\s+\w+)*)`),
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+(?:is\s+)?secondary`),
}

// When no payer is named primary outright, "never billed to X" implies
// X is the primary that was skipped.
var cobNeverBilledPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)never\s+billed\s+(?:to\s+)?(\w+(?:\s+\w+)*)`),
	regexp.MustCompile(`(?i)(?:was\s+)?not\s+billed\s+(?:to\s+)?(\w+(?:\s+\w+)*)`),
	regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s+(?:was\s+)?never\s+billed`),
}

var cobNotBilledKeywords = []string{"never billed", "not billed", "never sent", "not sent", "no prim"}

func (CoordinationOfBenefits) Name() string { return "cob" }

func (CoordinationOfBenefits) Codes() []string { return []string{"CO-22"} }

func (e CoordinationOfBenefits) Extract(n Note) model.NoteFacts {
	primary := findPrimary(n)
	secondary := findSecondary(n, primary)

	// No explicit primary: infer from "never billed to X" when at
	// least two payers are in play.
	if primary == "" && len(n.Insurers) >= 2 {
		for _, re := range cobNeverBilledPatterns {
			m := re.FindStringSubmatch(n.Raw)
			if m == nil {
				continue
			}
			if name := matchInsurer(m[1], n.Insurers); name != "" {
				primary = name
				secondary = otherInsurer(n.Insurers, primary)
				break
			}
		}
	}

	facts := model.NoteFacts{
		PrimaryInsurance:   primary,
		SecondaryInsurance: secondary,
	}

	if primary != "" && secondary != "" {
		facts.BillingOrder = primary + " primary, then " + secondary
	} else if primary != "" {
		facts.BillingOrder = primary + " primary"
	}

	if primary != "" {
		if primaryNotBilled(n.Lower) {
			facts.AdditionalInfo = primary + " not billed first"
		} else {
			facts.AdditionalInfo = primary + " should be primary"
		}
	}

	return facts
}

// Sentence renders a free-standing COB summary for Q&A-style notes,
// e.g. "Patient has Medicare and Aetna. Medicare should be primary,
// but it was not billed first. COB order is Medicare primary, then
// Aetna secondary." Returns "" when the note names no payer.
func (e CoordinationOfBenefits) Sentence(n Note) string {
	if len(n.Insurers) == 0 {
		return ""
	}

	primary := findPrimary(n)
	if primary == "" {
		primary = n.Insurers[0]
	}
	secondary := findSecondary(n, primary)
	if secondary == "" {
		secondary = otherInsurer(n.Insurers, primary)
	}

	var b strings.Builder
	b.WriteString("Patient has " + strings.Join(n.Insurers, " and ") + ". ")
	b.WriteString(primary + " should be primary")
	if primaryNotBilled(n.Lower) {
		b.WriteString(", but it was not billed first. ")
	} else {
		b.WriteString(". ")
	}
	if secondary != "" {
		b.WriteString("COB order is " + primary + " primary, then " + secondary + " secondary.")
	}

	return strings.TrimSpace(b.String())
}

func findPrimary(n Note) string {
	for _, re := range cobPrimaryPatterns {
		m := re.FindStringSubmatch(n.Raw)
		if m == nil {
			continue
		}
		if name := matchInsurer(m[1], n.Insurers); name != "" {
			return name
		}
	}

	// "1st" shorthand next to a known payer
	if strings.Contains(n.Lower, "1st") && len(n.Insurers) > 0 {
		return n.Insurers[0]
	}

	return ""
}

func findSecondary(n Note, primary string) string {
	for _, re := range cobSecondaryPatterns {
		m := re.FindStringSubmatch(n.Raw)
		if m == nil {
			continue
		}
		if name := matchInsurer(m[1], n.Insurers); name != "" && name != primary {
			return name
		}
	}
	return ""
}

func primaryNotBilled(lower string) bool {
	for _, kw := range cobNotBilledKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// matchInsurer maps a captured phrase back to a detected insurer name.
// The capture is usually wider than the name ("medicare should be"),
// so containment is checked both ways.
func matchInsurer(candidate string, insurers []string) string {
	c := strings.ToLower(strings.TrimSpace(candidate))
	for _, name := range insurers {
		lname := strings.ToLower(name)
		if strings.Contains(c, lname) || strings.Contains(lname, c) {
			return name
		}
	}
	return ""
}

func otherInsurer(insurers []string, primary string) string {
	for _, name := range insurers {
		if name != primary {
			return name
		}
	}
	return ""
}
