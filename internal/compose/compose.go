// Package compose renders the final RCM comment: one English sentence
// summarizing the payer call, ready to paste into the billing system's
// note field. Missing form fields degrade to bracketed placeholders;
// there are no error paths.
package compose

import (
	"strings"

	"github.com/rcmtools/claimnotes/internal/extract"
	"github.com/rcmtools/claimnotes/internal/model"
	"github.com/rcmtools/claimnotes/internal/refdata"
)

// phrases maps each denial code to the short parenthetical in the
// comment. Unknown codes get defaultPhrase.
var phrases = map[string]string{
	"CO-4":   "modifier issue",
	"CO-6":   "age restriction",
	"CO-11":  "diagnosis/procedure mismatch",
	"CO-15":  "missing authorization",
	"CO-16":  "missing/incorrect info",
	"CO-18":  "duplicate claim",
	"CO-22":  "COB issue - other payer primary",
	"CO-23":  "prior payer adjudication",
	"CO-27":  "eligibility terminated",
	"CO-29":  "timely filing exceeded",
	"CO-31":  "patient ID issue",
	"CO-45":  "exceeds fee schedule",
	"CO-50":  "medical necessity not met",
	"CO-96":  "non-covered service",
	"CO-97":  "bundled with primary procedure",
	"CO-109": "wrong payer",
	"CO-151": "frequency limit exceeded",
	"CO-167": "diagnosis not covered",
	"CO-170": "provider type restriction",
	"PR-1":   "deductible responsibility",
	"PR-2":   "coinsurance responsibility",
	"PR-3":   "copay responsibility",
	"PR-204": "service not covered",
}

const defaultPhrase = "denial documented"

// Comment builds the comment for one call. Always returns a non-empty
// sentence ending in terminal punctuation.
func Comment(form model.FormData) string {
	rep := form.RepName
	if rep == "" {
		rep = model.PlaceholderRep
	}

	insurer := model.PlaceholderInsurance
	if form.InsuranceName != "" {
		insurer = refdata.InsuranceLabel(form.InsuranceName)
	}

	code := form.DenialCode
	if code == "" {
		code = model.PlaceholderCode
	}

	facts := extract.Facts(form.AdditionalNotes, form.DenialCode)

	phrase, ok := phrases[form.DenialCode]
	if !ok {
		phrase = defaultPhrase
	}

	switch form.DenialCode {
	case "CO-18":
		// Fold the duplicate-claim facts into the parenthetical.
		if facts.OriginalClaim != "" {
			phrase += ". Original claim #" + facts.OriginalClaim
		}
		if facts.PaidDate != "" {
			phrase += " paid " + facts.PaidDate
		}
		if facts.NeedsVoid {
			phrase += ", so void required"
		}
	case "CO-22":
		if facts.PrimaryInsurance != "" {
			phrase = "COB issue - " + facts.PrimaryInsurance + " primary"
		}
	}

	var b strings.Builder
	b.WriteString("Called ")
	b.WriteString(insurer)
	b.WriteString(", spoke with ")
	b.WriteString(rep)
	b.WriteString(". Claim denied for ")
	b.WriteString(code)
	b.WriteString(" (")
	b.WriteString(phrase)
	b.WriteString(").")

	if facts.AdditionalInfo != "" {
		b.WriteString(" ")
		b.WriteString(facts.AdditionalInfo)
		b.WriteString(".")
	}

	return b.String()
}
