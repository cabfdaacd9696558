// Package normalize cleans up raw call notes: expands the shorthand
// reps type during payer calls, fixes recurring misspellings, and
// turns the result into a readable sentence. It is the fallback used
// when no denial-specific extraction applies.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// replacement is one whole-word rewrite. Table order matters: earlier
// entries can consume text later entries would otherwise match
// ("auth" fires inside "pre-auth" before the pre-auth rule is tried).
type replacement struct {
	re  *regexp.Regexp
	out string
}

func word(pattern, out string) replacement {
	return replacement{re: regexp.MustCompile(`(?i)\b` + pattern + `\b`), out: out}
}

// Shorthand and misspellings seen in real call notes.
var abbreviations = []replacement{
	word("dup", "duplicate"),
	word("prev", "previous"),
	word("claiim", "claim"),
	word("suibmit", "submitted"),
	word("submited", "submitted"),
	word("recieved", "received"),
	word("payed", "paid"),
	word("approvel", "approval"),
	word("authorizaton", "authorization"),
	word("necesary", "necessary"),
	word("seperately", "separately"),
	word("seperete", "separate"),
	word("w/", "with"),
	word("pt", "patient"),
	word("dx", "diagnosis"),
	word("proc", "procedure"),
	word("auth", "authorization"),
	word("pre-auth", "pre-authorization"),
	word("reimb", "reimbursement"),
	word("coord", "coordination"),
	word("benefts", "benefits"),
	word("eligibilty", "eligibility"),
	word("mcr", "Medicare"),
	word("prim", "primary"),
	word("biled", "billed"),
}

var (
	reNoVoid     = regexp.MustCompile(`(?i)\bno\s+void\s+any\s+claim\b`)
	reYesTrueDup = regexp.MustCompile(`(?i)\byes\s+true\s+duplicate\b`)
	reOtherClaim = regexp.MustCompile(`(?i)\bother\s+claim\s*#\s*(\d+)`)
	reSubmitDate = regexp.MustCompile(`(?i)\bsubmit\s+on\s+(\d{8})`)
	rePaidOut    = regexp.MustCompile(`(?i)\bpaid\s+out\b`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// Notes normalizes raw note text into a cleaned sentence. Empty or
// whitespace-only input yields "".
func Notes(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	s := strings.ToLower(strings.TrimSpace(text))

	for _, r := range abbreviations {
		s = r.re.ReplaceAllString(s, r.out)
	}

	s = reNoVoid.ReplaceAllString(s, "do not void any claims")
	s = reYesTrueDup.ReplaceAllString(s, "confirmed true duplicate")
	s = reOtherClaim.ReplaceAllString(s, "other claim #$1")
	s = reSubmitDate.ReplaceAllStringFunc(s, rewriteSubmitDate)
	s = rePaidOut.ReplaceAllString(s, "paid in full")

	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
	s = capitalize(s)

	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		s += "."
	}
	return s
}

// rewriteSubmitDate rewrites "submit on MMDDYYYY" into
// "submitted on MM/DD/YYYY".
func rewriteSubmitDate(match string) string {
	digits := reSubmitDate.FindStringSubmatch(match)[1]
	month := digits[0:2]
	day := digits[2:4]
	year := digits[4:8]
	return "submitted on " + month + "/" + day + "/" + year
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
