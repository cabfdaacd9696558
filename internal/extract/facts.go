package extract

import (
	"regexp"
	"strings"
)

// Generic fact patterns applied to every note before code-specific
// dispatch. Order is priority: the first matching pattern wins.

var claimNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)clm@(\d+)`),
	regexp.MustCompile(`(?i)claim\s*#?(\d+)`),
	regexp.MustCompile(`(?i)original\s*claim\s*#?(\d+)`),
	regexp.MustCompile(`(?i)org\s*clm@(\d+)`),
	regexp.MustCompile(`(?i)previous\s*claim\s*#?(\d+)`),
}

var paidDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)paid\s*on\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`(?i)paid\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`(?i)processed\s*on\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`(?i)processed\s*(\d{1,2}/\d{1,2}/\d{2,4})`),
}

var voidKeywords = []string{"void", "need to void", "must void", "should void", "we need to void"}

// insurerPattern pairs a detection regex with the canonical short name
// used in fragments and COB ordering.
type insurerPattern struct {
	re   *regexp.Regexp
	name string
}

var insurerPatterns = []insurerPattern{
	{regexp.MustCompile(`(?i)\baetna\b`), "Aetna"},
	{regexp.MustCompile(`(?i)\bbcbs\b|\bblue\s*cross\b`), "BCBS"},
	{regexp.MustCompile(`(?i)\buhc\b|\bunited\s*health`), "UHC"},
	{regexp.MustCompile(`(?i)\bmedicare\b|\bmcr\b`), "Medicare"},
	{regexp.MustCompile(`(?i)\bmedicaid\b`), "Medicaid"},
	{regexp.MustCompile(`(?i)\bcigna\b`), "Cigna"},
	{regexp.MustCompile(`(?i)\bhumana\b`), "Humana"},
	{regexp.MustCompile(`(?i)\bhealth\s*net\b|\bhealthnet\b`), "Health Net"},
	{regexp.MustCompile(`(?i)\bkp\b|\bkaiser\b`), "Kaiser"},
	{regexp.MustCompile(`(?i)\banthem\b`), "Anthem"},
}

// originalClaim returns the first claim number found, or "".
func originalClaim(notes string) string {
	for _, re := range claimNumberPatterns {
		if m := re.FindStringSubmatch(notes); m != nil {
			return m[1]
		}
	}
	return ""
}

// paidDate returns the first payment/processing date found, or "".
func paidDate(notes string) string {
	for _, re := range paidDatePatterns {
		if m := re.FindStringSubmatch(notes); m != nil {
			return m[1]
		}
	}
	return ""
}

// needsVoid reports whether the rep asked for a void.
func needsVoid(lower string) bool {
	for _, kw := range voidKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// InsurerNames returns the canonical names of all insurers mentioned
// in the text, in detection-table order (not input order).
func InsurerNames(text string) []string {
	var found []string
	for _, p := range insurerPatterns {
		if p.re.MatchString(text) {
			found = append(found, p.name)
		}
	}
	return found
}
