package extractors

import (
	"regexp"

	"github.com/rcmtools/claimnotes/internal/model"
)

// Authorization handles CO-15: auth number and its status. Status
// priority is expired > invalid > missing > has-number; only when no
// status keyword appears is the bare auth number reported.
type Authorization struct{}

var (
	reAuthNumber    = regexp.MustCompile(`(?i)auth\s*#?\s*(\w+)`)
	reAuthExpired   = regexp.MustCompile(`(?i)auth\s*expired`)
	reAuthInvalid   = regexp.MustCompile(`(?i)auth\s*invalid`)
	reAuthMissing   = regexp.MustCompile(`(?i)auth\s*missing|no\s*auth`)
	reAuthEffective = regexp.MustCompile(`(?i)effective\s*(\d{1,2}/\d{1,2}/\d{2,4})`)
	reNeedNewAuth   = regexp.MustCompile(`(?i)need\s*new\s*auth|obtain\s*auth`)
)

func (Authorization) Name() string { return "authorization" }

func (Authorization) Codes() []string { return []string{"CO-15"} }

func (Authorization) Extract(n Note) model.NoteFacts {
	var info string
	switch {
	case reAuthExpired.MatchString(n.Lower):
		info = "Authorization expired"
	case reAuthInvalid.MatchString(n.Lower):
		info = "Authorization invalid"
	case reAuthMissing.MatchString(n.Lower):
		info = "Authorization missing"
	default:
		if m := reAuthNumber.FindStringSubmatch(n.Raw); m != nil {
			info = "Authorization " + m[1]
		}
	}

	if m := reAuthEffective.FindStringSubmatch(n.Raw); m != nil {
		info += " (effective " + m[1] + ")"
	}

	if reNeedNewAuth.MatchString(n.Lower) {
		if info != "" {
			info += ". Need new authorization"
		} else {
			info = "Need new authorization"
		}
	}

	return model.NoteFacts{AdditionalInfo: info}
}
