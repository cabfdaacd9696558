package extractors

import (
	"regexp"
	"strings"

	"github.com/rcmtools/claimnotes/internal/model"
)

// Generic is the fallback for denial codes without a dedicated
// extractor. It collects whatever broadly useful phrases appear; with
// no hit it reports nothing, and the composer's default phrase stands
// alone.
type Generic struct{}

var (
	reGenAppeal       = regexp.MustCompile(`(?i)can\s*appeal`)
	reGenDeadline     = regexp.MustCompile(`(?i)deadline\s*(\d{1,2}/\d{1,2}/\d{2,4})`)
	reGenResubmit     = regexp.MustCompile(`(?i)resubmit|re-submit`)
	reGenCorrection   = regexp.MustCompile(`(?i)correction\s*required`)
	reGenPatientResp  = regexp.MustCompile(`(?i)patient\s*(?:responsible|responsibility)`)
)

func (Generic) Name() string { return "generic" }

// Codes returns nil: Generic is reached through the registry fallback,
// never by direct code registration.
func (Generic) Codes() []string { return nil }

func (Generic) Extract(n Note) model.NoteFacts {
	var phrases []string

	if reGenAppeal.MatchString(n.Lower) {
		phrases = append(phrases, "can appeal")
	}
	if m := reGenDeadline.FindStringSubmatch(n.Raw); m != nil {
		phrases = append(phrases, "deadline "+m[1])
	}
	if reGenResubmit.MatchString(n.Lower) {
		phrases = append(phrases, "resubmit required")
	}
	if reGenCorrection.MatchString(n.Lower) {
		phrases = append(phrases, "correction required")
	}
	if reGenPatientResp.MatchString(n.Lower) {
		phrases = append(phrases, "patient responsibility")
	}

	return model.NoteFacts{AdditionalInfo: strings.Join(phrases, ". ")}
}
