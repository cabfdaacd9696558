package extractors

import (
	"regexp"
	"strings"

	"github.com/rcmtools/claimnotes/internal/model"
)

// TimelyFiling handles CO-29: the filing window that was missed, the
// date of service, and whether an appeal is still open.
type TimelyFiling struct{}

var (
	reTFLLimit       = regexp.MustCompile(`(?i)(\d+)\s*days?\s*tfl`)
	reTFLDOS         = regexp.MustCompile(`(?i)dos\s*was\s*(\d{1,2}/\d{1,2}/\d{2,4})`)
	reCanAppeal      = regexp.MustCompile(`(?i)can\s*appeal`)
	reAppealDeadline = regexp.MustCompile(`(?i)appeal\s*time\s*limit\s*is\s*(\d+)\s*days?\s*from\s*(?:date\s*of\s*)?denial\s*(\d{1,2}/\d{1,2}/\d{2,4})`)
)

func (TimelyFiling) Name() string { return "timely-filing" }

func (TimelyFiling) Codes() []string { return []string{"CO-29"} }

func (TimelyFiling) Extract(n Note) model.NoteFacts {
	var b strings.Builder

	if m := reTFLLimit.FindStringSubmatch(n.Raw); m != nil {
		b.WriteString(m[1] + "-day TFL")
	} else {
		b.WriteString("TFL")
	}

	if m := reTFLDOS.FindStringSubmatch(n.Raw); m != nil {
		b.WriteString(" for DOS " + m[1])
	}

	if reCanAppeal.MatchString(n.Lower) {
		if m := reAppealDeadline.FindStringSubmatch(n.Raw); m != nil {
			b.WriteString(". We can appeal; deadline is " + m[1] + " days from denial " + m[2])
		} else {
			b.WriteString(". We can appeal")
		}
	}

	return model.NoteFacts{AdditionalInfo: b.String()}
}
