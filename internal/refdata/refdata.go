// Package refdata exposes the static denial-code guidance table and
// the form pick-lists. The tables are compiled in and immutable;
// lookups never fail, an unknown code simply has no guidance.
package refdata

import (
	_ "embed"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rcmtools/claimnotes/internal/model"
)

//go:embed denial_codes.yaml
var denialCodesYAML []byte

//go:embed options.yaml
var optionsYAML []byte

var (
	mappings           map[string]model.DenialMapping
	insuranceOptions   []model.SelectOption
	eligibilityOptions []model.SelectOption
)

func init() {
	if err := yaml.Unmarshal(denialCodesYAML, &mappings); err != nil {
		panic("refdata: denial code table: " + err.Error())
	}

	var opts struct {
		Insurance   []model.SelectOption `yaml:"insurance"`
		Eligibility []model.SelectOption `yaml:"eligibility"`
	}
	if err := yaml.Unmarshal(optionsYAML, &opts); err != nil {
		panic("refdata: option lists: " + err.Error())
	}

	insuranceOptions = opts.Insurance
	eligibilityOptions = opts.Eligibility

	// Insurer pick-list is presented alphabetically by display label.
	sort.SliceStable(insuranceOptions, func(i, j int) bool {
		return insuranceOptions[i].Label < insuranceOptions[j].Label
	})
}

// Lookup returns the guidance for a denial code. The second return is
// false when the code has no entry; callers fall back to generic
// handling, never an error.
func Lookup(code string) (model.DenialMapping, bool) {
	m, ok := mappings[code]
	return m, ok
}

// Codes returns all known denial codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(mappings))
	for code := range mappings {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// InsuranceOptions returns the insurer pick-list, sorted by label.
func InsuranceOptions() []model.SelectOption {
	out := make([]model.SelectOption, len(insuranceOptions))
	copy(out, insuranceOptions)
	return out
}

// EligibilityStatusOptions returns the eligibility statuses in fixed
// domain order.
func EligibilityStatusOptions() []model.SelectOption {
	out := make([]model.SelectOption, len(eligibilityOptions))
	copy(out, eligibilityOptions)
	return out
}

// InsuranceLabel maps an option value ("uhc") to its display label
// ("United Healthcare (UHC)"). Unknown values pass through verbatim.
func InsuranceLabel(value string) string {
	for _, opt := range insuranceOptions {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
