// Package extractors holds the per-denial-code heuristics that turn
// free-text call notes into structured facts. Each extractor owns one
// or more denial codes; a registry dispatches by code with a generic
// fallback, so unknown codes still yield something useful.
package extractors

import "github.com/rcmtools/claimnotes/internal/model"

// Note is one call note prepared for extraction. Lower and Insurers
// are derived once by the caller so every extractor does not redo the
// same work.
type Note struct {
	Raw      string
	Lower    string
	Insurers []string // detected insurer names, in detection-table order
}

// Extractor defines the interface for denial-code-specific extraction.
type Extractor interface {
	// Name returns the extractor name
	Name() string

	// Codes returns the denial codes this extractor handles
	Codes() []string

	// Extract derives facts from the note. A miss on every pattern is
	// not an error; the extractor just returns fewer facts.
	Extract(n Note) model.NoteFacts
}

// Registry maps denial codes to extractors.
type Registry struct {
	byCode  map[string]Extractor
	generic Extractor
}

// NewRegistry creates a registry with all built-in extractors.
func NewRegistry() *Registry {
	r := &Registry{byCode: make(map[string]Extractor)}

	for _, ex := range []Extractor{
		Modifier{},
		AgeRestriction{},
		DiagnosisProcedure{},
		Authorization{},
		MissingInfo{},
		Duplicate{},
		CoordinationOfBenefits{},
		PriorPayer{},
		Eligibility{},
		TimelyFiling{},
		PatientID{},
		FeeSchedule{},
		MedicalNecessity{},
		NonCovered{},
		Bundled{},
		WrongPayer{},
		Frequency{},
		DiagnosisNotCovered{},
		ProviderType{},
		Deductible{},
		Coinsurance{},
		Copay{},
		ServiceNotCovered{},
	} {
		r.Register(ex)
	}

	// Fallback for codes without a dedicated extractor
	r.generic = Generic{}

	return r
}

// Register registers an extractor for each code it declares.
func (r *Registry) Register(ex Extractor) {
	for _, code := range ex.Codes() {
		r.byCode[code] = ex
	}
}

// Find returns the extractor for a denial code, or the generic
// fallback when the code is unknown.
func (r *Registry) Find(code string) Extractor {
	if ex, ok := r.byCode[code]; ok {
		return ex
	}
	return r.generic
}
