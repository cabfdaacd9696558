package model

// Placeholders substituted for absent form fields.
const (
	PlaceholderRep       = "[Rep Name]"
	PlaceholderInsurance = "[Insurance]"
	PlaceholderCode      = "[Code]"
	PlaceholderReference = "[Reference]"
)

// FormData carries the fields collected during a payer call.
// Every field is optional: the composer substitutes placeholders for
// absent values instead of failing.
type FormData struct {
	RepName         string `json:"rep_name,omitempty"`
	InsuranceName   string `json:"insurance_name,omitempty"`   // option value, e.g. "uhc"
	DenialCode      string `json:"denial_code,omitempty"`      // e.g. "CO-18"
	CallReference   string `json:"call_reference,omitempty"`
	AdditionalNotes string `json:"additional_notes,omitempty"` // free text taken during the call
}
