package model

// NoteFacts holds what one extraction pass derived from call notes.
// Every field is optional; consumers must treat the zero value as
// "not found". Facts never refer back to the input text.
type NoteFacts struct {
	OriginalClaim      string `json:"original_claim,omitempty"`      // claim number of the earlier claim
	PaidDate           string `json:"paid_date,omitempty"`           // M/D/YY style, as written in the notes
	NeedsVoid          bool   `json:"needs_void,omitempty"`          // rep asked for a void
	AdditionalInfo     string `json:"additional_info,omitempty"`     // composed fragment, no trailing period
	PrimaryInsurance   string `json:"primary_insurance,omitempty"`   // CO-22 only
	SecondaryInsurance string `json:"secondary_insurance,omitempty"` // CO-22 only
	BillingOrder       string `json:"billing_order,omitempty"`       // CO-22 only, e.g. "Medicare primary, then Aetna"
}

// Empty reports whether the pass extracted nothing.
func (f NoteFacts) Empty() bool {
	return f == NoteFacts{}
}
