package model

// DenialMapping is the structured guidance for one denial code:
// what to ask the payer rep, which form fields matter, and what to do
// after the call. Loaded once at startup, never mutated.
type DenialMapping struct {
	Code           string   `json:"code" yaml:"code"`
	Description    string   `json:"description" yaml:"description"`
	Questions      []string `json:"questions" yaml:"questions"`
	RequiredFields []string `json:"required_fields" yaml:"requiredFields"`
	NextSteps      []string `json:"next_steps" yaml:"nextSteps"`
}

// SelectOption is one entry of a pick-list (insurers, eligibility
// statuses) rendered by the form layer.
type SelectOption struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}
