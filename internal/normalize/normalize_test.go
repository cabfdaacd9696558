package normalize

import "testing"

func TestNotes_EmptyInput(t *testing.T) {
	if got := Notes(""); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
	if got := Notes("   \t\n  "); got != "" {
		t.Errorf("Expected empty output for whitespace, got %q", got)
	}
}

func TestNotes_Abbreviations(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pt said dup claim", "Patient said duplicate claim."},
		{"mcr is prim", "Medicare is primary."},
		{"prev claiim payed", "Previous claim paid."},
		{"need auth for proc", "Need authorization for procedure."},
		{"dx code invalid", "Diagnosis code invalid."},
		{"coord of benefts issue", "Coordination of benefits issue."},
		{"eligibilty not verified", "Eligibility not verified."},
		{"biled seperately", "Billed separately."},
	}

	for _, tt := range tests {
		if got := Notes(tt.in); got != tt.want {
			t.Errorf("Notes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNotes_WordBoundaries(t *testing.T) {
	// "dup" inside "duplicate" must not expand again.
	got := Notes("true duplicate claim")
	if got != "True duplicate claim." {
		t.Errorf("Expected no double expansion, got %q", got)
	}
}

func TestNotes_PhraseRewrites(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"no void any claim", "Do not void any claims."},
		{"yes true dup", "Confirmed true duplicate."},
		{"other claim # 998877 paid", "Other claim #998877 paid."},
		{"claim paid out", "Claim paid in full."},
	}

	for _, tt := range tests {
		if got := Notes(tt.in); got != tt.want {
			t.Errorf("Notes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNotes_SubmitDate(t *testing.T) {
	got := Notes("submit on 06152025")
	want := "Submitted on 06/15/2025."
	if got != want {
		t.Errorf("Notes = %q, want %q", got, want)
	}
}

func TestNotes_WhitespaceCollapse(t *testing.T) {
	got := Notes("pt   said \t dup")
	want := "Patient said duplicate."
	if got != want {
		t.Errorf("Notes = %q, want %q", got, want)
	}
}

func TestNotes_TerminalPunctuationPreserved(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"can we appeal?", "Can we appeal?"},
		{"already paid!", "Already paid!"},
		{"already paid.", "Already paid."},
	}

	for _, tt := range tests {
		if got := Notes(tt.in); got != tt.want {
			t.Errorf("Notes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNotes_Idempotent(t *testing.T) {
	once := Notes("pt said dup claim, no void any claim")
	twice := Notes(once)
	if once != twice {
		t.Errorf("Expected stable output, first %q then %q", once, twice)
	}
}
