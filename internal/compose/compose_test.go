package compose

import (
	"strings"
	"testing"

	"github.com/rcmtools/claimnotes/internal/model"
)

func TestComment_AllFieldsAbsent(t *testing.T) {
	got := Comment(model.FormData{})

	want := "Called [Insurance], spoke with [Rep Name]. Claim denied for [Code] (denial documented)."
	if got != want {
		t.Errorf("Comment = %q, want %q", got, want)
	}
}

func TestComment_DuplicateClaim(t *testing.T) {
	form := model.FormData{
		RepName:         "Jane",
		InsuranceName:   "aetna",
		DenialCode:      "CO-18",
		AdditionalNotes: "clm@1213422 paid on 3/24/25 need to void",
	}

	got := Comment(form)
	want := "Called Aetna, spoke with Jane. Claim denied for CO-18 (duplicate claim. Original claim #1213422 paid 3/24/25, so void required)."
	if got != want {
		t.Errorf("Comment = %q, want %q", got, want)
	}
}

func TestComment_DuplicateClaimPartialFacts(t *testing.T) {
	form := model.FormData{
		DenialCode:      "CO-18",
		AdditionalNotes: "claim #998877 on file",
	}

	got := Comment(form)
	if !strings.Contains(got, "(duplicate claim. Original claim #998877)") {
		t.Errorf("Expected claim number without paid/void clauses, got %q", got)
	}
}

func TestComment_COBPrimaryInPhrase(t *testing.T) {
	form := model.FormData{
		DenialCode:      "CO-22",
		AdditionalNotes: "patient has medicare and aetna, medicare should be primary, but never billed first",
	}

	got := Comment(form)
	want := "Called [Insurance], spoke with [Rep Name]. Claim denied for CO-22 (COB issue - Medicare primary). Medicare not billed first."
	if got != want {
		t.Errorf("Comment = %q, want %q", got, want)
	}
}

func TestComment_COBWithoutPrimaryKeepsDefaultPhrase(t *testing.T) {
	form := model.FormData{DenialCode: "CO-22"}

	got := Comment(form)
	if !strings.Contains(got, "(COB issue - other payer primary)") {
		t.Errorf("Expected default COB phrase, got %q", got)
	}
}

func TestComment_UnknownInsurerPassesThrough(t *testing.T) {
	got := Comment(model.FormData{InsuranceName: "acme health"})

	if !strings.HasPrefix(got, "Called acme health, ") {
		t.Errorf("Expected raw insurer name, got %q", got)
	}
}

func TestComment_UnknownCode(t *testing.T) {
	form := model.FormData{
		DenialCode:      "XX-99",
		AdditionalNotes: "can appeal, resubmit",
	}

	got := Comment(form)
	want := "Called [Insurance], spoke with [Rep Name]. Claim denied for XX-99 (denial documented). can appeal. resubmit required."
	if got != want {
		t.Errorf("Comment = %q, want %q", got, want)
	}
}

func TestComment_FragmentAppendedAsSentence(t *testing.T) {
	form := model.FormData{
		RepName:         "Tom",
		InsuranceName:   "uhc",
		DenialCode:      "PR-1",
		AdditionalNotes: "deductible $500, met $200, patient responsibility",
	}

	got := Comment(form)
	want := "Called United Healthcare (UHC), spoke with Tom. Claim denied for PR-1 (deductible responsibility). Deductible $500. Met $200. Patient responsibility."
	if got != want {
		t.Errorf("Comment = %q, want %q", got, want)
	}
}
