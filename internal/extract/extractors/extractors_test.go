package extractors

import "testing"

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry()

	if got := r.Find("CO-22").Name(); got != "cob" {
		t.Errorf("Expected cob extractor for CO-22, got %s", got)
	}
	if got := r.Find("PR-1").Name(); got != "deductible" {
		t.Errorf("Expected deductible extractor for PR-1, got %s", got)
	}
	if got := r.Find("XX-99").Name(); got != "generic" {
		t.Errorf("Expected generic fallback for unknown code, got %s", got)
	}
}

func TestTimelyFiling(t *testing.T) {
	n := note("90 days tfl, dos was 1/12/25, can appeal, appeal time limit is 60 days from denial 2/1/25")

	got := TimelyFiling{}.Extract(n).AdditionalInfo
	want := "90-day TFL for DOS 1/12/25. We can appeal; deadline is 60 days from denial 2/1/25"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestTimelyFiling_NoDetails(t *testing.T) {
	if got := (TimelyFiling{}).Extract(note("filed late")).AdditionalInfo; got != "TFL" {
		t.Errorf("Expected bare TFL fragment, got %q", got)
	}
}

func TestAuthorization(t *testing.T) {
	tests := []struct {
		notes string
		want  string
	}{
		{"auth expired, need new auth", "Authorization expired. Need new authorization"},
		{"auth invalid for this service", "Authorization invalid"},
		{"no auth on file", "Authorization missing"},
		{"auth# A12345 effective 1/1/25", "Authorization A12345 (effective 1/1/25)"},
	}

	for _, tt := range tests {
		if got := (Authorization{}).Extract(note(tt.notes)).AdditionalInfo; got != tt.want {
			t.Errorf("Extract(%q) = %q, want %q", tt.notes, got, tt.want)
		}
	}
}

func TestModifier(t *testing.T) {
	got := Modifier{}.Extract(note("missing modifier 25, resubmit")).AdditionalInfo
	want := "Missing modifier 25. Resubmit with correct modifier"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestAgeRestriction(t *testing.T) {
	got := AgeRestriction{}.Extract(note("age 15, procedure 99397 denied")).AdditionalInfo
	want := "Patient age 15. Procedure 99397 not age-appropriate"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestDiagnosisProcedure(t *testing.T) {
	got := DiagnosisProcedure{}.Extract(note("dx M54.5 conflicts, additional documentation requested")).AdditionalInfo
	want := "Diagnosis M54.5 doesn't support procedure. Additional documentation required"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestDiagnosisNotCovered(t *testing.T) {
	got := DiagnosisNotCovered{}.Extract(note("diagnosis Z01.419 denied, alternative diagnosis available")).AdditionalInfo
	want := "Diagnosis Z01.419 not covered. Alternative diagnosis available"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestMissingInfo(t *testing.T) {
	got := MissingInfo{}.Extract(note("missing patient id and missing dos, resubmit")).AdditionalInfo
	want := "Missing: patient ID, DOS. Resubmit with corrections"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestPatientID(t *testing.T) {
	got := PatientID{}.Extract(note("verify member id and dob, submit corrected claim")).AdditionalInfo
	want := "Verify: member ID, DOB. Submit corrected claim"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestDuplicate_NoFragment(t *testing.T) {
	facts := Duplicate{}.Extract(note("clm@1213422 paid on 3/24/25 need to void"))
	if !facts.Empty() {
		t.Errorf("Expected empty facts from duplicate extractor, got %+v", facts)
	}
}

func TestPriorPayer(t *testing.T) {
	got := PriorPayer{}.Extract(note("primary paid $150 allowable $200 balance due")).AdditionalInfo
	want := "Primary paid $150. Allowable $200. Balance due secondary"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestFeeSchedule(t *testing.T) {
	got := FeeSchedule{}.Extract(note("billed $250 allowed $175 contracted rate applies")).AdditionalInfo
	want := "Billed $250, allowed $175. Payment at contracted rate"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestDeductible(t *testing.T) {
	got := Deductible{}.Extract(note("deductible $500, met $200, patient responsibility")).AdditionalInfo
	want := "Deductible $500. Met $200. Patient responsibility"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestDeductible_ThousandsSeparator(t *testing.T) {
	got := Deductible{}.Extract(note("deductible $1,500.00 met $750")).AdditionalInfo
	want := "Deductible $1,500.00. Met $750"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestCoinsurance(t *testing.T) {
	tests := []struct {
		notes string
		want  string
	}{
		{"20% coinsurance $45.50", "20% coinsurance ($45.50)"},
		{"coinsurance applies", "Coinsurance responsibility"},
	}

	for _, tt := range tests {
		if got := (Coinsurance{}).Extract(note(tt.notes)).AdditionalInfo; got != tt.want {
			t.Errorf("Extract(%q) = %q, want %q", tt.notes, got, tt.want)
		}
	}
}

func TestCopay(t *testing.T) {
	tests := []struct {
		notes string
		want  string
	}{
		{"copay $25 not collected", "Copay $25. Not collected"},
		{"copay $25 collected at visit", "Copay $25. Collected at service"},
		{"copay applies", "Copay responsibility"},
	}

	for _, tt := range tests {
		if got := (Copay{}).Extract(note(tt.notes)).AdditionalInfo; got != tt.want {
			t.Errorf("Extract(%q) = %q, want %q", tt.notes, got, tt.want)
		}
	}
}

func TestEligibility(t *testing.T) {
	got := Eligibility{}.Extract(note("terminated 12/31/24, dos 1/15/25, patient responsibility")).AdditionalInfo
	want := "Coverage terminated 12/31/24. DOS 1/15/25. Patient responsibility"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestNonCovered(t *testing.T) {
	got := NonCovered{}.Extract(note("plan exclusion, patient responsibility")).AdditionalInfo
	want := "Plan exclusion. Patient responsibility"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestBundled(t *testing.T) {
	got := Bundled{}.Extract(note("bundled with 99213, primary paid")).AdditionalInfo
	want := "Bundled with 99213. Primary procedure paid"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestWrongPayer(t *testing.T) {
	got := WrongPayer{}.Extract(note("send to medicare advantage plan, coverage changed")).AdditionalInfo
	want := "Send to medicare advantage plan. Coverage changed"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestFrequency(t *testing.T) {
	got := Frequency{}.Extract(note("12 per year, medical necessity needed for more")).AdditionalInfo
	want := "Limit: 12 per year. Medical necessity required for additional units"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestProviderType(t *testing.T) {
	got := ProviderType{}.Extract(note("provider type chiropractor denied, credentialing needed")).AdditionalInfo
	want := "Provider type chiropractor not covered. Credentialing required"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestServiceNotCovered(t *testing.T) {
	got := ServiceNotCovered{}.Extract(note("prior authorization required, plan exclusion, patient responsibility")).AdditionalInfo
	want := "Service not covered under plan. Prior authorization required. Plan exclusion. Patient responsibility"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestMedicalNecessity(t *testing.T) {
	got := MedicalNecessity{}.Extract(note("criteria not met, medical records requested, can appeal")).AdditionalInfo
	want := "Criteria not met. Additional documentation required. Can appeal with supporting documentation"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestGeneric(t *testing.T) {
	got := Generic{}.Extract(note("can appeal, deadline 3/1/25, resubmit")).AdditionalInfo
	want := "can appeal. deadline 3/1/25. resubmit required"
	if got != want {
		t.Errorf("AdditionalInfo = %q, want %q", got, want)
	}
}

func TestGeneric_NoSignals(t *testing.T) {
	if got := (Generic{}).Extract(note("spoke with rep")).AdditionalInfo; got != "" {
		t.Errorf("Expected no fragment, got %q", got)
	}
}
