package pipeline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rcmtools/claimnotes/internal/compose"
	"github.com/rcmtools/claimnotes/internal/model"
)

func TestProcess_MatchesComposer(t *testing.T) {
	form := model.FormData{
		RepName:         "Jane",
		InsuranceName:   "aetna",
		DenialCode:      "CO-18",
		AdditionalNotes: "clm@1213422 paid on 3/24/25 need to void",
	}

	p := NewPipeline(model.DefaultConfig())
	result := p.Process(form)

	if result.Comment != compose.Comment(form) {
		t.Errorf("Pipeline comment %q diverges from composer", result.Comment)
	}
	if result.Facts.OriginalClaim != "1213422" {
		t.Errorf("Expected extracted claim number, got %q", result.Facts.OriginalClaim)
	}
	if result.Guidance != nil {
		t.Error("Expected no guidance by default")
	}
}

func TestProcess_Memoized(t *testing.T) {
	form := model.FormData{DenialCode: "CO-29", AdditionalNotes: "90 days tfl, can appeal"}

	cfg := model.DefaultConfig()
	p := NewPipeline(cfg)

	first := p.Process(form)
	second := p.Process(form)
	if first.Comment != second.Comment {
		t.Errorf("Expected memoized comment, got %q then %q", first.Comment, second.Comment)
	}
}

func TestProcess_CacheDisabled(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false

	p := NewPipeline(cfg)
	result := p.Process(model.FormData{DenialCode: "PR-3", AdditionalNotes: "copay $25 not collected"})

	if !strings.Contains(result.Comment, "Copay $25. Not collected") {
		t.Errorf("Expected copay fragment in comment, got %q", result.Comment)
	}
}

func TestProcess_Guidance(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Output.IncludeGuidance = true

	p := NewPipeline(cfg)

	result := p.Process(model.FormData{DenialCode: "CO-22"})
	if result.Guidance == nil {
		t.Fatal("Expected guidance for known code")
	}
	if result.Guidance.Code != "CO-22" {
		t.Errorf("Expected CO-22 guidance, got %s", result.Guidance.Code)
	}

	result = p.Process(model.FormData{DenialCode: "XX-99"})
	if result.Guidance != nil {
		t.Error("Expected no guidance for unknown code")
	}
}

func TestRenderer_Text(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer("text")

	err := r.Render(&buf, Result{Comment: "Called Aetna, spoke with Jane."})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.String() != "Called Aetna, spoke with Jane.\n" {
		t.Errorf("Unexpected text output %q", buf.String())
	}
}

func TestRenderer_TextWithGuidance(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer("text")

	res := Result{
		Comment:  "Called Aetna.",
		Guidance: &model.DenialMapping{Code: "CO-18", Description: "Duplicate claim/service"},
	}
	if err := r.Render(&buf, res); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "code: CO-18") {
		t.Errorf("Expected guidance YAML in output, got %q", out)
	}
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer("json")

	form := model.FormData{RepName: "Jane", DenialCode: "CO-18"}
	if err := r.Render(&buf, Result{Form: form, Comment: "a comment"}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Comment != "a comment" {
		t.Errorf("Expected comment round-trip, got %q", decoded.Comment)
	}
	if decoded.Form.RepName != "Jane" {
		t.Errorf("Expected form round-trip, got %+v", decoded.Form)
	}
}
