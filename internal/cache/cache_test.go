package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/rcmtools/claimnotes/internal/model"
)

func TestKey_Deterministic(t *testing.T) {
	form := model.FormData{
		RepName:         "Jane",
		InsuranceName:   "aetna",
		DenialCode:      "CO-18",
		AdditionalNotes: "clm@1213422 paid on 3/24/25",
	}

	if Key(form) != Key(form) {
		t.Error("Expected identical keys for identical forms")
	}
	if !strings.HasPrefix(Key(form), "claimnotes:v1:") {
		t.Errorf("Expected versioned key prefix, got %q", Key(form))
	}
}

func TestKey_FieldsAreSeparated(t *testing.T) {
	// "ab"+"c" and "a"+"bc" must not collide.
	a := Key(model.FormData{RepName: "ab", InsuranceName: "c"})
	b := Key(model.FormData{RepName: "a", InsuranceName: "bc"})

	if a == b {
		t.Error("Expected distinct keys when field boundaries differ")
	}
}

func TestKey_SensitiveToCommentInputs(t *testing.T) {
	base := model.FormData{RepName: "Jane", DenialCode: "CO-18"}

	changed := base
	changed.AdditionalNotes = "new notes"
	if Key(base) == Key(changed) {
		t.Error("Expected notes to change the key")
	}

	changed = base
	changed.DenialCode = "CO-22"
	if Key(base) == Key(changed) {
		t.Error("Expected denial code to change the key")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("k", "a comment", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, found := c.Get("k")
	if !found || val != "a comment" {
		t.Errorf("Expected hit with stored comment, got %q found=%v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected miss after delete")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("a", "1", time.Minute)
	_ = c.Set("b", "2", time.Minute)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("Expected miss after clear")
	}
	if _, found := c.Get("b"); found {
		t.Error("Expected miss after clear")
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("k", "short-lived", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("Expected entry to expire")
	}
}
