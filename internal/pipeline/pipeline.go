// Package pipeline wires reference data, extraction and composition
// into the form-to-comment flow the CLI drives.
package pipeline

import (
	"github.com/rcmtools/claimnotes/internal/cache"
	"github.com/rcmtools/claimnotes/internal/compose"
	"github.com/rcmtools/claimnotes/internal/extract"
	"github.com/rcmtools/claimnotes/internal/model"
	"github.com/rcmtools/claimnotes/internal/refdata"
)

// Pipeline orchestrates comment generation for call form records.
type Pipeline struct {
	cache  cache.Cache // nil when memoization is disabled
	config model.Config
}

// NewPipeline creates a new pipeline with the given configuration.
func NewPipeline(cfg model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	return &Pipeline{
		cache:  c,
		config: cfg,
	}
}

// Result is the outcome for one form record.
type Result struct {
	Form     model.FormData       `json:"form"`
	Comment  string               `json:"comment"`
	Facts    model.NoteFacts      `json:"facts,omitempty"`
	Guidance *model.DenialMapping `json:"guidance,omitempty"` // nil for unknown codes
}

// Process generates the comment (and optionally guidance) for one
// form record. Pure except for memoization; identical inputs yield
// identical results.
func (p *Pipeline) Process(form model.FormData) Result {
	result := Result{
		Form:  form,
		Facts: extract.Facts(form.AdditionalNotes, form.DenialCode),
	}

	key := cache.Key(form)
	if p.cache != nil {
		if comment, ok := p.cache.Get(key); ok {
			result.Comment = comment
		}
	}
	if result.Comment == "" {
		result.Comment = compose.Comment(form)
		if p.cache != nil {
			_ = p.cache.Set(key, result.Comment, p.config.Cache.TTL)
		}
	}

	if p.config.Output.IncludeGuidance {
		if mapping, ok := refdata.Lookup(form.DenialCode); ok {
			result.Guidance = &mapping
		}
	}

	return result
}
