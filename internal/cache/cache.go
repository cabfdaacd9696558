// Package cache memoizes composed comments during batch runs. Call-log
// exports repeat the same note text across rows, so identical form
// records short-circuit to the previous result.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/rcmtools/claimnotes/internal/model"
)

// Cache defines the interface for comment memoization
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, comment string, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the fields that determine the comment.
func Key(form model.FormData) string {
	h := sha256.New()
	for _, field := range []string{
		form.RepName,
		form.InsuranceName,
		form.DenialCode,
		form.AdditionalNotes,
	} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}
	return "claimnotes:v1:" + hex.EncodeToString(h.Sum(nil))
}
