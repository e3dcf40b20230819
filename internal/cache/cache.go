// Package cache holds the preview cache: composed HTML keyed by resume ID
// and export settings. Composition is deterministic, so entries only go
// stale when resume content changes; saving a resume is the invalidation
// trigger.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

type PreviewCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, html string)
	// Invalidate drops every cached preview of the resume, across all
	// settings variants.
	Invalidate(ctx context.Context, resumeID uuid.UUID) error
}

// Key derives the cache key from the resume identity and a digest of the
// settings. Marshaling ExportSettings is stable: struct field order fixes
// the JSON property order.
func Key(resumeID uuid.UUID, settings domain.ExportSettings) string {
	b, _ := json.Marshal(settings)
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%s:%s", keyPrefix(resumeID), hex.EncodeToString(sum[:8]))
}

func keyPrefix(resumeID uuid.UUID) string {
	return "preview:" + resumeID.String()
}
