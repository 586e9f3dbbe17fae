// Package cache provides the response cache shared by all engines: a mapping
// from a content fingerprint to a previously generated reply, bounded by TTL
// and capacity. Two backends exist - an in-process LRU and a Redis-backed one
// for multi-process fleets.
package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ResponseCache stores generated replies keyed by content fingerprint.
// Implementations must be safe for concurrent use by all engine workers.
type ResponseCache interface {
	Get(ctx context.Context, fingerprint string) (reply string, ok bool)
	Put(ctx context.Context, fingerprint, reply string)
	Clear(ctx context.Context)
}

// Fingerprint returns a stable hash of the normalized input text. Inputs that
// differ only in whitespace or letter case collide on purpose.
func Fingerprint(text string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))
	return fmt.Sprintf("%016x", xxhash.Sum64String(normalized))
}
