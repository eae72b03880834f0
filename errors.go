package docrank

import (
	"errors"
	"fmt"
)

// ═══════════════════════════════════════════════════════════════════════════════
// ERROR KINDS
// ═══════════════════════════════════════════════════════════════════════════════
// Two error kinds, as sentinel values rather than distinct types so
// callers branch on behavior with errors.Is, the same pattern the
// teacher library uses for its posting-list errors.
//
//   ErrInvalidInput — control byte in text/stop words, malformed minus
//                     term, duplicate or negative document id.
//   ErrNotFound     — MatchDocument or RemoveDocument on an id that
//                     isn't active.
//
// Every error an operation returns wraps one of these two sentinels via
// %w, so errors.Is(err, ErrInvalidInput) / errors.Is(err, ErrNotFound)
// always works regardless of the added context.
// ═══════════════════════════════════════════════════════════════════════════════
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// notFoundError wraps ErrNotFound with the offending document id.
func notFoundError(id DocumentId) error {
	return fmt.Errorf("document id %d: %w", id, ErrNotFound)
}
