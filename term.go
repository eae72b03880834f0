// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS OVERVIEW
// ═══════════════════════════════════════════════════════════════════════════════
// Analysis here is deliberately shallow: whitespace tokenization and a
// caller-supplied stop-word filter, nothing more.
//
//  1. Validation  → reject control bytes (0x00..0x1F) up front
//  2. Tokenization → split on runs of ASCII space (0x20)
//  3. Stop-word filter → drop tokens the caller named at construction time
//
// There is no lowercasing and no stemming: "Quick" and "quick" are distinct
// terms, and "running" never matches "run". Full-text features beyond
// whitespace tokenization are out of scope.
// ═══════════════════════════════════════════════════════════════════════════════

package docrank

import (
	"fmt"
	"strings"
)

// hasControlByte reports whether s contains any byte below 0x20.
//
// This is the sole character-validity rule in the package: terms and
// document/query text may contain any byte at or above 0x20 (including
// arbitrary UTF-8 continuation bytes), but never an ASCII control
// character.
func hasControlByte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 {
			return true
		}
	}
	return false
}

// tokenize splits text on runs of ASCII space, dropping empty tokens.
//
// Example:
//
//	tokenize("  cat   in the city ") → ["cat", "in", "the", "city"]
//
// Leading/trailing spaces and internal runs never produce empty tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' '
	})
	return fields
}

// ═══════════════════════════════════════════════════════════════════════════════
// TERM INTERNING
// ═══════════════════════════════════════════════════════════════════════════════
// Terms are owned by a process-local interning pool so that the forward
// and reverse indexes can refer to the same underlying string storage.
// Interning is idempotent and reference-counted: the last index entry
// referencing a term releases it from the pool. Reference counting is
// the simpler alternative to tracking borrowed-view lifetimes directly.
// ═══════════════════════════════════════════════════════════════════════════════

// internPool owns the canonical string for every term currently
// referenced by at least one live document.
type internPool struct {
	terms map[string]*internedTerm
}

type internedTerm struct {
	value    string
	refCount int
}

func newInternPool() *internPool {
	return &internPool{terms: make(map[string]*internedTerm)}
}

// intern returns the pool's canonical copy of w and increments its
// reference count. Idempotent: interning the same term twice just bumps
// the count.
func (p *internPool) intern(w string) string {
	t, ok := p.terms[w]
	if !ok {
		t = &internedTerm{value: w}
		p.terms[w] = t
	}
	t.refCount++
	return t.value
}

// release decrements w's reference count, evicting it from the pool once
// no document references it anymore.
func (p *internPool) release(w string) {
	t, ok := p.terms[w]
	if !ok {
		return
	}
	t.refCount--
	if t.refCount <= 0 {
		delete(p.terms, w)
	}
}

func (p *internPool) size() int {
	return len(p.terms)
}

// ═══════════════════════════════════════════════════════════════════════════════
// STOP WORDS
// ═══════════════════════════════════════════════════════════════════════════════

// StopWords is a set of terms silently dropped from documents and
// queries at tokenization time. Construction accepts a single
// whitespace-delimited string, a []string, or nil (no stop words).
type StopWords struct {
	set map[string]struct{}
}

// newStopWords builds a StopWords set from a raw value that is either a
// string (tokenized first) or a []string. Empty strings are discarded.
// Construction fails with ErrInvalidInput if any surviving token
// contains a control byte.
func newStopWords(raw any) (*StopWords, error) {
	var tokens []string
	switch v := raw.(type) {
	case nil:
		tokens = nil
	case string:
		tokens = tokenize(v)
	case []string:
		tokens = v
	default:
		return nil, fmt.Errorf("stop words: unsupported type %T: %w", raw, ErrInvalidInput)
	}

	set := make(map[string]struct{}, len(tokens))
	for _, w := range tokens {
		if w == "" {
			continue
		}
		if hasControlByte(w) {
			return nil, fmt.Errorf("stop word %q contains a control byte: %w", w, ErrInvalidInput)
		}
		set[w] = struct{}{}
	}
	return &StopWords{set: set}, nil
}

// contains reports whether w is a stop word.
func (s *StopWords) contains(w string) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[w]
	return ok
}
