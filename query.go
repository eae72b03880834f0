package docrank

import (
	"fmt"
	"sort"
)

// ═══════════════════════════════════════════════════════════════════════════════
// QUERY PARSER
// ═══════════════════════════════════════════════════════════════════════════════
// A query is split on spaces into plus terms (normal search terms) and
// minus terms (terms prefixed with "-" that exclude documents containing
// them). Two classification rules cooperate:
//
//   - A bare "-" token, a "--..." token, or a token ending in "-" is a
//     malformed minus term and invalidates the whole query.
//   - A token (plus or minus) whose bare form is a stop word is dropped
//     silently rather than contributing to either list.
//
// One source revision of the originating parser validated the leading
// character of a minus term by indexing word[1], which panics on a
// single-character "-" token. This implementation uses the equivalent,
// panic-free rule instead: invalid iff the token equals "-", starts with
// "--", or ends with "-".
// ═══════════════════════════════════════════════════════════════════════════════

// ParsedQuery holds the classified terms of a query.
type ParsedQuery struct {
	PlusTerms  []string
	MinusTerms []string
}

// parseQuery classifies the tokens of text into plus/minus terms.
//
// sortUnique selects the mode: the sorted/uniqued mode is used by
// MatchDocument, the as-parsed mode (duplicates preserved in
// PlusTerms) is used by ranking, where downstream aggregation is over
// the deduplicated-by-id reverse-index row anyway.
func parseQuery(text string, stop *StopWords, sortUnique bool) (ParsedQuery, error) {
	if hasControlByte(text) {
		return ParsedQuery{}, fmt.Errorf("query contains a control byte: %w", ErrInvalidInput)
	}

	var q ParsedQuery
	for _, w := range tokenize(text) {
		bare := w
		isMinus := false
		if w[len(w)-1] == '-' {
			return ParsedQuery{}, fmt.Errorf("malformed term %q: %w", w, ErrInvalidInput)
		}
		if w[0] == '-' {
			isMinus = true
			bare = w[1:]
			if bare == "" || bare[0] == '-' || bare[len(bare)-1] == '-' {
				return ParsedQuery{}, fmt.Errorf("malformed minus term %q: %w", w, ErrInvalidInput)
			}
		}

		if stop.contains(bare) {
			continue
		}

		if isMinus {
			q.MinusTerms = append(q.MinusTerms, bare)
		} else {
			q.PlusTerms = append(q.PlusTerms, bare)
		}
	}

	if sortUnique {
		q.PlusTerms = sortUniqueStrings(q.PlusTerms)
		q.MinusTerms = sortUniqueStrings(q.MinusTerms)
	}

	return q, nil
}

// sortUniqueStrings returns a sorted copy of ss with duplicates removed.
func sortUniqueStrings(ss []string) []string {
	if len(ss) == 0 {
		return ss
	}
	cp := append([]string(nil), ss...)
	sort.Strings(cp)
	out := cp[:1]
	for _, s := range cp[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
