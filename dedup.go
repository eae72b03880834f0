// ═══════════════════════════════════════════════════════════════════════════════
// DUPLICATE DETECTOR
// ═══════════════════════════════════════════════════════════════════════════════
// Two documents are duplicates iff their term sets (frequencies ignored,
// stop words already absent, order irrelevant) are equal. Scanning
// active ids in ascending order and keeping a first-seen map from
// term-set to id means the smallest id in each equivalence class always
// survives; later members are scheduled for removal.
//
// The original remove_duplicates.cpp carries two revisions in the same
// file: the live one compares term sets via a direct map/set key, the
// commented-out one does an O(n^2) pairwise sweep over a reversed id
// order. This package follows the live revision: term-set equality
// independent of id order, implemented as a sorted-and-joined string key.
// ═══════════════════════════════════════════════════════════════════════════════

package docrank

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// termSetKey returns a canonical key for a term set: sort the terms and
// join them with a separator that cannot appear inside a term (terms are
// non-space by construction, so "\x20" ("  "-free) is safe —
// in practice a single space suffices since terms never contain one).
func termSetKey(terms []string) string {
	sorted := append([]string(nil), terms...)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}

// removeDuplicates scans active documents in ascending id order, marks
// every document whose term set was already seen, and removes the
// marked ids after the scan — emitting one diagnostic line per removal
// through sink, in the literal form "Found duplicate document id <id>".
func removeDuplicates(idx *InvertedIndex, sink io.Writer) error {
	firstSeen := make(map[string]DocumentId)
	var toRemove []DocumentId

	for _, id := range idx.ascendingIDs() {
		key := termSetKey(idx.termSet(id))
		if _, seen := firstSeen[key]; seen {
			toRemove = append(toRemove, id)
			continue
		}
		firstSeen[key] = id
	}

	for _, id := range toRemove {
		fmt.Fprintf(sink, "Found duplicate document id %d\n", id)
		if err := idx.RemoveDocument(id); err != nil {
			return err
		}
	}
	return nil
}
