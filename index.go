// ═══════════════════════════════════════════════════════════════════════════════
// INVERTED INDEX
// ═══════════════════════════════════════════════════════════════════════════════
// Two maps, dual-indexed, sharing the same interned term storage:
//
//	forward[doc][term] = tf    (per-document introspection, WordFrequencies)
//	reverse[term][doc] = tf    (per-term candidate lookup during ranking)
//
// tf(t, d) = occurrences(t, d) / non-stop-token-count(d). A term key
// exists in reverse only while at least one live document maps to it;
// RemoveDocument prunes empty term rows (and releases the term from the
// intern pool) the moment the last document referencing it is gone.
//
// The active document id set is kept as a roaring.Bitmap rather than a
// plain Go map: it needs fast membership checks, ascending iteration
// order for deterministic output, and cheap cardinality, which is
// exactly how *roaring.Bitmap is used at the per-term
// level in its own DocBitmaps. Here the same structure tracks which
// documents are alive at all, plus one bitmap per term for df(t).
//
// InvertedIndex has no locking of its own: mutating operations are not
// safe against concurrent mutators or readers, and the host
// (SearchIndex) is responsible for serializing mutation with its own
// RWMutex. Read methods here must remain safe to call
// concurrently with each other (and are, since they only read the maps)
// so that parallel ranking can fan reverse-row lookups out across
// goroutines without contending on an index-internal lock.
// ═══════════════════════════════════════════════════════════════════════════════

package docrank

import (
	"fmt"
	"log/slog"

	"github.com/RoaringBitmap/roaring"
)

// InvertedIndex maintains the forward and reverse maps described above.
type InvertedIndex struct {
	forward map[DocumentId]map[string]float64 // doc -> term -> tf
	reverse map[string]map[DocumentId]float64  // term -> doc -> tf
	records map[DocumentId]documentRecord

	activeIDs *roaring.Bitmap
	termDocs  map[string]*roaring.Bitmap // term -> bitmap of documents containing it
	terms     *internPool
}

// NewInvertedIndex returns an empty index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		forward:   make(map[DocumentId]map[string]float64),
		reverse:   make(map[string]map[DocumentId]float64),
		records:   make(map[DocumentId]documentRecord),
		activeIDs: roaring.NewBitmap(),
		termDocs:  make(map[string]*roaring.Bitmap),
		terms:     newInternPool(),
	}
}

// AddDocument tokenizes text, drops stop words, and records per-term
// relative frequencies for id. Fails ErrInvalidInput if id < 0, id
// already exists, text contains a control byte, or every token is a
// stop word — an empty forward row is disallowed, and is rejected
// rather than silently indexed as a termless document. On any failure
// the index is left exactly as it was: validation and tokenization
// happen entirely before the first mutation.
func (idx *InvertedIndex) AddDocument(id DocumentId, text string, status Status, ratings []int, stop *StopWords) error {
	if id < 0 {
		return fmt.Errorf("document id %d is negative: %w", id, ErrInvalidInput)
	}
	if _, exists := idx.records[id]; exists {
		return fmt.Errorf("document id %d already exists: %w", id, ErrInvalidInput)
	}
	if hasControlByte(text) {
		return fmt.Errorf("document %d contains a control byte: %w", id, ErrInvalidInput)
	}

	counts := make(map[string]int)
	n := 0
	for _, w := range tokenize(text) {
		if stop.contains(w) {
			continue
		}
		counts[w]++
		n++
	}
	if n == 0 {
		return fmt.Errorf("document %d has no non-stop tokens: %w", id, ErrInvalidInput)
	}

	forwardRow := make(map[string]float64, len(counts))
	for w, k := range counts {
		tf := float64(k) / float64(n)
		interned := idx.terms.intern(w)
		forwardRow[interned] = tf

		row, ok := idx.reverse[interned]
		if !ok {
			row = make(map[DocumentId]float64)
			idx.reverse[interned] = row
		}
		row[id] = tf

		bm, ok := idx.termDocs[interned]
		if !ok {
			bm = roaring.NewBitmap()
			idx.termDocs[interned] = bm
		}
		bm.Add(uint32(id))
	}

	idx.forward[id] = forwardRow
	idx.records[id] = documentRecord{rating: computeAverageRating(ratings), status: status}
	idx.activeIDs.Add(uint32(id))

	slog.Debug("indexed document", slog.Int("doc_id", int(id)), slog.Int("terms", len(forwardRow)))
	return nil
}

// RemoveDocument purges id from all three structures, pruning any term
// whose reverse row becomes empty (releasing it from the intern pool).
// Fails ErrNotFound if id is not active.
func (idx *InvertedIndex) RemoveDocument(id DocumentId) error {
	row, ok := idx.forward[id]
	if !ok {
		return fmt.Errorf("document id %d: %w", id, ErrNotFound)
	}

	for term := range row {
		delete(idx.reverse[term], id)
		if len(idx.reverse[term]) == 0 {
			delete(idx.reverse, term)
		}
		if bm, ok := idx.termDocs[term]; ok {
			bm.Remove(uint32(id))
			if bm.IsEmpty() {
				delete(idx.termDocs, term)
			}
		}
		idx.terms.release(term)
	}

	delete(idx.forward, id)
	delete(idx.records, id)
	idx.activeIDs.Remove(uint32(id))

	slog.Debug("removed document", slog.Int("doc_id", int(id)))
	return nil
}

// WordFrequencies returns a read-only snapshot of forward[id]; an empty
// map if id is not active — an unknown id is not an error here.
func (idx *InvertedIndex) WordFrequencies(id DocumentId) map[string]float64 {
	row, ok := idx.forward[id]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// termSet returns the set of keys of forward[id] (frequencies ignored),
// used by RemoveDuplicates.
func (idx *InvertedIndex) termSet(id DocumentId) []string {
	row := idx.forward[id]
	out := make([]string, 0, len(row))
	for k := range row {
		out = append(out, k)
	}
	return out
}

// recordOf returns the document record for id.
func (idx *InvertedIndex) recordOf(id DocumentId) (documentRecord, bool) {
	r, ok := idx.records[id]
	return r, ok
}

// count returns the number of currently active documents.
func (idx *InvertedIndex) count() int {
	return int(idx.activeIDs.GetCardinality())
}

// ascendingIDs returns the active document ids in ascending order.
func (idx *InvertedIndex) ascendingIDs() []DocumentId {
	out := make([]DocumentId, 0, idx.activeIDs.GetCardinality())
	it := idx.activeIDs.Iterator()
	for it.HasNext() {
		out = append(out, DocumentId(it.Next()))
	}
	return out
}

// documentFrequency returns df(t): the number of live documents
// containing term t.
func (idx *InvertedIndex) documentFrequency(term string) int {
	bm, ok := idx.termDocs[term]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// reverseRow returns the live reverse[term] map (doc -> tf), or nil if
// the term is absent from the index. Callers must treat it as read-only:
// it is not a defensive copy, since it is only ever read during a
// ranking pass that the host guarantees is free of concurrent mutation.
func (idx *InvertedIndex) reverseRow(term string) map[DocumentId]float64 {
	return idx.reverse[term]
}

// internedTermCount exposes the intern pool's size for tests asserting
// the RemoveDocument/AddDocument left-inverse property.
func (idx *InvertedIndex) internedTermCount() int {
	return idx.terms.size()
}
