// ═══════════════════════════════════════════════════════════════════════════════
// SEARCHINDEX: the public facade
// ═══════════════════════════════════════════════════════════════════════════════
// SearchIndex glues the tokenizer, query parser, inverted index, ranker
// and dedup detector into a single library surface. It owns one
// synchronization primitive: a sync.RWMutex held exclusively during
// mutation (AddDocument, RemoveDocument, RemoveDuplicates) and shared
// during reads (FindTopDocuments in either execution policy,
// MatchDocument, WordFrequencies, GetDocumentCount, iteration).
// ═══════════════════════════════════════════════════════════════════════════════

package docrank

import (
	"io"
	"os"
	"sync"
)

// Option configures a SearchIndex at construction time, in the idiom of
// the AnalyzerConfig/DefaultConfig pair generalized to
// functional options because SearchIndex has more than one independent
// knob.
type Option func(*SearchIndex)

// WithDiagnosticSink overrides the writer RemoveDuplicates emits its
// eviction notices to. Defaults to os.Stderr.
func WithDiagnosticSink(w io.Writer) Option {
	return func(s *SearchIndex) { s.sink = w }
}

// WithShardWidth overrides the ShardedMap bucket width used by the
// parallel-execution-policy ranking path, in place of the
// max(plusTermCount, parallelShardMinWidth) default. Mainly useful for
// tests that want deterministic shard collisions without depending on
// runtime.GOMAXPROCS. Panics if width is not positive.
func WithShardWidth(width int) Option {
	if width < 1 {
		panic("docrank: WithShardWidth requires width >= 1")
	}
	return func(s *SearchIndex) { s.shardWidth = width }
}

// SearchIndex is the library's public entry point.
type SearchIndex struct {
	mu         sync.RWMutex
	index      *InvertedIndex
	stop       *StopWords
	sink       io.Writer
	shardWidth int // 0 means "use the default max(plusTermCount, parallelShardMinWidth) rule"
}

// NewSearchIndex constructs an index with the given stop words, which
// may be a single whitespace-delimited string or a []string. Fails
// ErrInvalidInput if any surviving stop word contains a control byte.
func NewSearchIndex(stopWords any, opts ...Option) (*SearchIndex, error) {
	stop, err := newStopWords(stopWords)
	if err != nil {
		return nil, err
	}

	s := &SearchIndex{
		index: NewInvertedIndex(),
		stop:  stop,
		sink:  os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AddDocument adds id to the index. See InvertedIndex.AddDocument for
// the full validation and tokenization contract.
func (s *SearchIndex) AddDocument(id DocumentId, text string, status Status, ratings []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.AddDocument(id, text, status, ratings, s.stop)
}

// RemoveDocument removes id from the index sequentially.
func (s *SearchIndex) RemoveDocument(id DocumentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.RemoveDocument(id)
}

// RemoveDocumentParallel removes id from the index. Mutation stays
// serialized by SearchIndex's exclusive lock regardless of which
// execution-policy variant is called — this variant exists to preserve
// the sequential/parallel overload surface every other operation has,
// not to run concurrently with other mutators.
func (s *SearchIndex) RemoveDocumentParallel(id DocumentId) error {
	return s.RemoveDocument(id)
}

// GetDocumentCount returns the number of currently active documents.
func (s *SearchIndex) GetDocumentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.count()
}

// DocumentIDs returns the active document ids in ascending order.
func (s *SearchIndex) DocumentIDs() []DocumentId {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.ascendingIDs()
}

// WordFrequencies returns a snapshot of id's forward row, or an empty
// map if id is not active.
func (s *SearchIndex) WordFrequencies(id DocumentId) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.WordFrequencies(id)
}

// ═══════════════════════════════════════════════════════════════════════════════
// QUERIES
// ═══════════════════════════════════════════════════════════════════════════════

// FindTopDocuments ranks documents with status ACTUAL against query,
// sequentially.
func (s *SearchIndex) FindTopDocuments(query string) ([]Document, error) {
	return s.findTopDocuments(query, actualOnly, false)
}

// FindTopDocumentsStatus ranks documents whose status equals status.
func (s *SearchIndex) FindTopDocumentsStatus(query string, status Status) ([]Document, error) {
	return s.findTopDocuments(query, statusEquals(status), false)
}

// FindTopDocumentsFunc ranks documents accepted by pred.
func (s *SearchIndex) FindTopDocumentsFunc(query string, pred Predicate) ([]Document, error) {
	return s.findTopDocuments(query, pred, false)
}

// FindTopDocumentsParallel is the parallel-execution-policy twin of
// FindTopDocuments, and returns semantically identical results.
func (s *SearchIndex) FindTopDocumentsParallel(query string) ([]Document, error) {
	return s.findTopDocuments(query, actualOnly, true)
}

// FindTopDocumentsParallelStatus is the parallel twin of
// FindTopDocumentsStatus.
func (s *SearchIndex) FindTopDocumentsParallelStatus(query string, status Status) ([]Document, error) {
	return s.findTopDocuments(query, statusEquals(status), true)
}

// FindTopDocumentsParallelFunc is the parallel twin of
// FindTopDocumentsFunc.
func (s *SearchIndex) FindTopDocumentsParallelFunc(query string, pred Predicate) ([]Document, error) {
	return s.findTopDocuments(query, pred, true)
}

func (s *SearchIndex) findTopDocuments(query string, pred Predicate, parallel bool) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, err := parseQuery(query, s.stop, false)
	if err != nil {
		return nil, err
	}
	if parallel {
		return s.index.findAllDocumentsParallel(q, pred, s.shardWidth), nil
	}
	return s.index.findAllDocumentsSequential(q, pred), nil
}

// MatchDocument parses query in sorted/uniqued mode and returns the
// sorted distinct plus terms of query present in id's term set, along
// with id's status. Fails ErrNotFound if id is not active. If any minus
// term of query is present in id's term set, returns an empty slice and
// the document's status (not an error).
func (s *SearchIndex) MatchDocument(query string, id DocumentId) ([]string, Status, error) {
	return s.matchDocument(query, id, false)
}

// MatchDocumentParallel is the parallel-execution-policy twin of
// MatchDocument.
func (s *SearchIndex) MatchDocumentParallel(query string, id DocumentId) ([]string, Status, error) {
	return s.matchDocument(query, id, true)
}

func (s *SearchIndex) matchDocument(query string, id DocumentId, parallel bool) ([]string, Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.index.recordOf(id)
	if !ok {
		return nil, 0, notFoundError(id)
	}

	q, err := parseQuery(query, s.stop, true)
	if err != nil {
		return nil, rec.status, err
	}

	row := s.index.forward[id]
	if parallel {
		return matchDocumentParallel(row, q), rec.status, nil
	}
	return matchDocumentSequential(row, q), rec.status, nil
}

// RemoveDuplicates removes every document whose term set duplicates an
// earlier (smaller-id) document's, emitting one diagnostic line per
// removal to the index's configured sink.
func RemoveDuplicates(s *SearchIndex) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeDuplicates(s.index, s.sink)
}
