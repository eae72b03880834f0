// ═══════════════════════════════════════════════════════════════════════════════
// RANKER
// ═══════════════════════════════════════════════════════════════════════════════
// TF-IDF relevance:
//
//	IDF(t)        = ln(N / df(t))
//	contribution  = reverse[t][d] * IDF(t)           for each plus term t present in d
//	relevance(d)  = sum of contributions over plus terms
//
// A document is filtered in only if the caller predicate accepts it; any
// document containing any minus term is excluded outright, regardless of
// score. Results are ordered by relevance descending, ties within
// RelevanceEpsilon broken by rating descending, truncated to
// MaxResultDocumentCount.
//
// The sequential path (findAllDocumentsSequential) mirrors the original
// search server's FindAllDocuments exactly: a single doc_to_relevance map
// built by scanning plus terms in order, then minus terms removing hits.
// The parallel path (findAllDocumentsParallel) is semantically identical
// but fans the plus-term scan and the minus-term scan out across
// goroutines via errgroup, accumulating into a ShardedMap instead of a
// plain map — the Go analogue of std::execution::par +
// ConcurrentMap<int, double> in search_server.h.
// ═══════════════════════════════════════════════════════════════════════════════

package docrank

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// MaxResultDocumentCount and RelevanceEpsilon are ranking constants that
// must match bit-for-bit across reimplementations of this package.
const (
	MaxResultDocumentCount = 5
	RelevanceEpsilon       = 1e-6
	MinutesPerDay          = 1440 // unused by the core; named for host-built request histograms
)

// parallelShardMinWidth is the B = max(P, 100) shard width rule, where P
// is the plus-term count.
const parallelShardMinWidth = 100

func (idx *InvertedIndex) computeIDF(term string) float64 {
	df := idx.documentFrequency(term)
	if df == 0 {
		return 0
	}
	n := idx.count()
	return math.Log(float64(n) / float64(df))
}

// findAllDocumentsSequential builds doc_to_relevance by scanning plus
// terms in order, then removes any document hit by a minus term.
func (idx *InvertedIndex) findAllDocumentsSequential(q ParsedQuery, pred Predicate) []Document {
	docToRelevance := make(map[DocumentId]float64)

	for _, term := range q.PlusTerms {
		row := idx.reverseRow(term)
		if row == nil {
			continue
		}
		idf := idx.computeIDF(term)
		for id, tf := range row {
			rec, ok := idx.recordOf(id)
			if !ok || !pred(id, rec.status, rec.rating) {
				continue
			}
			docToRelevance[id] += tf * idf
		}
	}

	for _, term := range q.MinusTerms {
		row := idx.reverseRow(term)
		for id := range row {
			delete(docToRelevance, id)
		}
	}

	return materializeAndSort(idx, docToRelevance)
}

// findAllDocumentsParallel is semantically identical to the sequential
// path, using a ShardedMap accumulator fed by a goroutine fan-out with
// one goroutine per plus term, then one per minus term. shardWidthOverride, if positive,
// replaces the default max(plusTermCount, parallelShardMinWidth) shard
// count (see WithShardWidth).
func (idx *InvertedIndex) findAllDocumentsParallel(q ParsedQuery, pred Predicate, shardWidthOverride int) []Document {
	width := shardWidthOverride
	if width < 1 {
		width = len(q.PlusTerms)
		if width < parallelShardMinWidth {
			width = parallelShardMinWidth
		}
	}
	acc := NewShardedMap(width)

	var g errgroup.Group
	for _, term := range q.PlusTerms {
		term := term
		g.Go(func() error {
			row := idx.reverseRow(term)
			if row == nil {
				return nil
			}
			idf := idx.computeIDF(term)
			for id, tf := range row {
				rec, ok := idx.recordOf(id)
				if !ok || !pred(id, rec.status, rec.rating) {
					continue
				}
				acc.Add(id, tf*idf)
			}
			return nil
		})
	}
	_ = g.Wait()

	var g2 errgroup.Group
	for _, term := range q.MinusTerms {
		term := term
		g2.Go(func() error {
			row := idx.reverseRow(term)
			for id := range row {
				acc.Erase(id)
			}
			return nil
		})
	}
	_ = g2.Wait()

	return materializeAndSort(idx, acc.BuildOrdinaryMap())
}

// materializeAndSort turns a doc->relevance map into sorted, truncated
// Document triples.
func materializeAndSort(idx *InvertedIndex, docToRelevance map[DocumentId]float64) []Document {
	out := make([]Document, 0, len(docToRelevance))
	for id, relevance := range docToRelevance {
		rec, ok := idx.recordOf(id)
		if !ok {
			continue
		}
		out = append(out, Document{ID: id, Relevance: relevance, Rating: rec.rating})
	}

	sort.Slice(out, func(i, j int) bool {
		return lessDocument(out[i], out[j])
	})

	if len(out) > MaxResultDocumentCount {
		out = out[:MaxResultDocumentCount]
	}
	return out
}

// lessDocument orders a before b: relevance descending, ties within
// RelevanceEpsilon broken by rating descending, with a final ascending-id
// tiebreak for fully deterministic output.
func lessDocument(a, b Document) bool {
	if math.Abs(a.Relevance-b.Relevance) < RelevanceEpsilon {
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.ID < b.ID
	}
	return a.Relevance > b.Relevance
}

// ═══════════════════════════════════════════════════════════════════════════════
// PREDICATE DEFAULTS
// ═══════════════════════════════════════════════════════════════════════════════

// actualOnly is the default predicate used when a query has no explicit
// predicate or status: it ranks only ACTUAL documents.
func actualOnly(_ DocumentId, status Status, _ int) bool {
	return status == ACTUAL
}

// statusEquals builds a predicate that accepts documents whose status
// equals want.
func statusEquals(want Status) Predicate {
	return func(_ DocumentId, status Status, _ int) bool {
		return status == want
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// MATCH DOCUMENT
// ═══════════════════════════════════════════════════════════════════════════════

// matchDocumentSequential returns the sorted distinct plus terms of q
// that are keys in id's forward row, or an empty slice if id contains any
// minus term.
func matchDocumentSequential(forwardRow map[string]float64, q ParsedQuery) []string {
	for _, term := range q.MinusTerms {
		if _, ok := forwardRow[term]; ok {
			return nil
		}
	}
	var matches []string
	for _, term := range q.PlusTerms {
		if _, ok := forwardRow[term]; ok {
			matches = append(matches, term)
		}
	}
	return matches
}

// matchDocumentParallel evaluates the minus predicate via a parallel
// any-match and produces plus matches via a parallel filter, then
// sort-uniques the output. Result ordering between this and the
// sequential variant may differ for callers that skip the sort-unique
// step elsewhere; here both return sorted-unique output, so the two
// variants agree.
func matchDocumentParallel(forwardRow map[string]float64, q ParsedQuery) []string {
	if len(q.MinusTerms) > 0 {
		var g errgroup.Group
		hit := make([]bool, len(q.MinusTerms))
		for i, term := range q.MinusTerms {
			i, term := i, term
			g.Go(func() error {
				_, ok := forwardRow[term]
				hit[i] = ok
				return nil
			})
		}
		_ = g.Wait()
		for _, h := range hit {
			if h {
				return nil
			}
		}
	}

	matched := make([]bool, len(q.PlusTerms))
	var g errgroup.Group
	for i, term := range q.PlusTerms {
		i, term := i, term
		g.Go(func() error {
			_, ok := forwardRow[term]
			matched[i] = ok
			return nil
		})
	}
	_ = g.Wait()

	var out []string
	for i, term := range q.PlusTerms {
		if matched[i] {
			out = append(out, term)
		}
	}
	return sortUniqueStrings(out)
}
