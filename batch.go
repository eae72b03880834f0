// ═══════════════════════════════════════════════════════════════════════════════
// BATCH QUERY DISPATCH
// ═══════════════════════════════════════════════════════════════════════════════
// ProcessQueries evaluates FindTopDocuments for each input query in
// parallel, one goroutine per query writing into its own output slot —
// no two goroutines ever touch the same slice index, so there is no
// contention beyond the index's own read-path, and output order always
// matches input order regardless of goroutine scheduling. This is the Go
// rendering of the original process_queries.cpp's
// std::transform(std::execution::par, ...).
//
// ProcessQueriesJoined flattens the per-query result groups in input
// order, preserving each group's internal relevance ordering.
// ═══════════════════════════════════════════════════════════════════════════════

package docrank

import "golang.org/x/sync/errgroup"

// ProcessQueries runs FindTopDocuments over every query in parallel,
// returning results in input order. Batch operations are defined only
// over well-formed inputs; any individual query's parse error surfaces
// as the batch's error.
func ProcessQueries(s *SearchIndex, queries []string) ([][]Document, error) {
	results := make([][]Document, len(queries))

	var g errgroup.Group
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			docs, err := s.FindTopDocuments(q)
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProcessQueriesJoined is the concatenation, in input order, of the
// per-query result vectors; relevance ordering within each group is
// preserved.
func ProcessQueriesJoined(s *SearchIndex, queries []string) ([]Document, error) {
	grouped, err := ProcessQueries(s, queries)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, g := range grouped {
		total += len(g)
	}
	joined := make([]Document, 0, total)
	for _, g := range grouped {
		joined = append(joined, g...)
	}
	return joined, nil
}
