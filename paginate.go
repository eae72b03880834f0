// ═══════════════════════════════════════════════════════════════════════════════
// PAGINATION HELPER
// ═══════════════════════════════════════════════════════════════════════════════
// A trivial windowed view over a result sequence, ported from the
// original search server's paginator.h. It performs no ranking and
// touches no index state, so it lives outside SearchIndex's method set.
// Since the results it windows (ProcessQueriesJoined output, in
// particular) are a first-class part of this library's surface, it ships
// alongside it rather than being pushed out to a host-side console
// helper.
// ═══════════════════════════════════════════════════════════════════════════════

package docrank

// Paginate splits results into consecutive pages of at most pageSize
// documents each. The final page may be shorter. Paginate(nil, n) and
// Paginate(results, 0) both return no pages.
func Paginate(results []Document, pageSize int) [][]Document {
	if pageSize <= 0 || len(results) == 0 {
		return nil
	}

	pages := make([][]Document, 0, (len(results)+pageSize-1)/pageSize)
	for left := 0; left < len(results); left += pageSize {
		right := left + pageSize
		if right > len(results) {
			right = len(results)
		}
		pages = append(pages, results[left:right])
	}
	return pages
}
