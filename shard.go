// ═══════════════════════════════════════════════════════════════════════════════
// SHARDED CONCURRENT ACCUMULATOR
// ═══════════════════════════════════════════════════════════════════════════════
// ShardedMap is the Go analogue of the original search server's
// ConcurrentMap<Key, Value>: a fixed-width array of (mutex, ordered map)
// shards keyed by id mod width. Parallel ranking workers each look up a
// reverse-index row independently; for every (doc id, tf) pair that
// passes the predicate, the worker acquires only the shard that owns
// that id and adds tf*idf to its running total. Holds are short — a
// single ordered-map read-modify-write — and never nested, so no
// goroutine blocks while holding more than one shard's lock.
//
// Each shard's ordered map is a skip list keyed by DocumentId, adapted
// from the position-postings skip list in skiplist.go: the
// probabilistic tower-linking mechanics are kept
// verbatim in spirit, but the key changes from a two-level
// Position{DocumentID, Offset} (needed for phrase search, which this
// package does not support) to a plain DocumentId, and the node carries a
// mutable float64 accumulator instead of being the payload itself. Each
// shard is walked in ascending id order, as the original ConcurrentMap's
// std::map shards were; BuildOrdinaryMap still collects into a plain Go
// map, which has no order, so deterministic result order comes from the
// ranker's comparator (with its ascending-id tiebreak), not from here.
// ═══════════════════════════════════════════════════════════════════════════════

package docrank

import (
	"math/rand"
	"sync"
)

const maxShardTowerHeight = 24

type shardNode struct {
	key   DocumentId
	value float64
	tower [maxShardTowerHeight]*shardNode
}

// accumulatorList is an ordered map from DocumentId to a float64
// accumulator, implemented as a skip list so ascending iteration and
// insert/delete are both cheap.
type accumulatorList struct {
	head   *shardNode
	height int
}

func newAccumulatorList() *accumulatorList {
	return &accumulatorList{head: &shardNode{}, height: 1}
}

// search returns the node with the exact key (nil if absent) and the
// per-level predecessor journey, exactly as SkipList.Search does for
// Position keys.
func (l *accumulatorList) search(key DocumentId) (*shardNode, [maxShardTowerHeight]*shardNode) {
	var journey [maxShardTowerHeight]*shardNode
	current := l.head
	for level := l.height - 1; level >= 0; level-- {
		next := current.tower[level]
		for next != nil && next.key < key {
			current = next
			next = current.tower[level]
		}
		journey[level] = current
	}
	next := current.tower[0]
	if next != nil && next.key == key {
		return next, journey
	}
	return nil, journey
}

// add finds or creates key's node and adds delta to its accumulator.
func (l *accumulatorList) add(key DocumentId, delta float64) {
	found, journey := l.search(key)
	if found != nil {
		found.value += delta
		return
	}

	height := randomTowerHeight()
	node := &shardNode{key: key, value: delta}
	for level := 0; level < height; level++ {
		pred := journey[level]
		if pred == nil {
			pred = l.head
		}
		node.tower[level] = pred.tower[level]
		pred.tower[level] = node
	}
	if height > l.height {
		l.height = height
	}
}

// delete removes key's node, if present.
func (l *accumulatorList) delete(key DocumentId) {
	found, journey := l.search(key)
	if found == nil {
		return
	}
	for level := 0; level < l.height; level++ {
		if journey[level].tower[level] != found {
			break
		}
		journey[level].tower[level] = found.tower[level]
	}
	for l.height > 1 && l.head.tower[l.height-1] == nil {
		l.height--
	}
}

// ascending walks the list in ascending id order and stores every
// (id, value) pair into dst.
func (l *accumulatorList) ascending(dst map[DocumentId]float64) {
	for n := l.head.tower[0]; n != nil; n = n.tower[0] {
		dst[n.key] = n.value
	}
}

func randomTowerHeight() int {
	height := 1
	for rand.Float64() < 0.5 && height < maxShardTowerHeight {
		height++
	}
	return height
}

// ShardedMap is a fixed-width array of mutex-guarded accumulatorLists,
// keyed by id mod width.
type ShardedMap struct {
	shards []struct {
		mu   sync.Mutex
		list *accumulatorList
	}
	width int
}

// NewShardedMap creates a ShardedMap with the given bucket width.
// Callers ranking a query should use max(plusTermCount, 100): few shards
// means plus-term goroutines collide on the same lock constantly, and
// more shards than candidate documents buys nothing.
func NewShardedMap(width int) *ShardedMap {
	if width < 1 {
		width = 1
	}
	sm := &ShardedMap{width: width}
	sm.shards = make([]struct {
		mu   sync.Mutex
		list *accumulatorList
	}, width)
	for i := range sm.shards {
		sm.shards[i].list = newAccumulatorList()
	}
	return sm
}

func (sm *ShardedMap) shardFor(id DocumentId) int {
	m := int(id) % sm.width
	if m < 0 {
		m += sm.width
	}
	return m
}

// Add atomically adds delta to id's accumulator.
func (sm *ShardedMap) Add(id DocumentId, delta float64) {
	i := sm.shardFor(id)
	sm.shards[i].mu.Lock()
	sm.shards[i].list.add(id, delta)
	sm.shards[i].mu.Unlock()
}

// Erase removes id from whichever shard owns it.
func (sm *ShardedMap) Erase(id DocumentId) {
	i := sm.shardFor(id)
	sm.shards[i].mu.Lock()
	sm.shards[i].list.delete(id)
	sm.shards[i].mu.Unlock()
}

// BuildOrdinaryMap collapses every shard into a single map by locking
// each shard in turn.
func (sm *ShardedMap) BuildOrdinaryMap() map[DocumentId]float64 {
	result := make(map[DocumentId]float64)
	for i := range sm.shards {
		sm.shards[i].mu.Lock()
		sm.shards[i].list.ascending(result)
		sm.shards[i].mu.Unlock()
	}
	return result
}
