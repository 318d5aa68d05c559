// Package bytellmap implements a byte-tagged linear-probing hash table
// with a short jump-distance table ("bytell"-style), mapping keys of a
// comparable type K to values of type V.
//
// The design effort lives entirely in the table itself: the metadata
// encoding (metadata.go), the jump-distance probe strategy (jumptable.go,
// addressing.go), the chain-preservation protocol during insertion
// (insert.go), growth (growth.go), and iteration (iter.go). A Map is not
// safe for concurrent use; callers layering concurrency above it must
// provide their own exclusion.
package bytellmap

import "github.com/wadelma/bytellmap/internal/telemetry"

// Map is a byte-tagged linear-probing hash table. The zero value is not
// usable; construct one with New or NewWithCapacity.
type Map[K comparable, V any] struct {
	t             *table[K, V]
	size          uint64
	hasher        Hasher[K]
	maxLoadFactor float64
	cfg           config
}

// New constructs an empty Map with a single cell group (16 slots) of
// capacity, using factory to build the hasher it will use for the
// lifetime of the Map.
func New[K comparable, V any](factory HasherFactory[K], opts ...Option) *Map[K, V] {
	return newMap[K, V](factory, 1, opts)
}

// NewWithCapacity constructs an empty Map with at least capacityHint
// slots: capacity is the next power of two number of cell groups at or
// above ceil(capacityHint / 16), minimum 1. Growth is still governed by
// the load-factor threshold, so the Map can grow before capacityHint
// entries have been inserted.
func NewWithCapacity[K comparable, V any](factory HasherFactory[K], capacityHint int, opts ...Option) *Map[K, V] {
	return newMap[K, V](factory, groupsForCapacityHint(capacityHint), opts)
}

// NewDefault constructs an empty Map using the default hasher
// (MapHasher, backed by github.com/dolthub/maphash), for callers who do
// not need to pick a specific hasher provider.
func NewDefault[K comparable, V any](opts ...Option) *Map[K, V] {
	return New[K, V](NewMapHasherFactory[K](), opts...)
}

// NewStrings constructs an empty Map[string, V] using the xxhash-backed
// BytesHasher, for callers who want fixed-seed, reproducible hashing of
// string keys (golden-file tests, the benchmark CLI).
func NewStrings[V any](opts ...Option) *Map[string, V] {
	return New[string, V](NewBytesHasherFactory(), opts...)
}

func newMap[K comparable, V any](factory HasherFactory[K], groupCount uint64, opts []Option) *Map[K, V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Map[K, V]{
		t:             newTable[K, V](groupCount),
		hasher:        factory.NewHasher(),
		maxLoadFactor: cfg.maxLoadFactor,
		cfg:           cfg,
	}
}

func groupsForCapacityHint(capacityHint int) uint64 {
	if capacityHint <= 0 {
		return 1
	}
	needed := (capacityHint + 15) / 16 // ceil(capacityHint / 16)
	return nextPowerOfTwo(uint64(needed))
}

func nextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// Len returns the number of entries currently stored.
func (m *Map[K, V]) Len() int {
	return int(m.size)
}

// loadFactor returns size / (16 * capacity).
func (m *Map[K, V]) loadFactor() float64 {
	return float64(m.size) / float64(m.t.slotCount())
}

// hash is the sole point where the Map consults its Hasher.
func (m *Map[K, V]) hash(key K) uint64 {
	return m.hasher.Hash(key)
}

// assertInvariant logs and panics on a detected programming defect: a chain
// predecessor that should exist but doesn't, or a direct-hit role where a
// storage role was expected. These never fire on
// well-formed input; they exist to fail loudly rather than corrupt the
// table silently.
func (m *Map[K, V]) assertInvariant(cond bool, msg string, kv ...interface{}) {
	if cond {
		return
	}
	m.cfg.logger.Errorw(msg, kv...)
	panic("bytellmap: invariant violation: " + msg)
}

var _ telemetry.Logger = telemetry.Nop{}
