package bytellmap

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// Hasher absorbs a key and yields a 64-bit digest. A single Hasher is used
// for the lifetime of one Map.
type Hasher[K comparable] interface {
	Hash(key K) uint64
}

// HasherFactory produces a fresh Hasher. The core container only ever
// calls NewHasher once, at construction time: a factory is a value capable
// of producing fresh hasher instances, not a shared hasher itself.
type HasherFactory[K comparable] interface {
	NewHasher() Hasher[K]
}

// MapHasher wraps github.com/dolthub/maphash: a randomly-seeded hash over
// any comparable type without requiring the caller to write one by hand.
type MapHasher[K comparable] struct {
	h maphash.Hasher[K]
}

// NewMapHasherFactory returns the HasherFactory used by NewDefault.
func NewMapHasherFactory[K comparable]() HasherFactory[K] {
	return mapHasherFactory[K]{}
}

type mapHasherFactory[K comparable] struct{}

func (mapHasherFactory[K]) NewHasher() Hasher[K] {
	return &MapHasher[K]{h: maphash.NewHasher[K]()}
}

func (m *MapHasher[K]) Hash(key K) uint64 {
	return m.h.Hash(key)
}

// BytesHasher wraps github.com/cespare/xxhash/v2 for string keys: a fast,
// fixed-seed hash with reproducible output across runs, useful for
// golden-file tests and the benchmark CLI, where MapHasher's random seed
// would make results non-reproducible from run to run.
type BytesHasher struct{}

// NewBytesHasherFactory returns a HasherFactory[string] backed by xxhash.
func NewBytesHasherFactory() HasherFactory[string] {
	return bytesHasherFactory{}
}

type bytesHasherFactory struct{}

func (bytesHasherFactory) NewHasher() Hasher[string] {
	return BytesHasher{}
}

func (BytesHasher) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// identityHasher is hash(x) = x. It is unexported and intended only for
// tests that need literal, reproducible slot placement.
type identityHasher struct{}

func (identityHasher) Hash(key uint64) uint64 {
	return key
}

type identityHasherFactory struct{}

func (identityHasherFactory) NewHasher() Hasher[uint64] {
	return identityHasher{}
}
