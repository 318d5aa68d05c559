package bytellmap

// Range calls f once for each entry in the map, in group-major, slot-minor
// order over the backing storage (not insertion order, and not safe to
// rely on across a call that mutates the map). Range stops early if f
// returns false.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	for i := uint64(0); i < m.t.slotCount(); i++ {
		if metaIsEmpty(m.t.meta[i]) {
			continue
		}
		e := m.t.data[i]
		if !f(e.key, e.value) {
			return
		}
	}
}

// Keys returns every key currently stored, in the same order Range would
// visit them. It allocates a slice sized to Len(), so callers iterating
// only to read should prefer Range.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}
