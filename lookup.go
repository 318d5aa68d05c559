package bytellmap

// find walks the chain starting at key's direct-hit coordinate and returns
// the linear index of the slot holding key, the number of chain hops taken,
// and whether it was found.
func (m *Map[K, V]) find(key K) (linear uint64, hops int, ok bool) {
	h := m.hash(key)
	linear = directHitLinear(h, m.t.groupCount)

	meta := *m.t.metaAt(linear)
	if metaIsEmpty(meta) || metaIsStorage(meta) {
		// An empty direct-hit slot has no chain. A storage role at the
		// direct-hit coordinate means some other chain's tail occupies
		// this position; key cannot be present here.
		return 0, 0, false
	}

	for {
		e := m.t.entryAt(linear)
		if e.key == key {
			return linear, hops, true
		}
		j := metaJump(*m.t.metaAt(linear))
		if j == 0 {
			return 0, hops, false
		}
		linear = advanceLinear(linear, m.t.groupCount, j)
		hops++
	}
}

// Get returns the value stored for key, if present.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	linear, hops, found := m.find(key)
	m.cfg.metrics.ObserveProbeLength(hops)
	if !found {
		var zero V
		return zero, false
	}
	return m.t.entryAt(linear).value, true
}

// GetMut returns a pointer to the value stored for key, if present. The
// pointer borrows into the Map's backing storage: it is invalidated by any
// subsequent mutating call (Insert, or a growth triggered by one).
func (m *Map[K, V]) GetMut(key K) (value *V, ok bool) {
	linear, hops, found := m.find(key)
	m.cfg.metrics.ObserveProbeLength(hops)
	if !found {
		return nil, false
	}
	return &m.t.entryAt(linear).value, true
}
