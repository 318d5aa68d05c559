package bytellmap

// grow doubles the table's cell-group count and reinserts every live
// entry into the new table. There are no cross-table invariants to
// maintain during a grow: the rebuild is just a sequence of ordinary
// insertions into an empty table, so it reuses the same placement logic
// an external Insert call would use, including its own nested grow if an
// old entry's chain happens to exhaust probing in the larger table (rare,
// but the routine stays correct either way rather than assuming it can't
// happen).
func (m *Map[K, V]) grow() {
	old := m.t
	m.t = newTable[K, V](old.groupCount * 2)
	m.size = 0

	for i := uint64(0); i < old.slotCount(); i++ {
		meta := old.meta[i]
		if metaIsEmpty(meta) {
			continue
		}
		e := old.data[i]
		m.insertNoGrowthCheck(e.key, e.value)
	}

	m.cfg.metrics.Grow()
	m.cfg.logger.Debugw("table grown", "groups", m.t.groupCount, "size", m.size)
}
