package bytellmap

// Slot addressing maps a 64-bit hash, or a running linear index produced
// by following jumps, to a (group, slot) coordinate. capacity is always a
// power of two number of cell groups, so group masking is cheap.

// directHit computes the chain-head coordinate for hash under capacity
// groups.
func directHit(hash uint64, capacity uint64) (group, slot uint64) {
	group = (hash >> 4) & (capacity - 1)
	slot = hash & 15
	return group, slot
}

// linearIndex flattens a (group, slot) coordinate into a single index over
// the conceptual 16*capacity slot array.
func linearIndex(group, slot uint64) uint64 {
	return group*16 + slot
}

// splitIndex is the inverse of linearIndex, wrapping modulo the total slot
// count so callers can advance a running linear cursor and re-split it.
func splitIndex(linear uint64, capacity uint64) (group, slot uint64) {
	total := capacity * 16
	linear %= total
	return linear / 16, linear % 16
}

// advance steps a linear cursor forward by the offset named by jump index j
// in the jump-distance table, wrapping modulo the table's total slot count,
// and returns the resulting coordinate.
func advance(linear uint64, capacity uint64, j byte) (group, slot uint64) {
	return splitIndex(linear+jumpDistances[j], capacity)
}

// directHitLinear is directHit followed by linearIndex, the form every
// caller outside this file actually wants.
func directHitLinear(hash uint64, capacity uint64) uint64 {
	group, slot := directHit(hash, capacity)
	return linearIndex(group, slot)
}

// advanceLinear is advance followed by linearIndex.
func advanceLinear(linear uint64, capacity uint64, j byte) uint64 {
	group, slot := advance(linear, capacity, j)
	return linearIndex(group, slot)
}
