package bytellmap

// Insert stores value under key, growing the table first if this
// insertion would push the load factor above the configured threshold.
// If key was already present, its value is overwritten and replaced is
// true, with prevKey and prevValue holding what was there before;
// otherwise prevKey and prevValue are zero values and replaced is false.
//
// On replacement, prevKey is the key that was already stored, and the
// incoming key is discarded without being written (it compares equal to
// the old one, so nothing observable changes by keeping the original).
func (m *Map[K, V]) Insert(key K, value V) (prevKey K, prevValue V, replaced bool) {
	if float64(m.size+1)/float64(m.t.slotCount()) > m.maxLoadFactor {
		m.grow()
	}
	prevKey, prevValue, replaced = m.insertNoGrowthCheck(key, value)
	if !replaced {
		m.cfg.metrics.Insert()
	}
	return prevKey, prevValue, replaced
}

// insertNoGrowthCheck implements the three placement cases against the
// current table, without first checking the load factor. Growth can still
// happen here, triggered by probe exhaustion rather than the load-factor
// threshold; when it does, the insertion is retried from scratch against
// the freshly grown table.
func (m *Map[K, V]) insertNoGrowthCheck(key K, value V) (prevKey K, prevValue V, replaced bool) {
	capacity := m.t.groupCount
	h := m.hash(key)
	head := directHitLinear(h, capacity)
	meta := *m.t.metaAt(head)

	switch {
	case metaIsEmpty(meta):
		// Case A: the direct-hit coordinate is free. Claim it outright.
		*m.t.entryAt(head) = entry[K, V]{key: key, value: value}
		*m.t.metaAt(head) = newMeta(false, 0)
		m.size++
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false

	case !metaIsStorage(meta):
		// Case B: the direct-hit coordinate already heads a chain of our
		// own keys (or a key that collided with us at this coordinate).
		// Walk it looking for key; append past the tail if not found.
		cur := head
		for {
			e := m.t.entryAt(cur)
			if e.key == key {
				prevKey, prevValue = e.key, e.value
				e.value = value
				m.cfg.metrics.Replace()
				return prevKey, prevValue, true
			}
			j := metaJump(*m.t.metaAt(cur))
			if j == 0 {
				break
			}
			cur = advanceLinear(cur, capacity, j)
		}

		foundJ, foundLinear, ok := m.t.probeForEmpty(cur, capacity, 1, noExclusion)
		if !ok {
			m.grow()
			return m.insertNoGrowthCheck(key, value)
		}
		*m.t.entryAt(foundLinear) = entry[K, V]{key: key, value: value}
		*m.t.metaAt(foundLinear) = newMeta(true, 0)
		metaSetJump(m.t.metaAt(cur), foundJ)
		m.size++
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false

	default:
		// Case C: the direct-hit coordinate is occupied by a visitor, the
		// tail (or an interior link) of some other key's chain. Relocate
		// that chain off this coordinate before claiming it.
		if !m.relocate(head) {
			m.grow()
			return m.insertNoGrowthCheck(key, value)
		}
		*m.t.entryAt(head) = entry[K, V]{key: key, value: value}
		*m.t.metaAt(head) = newMeta(false, 0)
		m.size++
		m.cfg.metrics.Relocate()
		m.cfg.logger.Debugw("visitor chain relocated", "slot", head)
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
}

// noExclusion is the exclude value for probeForEmpty callers that have no
// slot to reserve: no valid linear index ever equals it, since linear
// indices stay within [0, 16*capacity).
const noExclusion uint64 = ^uint64(0)

// probeForEmpty searches jump indices [start, maxJumpIndex] from base for
// one that lands on an empty slot, returning the jump index used, the
// slot's linear index, and whether one was found. The slot exclude is
// never considered a candidate even if its metadata reads empty: callers
// relocating a chain use this to reserve the slot they are still in the
// process of vacating, so a later cascade step can't reclaim it out from
// under the caller that is waiting for it to stay empty.
func (t *table[K, V]) probeForEmpty(base uint64, capacity uint64, start byte, exclude uint64) (j byte, linear uint64, ok bool) {
	for i := int(start); i <= maxJumpIndex; i++ {
		candidate := advanceLinear(base, capacity, byte(i))
		if candidate == exclude {
			continue
		}
		if metaIsEmpty(*t.metaAt(candidate)) {
			return byte(i), candidate, true
		}
	}
	return 0, 0, false
}

// findPredecessor walks the chain starting at head looking for the slot
// whose jump points at target, which must exist: target is occupied by a
// member of head's chain, and every chain member except the head is
// reached by exactly one predecessor's jump.
func (m *Map[K, V]) findPredecessor(head, target uint64) uint64 {
	capacity := m.t.groupCount
	cur := head
	for {
		j := metaJump(*m.t.metaAt(cur))
		m.assertInvariant(j != 0, "chain ended before reaching expected member", "head", head, "target", target)
		next := advanceLinear(cur, capacity, j)
		if next == target {
			return cur
		}
		cur = next
	}
}

// relocate moves the chain member occupying slot g (the "visitor") to a
// new slot elsewhere, along with however much of its own chain's
// remaining tail is needed to keep every link a valid jump-table offset,
// leaving g empty. It reports false if it ran out of probe room and the
// caller should grow the table and retry from scratch instead.
//
// A visitor's jump offsets are only valid relative to its own current
// slot. Moving it to a new slot invalidates any offset it stored to reach
// its own successor, so that successor has to move too, and so on down
// the chain, until a member with no successor is reached.
func (m *Map[K, V]) relocate(g uint64) bool {
	capacity := m.t.groupCount

	visitorMeta := *m.t.metaAt(g)
	m.assertInvariant(metaIsStorage(visitorMeta), "relocate called on a non-storage slot", "slot", g)

	visitorEntry := *m.t.entryAt(g)
	vHead := directHitLinear(m.hash(visitorEntry.key), capacity)
	predLinear := m.findPredecessor(vHead, g)
	predJump := metaJump(*m.t.metaAt(predLinear))

	toMoveLinear := g
	toMoveEntry := visitorEntry
	toMoveNextJump := metaJump(visitorMeta)

	for {
		// g is reserved for the caller's own insert (Case C installs the
		// caller's entry there once relocate returns) for the entire
		// cascade, not just while its original occupant is still sitting
		// in it: once cleared early in the loop, it would otherwise read
		// as empty and could be reclaimed by a later cascade step here.
		foundJ, foundLinear, ok := m.t.probeForEmpty(predLinear, capacity, predJump+1, g)
		if !ok {
			return false
		}

		*m.t.entryAt(foundLinear) = toMoveEntry
		*m.t.metaAt(foundLinear) = newMeta(true, 0)
		metaSetJump(m.t.metaAt(predLinear), foundJ)
		m.t.clearSlot(toMoveLinear)

		if toMoveNextJump == 0 {
			return true
		}

		nextLinear := advanceLinear(toMoveLinear, capacity, toMoveNextJump)
		nextEntry := *m.t.entryAt(nextLinear)
		nextJump := metaJump(*m.t.metaAt(nextLinear))

		predLinear = foundLinear
		predJump = 0
		toMoveLinear = nextLinear
		toMoveEntry = nextEntry
		toMoveNextJump = nextJump
	}
}
