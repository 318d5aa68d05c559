package bytellmap

import (
	"sort"
	"testing"
)

func TestRangeVisitsEveryEntryOnce(t *testing.T) {
	m := newIdentityMap[int]()
	want := map[uint64]int{1: 1, 16: 16, 2: 4, 33: 99}
	for k, v := range want {
		m.Insert(k, v)
	}

	got := make(map[uint64]int)
	m.Range(func(k uint64, v int) bool {
		got[k] = v
		return true
	})

	if len(got) != len(want) {
		t.Fatalf("Range visited %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Range entry %d = %d, want %d", k, got[k], v)
		}
	}
}

func TestRangeStopsOnFalse(t *testing.T) {
	m := newIdentityMap[int]()
	for i := 0; i < 5; i++ {
		m.Insert(uint64(i), i)
	}
	count := 0
	m.Range(func(uint64, int) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Fatalf("Range called f %d times, want exactly 2", count)
	}
}

func TestKeysMatchesRange(t *testing.T) {
	m := newIdentityMap[int]()
	for i := 0; i < 6; i++ {
		m.Insert(uint64(i), i)
	}
	keys := m.Keys()
	if len(keys) != 6 {
		t.Fatalf("len(Keys()) = %d, want 6", len(keys))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for i, k := range keys {
		if k != uint64(i) {
			t.Errorf("Keys()[%d] = %d, want %d", i, k, i)
		}
	}
}
