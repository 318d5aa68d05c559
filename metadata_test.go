package bytellmap

import "testing"

func TestMetaEmpty(t *testing.T) {
	if !metaIsEmpty(metaEmpty) {
		t.Fatalf("metaEmpty should be empty")
	}
	if metaIsEmpty(newMeta(false, 0)) {
		t.Fatalf("a freshly occupied byte should not be empty")
	}
}

func TestMetaRoleAndJump(t *testing.T) {
	tests := []struct {
		name    string
		storage bool
		jump    byte
	}{
		{"direct-hit no successor", false, 0},
		{"direct-hit with jump", false, 42},
		{"storage no successor", true, 0},
		{"storage with jump", true, 125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newMeta(tt.storage, tt.jump)
			if metaIsEmpty(b) {
				t.Fatalf("newMeta produced an empty byte")
			}
			if got := metaIsStorage(b); got != tt.storage {
				t.Errorf("metaIsStorage = %v, want %v", got, tt.storage)
			}
			if got := metaJump(b); got != tt.jump {
				t.Errorf("metaJump = %d, want %d", got, tt.jump)
			}
		})
	}
}

func TestMetaSetJumpPreservesRole(t *testing.T) {
	b := newMeta(true, 3)
	metaSetJump(&b, 10)
	if !metaIsStorage(b) {
		t.Errorf("metaSetJump flipped the role bit")
	}
	if metaJump(b) != 10 {
		t.Errorf("metaJump = %d, want 10", metaJump(b))
	}
}

func TestMetaSetJumpRejectsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic setting an out-of-range jump index")
		}
	}()
	var b byte
	metaSetJump(&b, 0x80)
}

func TestMetaSetEmpty(t *testing.T) {
	b := newMeta(true, 7)
	metaSetEmpty(&b)
	if !metaIsEmpty(b) {
		t.Errorf("metaSetEmpty did not produce the empty sentinel")
	}
}
