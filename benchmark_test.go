package bytellmap

import "testing"

func BenchmarkInsert1K_Std(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := make(map[int]int, 1024)
		for k := 0; k < 1000; k++ {
			m[k] = k
		}
	}
}

func BenchmarkInsert1K_Bytell(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := NewDefault[int, int]()
		for k := 0; k < 1000; k++ {
			m.Insert(k, k)
		}
	}
}

func BenchmarkGet1K_Hit_Std(b *testing.B) {
	m := make(map[int]int, 1024)
	for k := 0; k < 1000; k++ {
		m[k] = k
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[i%1000]
	}
}

func BenchmarkGet1K_Hit_Bytell(b *testing.B) {
	m := NewDefault[int, int]()
	for k := 0; k < 1000; k++ {
		m.Insert(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(i % 1000)
	}
}

func BenchmarkRange1K_Bytell(b *testing.B) {
	m := NewDefault[int, int]()
	for k := 0; k < 1000; k++ {
		m.Insert(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		m.Range(func(_ int, v int) bool {
			sum += v
			return true
		})
	}
}
