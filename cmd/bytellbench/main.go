// Command bytellbench runs a handful of insert/get workloads against both
// bytellmap and the stdlib map and writes a JSON comparison report.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/natefinch/atomic"
	"github.com/spf13/pflag"

	"github.com/wadelma/bytellmap"
)

type config struct {
	entries int
	lookups int
	seed    int64
	outPath string
}

type result struct {
	Workload  string        `json:"workload"`
	Container string        `json:"container"`
	Entries   int           `json:"entries"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

type report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Entries     int       `json:"entries"`
	Lookups     int       `json:"lookups"`
	Results     []result  `json:"results"`
}

func main() {
	cfg := config{}
	pflag.IntVar(&cfg.entries, "entries", 100_000, "number of keys to insert")
	pflag.IntVar(&cfg.lookups, "lookups", 1_000_000, "number of Get calls to time")
	pflag.Int64Var(&cfg.seed, "seed", 1, "PRNG seed for key generation")
	pflag.StringVar(&cfg.outPath, "out", "bytellbench-report.json", "path to write the JSON report to")
	pflag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "bytellbench:", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	keys := make([]int, cfg.entries)
	rng := rand.New(rand.NewSource(cfg.seed))
	for i := range keys {
		keys[i] = rng.Int()
	}

	rep := report{
		GeneratedAt: time.Now(),
		Entries:     cfg.entries,
		Lookups:     cfg.lookups,
	}

	rep.Results = append(rep.Results,
		benchmarkStdInsert(keys),
		benchmarkBytellInsert(keys),
		benchmarkStdGet(keys, cfg.lookups, rng),
		benchmarkBytellGet(keys, cfg.lookups, rng),
	)

	buf, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	// Atomic write so a crash or a concurrent read of the report file
	// never observes a half-written JSON document.
	if err := atomic.WriteFile(cfg.outPath, bytes.NewReader(buf)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Printf("wrote %s\n", cfg.outPath)
	return nil
}

func benchmarkStdInsert(keys []int) result {
	start := time.Now()
	m := make(map[int]int, len(keys))
	for _, k := range keys {
		m[k] = k
	}
	return result{Workload: "insert", Container: "map[int]int", Entries: len(keys), Elapsed: time.Since(start)}
}

func benchmarkBytellInsert(keys []int) result {
	start := time.Now()
	m := bytellmap.NewWithCapacity[int, int](bytellmap.NewMapHasherFactory[int](), len(keys))
	for _, k := range keys {
		m.Insert(k, k)
	}
	return result{Workload: "insert", Container: "bytellmap.Map", Entries: len(keys), Elapsed: time.Since(start)}
}

func benchmarkStdGet(keys []int, lookups int, rng *rand.Rand) result {
	m := make(map[int]int, len(keys))
	for _, k := range keys {
		m[k] = k
	}
	start := time.Now()
	for i := 0; i < lookups; i++ {
		_ = m[keys[rng.Intn(len(keys))]]
	}
	return result{Workload: "get", Container: "map[int]int", Entries: len(keys), Elapsed: time.Since(start)}
}

func benchmarkBytellGet(keys []int, lookups int, rng *rand.Rand) result {
	m := bytellmap.NewWithCapacity[int, int](bytellmap.NewMapHasherFactory[int](), len(keys))
	for _, k := range keys {
		m.Insert(k, k)
	}
	start := time.Now()
	for i := 0; i < lookups; i++ {
		_, _ = m.Get(keys[rng.Intn(len(keys))])
	}
	return result{Workload: "get", Container: "bytellmap.Map", Entries: len(keys), Elapsed: time.Since(start)}
}
