package pipeline

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	durationUs int64
}

// StatsSnapshot is a point-in-time aggregate of block compile latencies.
type StatsSnapshot struct {
	Count int     `json:"count"`
	MinUs int64   `json:"min_us"`
	MaxUs int64   `json:"max_us"`
	AvgUs float64 `json:"avg_us"`
	P50Us float64 `json:"p50_us"`
	P95Us float64 `json:"p95_us"`
	P99Us float64 `json:"p99_us"`
}

// CompileStats tracks recent block compile latencies within a rolling window.
type CompileStats struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
}

func NewCompileStats(maxAge time.Duration) *CompileStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &CompileStats{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
	}
}

func (s *CompileStats) Record(d time.Duration) {
	us := d.Microseconds()
	if us < 0 {
		us = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples = append(s.samples, sample{
		timestamp:  now,
		durationUs: us,
	})
}

func (s *CompileStats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	if len(s.samples) == 0 {
		return StatsSnapshot{}
	}

	values := make([]int64, 0, len(s.samples))
	var sum int64
	for _, sm := range s.samples {
		values = append(values, sm.durationUs)
		sum += sm.durationUs
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return StatsSnapshot{
		Count: len(values),
		MinUs: values[0],
		MaxUs: values[len(values)-1],
		AvgUs: float64(sum) / float64(len(values)),
		P50Us: percentile(values, 50),
		P95Us: percentile(values, 95),
		P99Us: percentile(values, 99),
	}
}

func (s *CompileStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	n := 0
	for _, sm := range s.samples {
		if !sm.timestamp.Before(cutoff) {
			s.samples[n] = sm
			n++
		}
	}
	s.samples = s.samples[:n]
}

// percentile interpolates linearly between the two nearest ranks.
func percentile(sorted []int64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sorted[0])
	}
	if pct >= 100 {
		return float64(sorted[len(sorted)-1])
	}

	rank := (float64(len(sorted)-1) * pct) / 100.0
	lower := int(rank)
	if lower+1 >= len(sorted) {
		return float64(sorted[lower])
	}
	lo := float64(sorted[lower])
	hi := float64(sorted[lower+1])
	return lo + (hi-lo)*(rank-float64(lower))
}
