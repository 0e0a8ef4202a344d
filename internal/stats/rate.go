package stats

import "panetop/internal/metrics"

// InterfaceRate is the computed throughput for a single interface.
type InterfaceRate struct {
	Name     string
	RxPerSec float64
	TxPerSec float64
}

// Rates holds the throughput computed from two consecutive snapshots.
// RxPerSec/TxPerSec aggregate all tracked interfaces; PerInterface keeps
// the breakdown for the non-aggregated display mode.
type Rates struct {
	RxPerSec     float64
	TxPerSec     float64
	PerInterface []InterfaceRate
}

// RateTracker converts cumulative byte counters into instantaneous
// throughput. It holds exactly the previous snapshot; the snapshot is
// replaced, never merged, on every successful sample.
type RateTracker struct {
	last  *metrics.Snapshot
	rates Rates
}

// Update computes rates from the delta between snap and the previous
// snapshot.
//
// First sample: no previous snapshot exists, so all rates are 0.
// Counter reset: a counter that decreased (interface reset or wrap)
// contributes a rate of 0 for that tick instead of a negative value.
// Clock anomaly: zero or negative elapsed time keeps the previously
// reported rates and the previous snapshot unchanged; no division
// happens and no spike is reported.
func (t *RateTracker) Update(snap *metrics.Snapshot) Rates {
	if snap == nil {
		return t.rates
	}

	if t.last == nil {
		t.last = snap
		t.rates = Rates{PerInterface: zeroRates(snap.Interfaces)}
		return t.rates
	}

	elapsed := snap.Timestamp.Sub(t.last.Timestamp).Seconds()
	if elapsed <= 0 {
		return t.rates
	}

	prev := make(map[string]metrics.InterfaceCounters, len(t.last.Interfaces))
	for _, c := range t.last.Interfaces {
		prev[c.Name] = c
	}

	rates := Rates{}
	for _, c := range snap.Interfaces {
		r := InterfaceRate{Name: c.Name}
		if p, ok := prev[c.Name]; ok {
			r.RxPerSec = counterRate(c.RxBytes, p.RxBytes, elapsed)
			r.TxPerSec = counterRate(c.TxBytes, p.TxBytes, elapsed)
		}
		rates.PerInterface = append(rates.PerInterface, r)
		rates.RxPerSec += r.RxPerSec
		rates.TxPerSec += r.TxPerSec
	}

	t.last = snap
	t.rates = rates
	return t.rates
}

// Current returns the most recently reported rates.
func (t *RateTracker) Current() Rates {
	return t.rates
}

// counterRate computes a non-negative per-second rate from two cumulative
// counter readings.
func counterRate(now, before uint64, elapsed float64) float64 {
	if now < before {
		return 0
	}
	return float64(now-before) / elapsed
}

// zeroRates builds a zero-valued rate entry per interface so the display
// can list interfaces before the second sample arrives.
func zeroRates(counters []metrics.InterfaceCounters) []InterfaceRate {
	var rates []InterfaceRate
	for _, c := range counters {
		rates = append(rates, InterfaceRate{Name: c.Name})
	}
	return rates
}
