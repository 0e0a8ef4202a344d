// Package stats holds the sampling core of the monitor: bounded metric
// history, throughput rate tracking, the refresh schedule decision, and
// the single mutable state value threaded through the render loop.
package stats

// DefaultHistorySize is the default number of data points retained per metric.
const DefaultHistorySize = 240

// Ring is a fixed-size circular buffer for float64 samples. Capacity is
// fixed at construction; pushing into a full ring evicts the oldest
// sample, so memory stays bounded regardless of process uptime.
type Ring struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewRing creates a ring buffer with the specified capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &Ring{
		data: make([]float64, capacity),
		size: capacity,
	}
}

// Push adds a value, evicting the oldest when full.
func (r *Ring) Push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// Last returns the last count values in chronological order (oldest first).
// Returns fewer values if not enough history is available.
func (r *Ring) Last(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value is
	// at head-1. We want 'count' values ending there.
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		idx := (start + i) % r.size
		result[i] = r.data[idx]
	}

	return result
}

// Values returns all stored values in chronological order.
func (r *Ring) Values() []float64 {
	return r.Last(r.count)
}

// Len returns the number of stored values.
func (r *Ring) Len() int {
	return r.count
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int {
	return r.size
}
