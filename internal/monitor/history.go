package monitor

import (
	"sync"

	"github.com/procpeek/proc-peek/internal/procsource"
)

// DefaultHistorySize is the default number of data points to retain per process.
const DefaultHistorySize = 60

// History tracks per-process CPU usage over time using ring buffers,
// feeding the sparkline in the detail view. Thread-safe because samples
// arrive from bubbletea command goroutines.
type History struct {
	mu    sync.RWMutex
	size  int
	procs map[int32]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a new history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:  size,
		procs: make(map[int32]*ringBuffer),
	}
}

// Push records the CPU usage of every process in the snapshot.
func (h *History) Push(records []procsource.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, rec := range records {
		buf, ok := h.procs[rec.PID]
		if !ok {
			buf = newRingBuffer(h.size)
			h.procs[rec.PID] = buf
		}
		buf.push(rec.CPUPercent)
	}
}

// Prune drops history for processes no longer present, so exited PIDs
// don't accumulate buffers forever (PIDs are recycled by the OS).
func (h *History) Prune(records []procsource.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()

	live := make(map[int32]bool, len(records))
	for _, rec := range records {
		live[rec.PID] = true
	}

	for pid := range h.procs {
		if !live[pid] {
			delete(h.procs, pid)
		}
	}
}

// CPUHistory returns the last count CPU percentage values for the
// specified process. Returns fewer values if not enough history is
// available, nil if the PID is unknown.
func (h *History) CPUHistory(pid int32, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.procs[pid]
	if !ok {
		return nil
	}
	return buf.getLast(count)
}

// Len returns the number of processes currently tracked.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.procs)
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value, overwriting the oldest when full.
func (r *ringBuffer) push(val float64) {
	r.data[r.head] = val
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns up to count values, oldest first.
func (r *ringBuffer) getLast(count int) []float64 {
	if count > r.count {
		count = r.count
	}
	if count <= 0 {
		return nil
	}

	out := make([]float64, count)
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		out[i] = r.data[(start+i)%r.size]
	}
	return out
}
