// Package rank implements the sort/filter stage between sampling and
// presentation. Ranking is a pure function: it never mutates its input
// and produces the same order for the same snapshot and key.
package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/procpeek/proc-peek/internal/errors"
	"github.com/procpeek/proc-peek/internal/procsource"
)

// Key selects which process attribute drives the ordering.
type Key int

const (
	ByCPU Key = iota
	ByMemory
	ByName
	ByPID
)

// String returns the CLI-facing name for the key.
func (k Key) String() string {
	switch k {
	case ByCPU:
		return "cpu"
	case ByMemory:
		return "memory"
	case ByName:
		return "name"
	case ByPID:
		return "pid"
	default:
		return "cpu"
	}
}

// Next cycles to the next key (cpu -> memory -> name -> pid -> cpu).
func (k Key) Next() Key {
	return Key((int(k) + 1) % 4)
}

// ParseKey converts a CLI sort argument into a Key.
// Unrecognized values produce a USAGE-coded error.
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu":
		return ByCPU, nil
	case "memory", "mem":
		return ByMemory, nil
	case "name":
		return ByName, nil
	case "pid":
		return ByPID, nil
	default:
		return ByCPU, errors.New(errors.ErrUsage,
			fmt.Sprintf("Unknown sort key: %q", s),
			"Valid sort keys are cpu, memory, name, pid")
	}
}

// Rank orders the records by key and returns at most limit of them.
//
// Ordering policy:
//   - cpu, memory: descending by value, ties broken by ascending PID
//   - name: ascending case-insensitive, ties broken by ascending PID
//   - pid: ascending
//
// A limit larger than the record count returns everything; limit < 0 is
// treated as unlimited. The input slice is never modified.
func Rank(records []procsource.Record, key Key, limit int) []procsource.Record {
	out := make([]procsource.Record, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], key)
	})

	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// less is the two-key comparator behind Rank. The PID tie-break keeps
// the order deterministic across refreshes so rows don't jitter when
// values are equal.
func less(a, b procsource.Record, key Key) bool {
	switch key {
	case ByCPU:
		if a.CPUPercent != b.CPUPercent {
			return a.CPUPercent > b.CPUPercent
		}
	case ByMemory:
		if a.MemoryBytes != b.MemoryBytes {
			return a.MemoryBytes > b.MemoryBytes
		}
	case ByName:
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an != bn {
			return an < bn
		}
	case ByPID:
		// fall through to the PID comparison below
	}
	return a.PID < b.PID
}
