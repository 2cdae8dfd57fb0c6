package procsource

import "time"

// Record is one process as captured at sample time. Records are produced
// fresh on every snapshot and never updated in place.
type Record struct {
	PID           int32
	Name          string
	CPUPercent    float64
	MemoryPercent float32
	MemoryBytes   uint64 // resident set size
	User          string
	Status        string
}

// Snapshot is a point-in-time capture of all visible processes.
// Skipped counts processes that could not be read (permission denied,
// exited mid-enumeration) and were omitted rather than aborting the
// whole capture.
type Snapshot struct {
	Records []Record
	Skipped int
	Taken   time.Time
}

// Detail carries the full attribute set for a single process, shown in
// the TUI detail view. Fields the OS refuses to disclose degrade to
// zero values instead of failing the lookup.
type Detail struct {
	PID          int32
	Name         string
	Status       string
	User         string
	Cmdline      string
	Exe          string
	CPUPercent   float64
	MemPercent   float32
	MemoryRSS    uint64
	MemoryVMS    uint64
	Created      time.Time
	IOReadBytes  uint64
	IOWriteBytes uint64
}

// Overview is the host-level summary shown in the TUI header.
type Overview struct {
	CPUPercent   float64
	Cores        int
	MemUsed      uint64
	MemTotal     uint64
	MemPercent   float64
	Uptime       time.Duration
	ProcessCount int
}
