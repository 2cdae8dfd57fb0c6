// Package procsource captures point-in-time snapshots of the OS process
// table. The default implementation sits on gopsutil so the same code
// serves Linux, macOS, and Windows; tests substitute a fake behind the
// ProcessSource interface.
package procsource

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/procpeek/proc-peek/internal/errors"
	"github.com/procpeek/proc-peek/internal/logger"
)

// ProcessSource enumerates processes and resolves per-process detail.
// Snapshot returns an error only when the whole capture is unusable;
// individual unreadable processes are dropped and counted in
// Snapshot.Skipped.
type ProcessSource interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
	Detail(ctx context.Context, pid int32) (*Detail, error)
	Overview(ctx context.Context) (*Overview, error)
}

// SystemSource reads the live process table via gopsutil. The
// enumerate and read seams let tests stand in for the OS calls.
type SystemSource struct {
	log logger.Logger

	enumerate func(ctx context.Context) ([]*process.Process, error)
	read      func(ctx context.Context, p *process.Process) (Record, error)
}

// NewSystemSource creates a ProcessSource backed by the local OS.
func NewSystemSource() *SystemSource {
	return &SystemSource{
		log:       logger.NewEnvLogger("[procsource]"),
		enumerate: process.ProcessesWithContext,
		read:      readRecord,
	}
}

// SetLogger replaces the source's logger. Used by tests.
func (s *SystemSource) SetLogger(l logger.Logger) {
	s.log = l
}

// Snapshot captures every process visible to the current user.
// Processes that disappear or deny access mid-capture are skipped and
// counted; only a failure to enumerate PIDs at all is fatal.
func (s *SystemSource) Snapshot(ctx context.Context) (*Snapshot, error) {
	procs, err := s.enumerate(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSample,
			"Failed to enumerate processes",
			"The OS process table could not be read on this platform")
	}

	snap := &Snapshot{
		Records: make([]Record, 0, len(procs)),
		Taken:   time.Now(),
	}

	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrSample,
				"Snapshot cancelled",
				"")
		}

		rec, err := s.read(ctx, p)
		if err != nil {
			// Exited or protected process; omit it rather than abort.
			snap.Skipped++
			continue
		}

		snap.Records = append(snap.Records, rec)
	}

	if snap.Skipped > 0 {
		s.log.Debug("snapshot: %d processes captured, %d skipped", len(snap.Records), snap.Skipped)
	}

	return snap, nil
}

// readRecord captures one process. A process that cannot even be named
// has exited or is protected; the caller omits it from the snapshot.
func readRecord(ctx context.Context, p *process.Process) (Record, error) {
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return Record{}, err
	}

	rec := Record{PID: p.Pid, Name: name}

	// Best effort from here on: a process we can name but not fully
	// inspect still earns a row with zeroed fields.
	if cpuPct, err := p.CPUPercentWithContext(ctx); err == nil {
		rec.CPUPercent = cpuPct
	}
	if memPct, err := p.MemoryPercentWithContext(ctx); err == nil {
		rec.MemoryPercent = memPct
	}
	if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
		rec.MemoryBytes = mi.RSS
	}
	if user, err := p.UsernameWithContext(ctx); err == nil {
		rec.User = user
	}
	if st, err := p.StatusWithContext(ctx); err == nil && len(st) > 0 {
		rec.Status = st[0]
	}

	return rec, nil
}

// Detail resolves the full attribute set for one process.
// Returns a SAMPLE-coded error only when the process itself is gone;
// access-denied sub-fields degrade to zero values.
func (s *SystemSource) Detail(ctx context.Context, pid int32) (*Detail, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSample,
			"Process no longer exists",
			"It may have exited since the last refresh")
	}

	d := &Detail{PID: pid}

	if name, err := p.NameWithContext(ctx); err == nil {
		d.Name = name
	}
	if st, err := p.StatusWithContext(ctx); err == nil && len(st) > 0 {
		d.Status = st[0]
	}
	if user, err := p.UsernameWithContext(ctx); err == nil {
		d.User = user
	}
	if cmdline, err := p.CmdlineWithContext(ctx); err == nil {
		d.Cmdline = cmdline
	}
	if exe, err := p.ExeWithContext(ctx); err == nil {
		d.Exe = exe
	}
	if cpuPct, err := p.CPUPercentWithContext(ctx); err == nil {
		d.CPUPercent = cpuPct
	}
	if memPct, err := p.MemoryPercentWithContext(ctx); err == nil {
		d.MemPercent = memPct
	}
	if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
		d.MemoryRSS = mi.RSS
		d.MemoryVMS = mi.VMS
	}
	if created, err := p.CreateTimeWithContext(ctx); err == nil && created > 0 {
		d.Created = time.UnixMilli(created)
	}
	if io, err := p.IOCountersWithContext(ctx); err == nil && io != nil {
		d.IOReadBytes = io.ReadBytes
		d.IOWriteBytes = io.WriteBytes
	}

	return d, nil
}

// Overview gathers the host-level summary for the TUI header.
// Any individual metric that fails is left at its zero value; the
// header simply shows less.
func (s *SystemSource) Overview(ctx context.Context) (*Overview, error) {
	ov := &Overview{}

	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		ov.CPUPercent = pcts[0]
	}
	if cores, err := cpu.CountsWithContext(ctx, true); err == nil {
		ov.Cores = cores
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil && vm != nil {
		ov.MemUsed = vm.Used
		ov.MemTotal = vm.Total
		ov.MemPercent = vm.UsedPercent
	}
	if uptime, err := host.UptimeWithContext(ctx); err == nil {
		ov.Uptime = time.Duration(uptime) * time.Second
	}
	if pids, err := process.PidsWithContext(ctx); err == nil {
		ov.ProcessCount = len(pids)
	}

	return ov, nil
}
