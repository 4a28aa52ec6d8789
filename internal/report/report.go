package report

import (
	"fmt"
	"io"
	"runtime"

	"github.com/screa/hashbrown-miner/pkg/types"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Host describes the machine a simulation ran on
type Host struct {
	CPUModel    string
	LogicalCPUs int
	MemoryTotal uint64
}

// DetectHost reads CPU and memory information. Missing fields are left empty.
func DetectHost() *Host {
	h := &Host{LogicalCPUs: runtime.NumCPU()}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		h.CPUModel = infos[0].ModelName
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		h.LogicalCPUs = n
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		h.MemoryTotal = vm.Total
	}
	return h
}

func (h *Host) String() string {
	model := h.CPUModel
	if model == "" {
		model = "unknown CPU"
	}
	return fmt.Sprintf("%s, %d logical cores, %.1f GiB memory",
		model, h.LogicalCPUs, float64(h.MemoryTotal)/(1<<30))
}

// Write prints the statistics of a run. host may be nil.
func Write(w io.Writer, s *types.Summary, host *Host) error {
	ew := &errWriter{w: w}

	ew.printf("Statistics:\n")
	ew.printf("Algorithm: %s, difficulty %d\n", s.Algorithm, s.Difficulty)
	for _, c := range s.Cycles {
		ew.printf("Cycle %d:\n", c.Cycle)
		ew.printf("\tTime : %.6f\n", c.ElapsedSeconds())
		ew.printf("\tFound Hash: %s\n", c.Hash)
		ew.printf("\tNonce: %d (%d attempts)\n", c.Nonce, c.Attempts)
	}
	ew.printf("Average Time: %.6f\n", s.AverageSeconds())
	ew.printf("Total Attempts: %d\n", s.TotalAttempts)
	ew.printf("Rate: %.2f hashes/sec\n", s.HashRate())
	if host != nil {
		ew.printf("Host: %s\n", host)
	}
	return ew.err
}

// WriteProgress prints the best digest of an interrupted cycle
func WriteProgress(w io.Writer, p *types.Progress) error {
	ew := &errWriter{w: w}
	if p == nil {
		ew.printf("No digest computed yet.\n")
		return ew.err
	}
	ew.printf("Current best result:\n")
	ew.printf("\tHash: %s\n", p.Hash)
	ew.printf("\tLeading zero bits: %d\n", p.LeadingZeros)
	ew.printf("\tNonce: %d (%d attempts)\n", p.Nonce, p.Attempts)
	ew.printf("\tDuration: %v\n", p.Duration)
	return ew.err
}

// errWriter keeps the first write error
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
