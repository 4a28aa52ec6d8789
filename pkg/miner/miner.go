package miner

import (
	"context"
	"errors"
	"time"

	"github.com/screa/hashbrown-miner/internal/config"
	"github.com/screa/hashbrown-miner/internal/crypto"
	"github.com/screa/hashbrown-miner/internal/logger"
	"github.com/screa/hashbrown-miner/pkg/types"
	"github.com/screa/hashbrown-miner/pkg/worker"
)

// Errors
var (
	ErrEmptyRun = errors.New("simulation needs at least one cycle")
)

// Miner runs a simulation: independent cycles, one after another
type Miner struct {
	config   *config.Config
	logger   *logger.Logger
	lights   Lights
	digester worker.Digester
	cycle    *Cycle
}

// NewMiner creates a new miner instance for the configured algorithm
func NewMiner(cfg *config.Config, log *logger.Logger, lights Lights) (*Miner, error) {
	d, err := crypto.NewDigester(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	return NewMinerWithDigester(cfg, log, lights, d), nil
}

// NewMinerWithDigester creates a miner around an existing digester
func NewMinerWithDigester(cfg *config.Config, log *logger.Logger, lights Lights, d worker.Digester) *Miner {
	if log == nil {
		log = logger.Discard()
	}
	cycle := NewCycle(d, lights, log)
	cycle.SetBlink(cfg.BlinkCount, cfg.BlinkInterval)
	cycle.SetLogInterval(cfg.LogEvery())

	return &Miner{
		config:   cfg,
		logger:   log,
		lights:   lights,
		digester: d,
		cycle:    cycle,
	}
}

// Mine runs the configured number of cycles over message and summarizes them.
// When ctx is canceled the completed cycles are returned with the context error.
func (m *Miner) Mine(ctx context.Context, message []byte) (*types.Summary, error) {
	if m.config.Cycles < 1 {
		return nil, ErrEmptyRun
	}

	summary := &types.Summary{
		Algorithm:  m.digester.Name(),
		Difficulty: m.config.Difficulty,
		Started:    time.Now(),
		Cycles:     make([]*types.CycleResult, 0, m.config.Cycles),
	}
	defer m.resetLights()

	for i := 1; i <= m.config.Cycles; i++ {
		m.resetLights()

		result, err := m.cycle.Run(ctx, message, m.config.Difficulty)
		if err != nil {
			summarize(summary)
			return summary, err
		}
		result.Cycle = i
		summary.Cycles = append(summary.Cycles, result)

		m.logger.Printf("Cycle %d: %s (%d leading zero bits, %d attempts, %v)",
			i, result.Hash, result.LeadingZeros, result.Attempts, result.Duration)
	}

	summarize(summary)
	return summary, nil
}

// GetBestResult returns the best digest of the cycle in progress
func (m *Miner) GetBestResult() *types.Progress {
	return m.cycle.Best()
}

func (m *Miner) resetLights() {
	if err := m.lights.ResetAll(); err != nil {
		m.logger.Debugf("Lights reset: %v", err)
	}
}

// summarize fills the totals and the mean cycle time
func summarize(s *types.Summary) {
	s.TotalAttempts = 0
	s.AverageSecs = 0
	if len(s.Cycles) == 0 {
		return
	}

	var seconds float64
	for _, c := range s.Cycles {
		s.TotalAttempts += c.Attempts
		seconds += c.ElapsedSeconds()
	}
	s.AverageSecs = seconds / float64(len(s.Cycles))
}
