package miner

import (
	"context"
	"time"

	"github.com/screa/hashbrown-miner/internal/crypto"
	"github.com/screa/hashbrown-miner/internal/logger"
	"github.com/screa/hashbrown-miner/pkg/difficulty"
	"github.com/screa/hashbrown-miner/pkg/types"
	"github.com/screa/hashbrown-miner/pkg/worker"
)

// checkInterval is how many attempts pass between context and log checks
const checkInterval = 1 << 12

// Cycle searches for one digest that meets a difficulty target
type Cycle struct {
	digester    worker.Digester
	lights      Lights
	logger      *logger.Logger
	logInterval time.Duration

	blinkCount    int
	blinkInterval time.Duration
	sleep         func(time.Duration)

	seed      uint64 // zero draws a random seed per run
	best      *types.Progress
	bestCount int
}

// NewCycle creates a cycle hashing with d and reporting progress on lights
func NewCycle(d worker.Digester, lights Lights, log *logger.Logger) *Cycle {
	if log == nil {
		log = logger.Discard()
	}
	return &Cycle{
		digester:    d,
		lights:      lights,
		logger:      log,
		logInterval: 5 * time.Second,
		sleep:       time.Sleep,
	}
}

// SetBlink configures the success blink; a zero count disables it
func (c *Cycle) SetBlink(count int, interval time.Duration) {
	c.blinkCount = count
	c.blinkInterval = interval
}

// SetLogInterval sets how often verbose progress lines are written
func (c *Cycle) SetLogInterval(d time.Duration) {
	if d > 0 {
		c.logInterval = d
	}
}

// Run hashes message with an increasing nonce until a digest has at least
// target leading zero bits. The search has no attempt limit; it only stops
// early when ctx is canceled.
func (c *Cycle) Run(ctx context.Context, message []byte, target int) (*types.CycleResult, error) {
	w := worker.NewWithDigester(c.digester, c.seed)
	w.SetData(message)
	bitWidth := c.digester.BitWidth()

	c.best = nil
	c.bestCount = 0

	start := time.Now()
	lastLog := start

	for {
		digest, err := w.NextDigest()
		if err != nil {
			return nil, err
		}

		count := difficulty.LeadingZeroBits(digest, bitWidth)
		if difficulty.MeetsTarget(count, target) {
			result := &types.CycleResult{
				Hash:         crypto.HexString(digest),
				Nonce:        w.Nonce(),
				LeadingZeros: count,
				Attempts:     w.Attempts(),
				Duration:     time.Since(start),
			}
			c.success()
			return result, nil
		}

		if c.best == nil || count > c.bestCount {
			c.best = &types.Progress{
				Hash:         crypto.HexString(digest),
				Nonce:        w.Nonce(),
				LeadingZeros: count,
				Attempts:     w.Attempts(),
				Duration:     time.Since(start),
			}
			if count > c.bestCount {
				c.bestCount = count
				c.progressAdvanced(count)
			}
		}

		if w.Attempts()%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				c.best.Attempts = w.Attempts()
				c.best.Duration = time.Since(start)
				return nil, err
			}
			if c.logger.Verbose() && time.Since(lastLog) >= c.logInterval {
				lastLog = time.Now()
				elapsed := lastLog.Sub(start)
				c.logger.Printf("Progress: %d attempts, %.2f hashes/sec, best %d/%d leading zero bits",
					w.Attempts(), rate(w.Attempts(), elapsed), c.bestCount, target)
			}
		}
	}
}

// Best returns the best rejected digest of the current or last run
func (c *Cycle) Best() *types.Progress {
	return c.best
}

// BestCount returns the best-progress marker of the current or last run
func (c *Cycle) BestCount() int {
	return c.bestCount
}

// progressAdvanced lights the indicator for a new best count
func (c *Cycle) progressAdvanced(count int) {
	c.logger.Debugf("New best: %d leading zero bits", count)
	if count < 1 || count > difficulty.DifficultyMax {
		return
	}
	if err := c.lights.TurnOn(count - 1); err != nil {
		c.logger.Debugf("Light %d: %v", count-1, err)
	}
}

// success blinks the whole bank
func (c *Cycle) success() {
	for i := 0; i < c.blinkCount; i++ {
		c.resetLights()
		c.sleep(c.blinkInterval)
		c.allOn()
	}
}

func (c *Cycle) resetLights() {
	if err := c.lights.ResetAll(); err != nil {
		c.logger.Debugf("Lights reset: %v", err)
	}
}

func (c *Cycle) allOn() {
	n := min(c.lights.Size(), difficulty.DifficultyMax)
	for i := 0; i < n; i++ {
		if err := c.lights.TurnOn(i); err != nil {
			c.logger.Debugf("Light %d: %v", i, err)
		}
	}
}

func rate(attempts int64, elapsed time.Duration) float64 {
	if elapsed.Seconds() <= 0 {
		return 0
	}
	return float64(attempts) / elapsed.Seconds()
}
