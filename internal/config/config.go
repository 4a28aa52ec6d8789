package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/screa/hashbrown-miner/internal/crypto"
	"github.com/screa/hashbrown-miner/internal/lights"
	"github.com/screa/hashbrown-miner/pkg/difficulty"
)

// Errors
var (
	ErrInvalidCycles     = errors.New("cycles must be an integer greater than 0")
	ErrInvalidDifficulty = fmt.Errorf("difficulty must be an integer between [%d : %d]", difficulty.DifficultyMin, difficulty.DifficultyMax)
	ErrNoAlgorithm       = errors.New("must specify --algorithm")
	ErrUnknownLights     = errors.New("unknown --lights kind")
	ErrNoLEDPins         = errors.New("gpio lights need led_pins in the block file")
)

// Config holds the application configuration
type Config struct {
	Cycles        int
	Difficulty    int
	Algorithm     string
	BlockFile     string
	Lights        string
	Interactive   bool
	Verbose       bool
	LogFile       string
	LogInterval   int // Logging interval in seconds
	History       string
	BlinkCount    int
	BlinkInterval time.Duration
	HostInfo      bool
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Cycles:        1,
		Difficulty:    8,
		Algorithm:     crypto.DefaultAlgorithm,
		BlockFile:     "config.json",
		Lights:        lights.KindLog,
		LogInterval:   5, // Default 5 seconds
		BlinkCount:    4,
		BlinkInterval: time.Second,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Cycles < 1 {
		return ErrInvalidCycles
	}
	if !difficulty.InRange(c.Difficulty) {
		return ErrInvalidDifficulty
	}
	if c.Algorithm == "" {
		return ErrNoAlgorithm
	}
	if !crypto.IsSupported(c.Algorithm) {
		return fmt.Errorf("%w: %q", crypto.ErrUnsupportedAlgorithm, c.Algorithm)
	}
	if !isLightKind(c.Lights) {
		return fmt.Errorf("%w: %q", ErrUnknownLights, c.Lights)
	}
	return nil
}

// ValidateBlock checks the block file against the selected lights
func (c *Config) ValidateBlock(b *Block) error {
	if c.Lights == lights.KindGPIO && len(b.LEDPins) == 0 {
		return ErrNoLEDPins
	}
	if !lights.IsNumbering(b.PinNumbering) {
		return fmt.Errorf("%w: %q", lights.ErrUnknownNumbering, b.PinNumbering)
	}
	return nil
}

// LogEvery returns the progress logging interval
func (c *Config) LogEvery() time.Duration {
	return time.Duration(c.LogInterval) * time.Second
}

// Describe returns a human-readable description of the run
func (c *Config) Describe() string {
	noun := "cycles"
	if c.Cycles == 1 {
		noun = "cycle"
	}
	return fmt.Sprintf("%d %s of %s at difficulty %d", c.Cycles, noun, crypto.NormalizeName(c.Algorithm), c.Difficulty)
}

func isLightKind(kind string) bool {
	for _, k := range lights.Kinds() {
		if kind == k {
			return true
		}
	}
	return false
}
