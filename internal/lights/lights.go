package lights

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/screa/hashbrown-miner/internal/logger"
)

// Errors
var (
	ErrIndexOutOfRange = errors.New("light index out of range")
	ErrUnknownKind     = errors.New("unknown light kind")
	ErrUnknownPin      = errors.New("unknown gpio pin")

	ErrUnknownNumbering = errors.New("unknown pin numbering")
)

// Supported light kinds
const (
	KindGPIO = "gpio"
	KindLog  = "log"
	KindBar  = "bar"
	KindNone = "none"
)

// Pin numbering schemes for led_pins
const (
	NumberingBoard = "board"
	NumberingBCM   = "bcm"
)

// Pins lists the LED pins in light order. Numbers are physical header
// positions unless Numbering is bcm.
type Pins struct {
	Numbers   []int
	Numbering string
}

// IsNumbering reports whether s names a pin numbering; empty means board
func IsNumbering(s string) bool {
	switch strings.ToLower(s) {
	case "", NumberingBoard, NumberingBCM:
		return true
	}
	return false
}

// Bank is an ordered set of indicator lights addressed by index
type Bank interface {
	TurnOn(index int) error
	TurnOff(index int) error
	ResetAll() error
	Size() int
	Close() error
}

// Kinds returns the accepted values for New
func Kinds() []string {
	return []string{KindGPIO, KindLog, KindBar, KindNone}
}

// New builds the light bank selected by kind.
// size is used by the kinds that have no physical pins.
func New(kind string, pins Pins, size int, out io.Writer, log *logger.Logger) (Bank, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindGPIO:
		return NewGPIO(pins)
	case KindLog:
		return NewLog(size, log), nil
	case KindBar:
		return NewBar(size, out), nil
	case KindNone, "":
		return NewNone(size), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func checkIndex(index, size int) error {
	if index < 0 || index >= size {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, size)
	}
	return nil
}
