package lights

import (
	"strings"

	"github.com/screa/hashbrown-miner/internal/logger"
)

// Log stands in for the LED bank by logging every state change
type Log struct {
	lit    []bool
	logger *logger.Logger
}

// NewLog creates a logging light bank with size lights
func NewLog(size int, log *logger.Logger) *Log {
	if log == nil {
		log = logger.Discard()
	}
	return &Log{lit: make([]bool, size), logger: log}
}

func (l *Log) TurnOn(index int) error {
	return l.set(index, true)
}

func (l *Log) TurnOff(index int) error {
	return l.set(index, false)
}

func (l *Log) ResetAll() error {
	changed := false
	for i, on := range l.lit {
		changed = changed || on
		l.lit[i] = false
	}
	if changed {
		l.logger.Printf("Lights: %s", l.String())
	}
	return nil
}

func (l *Log) Size() int {
	return len(l.lit)
}

func (l *Log) Close() error {
	return l.ResetAll()
}

// String renders the bank, e.g. "**......" for two lit lights
func (l *Log) String() string {
	var b strings.Builder
	b.Grow(len(l.lit))
	for _, on := range l.lit {
		if on {
			b.WriteByte('*')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func (l *Log) set(index int, on bool) error {
	if err := checkIndex(index, len(l.lit)); err != nil {
		return err
	}
	if l.lit[index] == on {
		return nil
	}
	l.lit[index] = on
	l.logger.Printf("Lights: %s", l.String())
	return nil
}
