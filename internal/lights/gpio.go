package lights

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/pin/pinreg"
	"periph.io/x/host/v3"
)

// Raspberry Pi 40 pin header, as registered by the host drivers
const header = "P1"

// GPIO drives one LED per GPIO pin, in the configured order
type GPIO struct {
	pins []gpio.PinOut
}

// NewGPIO initializes the host drivers and claims the given pins
func NewGPIO(pins Pins) (*GPIO, error) {
	if len(pins.Numbers) == 0 {
		return nil, fmt.Errorf("%w: no pins configured", ErrUnknownPin)
	}
	if !IsNumbering(pins.Numbering) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNumbering, pins.Numbering)
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio host init: %w", err)
	}

	outs := make([]gpio.PinOut, 0, len(pins.Numbers))
	for _, n := range pins.Numbers {
		p, err := lookupPin(n, pins.Numbering, header)
		if err != nil {
			return nil, err
		}
		outs = append(outs, p)
	}
	return newGPIOFromPins(outs)
}

// lookupPin resolves a configured number. Board numbers are physical
// positions on the named header, BCM numbers are SoC GPIO lines.
func lookupPin(n int, numbering, headerName string) (gpio.PinOut, error) {
	if strings.EqualFold(numbering, NumberingBCM) {
		p := gpioreg.ByName(strconv.Itoa(n))
		if p == nil {
			return nil, fmt.Errorf("%w: GPIO%d", ErrUnknownPin, n)
		}
		return p, nil
	}

	rows := pinreg.All()[headerName]
	row, col := (n-1)/2, (n-1)%2
	if n < 1 || row >= len(rows) || col >= len(rows[row]) {
		return nil, fmt.Errorf("%w: %s pin %d", ErrUnknownPin, headerName, n)
	}
	p, ok := rows[row][col].(gpio.PinOut)
	if !ok {
		return nil, fmt.Errorf("%w: %s pin %d is not a gpio", ErrUnknownPin, headerName, n)
	}
	return p, nil
}

func newGPIOFromPins(pins []gpio.PinOut) (*GPIO, error) {
	g := &GPIO{pins: pins}
	if err := g.ResetAll(); err != nil {
		return nil, err
	}
	return g, nil
}

// TurnOn drives the pin at index high
func (g *GPIO) TurnOn(index int) error {
	return g.set(index, gpio.High)
}

// TurnOff drives the pin at index low
func (g *GPIO) TurnOff(index int) error {
	return g.set(index, gpio.Low)
}

// ResetAll drives every pin low
func (g *GPIO) ResetAll() error {
	var errs []error
	for i := range g.pins {
		if err := g.set(i, gpio.Low); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the number of pins
func (g *GPIO) Size() int {
	return len(g.pins)
}

// Close turns every light off and releases the pins
func (g *GPIO) Close() error {
	err := g.ResetAll()
	for _, p := range g.pins {
		err = errors.Join(err, p.Halt())
	}
	return err
}

func (g *GPIO) set(index int, level gpio.Level) error {
	if err := checkIndex(index, len(g.pins)); err != nil {
		return err
	}
	if err := g.pins[index].Out(level); err != nil {
		return fmt.Errorf("gpio %s: %w", g.pins[index].Name(), err)
	}
	return nil
}
