package lights

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Bar renders the light bank as a console progress bar.
// The bar length tracks the highest lit light.
type Bar struct {
	bar *progressbar.ProgressBar
	lit []bool
}

// NewBar creates a progress bar bank with size lights writing to out
func NewBar(size int, out io.Writer) *Bar {
	if out == nil {
		out = os.Stderr
	}
	bar := progressbar.NewOptions(size,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("difficulty"),
		progressbar.OptionSetWidth(size),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
	)
	return &Bar{bar: bar, lit: make([]bool, size)}
}

func (b *Bar) TurnOn(index int) error {
	if err := checkIndex(index, len(b.lit)); err != nil {
		return err
	}
	b.lit[index] = true
	return b.render()
}

func (b *Bar) TurnOff(index int) error {
	if err := checkIndex(index, len(b.lit)); err != nil {
		return err
	}
	b.lit[index] = false
	return b.render()
}

func (b *Bar) ResetAll() error {
	for i := range b.lit {
		b.lit[i] = false
	}
	return b.render()
}

func (b *Bar) Size() int {
	return len(b.lit)
}

func (b *Bar) Close() error {
	return b.bar.Clear()
}

// Level returns the number of lights up to and including the highest lit one
func (b *Bar) Level() int {
	for i := len(b.lit) - 1; i >= 0; i-- {
		if b.lit[i] {
			return i + 1
		}
	}
	return 0
}

func (b *Bar) render() error {
	return b.bar.Set(b.Level())
}
