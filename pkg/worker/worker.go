package worker

import (
	"errors"
	"math/rand/v2"
	"strconv"

	"github.com/screa/hashbrown-miner/internal/crypto"
)

// Errors
var (
	ErrNoDataSet = errors.New("no data to hash")
)

// MaxSeed bounds the random starting nonce
const MaxSeed = 100000000

// Worker holds the message and nonce of a single mining cycle.
// It is not safe for concurrent use.
type Worker struct {
	digester Digester
	data     []byte
	hasData  bool
	nonce    uint64
	attempts int64

	// Pre-allocated buffer: data || decimal(nonce)
	buf []byte
}

// New creates a worker for the named algorithm.
// The algorithm is validated before any nonce is drawn.
func New(algorithm string) (*Worker, error) {
	d, err := crypto.NewDigester(algorithm)
	if err != nil {
		return nil, err
	}
	return NewWithDigester(d, 0), nil
}

// NewWithDigester creates a worker around an existing digester.
// A zero seed draws a random one.
func NewWithDigester(d Digester, seed uint64) *Worker {
	w := &Worker{digester: d}
	w.reseed(seed)
	return w
}

// RandomSeed returns a random nonce in [1, MaxSeed]
func RandomSeed() uint64 {
	return rand.Uint64N(MaxSeed) + 1
}

// SetData sets the message the nonce is appended to
func (w *Worker) SetData(data []byte) {
	w.data = append(w.data[:0], data...)
	w.hasData = true
	w.buf = append(w.buf[:0], w.data...)
}

// NextDigest advances the nonce and returns the digest of data || nonce
func (w *Worker) NextDigest() ([]byte, error) {
	if !w.hasData {
		return nil, ErrNoDataSet
	}
	w.nonce++
	w.attempts++
	w.buf = strconv.AppendUint(w.buf[:len(w.data)], w.nonce, 10)
	return w.digester.Digest(w.buf), nil
}

// Reset drops the data and draws a fresh nonce
func (w *Worker) Reset() {
	w.data = w.data[:0]
	w.hasData = false
	w.buf = w.buf[:0]
	w.reseed(0)
}

// Nonce returns the nonce used for the last digest
func (w *Worker) Nonce() uint64 {
	return w.nonce
}

// Attempts returns how many digests have been produced since the last seed
func (w *Worker) Attempts() int64 {
	return w.attempts
}

// BitWidth returns the digest width of the underlying algorithm
func (w *Worker) BitWidth() int {
	return w.digester.BitWidth()
}

// Algorithm returns the digester name
func (w *Worker) Algorithm() string {
	return w.digester.Name()
}

func (w *Worker) reseed(seed uint64) {
	if seed == 0 {
		seed = RandomSeed()
	}
	w.nonce = seed
	w.attempts = 0
}
