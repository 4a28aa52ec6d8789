package worker

import (
	"errors"
	"strconv"
	"testing"

	"github.com/screa/hashbrown-miner/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewWorker(t *testing.T) {
	w, err := New("sha256")
	require.NoError(t, err)
	require.NotNil(t, w)

	assert.Equal(t, "sha256", w.Algorithm())
	assert.Equal(t, 256, w.BitWidth())
	assert.GreaterOrEqual(t, w.Nonce(), uint64(1))
	assert.LessOrEqual(t, w.Nonce(), uint64(MaxSeed))
	assert.Zero(t, w.Attempts())
}

func TestNewWorkerUnsupportedAlgorithm(t *testing.T) {
	w, err := New("not-a-hash")
	assert.Nil(t, w)
	assert.True(t, errors.Is(err, crypto.ErrUnsupportedAlgorithm))
}

func TestNextDigestWithoutData(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := NewMockDigester(ctrl)
	// Digest must never be reached
	d.EXPECT().Digest(gomock.Any()).Times(0)

	w := NewWithDigester(d, 10)
	digest, err := w.NextDigest()
	assert.Nil(t, digest)
	assert.True(t, errors.Is(err, ErrNoDataSet))
	assert.Equal(t, uint64(10), w.Nonce(), "nonce must not advance without data")
}

func TestNextDigestAppendsDecimalNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := NewMockDigester(ctrl)

	gomock.InOrder(
		d.EXPECT().Digest([]byte("coinbasetx1tx241")).Return([]byte{0x01}),
		d.EXPECT().Digest([]byte("coinbasetx1tx242")).Return([]byte{0x02}),
		d.EXPECT().Digest([]byte("coinbasetx1tx243")).Return([]byte{0x03}),
	)

	w := NewWithDigester(d, 40)
	w.SetData([]byte("coinbasetx1tx2"))

	for i, want := range []byte{0x01, 0x02, 0x03} {
		got, err := w.NextDigest()
		require.NoError(t, err)
		assert.Equal(t, []byte{want}, got)
		assert.Equal(t, uint64(41+i), w.Nonce())
	}
	assert.Equal(t, int64(3), w.Attempts())
}

func TestNonceStrictlyIncreases(t *testing.T) {
	w, err := New("md5")
	require.NoError(t, err)
	w.SetData([]byte("block"))

	seen := make(map[uint64]bool)
	prev := w.Nonce()
	for i := 0; i < 1000; i++ {
		_, err := w.NextDigest()
		require.NoError(t, err)
		assert.Equal(t, prev+1, w.Nonce())
		assert.False(t, seen[w.Nonce()], "nonce %d repeated", w.Nonce())
		seen[w.Nonce()] = true
		prev = w.Nonce()
	}
}

func TestNextDigestMatchesDigester(t *testing.T) {
	d, err := crypto.NewDigester("sha1")
	require.NoError(t, err)

	w := NewWithDigester(d, 99)
	w.SetData([]byte("hello"))

	got, err := w.NextDigest()
	require.NoError(t, err)
	assert.Equal(t, d.Digest([]byte("hello"+strconv.Itoa(100))), got)
}

func TestSetDataCopies(t *testing.T) {
	d, err := crypto.NewDigester("sha256")
	require.NoError(t, err)

	data := []byte("abc")
	w := NewWithDigester(d, 1)
	w.SetData(data)
	data[0] = 'x'

	got, err := w.NextDigest()
	require.NoError(t, err)
	assert.Equal(t, d.Digest([]byte("abc2")), got)
}

func TestReset(t *testing.T) {
	w, err := New("sha256")
	require.NoError(t, err)
	w.SetData([]byte("data"))
	_, err = w.NextDigest()
	require.NoError(t, err)

	w.Reset()
	assert.Zero(t, w.Attempts())
	_, err = w.NextDigest()
	assert.True(t, errors.Is(err, ErrNoDataSet))
}

func TestRandomSeedRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		seed := RandomSeed()
		if seed < 1 || seed > MaxSeed {
			t.Fatalf("seed %d out of range", seed)
		}
	}
}
