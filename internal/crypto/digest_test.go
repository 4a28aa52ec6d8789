package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDigester(t *testing.T) {
	tests := []struct {
		name     string
		algo     string
		wantName string
		wantBits int
	}{
		{name: "sha256", algo: "sha256", wantName: "sha256", wantBits: 256},
		{name: "upper case", algo: "SHA1", wantName: "sha1", wantBits: 160},
		{name: "dashed sha3", algo: "sha3-512", wantName: "sha3_512", wantBits: 512},
		{name: "padded md5", algo: "  md5 ", wantName: "md5", wantBits: 128},
		{name: "keccak", algo: "keccak256", wantName: "keccak256", wantBits: 256},
		{name: "blake2b", algo: "blake2b", wantName: "blake2b", wantBits: 512},
		{name: "blake2s", algo: "blake2s", wantName: "blake2s", wantBits: 256},
		{name: "ripemd160", algo: "ripemd160", wantName: "ripemd160", wantBits: 160},
		{name: "truncated sha512", algo: "sha512_224", wantName: "sha512_224", wantBits: 224},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDigester(tt.algo)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
			assert.Equal(t, tt.wantBits, d.BitWidth())
		})
	}
}

func TestNewDigesterUnsupported(t *testing.T) {
	for _, algo := range []string{"", "sha257", "crc32", "help"} {
		d, err := NewDigester(algo)
		assert.Nil(t, d)
		assert.True(t, errors.Is(err, ErrUnsupportedAlgorithm), "algo %q: %v", algo, err)
	}
}

func TestDigestDeterministicAndWidth(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("coinbase"),
		[]byte("coinbasetx1tx2tx3123456"),
		[]byte("coinbasetx1tx2tx3123457"),
	}

	for _, algo := range Algorithms() {
		t.Run(algo, func(t *testing.T) {
			d, err := NewDigester(algo)
			require.NoError(t, err)

			seen := make(map[string]int)
			for i, in := range inputs {
				first := d.Digest(in)
				second := d.Digest(in)
				assert.Equal(t, first, second, "digest must be deterministic")
				assert.Equal(t, d.BitWidth(), 8*len(first))

				hexed := HexString(first)
				if prev, ok := seen[hexed]; ok {
					t.Fatalf("inputs %d and %d collided: %s", prev, i, hexed)
				}
				seen[hexed] = i
			}
		})
	}
}

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		algo string
		in   string
		want string
	}{
		{"md5", "abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"sha1", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"sha256", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha3_256", "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{"keccak256", "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
	}

	for _, tt := range tests {
		t.Run(tt.algo, func(t *testing.T) {
			d, err := NewDigester(tt.algo)
			require.NoError(t, err)
			assert.Equal(t, tt.want, HexString(d.Digest([]byte(tt.in))))
		})
	}
}

func TestAlgorithmsSorted(t *testing.T) {
	names := Algorithms()
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, DefaultAlgorithm)
	for _, name := range names {
		assert.True(t, IsSupported(name))
	}
	assert.False(t, IsSupported("whirlpool"))
}
