package crypto

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"

	hex "github.com/tmthrgd/go-hex"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Errors
var (
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
)

// DefaultAlgorithm is used when no algorithm was chosen
const DefaultAlgorithm = "sha256"

// algorithms maps the supported algorithm names to hash constructors.
// Names follow the hashlib spelling so existing configs keep working.
var algorithms = map[string]func() hash.Hash{
	"md4":        md4.New,
	"md5":        md5.New,
	"sha1":       sha1.New,
	"sha224":     sha256.New224,
	"sha256":     sha256.New,
	"sha384":     sha512.New384,
	"sha512":     sha512.New,
	"sha512_224": sha512.New512_224,
	"sha512_256": sha512.New512_256,
	"sha3_224":   sha3.New224,
	"sha3_256":   sha3.New256,
	"sha3_384":   sha3.New384,
	"sha3_512":   sha3.New512,
	"keccak256":  sha3.NewLegacyKeccak256,
	"keccak512":  sha3.NewLegacyKeccak512,
	"blake2b":    newBlake2b,
	"blake2s":    newBlake2s,
	"ripemd160":  ripemd160.New,
}

// Digester hashes arbitrary bytes with one fixed algorithm.
// A new hash.Hash is created per call, so a Digester can be shared freely.
type Digester struct {
	name    string
	newHash func() hash.Hash
	size    int
}

// NewDigester returns a Digester for the named algorithm
func NewDigester(name string) (*Digester, error) {
	key := NormalizeName(name)
	newHash, ok := algorithms[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return &Digester{
		name:    key,
		newHash: newHash,
		size:    newHash().Size(),
	}, nil
}

// Name returns the canonical algorithm name
func (d *Digester) Name() string {
	return d.name
}

// Digest hashes data and returns the raw digest bytes
func (d *Digester) Digest(data []byte) []byte {
	h := d.newHash()
	_, _ = h.Write(data)
	return h.Sum(make([]byte, 0, d.size))
}

// BitWidth returns the digest length in bits
func (d *Digester) BitWidth() int {
	return d.size * 8
}

// IsSupported reports whether name selects a supported algorithm
func IsSupported(name string) bool {
	_, ok := algorithms[NormalizeName(name)]
	return ok
}

// Algorithms returns the supported algorithm names in sorted order
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeName lowercases and trims an algorithm name.
// "sha3-256" and "SHA3_256" both map to "sha3_256".
func NormalizeName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(key, "-", "_")
}

// HexString renders a digest as lowercase hex
func HexString(digest []byte) string {
	return hex.EncodeToString(digest)
}

// ---- helpers ----

func newBlake2b() hash.Hash {
	// only fails for keys longer than 64 bytes
	h, _ := blake2b.New512(nil)
	return h
}

func newBlake2s() hash.Hash {
	h, _ := blake2s.New256(nil)
	return h
}
