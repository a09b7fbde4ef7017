package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Algorithm identifies one of the supported digest algorithms.
type Algorithm string

const (
	MD5     Algorithm = "md5"
	SHA1    Algorithm = "sha1"
	SHA256  Algorithm = "sha256"
	SHA512  Algorithm = "sha512"
	BLAKE2b Algorithm = "blake2b"
	BLAKE3  Algorithm = "blake3"
)

// DefaultBufferSize is the read buffer size used when the caller does not
// supply one.
const DefaultBufferSize = 1 << 20

// Algorithms returns all supported algorithms in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA512, BLAKE2b, BLAKE3}
}

// Parse maps a user-supplied name to an Algorithm.
func Parse(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown hash algorithm %q", name)
}

func (a Algorithm) String() string {
	return string(a)
}

// New returns a fresh hash state for the algorithm.
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	case BLAKE2b:
		return blake2b.New256(nil)
	case BLAKE3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", string(a))
	}
}

// Size returns the digest length in bytes.
func (a Algorithm) Size() int {
	h, err := a.New()
	if err != nil {
		return 0
	}
	return h.Size()
}

// Sum streams r through the algorithm and returns the digest as a lowercase
// hex string. Memory use is bounded by the buffer: content is consumed
// block-by-block, never held whole. A read failure discards the partial
// digest and returns the error.
func Sum(a Algorithm, r io.Reader, buf []byte) (string, error) {
	h, err := a.New()
	if err != nil {
		return "", err
	}
	if len(buf) == 0 {
		buf = make([]byte, DefaultBufferSize)
	}
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
