// Package hashing defines the Hashable contract and the hash functions used
// to key hash-based sets of entities.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"io"

	"github.com/zeebo/xxh3"
)

// HashFunc turns a Hashable into a key. Sha256 and Xxh3 are HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable values write their identity into a hash. Only the fields that
// take part in equality may be written, otherwise equal values would get
// different keys.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 keys by hex-encoded SHA-256. Use it when keys leave the process.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Xxh3 keys by hex-encoded 64-bit XXH3. Collisions are possible, so sets
// keyed this way must confirm matches with Equals.
func Xxh3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := io.WriteString(h, string(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

// HashableInt hashes an int as 8 big-endian bytes.
type HashableInt int

func (i HashableInt) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(i)) //nolint:gosec

	_, err := h.Write(buf[:])

	return err
}

func (i HashableInt) Equals(other HashableInt) bool {
	return i == other
}

// Fields feeds several Hashables into h in order, separating them with a
// zero byte so that ("ab", "c") and ("a", "bc") do not collide.
func Fields(h hash.Hash, fields ...Hashable) error {
	for idx, f := range fields {
		if idx > 0 {
			if _, err := h.Write([]byte{0}); err != nil {
				return err
			}
		}

		if err := f.UpdateHash(h); err != nil {
			return err
		}
	}

	return nil
}
