// Package cryptox hashes one-time codes so backends never hold them in
// plain text.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const generatedKeySize = 32

var ErrKeyTooLong = errors.New("code hashing key longer than 64 bytes")

// CodeHasher computes keyed BLAKE2b-256 digests of (destination, code) pairs.
type CodeHasher struct {
	key []byte
}

// NewCodeHasher uses key as the MAC key. An empty key is replaced by a random
// one, which makes digests valid only for the lifetime of the process.
func NewCodeHasher(key []byte) (*CodeHasher, error) {
	if len(key) > blake2b.Size {
		return nil, ErrKeyTooLong
	}
	if len(key) == 0 {
		key = make([]byte, generatedKeySize)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
	}
	return &CodeHasher{key: append([]byte(nil), key...)}, nil
}

// Digest returns the hex digest binding code to destination.
func (h *CodeHasher) Digest(destination, code string) string {
	mac, err := blake2b.New256(h.key)
	if err != nil {
		// key length is checked in NewCodeHasher
		panic(err)
	}
	mac.Write([]byte(destination))
	mac.Write([]byte{0})
	mac.Write([]byte(code))
	return hex.EncodeToString(mac.Sum(nil))
}

// Match reports whether digest was produced for destination and code.
func (h *CodeHasher) Match(digest, destination, code string) bool {
	return subtle.ConstantTimeCompare([]byte(digest), []byte(h.Digest(destination, code))) == 1
}
