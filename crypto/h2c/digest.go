package h2c

import (
	"crypto/sha256"
	"hash"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Digest names the hash function that turns a message into the field seed.
type Digest string

const (
	// DigestSHA256 is SHA-256 (32 bytes). This is the default.
	DigestSHA256 Digest = "sha256"
	// DigestKeccak256 is the legacy Keccak-256 used by Ethereum (32 bytes).
	DigestKeccak256 Digest = "keccak256"
	// DigestSHA3 is FIPS 202 SHA3-256 (32 bytes).
	DigestSHA3 Digest = "sha3-256"
	// DigestBlake2b512 is BLAKE2b-512 (64 bytes).
	DigestBlake2b512 Digest = "blake2b-512"
)

// Digests lists the supported digests.
var Digests = []Digest{DigestSHA256, DigestKeccak256, DigestSHA3, DigestBlake2b512}

// hasher returns a constructor for d.
func (d Digest) hasher() (func() hash.Hash, error) {
	switch d {
	case DigestSHA256:
		return sha256.New, nil
	case DigestKeccak256:
		return func() hash.Hash { return crypto.NewKeccakState() }, nil
	case DigestSHA3:
		return sha3.New256, nil
	case DigestBlake2b512:
		return func() hash.Hash {
			h, err := blake2b.New512(nil)
			if err != nil {
				// Only fails for keys longer than 64 bytes.
				panic(err)
			}
			return h
		}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownDigest, "%q", string(d))
	}
}

// Size returns the output length of d in bytes, or 0 for unknown digests.
func (d Digest) Size() int {
	switch d {
	case DigestSHA256, DigestKeccak256, DigestSHA3:
		return 32
	case DigestBlake2b512:
		return 64
	default:
		return 0
	}
}

// Sum hashes msg with d.
func (d Digest) Sum(msg []byte) ([]byte, error) {
	newHash, err := d.hasher()
	if err != nil {
		return nil, err
	}
	return sum(newHash, msg)
}

func sum(newHash func() hash.Hash, msg []byte) ([]byte, error) {
	h := newHash()
	if _, err := h.Write(msg); err != nil {
		return nil, errors.Wrap(err, "h2c: digest")
	}
	return h.Sum(nil), nil
}
