// Package cryptox computes manuscript fingerprints. A fingerprint is a
// tamper-evidence digest only; it carries no access-control meaning.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/dmitrijs2005/sealkeeper/internal/common"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Supported algorithm names. They are persisted with every seal.
const (
	AlgorithmSHA256  = "sha256"
	AlgorithmBLAKE2b = "blake2b-256"
	AlgorithmBLAKE3  = "blake3"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = AlgorithmSHA256

// Hasher computes a deterministic 256-bit digest of manuscript text.
type Hasher interface {
	// Algorithm returns the persisted algorithm name.
	Algorithm() string
	// Sum returns the lowercase hex digest of content.
	Sum(content []byte) string
}

type sha256Hasher struct{}

func (sha256Hasher) Algorithm() string { return AlgorithmSHA256 }

func (sha256Hasher) Sum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

type blake2bHasher struct{}

func (blake2bHasher) Algorithm() string { return AlgorithmBLAKE2b }

func (blake2bHasher) Sum(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:])
}

type blake3Hasher struct{}

func (blake3Hasher) Algorithm() string { return AlgorithmBLAKE3 }

func (blake3Hasher) Sum(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// NewHasher resolves a Hasher by algorithm name. An empty name selects
// DefaultAlgorithm. Unknown names yield common.ErrUnknownAlgorithm.
func NewHasher(name string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AlgorithmSHA256:
		return sha256Hasher{}, nil
	case AlgorithmBLAKE2b:
		return blake2bHasher{}, nil
	case AlgorithmBLAKE3:
		return blake3Hasher{}, nil
	default:
		return nil, common.ErrUnknownAlgorithm
	}
}

// Verify reports whether content hashes to digest under h. The comparison
// runs in constant time and ignores hex letter case.
func Verify(h Hasher, content []byte, digest string) bool {
	got := h.Sum(content)
	want := strings.ToLower(strings.TrimSpace(digest))
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
