package crypto

import (
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"github.com/cloudflare/circl/sign/ed25519"
)

// Ed25519Signer signs with an Ed25519 private key.
type Ed25519Signer struct {
	key ed25519.PrivateKey
}

// Ed25519Verifier verifies Ed25519 signatures. It only holds the public key.
type Ed25519Verifier struct {
	key ed25519.PublicKey
}

// NewEd25519Signer creates a signer from a 32-byte private seed. The public
// key is derived from the seed.
func NewEd25519Signer(seed []byte) (*Ed25519Signer, error) {
	if err := checkSize(ErrInvalidKeySize, "ed25519 seed", seed, Ed25519SeedSize); err != nil {
		return nil, err
	}
	return &Ed25519Signer{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// NewEd25519Verifier creates a verifier from a 32-byte public key. The key
// must decode to a point on the curve.
func NewEd25519Verifier(publicKey []byte) (*Ed25519Verifier, error) {
	if err := checkSize(ErrInvalidKeySize, "ed25519 public key", publicKey, Ed25519PublicKeySize); err != nil {
		return nil, err
	}
	if _, err := new(edwards25519.Point).SetBytes(publicKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	pub := make(ed25519.PublicKey, Ed25519PublicKeySize)
	copy(pub, publicKey)
	return &Ed25519Verifier{key: pub}, nil
}

// Sign reads all of r and returns a 64-byte signature over it.
func (s *Ed25519Signer) Sign(r io.Reader) ([]byte, error) {
	msg, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(s.key, msg), nil
}

// PublicKey returns the public half of the signing key.
func (s *Ed25519Signer) PublicKey() []byte {
	pub := s.key.Public().(ed25519.PublicKey)
	out := make([]byte, len(pub))
	copy(out, pub)
	return out
}

// Verify reads all of r and checks sig against it. A signature that is not
// exactly 64 bytes is an error rather than a false result.
func (v *Ed25519Verifier) Verify(r io.Reader, sig []byte) (bool, error) {
	if err := checkSize(ErrInvalidSignatureSize, "ed25519 signature", sig, Ed25519SignatureSize); err != nil {
		return false, err
	}

	msg, err := readAll(r)
	if err != nil {
		return false, err
	}
	return ed25519.Verify(v.key, msg, sig), nil
}

// GenerateEd25519Key draws a fresh seed from the random source and returns
// the seed and its public key, in that order.
func GenerateEd25519Key() (seed, publicKey []byte, err error) {
	pub, priv, err := ed25519.GenerateKey(random())
	if err != nil {
		return nil, nil, err
	}

	seed = make([]byte, Ed25519SeedSize)
	copy(seed, priv.Seed())
	publicKey = make([]byte, Ed25519PublicKeySize)
	copy(publicKey, pub)
	return seed, publicKey, nil
}
