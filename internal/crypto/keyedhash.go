package crypto

import (
	"crypto/subtle"
	"fmt"
	"io"

	"lukechampine.com/blake3"
)

// KeyedHash signs and verifies with keyed BLAKE3.
type KeyedHash struct {
	key [KeyedHashKeySize]byte
}

// NewKeyedHash creates a keyed hash from a 32-byte key.
func NewKeyedHash(key []byte) (*KeyedHash, error) {
	if err := checkSize(ErrInvalidKeySize, "blake3 key", key, KeyedHashKeySize); err != nil {
		return nil, err
	}

	k := &KeyedHash{}
	copy(k.key[:], key)
	return k, nil
}

// Sign returns the 32-byte keyed BLAKE3 digest of r.
func (k *KeyedHash) Sign(r io.Reader) ([]byte, error) {
	h := blake3.New(KeyedHashSize, k.key[:])
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return h.Sum(nil), nil
}

// Verify recomputes the digest of r and compares it to sig in constant time.
func (k *KeyedHash) Verify(r io.Reader, sig []byte) (bool, error) {
	sum, err := k.Sign(r)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(sum, sig) == 1, nil
}

// PasswordSource returns a printable password of the requested length.
type PasswordSource func(length int) (string, error)

// GenerateKeyedHashKey builds a BLAKE3 key from a generated password. The key
// bytes are the password characters, so entropy per byte is bounded by the
// password alphabet rather than the full byte range.
func GenerateKeyedHashKey(passwords PasswordSource) ([]byte, error) {
	pw, err := passwords(KeyedHashKeySize)
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}

	key := []byte(pw)
	if err := checkSize(ErrInvalidKeySize, "blake3 key", key, KeyedHashKeySize); err != nil {
		return nil, err
	}
	return key, nil
}
