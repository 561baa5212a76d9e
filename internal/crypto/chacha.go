package crypto

import (
	"crypto/cipher"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// ChaChaPoly encrypts and decrypts with ChaCha20-Poly1305 under a fixed key
// and nonce. The caller must not encrypt two different messages with the
// same key and nonce.
type ChaChaPoly struct {
	aead  cipher.AEAD
	nonce [ChaChaNonceSize]byte
}

// NewChaChaPoly creates a cipher from a 32-byte key and a 12-byte nonce.
func NewChaChaPoly(key, nonce []byte) (*ChaChaPoly, error) {
	if err := checkSize(ErrInvalidKeySize, "chacha20-poly1305 key", key, ChaChaKeySize); err != nil {
		return nil, err
	}
	if err := checkSize(ErrInvalidNonceSize, "chacha20-poly1305 nonce", nonce, ChaChaNonceSize); err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	c := &ChaChaPoly{aead: aead}
	copy(c.nonce[:], nonce)
	return c, nil
}

// Seal encrypts plaintext and returns ciphertext || tag.
func (c *ChaChaPoly) Seal(plaintext []byte) []byte {
	return c.aead.Seal(nil, c.nonce[:], plaintext, nil)
}

// Open authenticates and decrypts ciphertext || tag. Nothing is returned if
// the tag does not verify.
func (c *ChaChaPoly) Open(sealed []byte) ([]byte, error) {
	plaintext, err := c.aead.Open(nil, c.nonce[:], sealed, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// Encrypt reads all of r, seals it and returns the result as URL-safe base64.
func (c *ChaChaPoly) Encrypt(r io.Reader) (string, error) {
	plaintext, err := readAll(r)
	if err != nil {
		return "", err
	}
	return ToBase64URL(c.Seal(plaintext)), nil
}

// Decrypt reads URL-safe base64 from r, decodes it and opens it.
func (c *ChaChaPoly) Decrypt(r io.Reader) ([]byte, error) {
	encoded, err := readAll(r)
	if err != nil {
		return nil, err
	}

	sealed, err := FromBase64URL(string(encoded))
	if err != nil {
		return nil, err
	}
	return c.Open(sealed)
}

// GenerateChaChaPolyKey draws a key and a nonce independently from the
// random source and returns them in that order.
func GenerateChaChaPolyKey() (key, nonce []byte, err error) {
	key, err = randomBytes(ChaChaKeySize)
	if err != nil {
		return nil, nil, err
	}
	nonce, err = randomBytes(ChaChaNonceSize)
	if err != nil {
		return nil, nil, err
	}
	return key, nonce, nil
}
