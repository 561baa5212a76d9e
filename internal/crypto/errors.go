package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKeySize is returned when key material has the wrong length.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the AEAD nonce has the wrong length.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidSignatureSize is returned when an Ed25519 signature is not
	// exactly Ed25519SignatureSize bytes.
	ErrInvalidSignatureSize = errors.New("invalid signature size")

	// ErrInvalidPublicKey is returned when an Ed25519 public key is not the
	// encoding of a curve point.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrDecryptionFailed is returned when the AEAD tag does not verify.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidEncoding is returned when base64 input cannot be decoded.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrReadFailed is returned when an input stream cannot be read to the end.
	ErrReadFailed = errors.New("read failed")
)

// SizeError describes a length mismatch on a key, nonce or signature.
type SizeError struct {
	// Component names what was being checked, e.g. "ed25519 seed".
	Component string
	Got       int
	Want      int
	// Kind is the sentinel the error matches with errors.Is.
	Kind error
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: %s: got %d, want %d", e.Kind, e.Component, e.Got, e.Want)
}

// Is implements errors.Is for sentinel error matching.
func (e *SizeError) Is(target error) bool {
	return target == e.Kind
}

func checkSize(kind error, component string, b []byte, want int) error {
	if len(b) != want {
		return &SizeError{Component: component, Got: len(b), Want: want, Kind: kind}
	}
	return nil
}
