package textsign

import (
	"errors"
	"fmt"

	"github.com/textsign/textsign/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrIO is returned when a key file or input stream cannot be opened or read.
	ErrIO = errors.New("I/O error")

	// ErrInvalidKeyLength is returned when a key, nonce or signature does not
	// have the fixed size its algorithm requires.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrDecode is returned when base64 input cannot be decoded.
	ErrDecode = errors.New("decode error")

	// ErrUnsupportedFormat is returned for a format outside the supported set,
	// or one that does not offer the requested operation.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrAuthenticationFailed is returned when a ciphertext does not
	// authenticate under the given key and nonce.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// Error is implemented by all textsign errors.
type Error interface {
	error
	TextSignError() // marker method
}

// IOError represents a failure to open or read a file or stream.
type IOError struct {
	Op   string // "open", "read"
	Path string // empty for streams
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s input: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// TextSignError implements the Error interface.
func (e *IOError) TextSignError() {}

// KeyLengthError reports key material of the wrong size.
type KeyLengthError struct {
	Component string // e.g. "ed25519 seed", "chacha20-poly1305 nonce"
	Path      string // file the material was loaded from, if any
	Got       int
	Want      int
}

func (e *KeyLengthError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid key length: %s from %s: got %d bytes, want %d", e.Component, e.Path, e.Got, e.Want)
	}
	return fmt.Sprintf("invalid key length: %s: got %d bytes, want %d", e.Component, e.Got, e.Want)
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyLengthError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}

// TextSignError implements the Error interface.
func (e *KeyLengthError) TextSignError() {}

// DecodeError represents malformed base64 input.
type DecodeError struct {
	What string // "signature", "ciphertext"
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.What, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// TextSignError implements the Error interface.
func (e *DecodeError) TextSignError() {}

// FormatError reports a format that is unknown or cannot perform an operation.
type FormatError struct {
	Format    Format
	Operation string // empty when the format is unknown
}

func (e *FormatError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("unsupported format %q for %s", e.Format, e.Operation)
	}
	return fmt.Sprintf("unsupported format %q", e.Format)
}

// Is implements errors.Is for sentinel error matching.
func (e *FormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// TextSignError implements the Error interface.
func (e *FormatError) TextSignError() {}

// AuthenticationError indicates a tampered ciphertext or the wrong key or nonce.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}

// TextSignError implements the Error interface.
func (e *AuthenticationError) TextSignError() {}

// wrapError converts internal crypto errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
// path is the key file involved, if any; what names the decoded value.
func wrapError(err error, path, what string) error {
	if err == nil {
		return nil
	}

	var sizeErr *crypto.SizeError
	if errors.As(err, &sizeErr) {
		return &KeyLengthError{
			Component: sizeErr.Component,
			Path:      path,
			Got:       sizeErr.Got,
			Want:      sizeErr.Want,
		}
	}

	switch {
	case errors.Is(err, crypto.ErrReadFailed):
		return &IOError{Op: "read", Err: err}
	case errors.Is(err, crypto.ErrInvalidEncoding):
		return &DecodeError{What: what, Err: err}
	case errors.Is(err, crypto.ErrInvalidPublicKey):
		if path != "" {
			what += " from " + path
		}
		return &DecodeError{What: what, Err: err}
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return &AuthenticationError{Err: err}
	}

	return err
}
