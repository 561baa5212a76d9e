package crypto

import (
	"fmt"
	"io"
)

// Signer produces a signature over everything readable from r.
type Signer interface {
	Sign(r io.Reader) ([]byte, error)
}

// Verifier checks sig against everything readable from r. A signature that
// does not match is reported as false with a nil error.
type Verifier interface {
	Verify(r io.Reader, sig []byte) (bool, error)
}

func readAll(r io.Reader) ([]byte, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return buf, nil
}
