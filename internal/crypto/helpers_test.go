package crypto

import "errors"

var errBrokenPipe = errors.New("broken pipe")

type errorReader struct{}

func (e *errorReader) Read(p []byte) (int, error) {
	return 0, errBrokenPipe
}

// countingReader yields an incrementing byte sequence so generated keys are
// predictable in tests.
type countingReader struct {
	next byte
}

func (c *countingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = c.next
		c.next++
	}
	return len(p), nil
}
