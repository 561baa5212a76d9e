package textsign

import "strings"

// Format selects the algorithm used by the engine.
type Format string

const (
	// FormatBlake3 signs with keyed BLAKE3.
	FormatBlake3 Format = "blake3"
	// FormatEd25519 signs with Ed25519.
	FormatEd25519 Format = "ed25519"
	// FormatChaChaPoly encrypts with ChaCha20-Poly1305.
	FormatChaChaPoly Format = "chacha_poly"
)

// Formats lists every supported format.
var Formats = []Format{FormatBlake3, FormatEd25519, FormatChaChaPoly}

// ParseFormat parses a format name, ignoring case. "black3" is accepted as
// an alias of blake3 for compatibility with older scripts.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blake3", "black3":
		return FormatBlake3, nil
	case "ed25519":
		return FormatEd25519, nil
	case "chacha_poly", "chachapoly", "chacha20poly1305":
		return FormatChaChaPoly, nil
	}
	return "", &FormatError{Format: Format(s)}
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	switch f {
	case FormatBlake3, FormatEd25519, FormatChaChaPoly:
		return true
	}
	return false
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// ArtifactNames returns the file names Generate's buffers are persisted
// under, in the order Generate returns them.
func (f Format) ArtifactNames() []string {
	switch f {
	case FormatBlake3:
		return []string{"blake3.txt"}
	case FormatEd25519:
		return []string{"ed25519.sk", "ed25519.pk"}
	case FormatChaChaPoly:
		return []string{"chacha_poly.key", "chacha_poly.nonce"}
	}
	return nil
}
