package crypto

const (
	// KeyedHashKeySize is the size of a BLAKE3 key in bytes.
	KeyedHashKeySize = 32
	// KeyedHashSize is the size of a keyed BLAKE3 digest in bytes.
	KeyedHashSize = 32

	// Ed25519SeedSize is the size of an Ed25519 private seed in bytes.
	Ed25519SeedSize = 32
	// Ed25519PublicKeySize is the size of an Ed25519 public key in bytes.
	Ed25519PublicKeySize = 32
	// Ed25519SignatureSize is the size of an Ed25519 signature in bytes.
	Ed25519SignatureSize = 64

	// ChaChaKeySize is the size of a ChaCha20-Poly1305 key in bytes.
	ChaChaKeySize = 32
	// ChaChaNonceSize is the size of a ChaCha20-Poly1305 nonce in bytes.
	ChaChaNonceSize = 12
	// ChaChaTagSize is the size of the Poly1305 authentication tag in bytes.
	ChaChaTagSize = 16
)
