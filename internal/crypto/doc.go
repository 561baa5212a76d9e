// Package crypto provides the primitives behind textsign: a keyed hash, a
// signature scheme and an authenticated cipher, each behind the same small
// capability interfaces.
//
// # Algorithm Suite
//
//   - BLAKE3 in keyed mode: 32-byte key, 32-byte digest. Fast symmetric
//     integrity check; verification uses a constant-time comparison.
//
//   - Ed25519: 32-byte private seed, 32-byte public key, 64-byte signature.
//     The verifier only ever holds the public key.
//
//   - ChaCha20-Poly1305 (RFC 8439): 32-byte key, 12-byte nonce, 16-byte tag.
//     Used without associated data.
//
// # Key Material
//
// Keys are raw bytes with fixed lengths and no framing. Every constructor
// checks the length first and returns a [*SizeError] that matches
// [ErrInvalidKeySize], [ErrInvalidNonceSize] or [ErrInvalidSignatureSize]
// with errors.Is.
//
// # Critical Security Notes
//
// A ChaCha20-Poly1305 key and nonce pair MUST NOT be used to encrypt two
// different messages. This package does not track nonce use; rotating the
// nonce is the caller's job.
//
// [GenerateKeyedHashKey] builds the BLAKE3 key from a printable password, so
// the key carries less entropy than 32 uniform random bytes. Tools that depend
// on the key being typeable rely on this.
//
// # Base64 Encoding
//
// Signatures and ciphertexts leave the package as URL-safe base64 without
// padding (RFC 4648 §5), see [ToBase64URL] and [FromBase64URL].
package crypto
