// Package textsign signs, verifies, encrypts and decrypts text with one of
// three algorithms selected by a [Format]:
//
//   - [FormatBlake3]: keyed BLAKE3, a fast symmetric integrity check.
//   - [FormatEd25519]: Ed25519 signatures; verification needs only the public key.
//   - [FormatChaChaPoly]: ChaCha20-Poly1305 authenticated encryption.
//
// Keys are raw files of fixed length (32 bytes, or 32 + 12 for the cipher's
// key and nonce). Signatures and ciphertexts are exchanged as URL-safe base64
// without padding.
//
// Basic usage:
//
//	engine := textsign.New()
//
//	keys, err := engine.Generate(textsign.FormatEd25519)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// persist keys[0] (private seed) and keys[1] (public key)
//
//	sig, err := engine.Sign(strings.NewReader("Hello World"), "ed25519.sk", textsign.FormatEd25519)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := engine.Verify(strings.NewReader("Hello World"), "ed25519.pk", textsign.FormatEd25519, sig)
//
// A signature that does not match is reported as ok == false with a nil error;
// errors are reserved for operations that could not run.
package textsign
