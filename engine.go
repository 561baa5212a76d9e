package textsign

import (
	"io"

	"gopkg.in/op/go-logging.v1"

	"github.com/textsign/textsign/internal/crypto"
	"github.com/textsign/textsign/internal/log"
)

// Engine routes sign, verify, generate, encrypt and decrypt requests to the
// algorithm selected by a Format. It holds no state between calls and is safe
// for concurrent use.
type Engine struct {
	log       *logging.Logger
	passwords crypto.PasswordSource
}

// New creates an engine with the given options.
func New(opts ...Option) *Engine {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	e := &Engine{
		log:       cfg.logger,
		passwords: cfg.passwords,
	}
	if e.log == nil {
		e.log = log.Discard("textsign")
	}
	if e.passwords == nil {
		e.passwords = defaultPasswordSource
	}
	return e
}

// Sign signs everything readable from r with the key at keyPath and returns
// the signature as URL-safe base64.
func (e *Engine) Sign(r io.Reader, keyPath string, f Format) (string, error) {
	var signer crypto.Signer
	switch f {
	case FormatBlake3:
		k, err := loadSymmetric(keyPath)
		if err != nil {
			return "", err
		}
		signer = k
	case FormatEd25519:
		s, err := loadAsymmetricPrivate(keyPath)
		if err != nil {
			return "", err
		}
		signer = s
	default:
		return "", unsupported(f, "sign")
	}

	sig, err := signer.Sign(r)
	if err != nil {
		return "", wrapError(err, "", "")
	}
	e.log.Debugf("signed input with %s key %s", f, keyPath)
	return crypto.ToBase64URL(sig), nil
}

// Verify checks the URL-safe base64 signature sig against everything
// readable from r. For ed25519, keyPath is the public key. A signature that
// does not match returns false with a nil error.
func (e *Engine) Verify(r io.Reader, keyPath string, f Format, sig string) (bool, error) {
	if f != FormatBlake3 && f != FormatEd25519 {
		return false, unsupported(f, "verify")
	}

	raw, err := crypto.FromBase64URL(sig)
	if err != nil {
		return false, wrapError(err, "", "signature")
	}

	var verifier crypto.Verifier
	switch f {
	case FormatBlake3:
		k, err := loadSymmetric(keyPath)
		if err != nil {
			return false, err
		}
		verifier = k
	case FormatEd25519:
		v, err := loadAsymmetricPublic(keyPath)
		if err != nil {
			return false, err
		}
		verifier = v
	}

	ok, err := verifier.Verify(r, raw)
	if err != nil {
		return false, wrapError(err, "", "signature")
	}
	e.log.Debugf("verified input with %s key %s: %v", f, keyPath, ok)
	return ok, nil
}

// Generate creates fresh key material for f. The buffers are returned in the
// order of f.ArtifactNames(): blake3 [key], ed25519 [seed, public key],
// chacha_poly [key, nonce].
func (e *Engine) Generate(f Format) ([][]byte, error) {
	var (
		out [][]byte
		err error
	)
	switch f {
	case FormatBlake3:
		var key []byte
		key, err = crypto.GenerateKeyedHashKey(e.passwords)
		out = [][]byte{key}
	case FormatEd25519:
		var seed, pub []byte
		seed, pub, err = crypto.GenerateEd25519Key()
		out = [][]byte{seed, pub}
	case FormatChaChaPoly:
		var key, nonce []byte
		key, nonce, err = crypto.GenerateChaChaPolyKey()
		out = [][]byte{key, nonce}
	default:
		return nil, unsupported(f, "")
	}
	if err != nil {
		return nil, wrapError(err, "", "")
	}
	e.log.Debugf("generated %s key material", f)
	return out, nil
}

// Encrypt seals everything readable from r with ChaCha20-Poly1305 using the
// key and nonce files, and returns the ciphertext as URL-safe base64.
func (e *Engine) Encrypt(r io.Reader, keyPath, noncePath string) (string, error) {
	c, err := loadAEAD(keyPath, noncePath)
	if err != nil {
		return "", err
	}

	ciphertext, err := c.Encrypt(r)
	if err != nil {
		return "", wrapError(err, "", "")
	}
	e.log.Debugf("encrypted input with key %s and nonce %s", keyPath, noncePath)
	return ciphertext, nil
}

// Decrypt reads URL-safe base64 ciphertext from r and opens it with the key
// and nonce files. If the ciphertext does not authenticate no plaintext is
// returned and the error matches ErrAuthenticationFailed.
func (e *Engine) Decrypt(r io.Reader, keyPath, noncePath string) ([]byte, error) {
	c, err := loadAEAD(keyPath, noncePath)
	if err != nil {
		return nil, err
	}

	plaintext, err := c.Decrypt(r)
	if err != nil {
		return nil, wrapError(err, "", "ciphertext")
	}
	e.log.Debugf("decrypted input with key %s and nonce %s", keyPath, noncePath)
	return plaintext, nil
}

func unsupported(f Format, op string) error {
	if !f.Valid() {
		op = ""
	}
	return &FormatError{Format: f, Operation: op}
}
