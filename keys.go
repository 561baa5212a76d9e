package textsign

import (
	"os"

	"github.com/textsign/textsign/internal/crypto"
)

// readKeyFile reads a raw key artifact. Key files carry no header or
// encoding; the loaders trust the length alone.
func readKeyFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	return b, nil
}

func loadSymmetric(path string) (*crypto.KeyedHash, error) {
	key, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}
	k, err := crypto.NewKeyedHash(key)
	return k, wrapError(err, path, "")
}

func loadAsymmetricPrivate(path string) (*crypto.Ed25519Signer, error) {
	seed, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}
	s, err := crypto.NewEd25519Signer(seed)
	return s, wrapError(err, path, "")
}

func loadAsymmetricPublic(path string) (*crypto.Ed25519Verifier, error) {
	pub, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}
	v, err := crypto.NewEd25519Verifier(pub)
	return v, wrapError(err, path, "ed25519 public key")
}

func loadAEAD(keyPath, noncePath string) (*crypto.ChaChaPoly, error) {
	key, err := readKeyFile(keyPath)
	if err != nil {
		return nil, err
	}
	nonce, err := readKeyFile(noncePath)
	if err != nil {
		return nil, err
	}

	c, err := crypto.NewChaChaPoly(key, nonce)
	if err != nil {
		path := keyPath
		if len(key) == crypto.ChaChaKeySize {
			path = noncePath
		}
		return nil, wrapError(err, path, "")
	}
	return c, nil
}
