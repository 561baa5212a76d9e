package textsign

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filippo.io/edwards25519"
)

func TestLoadAEAD_NamesOffendingFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, n int) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, make([]byte, n), 0600); err != nil {
			t.Fatal(err)
		}
		return p
	}
	goodKey := write("good.key", 32)
	goodNonce := write("good.nonce", 12)
	badKey := write("bad.key", 16)
	badNonce := write("bad.nonce", 24)

	tests := []struct {
		name       string
		key, nonce string
		wantPath   string
		wantWant   int
	}{
		{"bad key", badKey, goodNonce, badKey, 32},
		{"bad nonce", goodKey, badNonce, badNonce, 12},
		{"both bad", badKey, badNonce, badKey, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadAEAD(tt.key, tt.nonce)
			var kl *KeyLengthError
			if !errors.As(err, &kl) {
				t.Fatalf("loadAEAD() error = %v, want KeyLengthError", err)
			}
			if kl.Path != tt.wantPath || kl.Want != tt.wantWant {
				t.Errorf("KeyLengthError = %+v, want path %s and size %d", kl, tt.wantPath, tt.wantWant)
			}
		})
	}

	if _, err := loadAEAD(goodKey, goodNonce); err != nil {
		t.Errorf("loadAEAD(valid) error = %v", err)
	}
}

func TestReadKeyFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent")
	_, err := readKeyFile(path)

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("readKeyFile() error = %v, want IOError", err)
	}
	if ioErr.Op != "open" || ioErr.Path != path {
		t.Errorf("IOError = %+v", ioErr)
	}
}

func TestLoaders_AcceptExactSizes(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "k")
	// 0x01 followed by zeros is the identity point, so it also loads as a
	// public key.
	b := make([]byte, 32)
	b[0] = 1
	if err := os.WriteFile(key, b, 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadSymmetric(key); err != nil {
		t.Errorf("loadSymmetric() error = %v", err)
	}
	if _, err := loadAsymmetricPrivate(key); err != nil {
		t.Errorf("loadAsymmetricPrivate() error = %v", err)
	}
	if _, err := loadAsymmetricPublic(key); err != nil {
		t.Errorf("loadAsymmetricPublic() error = %v", err)
	}
}

func TestLoadAsymmetricPublic_OffCurve(t *testing.T) {
	var key []byte
	for i := 0; i < 256 && key == nil; i++ {
		b := make([]byte, 32)
		b[0] = byte(i)
		if _, err := new(edwards25519.Point).SetBytes(b); err != nil {
			key = b
		}
	}
	if key == nil {
		t.Fatal("no off-curve encoding in the candidate set")
	}

	path := filepath.Join(t.TempDir(), "ed25519.pk")
	if err := os.WriteFile(path, key, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := loadAsymmetricPublic(path)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("loadAsymmetricPublic() error = %v, want ErrDecode", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name %s", err, path)
	}
}
