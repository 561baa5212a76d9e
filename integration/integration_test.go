//go:build integration

// Package integration checks textsign against independent implementations:
// the Go standard library, published test vectors, and artifacts written by
// another textsign implementation.
//
// Optional environment variables:
//   - TEXTSIGN_INTEROP_DIR: directory of keys, signatures and ciphertexts
//     produced elsewhere (see interop_test.go for the layout)
//
// Run with:
//
//	go test -tags=integration -v ./integration/...
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/textsign/textsign"
)

var interopDir string

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	interopDir = os.Getenv("TEXTSIGN_INTEROP_DIR")
	if interopDir == "" {
		os.Stderr.WriteString("TEXTSIGN_INTEROP_DIR not set, interop tests will be skipped\n")
	}

	os.Exit(m.Run())
}

func newEngine(t *testing.T) *textsign.Engine {
	t.Helper()
	return textsign.New()
}

func writeKey(t *testing.T, name string, b []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, b, 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return p
}
