package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestBase64URLRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"hello world", []byte("hello world")},
		{"binary mixed", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"url unsafe chars", []byte{0xfb, 0xf0}}, // Would produce + or / in standard base64
		{"signature sized", make([]byte, Ed25519SignatureSize)},
		{"large data", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := ToBase64URL(tt.data)
			decoded, err := FromBase64URL(encoded)
			if err != nil {
				t.Fatalf("FromBase64URL() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip failed: got %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestBase64URL_NoPaddingURLSafe(t *testing.T) {
	for _, data := range [][]byte{[]byte("a"), []byte("ab"), {0xfb, 0xff, 0xfe}} {
		encoded := ToBase64URL(data)
		if strings.ContainsAny(encoded, "=+/") {
			t.Errorf("ToBase64URL(%v) = %q, want no padding and URL-safe alphabet", data, encoded)
		}
	}
}

func TestFromBase64URL_TrimsWhitespace(t *testing.T) {
	decoded, err := FromBase64URL("  aGVsbG8\n")
	if err != nil {
		t.Fatalf("FromBase64URL() error = %v", err)
	}
	if string(decoded) != "hello" {
		t.Errorf("decoded = %q, want %q", decoded, "hello")
	}
}

func TestFromBase64URL_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid chars", "!!!"},
		{"standard alphabet", "+/+/"},
		{"padded", "YQ=="},
		{"embedded space", "aGVs bG8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBase64URL(tt.input)
			if !errors.Is(err, ErrInvalidEncoding) {
				t.Errorf("FromBase64URL(%q) error = %v, want ErrInvalidEncoding", tt.input, err)
			}
		})
	}
}

func BenchmarkToBase64URL(b *testing.B) {
	data := make([]byte, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ToBase64URL(data)
	}
}
