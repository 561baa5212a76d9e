package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestKeyedHash_SignVerify(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, KeyedHashKeySize)
	k, err := NewKeyedHash(key)
	if err != nil {
		t.Fatalf("NewKeyedHash() error = %v", err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"hello world", []byte("Hello World")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 1<<16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := k.Sign(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("Sign() error = %v", err)
			}
			if len(sig) != KeyedHashSize {
				t.Errorf("signature length = %d, want %d", len(sig), KeyedHashSize)
			}

			ok, err := k.Verify(bytes.NewReader(tt.data), sig)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if !ok {
				t.Error("Verify() = false, want true")
			}
		})
	}
}

func TestKeyedHash_Deterministic(t *testing.T) {
	k, _ := NewKeyedHash(bytes.Repeat([]byte{0x01}, KeyedHashKeySize))

	sig1, _ := k.Sign(strings.NewReader("Hello World"))
	sig2, _ := k.Sign(strings.NewReader("Hello World"))
	if !bytes.Equal(sig1, sig2) {
		t.Error("signing the same input twice produced different digests")
	}

	other, _ := NewKeyedHash(bytes.Repeat([]byte{0x02}, KeyedHashKeySize))
	sig3, _ := other.Sign(strings.NewReader("Hello World"))
	if bytes.Equal(sig1, sig3) {
		t.Error("different keys produced the same digest")
	}
}

func TestKeyedHash_TamperedInput(t *testing.T) {
	k, _ := NewKeyedHash(bytes.Repeat([]byte{0x01}, KeyedHashKeySize))

	sig, err := k.Sign(strings.NewReader("Hello World"))
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	ok, err := k.Verify(strings.NewReader("Hello Worle"), sig)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if ok {
		t.Error("Verify() = true for tampered input, want false")
	}
}

func TestKeyedHash_TamperedSignature(t *testing.T) {
	k, _ := NewKeyedHash(bytes.Repeat([]byte{0x01}, KeyedHashKeySize))
	data := []byte("Hello World")
	sig, _ := k.Sign(bytes.NewReader(data))

	for i := range sig {
		bad := bytes.Clone(sig)
		bad[i] ^= 0x01
		ok, err := k.Verify(bytes.NewReader(data), bad)
		if err != nil {
			t.Fatalf("Verify() byte %d error = %v", i, err)
		}
		if ok {
			t.Errorf("Verify() = true with byte %d flipped", i)
		}
	}

	for _, bad := range [][]byte{nil, sig[:16], append(bytes.Clone(sig), 0)} {
		ok, err := k.Verify(bytes.NewReader(data), bad)
		if err != nil || ok {
			t.Errorf("Verify(len %d) = %v, %v; want false, nil", len(bad), ok, err)
		}
	}
}

func TestNewKeyedHash_InvalidKeySize(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		_, err := NewKeyedHash(make([]byte, size))
		if !errors.Is(err, ErrInvalidKeySize) {
			t.Errorf("NewKeyedHash(%d bytes) error = %v, want ErrInvalidKeySize", size, err)
		}

		var sizeErr *SizeError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("expected *SizeError, got %T", err)
		}
		if sizeErr.Got != size || sizeErr.Want != KeyedHashKeySize {
			t.Errorf("SizeError = %+v", sizeErr)
		}
	}
}

func TestKeyedHash_ReadError(t *testing.T) {
	k, _ := NewKeyedHash(make([]byte, KeyedHashKeySize))

	_, err := k.Sign(&errorReader{})
	if !errors.Is(err, ErrReadFailed) {
		t.Errorf("Sign() error = %v, want ErrReadFailed", err)
	}
	if !errors.Is(err, errBrokenPipe) {
		t.Errorf("Sign() error = %v, want cause preserved", err)
	}

	_, err = k.Verify(&errorReader{}, make([]byte, KeyedHashSize))
	if !errors.Is(err, ErrReadFailed) {
		t.Errorf("Verify() error = %v, want ErrReadFailed", err)
	}
}

func TestGenerateKeyedHashKey(t *testing.T) {
	var gotLength int
	key, err := GenerateKeyedHashKey(func(length int) (string, error) {
		gotLength = length
		return strings.Repeat("aB3!", length/4), nil
	})
	if err != nil {
		t.Fatalf("GenerateKeyedHashKey() error = %v", err)
	}
	if gotLength != KeyedHashKeySize {
		t.Errorf("password length requested = %d, want %d", gotLength, KeyedHashKeySize)
	}
	if string(key) != strings.Repeat("aB3!", 8) {
		t.Errorf("key = %q, want the password bytes", key)
	}

	if _, err := NewKeyedHash(key); err != nil {
		t.Errorf("generated key rejected: %v", err)
	}
}

func TestGenerateKeyedHashKey_Errors(t *testing.T) {
	_, err := GenerateKeyedHashKey(func(int) (string, error) {
		return "", errBrokenPipe
	})
	if !errors.Is(err, errBrokenPipe) {
		t.Errorf("error = %v, want password source error", err)
	}

	// Multi-byte runes would make the key longer than 32 bytes.
	_, err = GenerateKeyedHashKey(func(length int) (string, error) {
		return strings.Repeat("é", length), nil
	})
	if !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("error = %v, want ErrInvalidKeySize", err)
	}
}
