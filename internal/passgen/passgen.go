// Package passgen generates human-typeable passwords from an alphabet with
// the ambiguous glyphs (I, O, l, 0) removed.
package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/nbutton23/zxcvbn-go"
)

const (
	upper  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lower  = "abcdefghijkmnopqrstuvwxyz"
	number = "123456789"
	symbol = "!@#$%^&*_"

	// MaxLength is the longest password Generate will produce.
	MaxLength = 255
	// DefaultLength is the password length used by the CLI.
	DefaultLength = 16
)

var (
	// ErrNoCharacterClass is returned when every character class is disabled.
	ErrNoCharacterClass = errors.New("at least one character class must be enabled")

	// ErrInvalidLength is returned when the length cannot satisfy the options.
	ErrInvalidLength = errors.New("invalid password length")
)

// randReader is the random source used for drawing characters.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// Options selects the character classes a password draws from. Every enabled
// class contributes at least one character.
type Options struct {
	Upper  bool
	Lower  bool
	Number bool
	Symbol bool
}

// AllClasses enables every character class.
var AllClasses = Options{Upper: true, Lower: true, Number: true, Symbol: true}

func (o Options) classes() []string {
	var out []string
	if o.Upper {
		out = append(out, upper)
	}
	if o.Lower {
		out = append(out, lower)
	}
	if o.Number {
		out = append(out, number)
	}
	if o.Symbol {
		out = append(out, symbol)
	}
	return out
}

// Generate returns a password of length characters. Every character is
// drawn from crypto/rand.
func Generate(length int, opts Options) (string, error) {
	classes := opts.classes()
	if len(classes) == 0 {
		return "", ErrNoCharacterClass
	}
	if length < len(classes) || length > MaxLength {
		return "", fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidLength, length, len(classes), MaxLength)
	}

	var all string
	password := make([]byte, 0, length)
	for _, class := range classes {
		all += class
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < length {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

// Strength returns the zxcvbn score of password, from 0 (weakest) to 4.
func Strength(password string) int {
	return zxcvbn.PasswordStrength(password, nil).Score
}

func random() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

func intn(n int) (int, error) {
	v, err := rand.Int(random(), big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}

func pick(alphabet string) (byte, error) {
	i, err := intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// shuffle is a Fisher-Yates shuffle so the guaranteed class characters do
// not sit at fixed positions.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
