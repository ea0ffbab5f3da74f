package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/jobtrack/jobtrack-go/internal/password"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	DefaultSuggestLength = 16
	MaxSuggestLength     = 128
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 8")
	ErrLengthTooLong  = errors.New("password length must be at most 128")
)

// classSets must cover every character class the sign up rules require.
var classSets = []string{uppercaseChars, lowercaseChars, digitChars, specialChars}

// SuggestPassword returns a random password of the given length that
// contains every character class, so it always passes sign up validation.
func SuggestPassword(length int) (string, error) {
	if length < password.MinLength {
		return "", ErrLengthTooShort
	}
	if length > MaxSuggestLength {
		return "", ErrLengthTooLong
	}

	var pool string
	for _, set := range classSets {
		pool += set
	}

	result := make([]byte, length)
	for i, set := range classSets {
		ch, err := randChar(set)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	for i := len(classSets); i < length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}
	return string(result), nil
}

func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle is a Fisher-Yates shuffle driven by crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
