package str

import (
	"crypto/rand"
	"encoding/base64"
	mrand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const AlphanumericChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateUUID returns a random 36 character hyphenated v4 UUID.
func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateIDWithSuffix returns a UUID followed by ":suffix" when suffix is set.
func GenerateIDWithSuffix(suffix string) string {
	if suffix == "" {
		return GenerateUUID()
	}
	return GenerateUUID() + ":" + suffix
}

// RandomNumber returns a number in [0, n). n below 1 gives 0.
func RandomNumber(n int) int {
	if n < 1 {
		return 0
	}
	return mrand.IntN(n)
}

// RandomString builds a string of length characters drawn from charSet,
// which defaults to AlphanumericChars.
func RandomString(length int, charSet string) string {
	if length <= 0 {
		return ""
	}
	if charSet == "" {
		charSet = AlphanumericChars
	}

	chars := []rune(charSet)
	var b strings.Builder
	for range length {
		b.WriteRune(chars[mrand.IntN(len(chars))])
	}
	return b.String()
}

// RandomDigits builds a number of length digits drawn from the digits of
// digitSet; the first digit is never zero and a negative digitSet gives a
// negative number. A zero digitSet or a result too large for int64 is an error.
func RandomDigits(length int, digitSet int64) (int64, error) {
	if length <= 0 {
		return 0, nil
	}
	if digitSet == 0 {
		return 0, errors.New("digit set must not be zero")
	}

	negative := digitSet < 0
	chars := strconv.FormatInt(digitSet, 10)
	if negative {
		chars = chars[1:]
	}

	out := make([]byte, length)
	for i := range out {
		c := chars[mrand.IntN(len(chars))]
		if i == 0 && c == '0' {
			c = nonZero(chars)
		}
		out[i] = c
	}

	n, err := strconv.ParseInt(string(out), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot build a %d digit number", length)
	}
	if negative {
		n = -n
	}
	return n, nil
}

func nonZero(chars string) byte {
	for i := 0; i < len(chars); i++ {
		if chars[i] != '0' {
			return chars[i]
		}
	}
	return '1'
}

// GenerateBase64String returns 64 cryptographically random bytes, base64 encoded.
func GenerateBase64String() string {
	buf := make([]byte, 64)
	rand.Read(buf)
	return base64.StdEncoding.EncodeToString(buf)
}
