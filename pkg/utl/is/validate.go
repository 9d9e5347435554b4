package is

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	EmailRegex = regexp.MustCompile(`(?i)^[-a-z0-9~!$%^&*_=+}{'?]+(\.[-a-z0-9~!$%^&*_=+}{'?]+)*@([a-z0-9_][-a-z0-9_]*(\.[-a-z0-9_]+)*\.(aero|arpa|biz|com|coop|edu|gov|info|int|mil|museum|name|net|org|pro|travel|mobi|[a-z][a-z])|([0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}))(:[0-9]{1,5})?$`)

	imageURIRegex = regexp.MustCompile(`(?i)(png|jpg|gif|jpeg|tiff|bmp)$`)
)

const minPasswordLength = 8

func ValidURI(uri string) bool {
	u, err := url.Parse(uri)
	return err == nil && u.Host != ""
}

func ValidImageURI(uri string) bool {
	return imageURIRegex.MatchString(uri)
}

func ValidEmail(email string) bool {
	return EmailRegex.MatchString(email)
}

// ValidPassword requires at least 8 characters with a digit, a lower case
// letter, an upper case letter and a non-word symbol.
func ValidPassword(password string) bool {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return false
	}

	var digit, lower, upper, symbol bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r != '_':
			symbol = true
		}
	}
	return digit && lower && upper && symbol
}

// ParsePort converts a port string to a number. A non-numeric port is a
// configuration mistake and is reported as an error.
func ParsePort(port string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(port))
	if err != nil {
		return 0, errors.Wrapf(err, "port %q is invalid", port)
	}
	return p, nil
}
