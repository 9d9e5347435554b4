package str

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	camelRegex    = regexp.MustCompile(`[_-][a-z]`)
	symbolsRegex  = regexp.MustCompile("[.,:;\"/\\\\`~=+\\[\\]{}<>'!@#&*^()%$_]")
	spacesRegex   = regexp.MustCompile(`\s+`)
	titleCaser    = cases.Title(language.Und, cases.NoLower)
	dashesReplace = strings.NewReplacer("--", "-")
)

// Camelize turns snake_case and kebab-case into camelCase.
func Camelize(s string) string {
	return camelRegex.ReplaceAllStringFunc(s, func(w string) string {
		return strings.ToUpper(w[1:])
	})
}

// CapitalizeWords upper-cases the first letter of every word and leaves the
// rest of each word alone.
func CapitalizeWords(s string) string {
	return titleCaser.String(s)
}

// TitleizeURL turns a path such as "/user/settings" into "UserSettings".
func TitleizeURL(u string) string {
	return strings.ReplaceAll(CapitalizeWords(strings.ReplaceAll(u, "/", " ")), " ", "")
}

func RemoveSymbols(s string) string {
	return symbolsRegex.ReplaceAllString(s, "")
}

// Hyphenate replaces spaces with single dashes.
func Hyphenate(s string) string {
	formatted := strings.ReplaceAll(s, " ", "-")
	for strings.Contains(formatted, "--") {
		formatted = dashesReplace.Replace(formatted)
	}
	return formatted
}

// FullTrim collapses every run of whitespace into one space and trims the ends.
func FullTrim(s string) string {
	return strings.TrimSpace(spacesRegex.ReplaceAllString(s, " "))
}

// ToBase64ImageSrc prefixes a base64 png so it can be used as an img src.
func ToBase64ImageSrc(s string) string {
	if s == "" {
		return ""
	}
	return "data:image/png;base64, " + s
}

func NumOfTrailingDigits(num string) int {
	_, frac, ok := strings.Cut(num, ".")
	if !ok {
		return 0
	}
	return len(frac)
}

func NumOfLeadingDigits(num string) int {
	whole, _, _ := strings.Cut(num, ".")
	return len(whole)
}

// NumberMe rounds num to precision significant digits after its integer part.
func NumberMe(num float64, precision int) float64 {
	leading := NumOfLeadingDigits(strconv.FormatFloat(num, 'f', -1, 64))
	v, err := strconv.ParseFloat(strconv.FormatFloat(num, 'g', leading+precision, 64), 64)
	if err != nil {
		return num
	}
	return v
}

// FormatDecimal rounds num to cents and then to precision decimal places.
func FormatDecimal(num float64, precision int) float64 {
	cents := math.Round(num*100) / 100
	v, err := strconv.ParseFloat(strconv.FormatFloat(cents, 'f', precision, 64), 64)
	if err != nil {
		return cents
	}
	return v
}
