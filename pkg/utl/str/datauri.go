package str

import (
	"regexp"
	"strings"

	"github.com/ib-77/utilitarian/pkg/utl/is"
)

var DataURIPrefixPattern = regexp.MustCompile(`data:image/\w{1,5};base64,\s*`)

// GetDataURIFileExtension returns the image extension of a data URI such as
// "data:image/png;base64,..." or "" when it is not a known image type.
func GetDataURIFileExtension(s string) string {
	head, _, _ := strings.Cut(s, ";base64,")
	ext := strings.TrimPrefix(head, "data:image/")
	if ext == head || !is.ValidImageURI(ext) {
		return ""
	}
	return ext
}
