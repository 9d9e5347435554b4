package str

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"maps"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"

	"github.com/ib-77/utilitarian/pkg/utl/is"
)

const (
	pbkdf2Iterations = 1000
	pbkdf2KeyLength  = 64
	DefaultDigest    = "sha256"
)

var digests = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha224": sha256.New224,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// Digests lists the digest names accepted by the hash helpers.
func Digests() []string {
	return slices.Sorted(maps.Keys(digests))
}

func digest(name string) (func() hash.Hash, error) {
	if name == "" {
		name = DefaultDigest
	}
	h, ok := digests[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("%s is not a valid digest option to create a hash", name)
	}
	return h, nil
}

// CreatePbkdf2Hash derives a 64 byte key from secret and salt and returns it
// base64 encoded. An empty secret or unknown digest is an error.
func CreatePbkdf2Hash(salt, secret, digestName string) (string, error) {
	if secret == "" {
		return "", errors.New("missing secret value for creating hash")
	}

	h, err := digest(digestName)
	if err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(secret), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, h)
	return base64.StdEncoding.EncodeToString(key), nil
}

// CreateShaHash hashes the bytes of a base64 encoded input and returns the
// digest base64 encoded.
func CreateShaHash(b64 string, digestName string) (string, error) {
	h, err := digest(digestName)
	if err != nil {
		return "", errors.Wrap(err, "verify hash")
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(b64); err != nil {
			return "", errors.Wrap(err, "input is not base64")
		}
	}

	sum := h()
	sum.Write(data)
	return base64.StdEncoding.EncodeToString(sum.Sum(nil)), nil
}

// HashMe returns a hex md5 fingerprint of v. Slices and maps are fingerprinted
// by their non-empty string and number elements, sorted, so element order
// does not change the result.
func HashMe(v any) string {
	var s string
	switch {
	case is.Array(v):
		s = joinSorted(collect(reflect.ValueOf(v), false))
	case is.Object(v) && reflect.ValueOf(v).Kind() == reflect.Map:
		s = joinSorted(collect(reflect.ValueOf(v), true))
	case is.String(v) || is.Number(v):
		s = fmt.Sprint(v)
	}

	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func collect(rv reflect.Value, isMap bool) []string {
	var vals []reflect.Value
	if isMap {
		iter := rv.MapRange()
		for iter.Next() {
			vals = append(vals, iter.Value())
		}
	} else {
		for i := 0; i < rv.Len(); i++ {
			vals = append(vals, rv.Index(i))
		}
	}

	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if e := v.Interface(); is.NonEmptyStringOrNumber(e) {
			out = append(out, fmt.Sprint(e))
		}
	}
	return out
}

func joinSorted(s []string) string {
	sort.Strings(s)
	return strings.Join(s, "")
}
