// Package etag computes content fingerprints for API resources and evaluates
// the If-None-Match and If-Match request preconditions against them.
//
// Tags are strong, quoted xxhash64 digests of the resource's JSON encoding.
// They are computed from the data before any transport encoding, so gzip
// does not change them.
package etag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-books-api/internal/utils"
)

// Header names.
const (
	HeaderETag        = "ETag"
	HeaderIfNoneMatch = "If-None-Match"
	HeaderIfMatch     = "If-Match"
)

// ErrFingerprint is returned when a value cannot be encoded for hashing.
var ErrFingerprint = errors.New("error computing fingerprint")

// Fingerprint returns the strong entity tag of v, for example
// "\"9c1a0f3d5b7e2c4a\"". Equal JSON encodings give equal tags.
func Fingerprint(v any) (string, error) {
	digest, err := utils.HashJSON(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFingerprint, err)
	}

	return `"` + digest + `"`, nil
}

// NoneMatch reports whether the If-None-Match header value matches tag,
// meaning a GET may be answered with 304 Not Modified. Comparison is weak:
// W/ prefixes are ignored. An empty header never matches.
func NoneMatch(header, tag string) bool {
	return match(header, tag, true)
}

// Match reports whether the If-Match header value matches tag. Comparison
// is strong: weak tags never match. An empty header never matches; callers
// treat an absent header as "no precondition".
func Match(header, tag string) bool {
	return match(header, tag, false)
}

func match(header, tag string, weak bool) bool {
	header = strings.TrimSpace(header)
	if header == "" || tag == "" {
		return false
	}
	if header == "*" {
		return true
	}

	want := opaque(tag)
	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}

		isWeak := strings.HasPrefix(candidate, "W/")
		if isWeak && !weak {
			continue
		}
		if opaque(candidate) == want {
			return true
		}
	}

	return false
}

// opaque strips the weak indicator and surrounding quotes.
func opaque(tag string) string {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "W/")
	return strings.Trim(tag, `"`)
}
