package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"
)

// RandomString returns a URL-safe random string of at least n characters,
// suitable for unguessable placeholder passwords and username suffixes.
func RandomString(n int) (string, error) {
	if n <= 0 {
		n = 16
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf)[:n], nil
}

// UsernameFromDisplayName derives a username candidate from an external
// provider's display name: lowercased, non-alphanumerics stripped, and a
// random suffix appended so that collisions with existing handles are
// practically impossible.
func UsernameFromDisplayName(displayName string) (string, error) {
	base := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, displayName)
	if base == "" {
		base = "user"
	}

	suffix, err := RandomString(8)
	if err != nil {
		return "", err
	}

	return base + strings.ToLower(suffix), nil
}
