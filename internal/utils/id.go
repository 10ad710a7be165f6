package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"time"
)

// GenerateSecureToken creates a cryptographically secure random token.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateStoredName builds a collision-resistant on-disk name for an upload:
// millisecond timestamp, a random suffix, then the sanitized original name so
// the extension survives. Two uploads of the same file get distinct names.
func GenerateStoredName(originalName string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), n.Int64(), SanitizeFilename(originalName)), nil
}

// SanitizeFilename strips path components and characters that are unsafe in a
// URL path segment, keeping the extension intact.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
