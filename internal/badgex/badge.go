// Package badgex implements the badge identity-protection rules: an
// irreversible display mask and a one-way digest for audit trails.
// Both functions are pure given their input and digester.
package badgex

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/dmitrijs2005/hrakiosk/internal/common"
)

// MaskChar replaces hidden badge positions in the display form.
const MaskChar = "*"

// MaskBadge hides all but the last four characters of a badge identifier.
// The input is trimmed first; an empty trimmed input yields "" (callers
// filter empties before masking, so this is not an error). The output always
// has the same length as the trimmed input.
//
// Badges of four characters or fewer come back unmasked. Accepted as-is:
// it reveals more than intended for very short identifiers, but real badge
// numbers are longer and downstream consumers rely on the length property.
func MaskBadge(badge string) string {
	trimmed := strings.TrimSpace(badge)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) <= 4 {
		return trimmed
	}
	keep := trimmed[len(trimmed)-4:]
	return strings.Repeat(MaskChar, len(trimmed)-4) + keep
}

// Digester produces a fixed-size one-way digest of a badge identifier.
// It exists so the hashing primitive is injected rather than ambient.
type Digester interface {
	Sum(data []byte) []byte
}

// SHA256Digester is the default digester: a 256-bit SHA-2 digest.
type SHA256Digester struct{}

func (SHA256Digester) Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// HashBadge digests a badge with the default SHA-256 digester.
func HashBadge(badge string) (string, error) {
	return HashBadgeWith(SHA256Digester{}, badge)
}

// HashBadgeWith renders the digest of the trimmed badge as lowercase hex.
// Identical input always yields identical output. Hashing an empty trimmed
// value fails with common.ErrorEmptyInput. A nil digester fails closed with
// common.ErrorCryptoUnavailable: a raw badge value is never returned in
// place of a digest.
func HashBadgeWith(d Digester, badge string) (string, error) {
	trimmed := strings.TrimSpace(badge)
	if trimmed == "" {
		return "", common.ErrorEmptyInput
	}
	if d == nil {
		return "", common.ErrorCryptoUnavailable
	}
	return hex.EncodeToString(d.Sum([]byte(trimmed))), nil
}
