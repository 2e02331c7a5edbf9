package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintLen is the number of hex characters kept by Fingerprint
const FingerprintLen = 16

// Fingerprint returns a short SHA256 digest of a token.
// Logs and scan-log entries carry the fingerprint, never the token itself,
// so repeated scans of one code can be correlated without storing it.
func Fingerprint(token string) string {
	if token == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])[:FingerprintLen]
}
