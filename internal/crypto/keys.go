package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

const (
	// SecretSize - размер генерируемого shared secret в байтах
	SecretSize = 32

	hexPrefix    = "hex:"
	base64Prefix = "base64:"
)

// GenerateSecret returns a fresh random shared secret
func GenerateSecret() ([]byte, error) {
	secret := make([]byte, SecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}
	return secret, nil
}

// FormatSecret encodes a secret in the form accepted by ParseSecret
func FormatSecret(secret []byte) string {
	return hexPrefix + hex.EncodeToString(secret)
}

// ParseSecret decodes a configured secret.
// "hex:..." and "base64:..." are decoded; anything else is used as raw text,
// which is how the mobile app stores its secret.
func ParseSecret(value string) ([]byte, error) {
	value = strings.TrimSpace(value)

	var (
		secret []byte
		err    error
	)
	switch {
	case strings.HasPrefix(value, hexPrefix):
		secret, err = hex.DecodeString(strings.TrimPrefix(value, hexPrefix))
	case strings.HasPrefix(value, base64Prefix):
		secret, err = base64.StdEncoding.DecodeString(strings.TrimPrefix(value, base64Prefix))
	default:
		secret = []byte(value)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode secret: %w", err)
	}

	if len(secret) == 0 {
		return nil, fmt.Errorf("secret cannot be empty")
	}
	return secret, nil
}

// DeriveKey returns sha256(secret || salt), the per-token 256-bit key
func DeriveKey(secret []byte, salt string) []byte {
	h := sha256.New()
	h.Write(secret)
	h.Write([]byte(salt))
	return h.Sum(nil)
}

// newSalt генерирует случайный UUID v4 в качестве соли
func newSalt(r io.Reader) (string, error) {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return id.String(), nil
}
