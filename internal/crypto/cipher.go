package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/chacha20poly1305"
)

// Scheme identifies how the body of a task token is encrypted.
type Scheme string

const (
	// SchemeCBC is AES-256-CBC with PKCS7 padding. Tokens of this scheme
	// carry no tag, which keeps them readable by every deployed scanner.
	SchemeCBC Scheme = ""
	// SchemeXChaCha is XChaCha20-Poly1305. The salt segment is prefixed with "x2.".
	SchemeXChaCha Scheme = "x2"
)

const (
	// IVSize - размер IV для AES-CBC (один блок)
	IVSize = aes.BlockSize

	segmentSep = ":"
	tagSep     = "."
)

// TokenCipher encrypts short text payloads into self-contained task tokens
// of the form salt:hex(iv):base64(ciphertext). Every token gets a fresh
// salt and IV, and its key is sha256(secret || salt).
type TokenCipher struct {
	random io.Reader
	scheme Scheme
	secret []byte
}

// Option configures a TokenCipher.
type Option func(*TokenCipher)

// WithScheme selects the scheme used by Encrypt. Decrypt accepts every
// known scheme regardless of this setting.
func WithScheme(s Scheme) Option {
	return func(c *TokenCipher) {
		c.scheme = s
	}
}

// WithRandom replaces the source of salts and IVs.
func WithRandom(r io.Reader) Option {
	return func(c *TokenCipher) {
		c.random = r
	}
}

// NewTokenCipher creates a cipher bound to the shared secret.
func NewTokenCipher(secret []byte, opts ...Option) (*TokenCipher, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("shared secret cannot be empty")
	}

	c := &TokenCipher{
		secret: append([]byte(nil), secret...),
		scheme: SchemeCBC,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !knownScheme(c.scheme) {
		return nil, fmt.Errorf("unknown token scheme %q", c.scheme)
	}

	return c, nil
}

// String returns a printable scheme name, "cbc" for the default scheme.
func (s Scheme) String() string {
	if s == SchemeCBC {
		return "cbc"
	}
	return string(s)
}

// Scheme returns the scheme used for new tokens.
func (c *TokenCipher) Scheme() Scheme {
	return c.scheme
}

// Encrypt turns plaintext into a task token. On failure it returns an empty
// token, which callers must treat as "encryption unavailable".
func (c *TokenCipher) Encrypt(plaintext string) (string, error) {
	token, err := c.encrypt([]byte(plaintext))
	if err != nil {
		return "", &CipherError{Kind: ErrEncryptFailed, Err: err}
	}
	return token, nil
}

func (c *TokenCipher) encrypt(plaintext []byte) (string, error) {
	salt, err := newSalt(c.random)
	if err != nil {
		return "", err
	}
	if c.scheme != SchemeCBC {
		salt = string(c.scheme) + tagSep + salt
	}

	key := DeriveKey(c.secret, salt)

	var iv, sealed []byte
	switch c.scheme {
	case SchemeXChaCha:
		iv, sealed, err = sealXChaCha(key, plaintext, c.random)
	default:
		iv, sealed, err = sealCBC(key, plaintext, c.random)
	}
	if err != nil {
		return "", err
	}

	return strings.Join([]string{
		salt,
		hex.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(sealed),
	}, segmentSep), nil
}

// Decrypt recovers the plaintext of a task token. It fails closed: any
// error comes with an empty plaintext and wraps either ErrMalformedToken
// or ErrDecryptFailed.
func (c *TokenCipher) Decrypt(token string) (string, error) {
	parts := strings.Split(token, segmentSep)
	if len(parts) != 3 {
		return "", &CipherError{
			Kind: ErrMalformedToken,
			Msg:  fmt.Sprintf("expected 3 segments, got %d", len(parts)),
		}
	}

	plaintext, err := c.decrypt(parts[0], parts[1], parts[2])
	if err != nil {
		return "", &CipherError{Kind: ErrDecryptFailed, Err: err}
	}
	return plaintext, nil
}

func (c *TokenCipher) decrypt(salt, ivHex, body string) (string, error) {
	if salt == "" || ivHex == "" || body == "" {
		return "", fmt.Errorf("empty token segment")
	}

	scheme, err := schemeOf(salt)
	if err != nil {
		return "", err
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return "", fmt.Errorf("failed to decode iv: %w", err)
	}

	sealed, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	key := DeriveKey(c.secret, salt)

	var plaintext []byte
	switch scheme {
	case SchemeXChaCha:
		plaintext, err = openXChaCha(key, iv, sealed)
	default:
		plaintext, err = openCBC(key, iv, sealed)
	}
	if err != nil {
		return "", err
	}

	// Мусор после неверного ключа почти никогда не бывает валидным UTF-8
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("plaintext is not valid UTF-8")
	}

	return string(plaintext), nil
}

// schemeOf reads the optional scheme tag from the salt segment.
// UUID salts never contain a dot, so untagged segments are legacy CBC.
func schemeOf(salt string) (Scheme, error) {
	idx := strings.Index(salt, tagSep)
	if idx < 0 {
		return SchemeCBC, nil
	}

	tag := Scheme(salt[:idx])
	if tag == SchemeCBC || !knownScheme(tag) {
		return "", fmt.Errorf("unknown token scheme %q", tag)
	}
	return tag, nil
}

func knownScheme(s Scheme) bool {
	switch s {
	case SchemeCBC, SchemeXChaCha:
		return true
	default:
		return false
	}
}

func sealCBC(key, plaintext []byte, random io.Reader) ([]byte, []byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(random, iv); err != nil {
		return nil, nil, fmt.Errorf("failed to generate iv: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return iv, out, nil
}

func openCBC(key, iv, ciphertext []byte) ([]byte, error) {
	if len(iv) != IVSize {
		return nil, fmt.Errorf("iv must be %d bytes, got %d", IVSize, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext is not a multiple of the block size")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)

	return pkcs7Unpad(out, aes.BlockSize)
}

func sealXChaCha(key, plaintext []byte, random io.Reader) ([]byte, []byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create aead: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := io.ReadFull(random, nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

func openXChaCha(key, nonce, sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create aead: %w", err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("nonce must be %d bytes, got %d", aead.NonceSize(), len(nonce))
	}

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	return plaintext, nil
}
