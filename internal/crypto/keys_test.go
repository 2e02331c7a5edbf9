package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecret(t *testing.T) {
	s1, err := GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, s1, SecretSize)

	s2, err := GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)

	// Сгенерированный секрет должен читаться обратно
	parsed, err := ParseSecret(FormatSecret(s1))
	require.NoError(t, err)
	assert.Equal(t, s1, parsed)
}

func TestParseSecret(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		errMsg  string
		want    []byte
		wantErr bool
	}{
		{
			name:  "raw text",
			value: "fw",
			want:  []byte("fw"),
		},
		{
			name:  "raw text is trimmed",
			value: "  fw\n",
			want:  []byte("fw"),
		},
		{
			name:  "hex",
			value: "hex:00ff10",
			want:  []byte{0x00, 0xff, 0x10},
		},
		{
			name:  "base64",
			value: "base64:Znc=",
			want:  []byte("fw"),
		},
		{
			name:    "invalid hex",
			value:   "hex:zz",
			wantErr: true,
			errMsg:  "failed to decode secret",
		},
		{
			name:    "invalid base64",
			value:   "base64:***",
			wantErr: true,
			errMsg:  "failed to decode secret",
		},
		{
			name:    "empty",
			value:   "   ",
			wantErr: true,
			errMsg:  "secret cannot be empty",
		},
		{
			name:    "empty hex payload",
			value:   "hex:",
			wantErr: true,
			errMsg:  "secret cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSecret(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveKey(t *testing.T) {
	// sha256("fw" + salt), как в мобильном приложении
	key := DeriveKey([]byte("fw"), "6f1c2b1e-8d4a-4c3e-9b7a-2f5d1e0c9a11")
	assert.Equal(t, "45bdc1afcc748a615f4aa0b9cd4115b325511e0d23e6e6b0569a6e43b7b4ae47", hex.EncodeToString(key))

	assert.Len(t, DeriveKey([]byte("fw"), ""), 32)
	assert.NotEqual(t, DeriveKey([]byte("fw"), "a"), DeriveKey([]byte("fw"), "b"))
	assert.NotEqual(t, DeriveKey([]byte("fw"), "a"), DeriveKey([]byte("fx"), "a"))
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "", Fingerprint(""))
	assert.Equal(t, "ba7816bf8f01cfea", Fingerprint("abc"))
	assert.Len(t, Fingerprint(legacyToken), FingerprintLen)
	assert.NotEqual(t, Fingerprint("a"), Fingerprint("b"))
}
