package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_readSecret_Priority(t *testing.T) {
	dir := t.TempDir()
	secretFile := filepath.Join(dir, "secret")
	require.NoError(t, os.WriteFile(secretFile, []byte("from-file\n"), 0o600))
	emptyFile := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(emptyFile, []byte("  \n"), 0o600))

	tests := []struct {
		name       string
		errMsg     string
		want       string
		secrets    Secrets
		inputs     []string
		wantPrompt bool
		wantErr    bool
	}{
		{
			name:    "env wins",
			secrets: Secrets{FromEnv: "from-env", FromFile: secretFile, FromConfig: "from-config"},
			want:    "from-env",
		},
		{
			name:    "file before config",
			secrets: Secrets{FromFile: secretFile, FromConfig: "from-config"},
			want:    "from-file",
		},
		{
			name:    "config",
			secrets: Secrets{FromConfig: "from-config"},
			want:    "from-config",
		},
		{
			name:       "prompt",
			inputs:     []string{"typed"},
			want:       "typed",
			wantPrompt: true,
		},
		{
			name:    "missing file",
			secrets: Secrets{FromFile: filepath.Join(dir, "nope")},
			wantErr: true,
			errMsg:  "failed to read secret file",
		},
		{
			name:    "empty file",
			secrets: Secrets{FromFile: emptyFile},
			wantErr: true,
			errMsg:  "secret file is empty",
		},
		{
			name:       "empty prompt",
			inputs:     []string{""},
			wantPrompt: true,
			wantErr:    true,
			errMsg:     "secret cannot be empty",
		},
		{
			name:       "no input",
			wantPrompt: true,
			wantErr:    true,
			errMsg:     "failed to read secret from stdin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console, _ := newTestIO(tt.inputs...)
			c := newTestCli(console, nil, nil, Settings{Secrets: tt.secrets})

			got, err := c.readSecret()
			if tt.wantPrompt {
				assert.Len(t, console.ReadPasswordCalls(), 1)
			} else {
				assert.Empty(t, console.ReadPasswordCalls())
			}

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCli_tokenCipher_Cached(t *testing.T) {
	console, _ := newTestIO("hex:00ff10")
	c := newTestCli(console, nil, nil, Settings{})

	first, err := c.tokenCipher()
	require.NoError(t, err)
	second, err := c.tokenCipher()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, console.ReadPasswordCalls(), 1)
}

func TestCli_tokenCipher_BadSecret(t *testing.T) {
	console, _ := newTestIO()
	c := newTestCli(console, nil, nil, Settings{Secrets: Secrets{FromConfig: "hex:zz"}})

	_, err := c.tokenCipher()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode secret")
}
