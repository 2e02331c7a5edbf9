package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/fairscan/internal/client/iocli"
	"github.com/iudanet/fairscan/internal/client/sync"
	"github.com/iudanet/fairscan/internal/crypto"
	"github.com/iudanet/fairscan/internal/task"
)

const testSecret = "fw"

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestIO возвращает консоль, которая читает inputs по порядку
// и складывает весь вывод в out
func newTestIO(inputs ...string) (*iocli.IOMock, *strings.Builder) {
	out := &strings.Builder{}
	next := func() (string, error) {
		if len(inputs) == 0 {
			return "", io.EOF
		}
		line := inputs[0]
		inputs = inputs[1:]
		return line, nil
	}

	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return next()
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return next()
		},
	}, out
}

func newTestCli(console iocli.IO, server Server, svc sync.Service, settings Settings) *Cli {
	c := New(console, server, svc, settings, setupTestLogger())
	c.now = func() time.Time {
		return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	}
	return c
}

func defaultSettings() Settings {
	return Settings{
		Secrets:   Secrets{FromConfig: testSecret},
		ServerURL: "http://localhost:8080",
		UserID:    "user-1",
	}
}

// mintToken шифрует готовый JSON конверта
func mintToken(t *testing.T, plaintext string) string {
	t.Helper()

	c, err := crypto.NewTokenCipher([]byte(testSecret))
	require.NoError(t, err)
	token, err := c.Encrypt(plaintext)
	require.NoError(t, err)
	return token
}

func mintTask(t *testing.T, tk task.Task) string {
	t.Helper()

	plaintext, err := task.Encode(tk)
	require.NoError(t, err)
	return mintToken(t, plaintext)
}
