// Package iocli is the terminal the scanner CLI talks through.
package iocli

//go:generate moq -out io_mock.go . IO

// IO is the console of the CLI. It doubles as an io.Writer for encoders.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput returns one trimmed line; io.EOF once input is exhausted
	ReadInput(prompt string) (string, error)
	// ReadPassword reads a line without echo when attached to a terminal
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
