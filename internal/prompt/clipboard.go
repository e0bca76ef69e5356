package prompt

import (
	"io"

	"github.com/atotto/clipboard"
)

type Clipboard interface {
	WriteAll(text string) error
}

type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func SystemClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// WriterClipboard writes the text to an io.Writer instead of the system clipboard.
type WriterClipboard struct {
	W io.Writer
}

func (c WriterClipboard) WriteAll(text string) error {
	_, err := io.WriteString(c.W, text)
	return err
}
