package api

import (
	"fmt"
	"io"
)

// Notifier surfaces user-visible messages outside normal command output, the
// terminal counterpart of toast notifications in the web client.
type Notifier interface {
	Error(message string)
}

// WriterNotifier prints notifications to an io.Writer, one per line.
type WriterNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Error(message string) {
	fmt.Fprintf(n.w, "! %s\n", message)
}
