package librepcb

import (
	"bytes"
	"fmt"
)

// docWriter accumulates a parenthesized block document. Nesting depth maps
// to indentation: one space per level, every line newline-terminated.
// Closing parentheses sit on their own line at the depth of the block they
// close, matching the on-disk format LibrePCB produces itself.
type docWriter struct {
	buf   bytes.Buffer
	depth int
}

// open writes an opening line (the caller includes the leading parenthesis)
// and increases the nesting depth for subsequent lines.
func (w *docWriter) open(format string, args ...any) {
	w.line(format, args...)
	w.depth++
}

// line writes a single indented line at the current depth.
func (w *docWriter) line(format string, args ...any) {
	w.indent()
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

// close decreases the nesting depth and writes the closing parenthesis.
func (w *docWriter) close() {
	w.depth--
	w.indent()
	w.buf.WriteString(")\n")
}

func (w *docWriter) indent() {
	for i := 0; i < w.depth; i++ {
		w.buf.WriteByte(' ')
	}
}

func (w *docWriter) bytes() []byte {
	return w.buf.Bytes()
}
