package librepcb

import (
	"strconv"
	"strings"
)

// FormatFloat renders a coordinate or dimension value in the canonical form
// used throughout generated documents: at most 3 decimal digits, trailing
// zeros stripped down to a minimal form that always keeps the decimal point
// and at least one fractional digit.
//
//	0.0    -> "0.0"   (also for negative zero)
//	-7.0   -> "-7.0"
//	0.4    -> "0.4"
//	3.14456 -> "3.145"
func FormatFloat(v float64) string {
	if v == 0 {
		return "0.0"
	}
	s := strconv.FormatFloat(v, 'f', 3, 64)
	switch {
	case strings.HasSuffix(s, "00"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "0"):
		return s[:len(s)-1]
	}
	return s
}

// escapeString sanitizes a user-supplied string for embedding between double
// quotes. Backslashes and quotes are escaped, newlines and tabs become their
// escape sequences, and any remaining control characters are dropped so a
// hostile metadata field can never break out of its quoted context.
func escapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '"':
			b.WriteString(`\"`)
		case c == '\r':
			// CRLF collapses to a single escaped newline.
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			b.WriteString(`\n`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 || c == 0x7f:
			// drop
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
