package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLineSize bounds a single command line.
const MaxLineSize = 1024

var (
	ErrLineTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8  = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeLine enforces the size limit, validates UTF-8 and strips control
// characters (ANSI escapes, NUL, BEL) so they never reach logs or the terminal.
func SanitizeLine(line string) (string, error) {
	if len(line) > MaxLineSize {
		// Rejected, not truncated: a truncated command could mean something else.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrLineTooLarge, len(line), MaxLineSize)
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}

	clean := true
	for _, r := range line {
		if unicode.IsControl(r) && r != '\t' {
			clean = false
			break
		}
	}
	if clean {
		return strings.TrimSpace(line), nil
	}

	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if !unicode.IsControl(r) || r == '\t' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
