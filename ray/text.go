package ray

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// cString returns s as a NUL-terminated byte slice for raylib. Text raylib
// cannot represent is a programming error, so it is logged to logger and
// panics.
func cString(logger *slog.Logger, s string) []byte {
	if i := strings.IndexByte(s, 0); i >= 0 {
		misuse(logger, fmt.Sprintf("text %q contains a NUL byte at offset %d", s, i))
	}
	if !utf8.ValidString(s) {
		misuse(logger, fmt.Sprintf("text %q is not valid UTF-8", s))
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}
