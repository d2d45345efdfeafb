package core

import (
	"path"
	"strings"
)

// SafeName reduces an untrusted string to characters that are safe in file
// names and Content-Disposition headers: ASCII letters, digits, '.', '-' and
// '_'. Everything else becomes '_'. Any directory part is dropped first, and a
// result that is empty or only dots is replaced by fallback.
func SafeName(s, fallback string) string {
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(strings.TrimSpace(s))
	if s == "/" {
		s = ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := b.String()
	if strings.Trim(out, ".") == "" {
		return fallback
	}
	return out
}
