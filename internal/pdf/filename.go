package pdf

import (
	"strings"

	"github.com/google/uuid"
)

const fileSuffix = "_resume.pdf"

// SanitizeFileName reduces a candidate name to [a-z0-9_]. Names that reduce
// to nothing get a random eight character token.
func SanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	out = strings.Trim(out, "_")
	if out == "" {
		out = uuid.NewString()[:8]
	}
	return out
}

// FileName returns the stored PDF name for a candidate.
func FileName(candidate string) string {
	return SanitizeFileName(candidate) + fileSuffix
}
