package viewer

import (
	"strings"
)

// ModelURLParam is the query parameter the viewer reads the model location from
const ModelURLParam = "modelUrl"

// unreservedPunct lists the punctuation EscapeModelURL leaves as is
const unreservedPunct = ":/?&=~.-_%"

const upperHex = "0123456789ABCDEF"

// Link returns base with modelURL attached as the modelUrl query parameter.
// An existing query on base is kept.
func Link(base, modelURL string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			sep = ""
		}
	}
	return base + sep + ModelURLParam + "=" + EscapeModelURL(modelURL)
}

// EscapeModelURL percent-encodes s byte by byte with upper-case hex digits.
// ASCII letters, digits and the characters in ":/?&=~.-_%" are kept, so an
// already-encoded URL passes through unchanged.
func EscapeModelURL(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func shouldKeep(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte(unreservedPunct, c) >= 0
}
