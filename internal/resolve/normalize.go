package resolve

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/net/html"
)

var (
	doubleEscapedUnicode = regexp.MustCompile(`\\\\u([0-9a-fA-F]{4})`)
	escapedSurrogatePair = regexp.MustCompile(`\\u([dD][89abAB][0-9a-fA-F]{2})\\u([dD][c-fC-F][0-9a-fA-F]{2})`)
	escapedUnicode       = regexp.MustCompile(`\\u([0-9a-fA-F]{4})`)
)

// normalizeStages run in this order; each takes the previous stage's output
var normalizeStages = []func(string) string{
	trimTrailingBackslash,
	unescapeJSONSlashes,
	collapseBackslashes,
	decodeDoubleEscapedUnicode,
	decodeEscapedUnicode,
	html.UnescapeString,
	strings.TrimSpace,
}

// Normalize restores a URL found inside JSON string literals or HTML
// attribute values: JSON escapes, \uXXXX sequences and HTML entities are
// decoded and surrounding whitespace is dropped. It never fails; a stage that
// panics is skipped and the previous value is kept.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	for _, stage := range normalizeStages {
		s = applyStage(stage, s)
	}
	return s
}

func applyStage(stage func(string) string, s string) (out string) {
	defer func() {
		if recover() != nil {
			out = s
		}
	}()
	return stage(s)
}

// trimTrailingBackslash drops one trailing backslash left over from a cut
// JSON string, but keeps an escaped pair
func trimTrailingBackslash(s string) string {
	if strings.HasSuffix(s, `\`) && !strings.HasSuffix(s, `\\`) {
		return s[:len(s)-1]
	}
	return s
}

func unescapeJSONSlashes(s string) string {
	s = strings.ReplaceAll(s, `\/`, `/`)
	return strings.ReplaceAll(s, `\"`, `"`)
}

func collapseBackslashes(s string) string {
	return strings.ReplaceAll(s, `\\`, `\`)
}

func decodeDoubleEscapedUnicode(s string) string {
	return doubleEscapedUnicode.ReplaceAllStringFunc(s, func(m string) string {
		return decodeCodeUnit(m, m[3:])
	})
}

func decodeEscapedUnicode(s string) string {
	s = escapedSurrogatePair.ReplaceAllStringFunc(s, func(m string) string {
		hi, err1 := strconv.ParseUint(m[2:6], 16, 16)
		lo, err2 := strconv.ParseUint(m[8:12], 16, 16)
		if err1 != nil || err2 != nil {
			return m
		}
		return string(utf16.DecodeRune(rune(hi), rune(lo)))
	})
	return escapedUnicode.ReplaceAllStringFunc(s, func(m string) string {
		return decodeCodeUnit(m, m[2:])
	})
}

// decodeCodeUnit converts four hex digits to a character. Lone surrogates
// cannot be represented and are left as written.
func decodeCodeUnit(match, hex string) string {
	v, err := strconv.ParseUint(hex, 16, 16)
	if err != nil || utf16.IsSurrogate(rune(v)) {
		return match
	}
	return string(rune(v))
}
