package resolve

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/ytget/glb-fetcher/internal/model"
)

// Candidate tiers, in priority order
const (
	TierAbsolute     = "absolute"
	TierRootRelative = "root-relative"
	TierAttribute    = "attribute"
)

// scanner finds file URLs of one extension in raw page text
type scanner struct {
	ext          string
	absolute     *regexp.Regexp
	rootRelative *regexp.Regexp
	attrRaw      *regexp.Regexp
	attrValue    *regexp.Regexp
}

func newScanner(ext string) *scanner {
	e := regexp.QuoteMeta(ext)
	return &scanner{
		ext: ext,
		// also matches JSON-escaped schemes such as https:\/\/
		absolute: regexp.MustCompile(`(?i)https?:(?:\\{0,2}/){2}[^\s"'<>]+?\.` + e + `(?:\?[^\s"'<>]+)?`),
		// the path must start a token so "assets/m.glb" does not yield "/m.glb"
		rootRelative: regexp.MustCompile(`(?i)(?:^|[\s"'=(>,\\])(/[^\s"'<>]+?\.` + e + `(?:\?[^\s"'<>]+)?)`),
		attrRaw:      regexp.MustCompile(`(?i)(?:href|src)=["']([^"']+?\.` + e + `(?:\?[^"']+)?)["']`),
		attrValue:    regexp.MustCompile(`(?i)^[^"']+?\.` + e + `(?:\?[^"']+)?$`),
	}
}

// find returns the first usable file URL in body. base is the final page URL
// used to resolve relative candidates.
func (sc *scanner) find(body string, base *url.URL, logf model.LogFunc) (string, string, bool) {
	for _, raw := range sc.absolute.FindAllString(body, -1) {
		if found, ok := sc.accept(raw, nil, logf); ok {
			return found, TierAbsolute, true
		}
	}

	for _, m := range sc.rootRelative.FindAllStringSubmatch(body, -1) {
		if found, ok := sc.accept(m[1], base, logf); ok {
			return found, TierRootRelative, true
		}
	}

	for _, raw := range sc.attributeValues(body) {
		if found, ok := sc.accept(raw, base, logf); ok {
			return found, TierAttribute, true
		}
	}

	return "", "", false
}

// attributeValues returns href and src values that are not absolute URLs and
// point at a file of the scanner's extension. Matches in the raw text come
// first, so attributes inside scripts and templates are seen with their
// original escaping; values found only by the HTML tokenizer follow.
func (sc *scanner) attributeValues(body string) []string {
	var values []string
	seen := make(map[string]bool)
	add := func(val string) {
		val = strings.TrimSpace(val)
		if val == "" || seen[val] || isAbsoluteHTTP(val) {
			return
		}
		seen[val] = true
		values = append(values, val)
	}

	for _, m := range sc.attrRaw.FindAllStringSubmatch(body, -1) {
		add(m[1])
	}

	tokenizer := html.NewTokenizer(strings.NewReader(body))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return values
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			for _, attr := range token.Attr {
				if attr.Key != "href" && attr.Key != "src" {
					continue
				}
				if sc.attrValue.MatchString(strings.TrimSpace(attr.Val)) {
					add(attr.Val)
				}
			}
		}
	}
}

func isAbsoluteHTTP(val string) bool {
	lower := strings.ToLower(val)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// accept normalizes raw, resolves it against base when base is set, and
// returns it if the result is an absolute http(s) URL
func (sc *scanner) accept(raw string, base *url.URL, logf model.LogFunc) (string, bool) {
	norm := Normalize(raw)
	if norm != raw && logf != nil {
		logf(fmt.Sprintf("normalized url: %s -> %s", raw, norm))
	}

	if base == nil {
		if _, ok := parseHTTPURL(norm); !ok {
			return "", false
		}
		return norm, true
	}

	ref, err := url.Parse(norm)
	if err != nil {
		return "", false
	}
	joined := base.ResolveReference(ref).String()
	if _, ok := parseHTTPURL(joined); !ok {
		return "", false
	}
	return joined, true
}
