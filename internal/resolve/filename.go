package resolve

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// DefaultBaseName is used when the file URL has no usable last path segment
const DefaultBaseName = "model"

var modelIDPattern = regexp.MustCompile(`(?i)v2-[0-9a-f]{8}(?:-[0-9a-f]{4}){3}-[0-9a-f]{12}`)

// filenameReplacer replaces characters that are not allowed in file names on
// at least one desktop OS
var filenameReplacer = strings.NewReplacer(
	":", "_",
	"\\", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// ExtractModelID returns the first versioned model id in text, e.g.
// v2-019a7474-3f2a-7a7d-9282-cc5599095a44, exactly as written
func ExtractModelID(text string) (string, bool) {
	id := modelIDPattern.FindString(text)
	return id, id != ""
}

// SuggestFilename derives the local file name for fileURL. The result always
// ends in "."+ext.
func SuggestFilename(fileURL, ext string) string {
	suffix := "." + ext

	name := ""
	if u, err := url.Parse(fileURL); err == nil {
		name = path.Base(u.Path)
	}
	if name == "" || name == "." || name == "/" {
		return DefaultBaseName + suffix
	}

	name = strings.TrimSpace(filenameReplacer.Replace(name))
	if name == "" {
		return DefaultBaseName + suffix
	}
	if !strings.HasSuffix(strings.ToLower(name), suffix) {
		name += suffix
	}
	return name
}

// parseHTTPURL reports whether s is an absolute http(s) URL
func parseHTTPURL(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, false
	}
	scheme := strings.ToLower(u.Scheme)
	if (scheme != "http" && scheme != "https") || u.Host == "" {
		return nil, false
	}
	return u, true
}

// hasExtension reports whether the URL path, query ignored, ends in "."+ext
func hasExtension(u *url.URL, ext string) bool {
	return strings.HasSuffix(strings.ToLower(u.Path), "."+ext)
}
