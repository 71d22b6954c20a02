package model

// ResolvedTarget is the outcome of a successful resolution: an absolute
// HTTP(S) file URL and the filename to save it under.
type ResolvedTarget struct {
	FileURL  string
	Filename string
}

// IsZero reports whether the target carries no file URL
func (t ResolvedTarget) IsZero() bool {
	return t.FileURL == ""
}
