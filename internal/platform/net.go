package platform

import (
	"fmt"
	"net/http"
)

// RedirectPolicy returns an http.Client CheckRedirect func that follows at
// most max redirects
func RedirectPolicy(max int) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return fmt.Errorf("stopped after %d redirects", max)
		}
		return nil
	}
}
