package platform

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"
)

func TestBrowserCommand(t *testing.T) {
	const u = "https://andytwoods.github.io/Figurinify/?modelUrl=https://a.b/x.glb?a=1&b=2"
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{OSDarwin, OpenCommand, []string{u}, false},
		{OSLinux, XDGOpenCommand, []string{u}, false},
		{OSWindows, RunDLLCommand, []string{URLHandlerArg, u}, false},
		{"plan9", "", nil, true},
	}

	for _, test := range tests {
		name, args, err := browserCommand(test.goos, u)
		if (err != nil) != test.wantErr {
			t.Errorf("browserCommand(%s) error = %v, wantErr %v", test.goos, err, test.wantErr)
			continue
		}
		if name != test.wantName || !reflect.DeepEqual(args, test.wantArgs) {
			t.Errorf("browserCommand(%s) = %s %v, expected %s %v", test.goos, name, args, test.wantName, test.wantArgs)
		}
	}
}

func TestBrowser_OpenURL(t *testing.T) {
	var gotName string
	var gotArgs []string
	b := &Browser{
		goos: OSLinux,
		start: func(name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		},
	}

	if err := b.OpenURL("https://example.com/viewer/"); err != nil {
		t.Fatalf("OpenURL() error = %v", err)
	}
	if gotName != XDGOpenCommand || len(gotArgs) != 1 || gotArgs[0] != "https://example.com/viewer/" {
		t.Errorf("OpenURL() ran %s %v", gotName, gotArgs)
	}
}

func TestBrowser_OpenURL_Rejects(t *testing.T) {
	called := false
	b := &Browser{goos: OSLinux, start: func(string, ...string) error {
		called = true
		return nil
	}}

	for _, u := range []string{"file:///etc/passwd", "javascript:alert(1)", "/relative", "://bad"} {
		if err := b.OpenURL(u); err == nil {
			t.Errorf("OpenURL(%q) should fail", u)
		}
	}
	if called {
		t.Error("no command should run for rejected URLs")
	}
}

func TestBrowser_OpenURL_StartError(t *testing.T) {
	b := &Browser{goos: OSLinux, start: func(string, ...string) error {
		return errors.New("xdg-open not found")
	}}

	err := b.OpenURL("https://example.com/")
	if err == nil || !strings.Contains(err.Error(), "xdg-open not found") {
		t.Errorf("OpenURL() error = %v, expected wrapped start error", err)
	}
}

func TestRedirectPolicy(t *testing.T) {
	policy := RedirectPolicy(2)
	req := &http.Request{}

	if err := policy(req, make([]*http.Request, 1)); err != nil {
		t.Errorf("1 redirect should be allowed, got %v", err)
	}
	if err := policy(req, make([]*http.Request, 2)); err == nil {
		t.Error("2 previous requests should stop the chain")
	}
}
