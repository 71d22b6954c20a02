package platform

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	RunDLLCommand  = "rundll32"
	URLHandlerArg  = "url.dll,FileProtocolHandler"
)

// Browser opens URLs in the user's default browser
type Browser struct {
	goos  string
	start func(name string, args ...string) error // launches without waiting for exit
}

// NewBrowser creates a browser launcher for the current OS
func NewBrowser() *Browser {
	return &Browser{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			if err := cmd.Start(); err != nil {
				return err
			}
			go func() { _ = cmd.Wait() }()
			return nil
		},
	}
}

// OpenURL opens an absolute http(s) URL
func (b *Browser) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open non-http url: %s", rawURL)
	}

	name, args, err := browserCommand(b.goos, rawURL)
	if err != nil {
		return err
	}
	if err := b.start(name, args...); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// browserCommand returns the command that opens rawURL on goos
func browserCommand(goos, rawURL string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{rawURL}, nil
	case OSWindows:
		// cmd /c start would split the URL at '&'
		return RunDLLCommand, []string{URLHandlerArg, rawURL}, nil
	case OSLinux, "freebsd", "openbsd", "netbsd":
		return XDGOpenCommand, []string{rawURL}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
