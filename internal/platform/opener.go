package platform

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	"github.com/revenland/revenland/internal/domain"
)

// launchPath is one way to start a video player
type launchPath struct {
	path string // command in PATH, or "open-a:AppName" for macOS apps
}

// candidatePlayers lists video players to try per platform, in order
var candidatePlayers = map[string][]launchPath{
	"darwin":  {{path: "open-a:IINA"}, {path: "mpv"}, {path: "vlc"}, {path: "open-a:VLC"}},
	"linux":   {{path: "mpv"}, {path: "celluloid"}, {path: "vlc"}},
	"windows": {{path: "vlc"}, {path: "mpv"}},
}

// Opener opens links in the browser and videos in a player
type Opener struct {
	command string   // configured command, empty for system default
	args    []string // extra arguments placed before the URL
	goos    string
	logger  *slog.Logger

	lookPath func(file string) (string, error)
	start    func(name string, args ...string) error // starts without waiting
	run      func(name string, args ...string) error // runs to completion
}

var _ domain.Opener = (*Opener)(nil)

// NewOpener creates an Opener. An empty command uses the system handler.
func NewOpener(command string, args []string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command:  command,
		args:     args,
		goos:     runtime.GOOS,
		logger:   logger,
		lookPath: exec.LookPath,
		start:    func(name string, args ...string) error { return exec.Command(name, args...).Start() },
		run:      func(name string, args ...string) error { return exec.Command(name, args...).Run() },
	}
}

// Open opens a URL with the configured command or the system default handler
func (o *Opener) Open(url string) error {
	if o.command != "" {
		args := append(append([]string{}, o.args...), url)
		o.logger.Info("opening with configured command", "command", o.command, "url", url)
		return o.start(o.command, args...)
	}
	return o.openDefault(url)
}

// Play opens a video URL in the first available player, falling back to Open
func (o *Opener) Play(url string) error {
	if o.command != "" {
		return o.Open(url)
	}

	paths, ok := candidatePlayers[o.goos]
	if !ok {
		paths = candidatePlayers["linux"]
	}

	for _, lp := range paths {
		var err error
		if app, ok := strings.CutPrefix(lp.path, "open-a:"); ok {
			// open -a fails when the app is not installed
			err = o.run("open", "-a", app, url)
		} else if _, err = o.lookPath(lp.path); err == nil {
			err = o.start(lp.path, url)
		}

		if err == nil {
			o.logger.Info("playing with detected player", "path", lp.path)
			return nil
		}
		o.logger.Debug("player not available", "path", lp.path, "error", err)
	}

	o.logger.Info("no video player found, using system default")
	return o.openDefault(url)
}

func (o *Opener) openDefault(url string) error {
	var name string
	var args []string

	switch o.goos {
	case "darwin":
		name, args = "open", []string{url}
	case "windows":
		name, args = "cmd", []string{"/c", "start", "", url}
	default:
		name, args = "xdg-open", []string{url}
	}

	o.logger.Info("opening with system default", "os", o.goos, "url", url)
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
