package adapter

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener opens image URLs in an external viewer. URLs come from the remote
// catalogs, so only absolute http(s) URLs are ever handed to a process and
// no shell is involved.
type Opener struct {
	command string   // configured viewer command, empty for system default
	args    []string // additional arguments placed before the URL
	goos    string
	logger  *slog.Logger

	// start launches cmd; exited is called once the process has been reaped
	start func(cmd *exec.Cmd, exited func(error)) error
}

// NewOpener creates an Opener. An empty command uses the platform default
// handler (open, xdg-open or the URL protocol handler on Windows).
func NewOpener(command string, args []string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command: command,
		args:    args,
		goos:    runtime.GOOS,
		logger:  logger,
		start:   startDetached,
	}
}

// Open launches the viewer for rawURL
func (o *Opener) Open(rawURL string) error {
	target, err := imageURL(rawURL)
	if err != nil {
		o.logger.Warn("refusing to open image", "url", rawURL, "error", err)
		return err
	}

	cmd := o.command
	var args []string
	if cmd != "" {
		args = append(args, o.args...)
		// End of options: the URL is never parsed as a flag
		args = append(args, "--", target)
		o.logger.Info("opening image with configured viewer", "command", filepath.Base(cmd), "url", target)
	} else {
		cmd, args = defaultOpenCommand(o.goos, target)
		o.logger.Info("opening image with system default", "os", o.goos, "url", target)
	}

	exited := func(err error) {
		if err != nil {
			o.logger.Debug("viewer exited", "command", cmd, "error", err)
		}
	}
	if err := o.start(exec.Command(cmd, args...), exited); err != nil {
		o.logger.Error("failed to open image", "command", cmd, "error", err)
		return fmt.Errorf("failed to open image: %w", err)
	}
	return nil
}

// imageURL accepts only absolute http(s) URLs with a host and returns the
// re-encoded form.
func imageURL(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("no image to open")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid image url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid image url %q: want an absolute http(s) url", raw)
	}
	return u.String(), nil
}

// defaultOpenCommand returns the system default handler for a platform.
// None of them goes through a shell.
func defaultOpenCommand(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{target}
	}
}

// startDetached starts cmd without blocking and reaps it in the background
func startDetached(cmd *exec.Cmd, exited func(error)) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		err := cmd.Wait()
		if exited != nil {
			exited(err)
		}
	}()
	return nil
}

// SplitCommand splits a configured viewer line such as "feh --scale-down"
// into the command and its arguments.
func SplitCommand(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
