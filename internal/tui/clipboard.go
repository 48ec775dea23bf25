package tui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// copyToClipboard copies text to the system clipboard.
func copyToClipboard(text string) error {
	name, args, err := clipboardCommand(runtime.GOOS, os.Getenv("WAYLAND_DISPLAY") != "", exec.LookPath)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}

	return nil
}

// clipboardCommand picks the copy tool for the platform. On Linux,
// wl-copy is preferred under Wayland, then xclip, then xsel.
func clipboardCommand(goos string, wayland bool, lookPath func(string) (string, error)) (string, []string, error) {
	switch goos {
	case "darwin":
		return "pbcopy", nil, nil
	case "linux":
		candidates := []struct {
			name string
			args []string
		}{
			{"xclip", []string{"-selection", "clipboard"}},
			{"xsel", []string{"--clipboard", "--input"}},
		}
		if wayland {
			candidates = append([]struct {
				name string
				args []string
			}{{"wl-copy", nil}}, candidates...)
		}
		for _, c := range candidates {
			if _, err := lookPath(c.name); err == nil {
				return c.name, c.args, nil
			}
		}
		return "", nil, fmt.Errorf("no clipboard tool: install xclip, xsel or wl-clipboard")
	}
	return "", nil, fmt.Errorf("clipboard not supported on %s", goos)
}
