package client

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Clipboard receives the JSON text of a copy action.
type Clipboard interface {
	WriteText(text string) error
}

var ErrNoClipboard = errors.New("no clipboard command found")

// CommandClipboard pipes text into the platform clipboard tool.
type CommandClipboard struct {
	name string
	args []string
}

var clipboardCommands = map[string][][]string{
	"darwin":  {{"pbcopy"}},
	"windows": {{"clip"}},
	"linux": {
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	},
}

// NewCommandClipboard picks the first clipboard tool available on PATH.
func NewCommandClipboard() (*CommandClipboard, error) {
	candidates, ok := clipboardCommands[runtime.GOOS]
	if !ok {
		candidates = clipboardCommands["linux"]
	}

	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return &CommandClipboard{name: c[0], args: c[1:]}, nil
		}
	}
	return nil, ErrNoClipboard
}

func (c *CommandClipboard) WriteText(text string) error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", c.name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
