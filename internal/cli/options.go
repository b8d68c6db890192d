package cli

import (
	"io"
	"os"
)

// RunOptions contains everything a browser session needs from the command line.
type RunOptions struct {
	// ConfigPath is an optional YAML/JSON config file.
	ConfigPath string

	// Overrides holds config keys set explicitly by flags.
	Overrides map[string]any

	// SessionID tags logs and hook events. Empty means random.
	SessionID string

	Stdin  io.Reader
	Stdout io.Writer
}

func (o RunOptions) stdin() io.Reader {
	if o.Stdin == nil {
		return os.Stdin
	}
	return o.Stdin
}

func (o RunOptions) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}
