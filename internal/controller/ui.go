// Package controller provides the hosts that drive the grouped list: a plain
// text renderer and an interactive terminal list.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/grouplist/internal/config"
	m "github.com/mouse-blink/grouplist/internal/model"
)

// UI defines the interface for displaying grouped lists.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Index shows how every flat position maps onto the groups.
	Index(groups []m.Group) error
	// View renders every position through the holder dispatch.
	View(groups []m.Group) error
}

// Format selects the Index output encoding.
type Format string

// Available Format values.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// Option is a functional option for the UI implementations.
type Option func(*Options)

// Options holds settings shared by the UI implementations.
type Options struct {
	columns int
	format  Format
	logger  *zap.Logger
}

// WithColumns sets the grid width used by View.
func WithColumns(columns int) Option {
	return func(o *Options) {
		o.columns = columns
	}
}

// WithFormat sets the Index output format.
func WithFormat(format Format) Option {
	return func(o *Options) {
		o.format = format
	}
}

// WithLogger sets the logger handed to the list controller.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) Options {
	o := Options{
		columns: config.DefaultColumns,
		format:  FormatTable,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.columns < 1 {
		o.columns = 1
	}

	return o
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool, opts ...Option) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), opts...)
	}

	return NewSimpleUI(cmd, opts...)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
