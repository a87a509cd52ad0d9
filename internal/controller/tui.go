package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/grouplist/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader
	opts   Options
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, opts ...Option) *TUI {
	return &TUI{output: output, opts: newOptions(opts)}
}

// Index prints the position table. It is never interactive.
func (t *TUI) Index(groups []m.Group) error {
	sess, err := newSession(groups, t.opts.logger)
	if err != nil {
		return err
	}

	rows, err := sess.positions()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(t.output, titleStyle.Render("Grouped list positions")+"\n"+
		renderPositionTable(rows, sess.list.GroupCount()))

	return err
}

// View runs the interactive list until the user quits.
func (t *TUI) View(groups []m.Group) error {
	model, err := newGroupModel(groups, t.opts)
	if err != nil {
		return err
	}

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.resize(width, height)
		}
	}

	programOpts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}
	if t.input != nil {
		programOpts = append(programOpts, tea.WithInput(t.input))
	}

	program := tea.NewProgram(model, programOpts...)
	if _, err := program.Run(); err != nil {
		return err
	}

	return model.err
}
