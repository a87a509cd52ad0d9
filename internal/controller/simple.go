package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/grouplist/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	opts Options
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, opts ...Option) *SimpleUI {
	return &SimpleUI{cmd: cmd, opts: newOptions(opts)}
}

// Index prints one row per flat position.
func (s *SimpleUI) Index(groups []m.Group) error {
	sess, err := newSession(groups, s.opts.logger)
	if err != nil {
		return err
	}

	rows, err := sess.positions()
	if err != nil {
		return err
	}

	if s.opts.format == FormatYAML {
		data, err := yaml.Marshal(map[string][]positionRow{"positions": rows})
		if err != nil {
			return fmt.Errorf("failed to encode positions: %w", err)
		}

		s.printf("%s", data)

		return nil
	}

	s.printf("\n%s", renderPositionTable(rows, sess.list.GroupCount()))

	return nil
}

// View prints the rendered rows laid out on a grid of the configured width.
func (s *SimpleUI) View(groups []m.Group) error {
	sess, err := newSession(groups, s.opts.logger)
	if err != nil {
		return err
	}

	out, err := renderGrid(sess, s.opts.columns)
	if err != nil {
		return err
	}

	s.printf("%s", out)

	return nil
}

func renderPositionTable(rows []positionRow, groups int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Position", "Kind", "Group", "Child", "Type"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, r := range rows {
		child := strconv.Itoa(r.Child)
		if r.Kind != m.RegionItem.String() {
			child = "-"
		}

		table.Append([]string{
			strconv.Itoa(r.Position),
			r.Kind,
			strconv.Itoa(r.Group),
			child,
			strconv.Itoa(r.Type),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Groups %d", groups),
		fmt.Sprintf("%d", len(rows)),
		"", "", "",
	})

	table.Render()

	return tableBuffer.String()
}

// renderGrid lays out rows the way a grid list does: headers and footers
// take a full line, items fill up to columns cells per line.
func renderGrid(sess *session, columns int) (string, error) {
	var (
		out  strings.Builder
		line []string
		used int
	)

	flush := func() {
		if len(line) > 0 {
			out.WriteString("    " + strings.Join(line, " | ") + "\n")
		}

		line = line[:0]
		used = 0
	}

	for position := range sess.ctrl.Len() {
		r, err := sess.render(position)
		if err != nil {
			return "", err
		}

		span, err := sess.ctrl.SpanSize(position, columns)
		if err != nil {
			return "", err
		}

		if span >= columns && r.region != m.RegionItem {
			flush()

			switch r.region {
			case m.RegionHeader:
				out.WriteString("== " + r.text + "\n")
			default:
				out.WriteString("-- " + r.text + "\n")
			}

			continue
		}

		line = append(line, r.text)
		used += span

		if used >= columns {
			flush()
		}
	}

	flush()

	return out.String(), nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
