package controller

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/grouplist/internal/model"
)

func newTestModel(t *testing.T, groups []m.Group) *groupModel {
	t.Helper()

	gm, err := newGroupModel(groups, newOptions(nil))
	require.NoError(t, err)

	return gm
}

func press(t *testing.T, gm *groupModel, k string) tea.Cmd {
	t.Helper()

	updated, cmd := gm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	require.Same(t, gm, updated)

	return cmd
}

// requireInSync checks that the widget, the controller and the store agree
// on the number of flat positions.
func requireInSync(t *testing.T, gm *groupModel, want int) {
	t.Helper()

	require.Len(t, gm.items.Items(), want)
	require.Equal(t, want, gm.sess.ctrl.Len())
	require.Equal(t, want, gm.sess.ctrl.TotalCount())
	require.Equal(t, want, gm.sess.list.ReportedCount())
}

func itemTitles(t *testing.T, gm *groupModel, group int) []string {
	t.Helper()

	g, err := gm.sess.list.Group(group)
	require.NoError(t, err)

	titles := make([]string, 0, len(g.Items))
	for _, item := range g.Items {
		titles = append(titles, item.Title)
	}

	return titles
}

func TestGroupModel_KeyDrivenEdits(t *testing.T) {
	gm := newTestModel(t, sampleGroups())
	requireInSync(t, gm, 6)

	// Header selected: the new item goes first.
	press(t, gm, "a")
	requireInSync(t, gm, 7)
	require.Equal(t, []string{"New item 1", "apple", "pear", "plum"}, itemTitles(t, gm, 0))

	gm.items.Select(1)
	press(t, gm, "x")
	requireInSync(t, gm, 6)
	require.Equal(t, []string{"apple", "pear", "plum"}, itemTitles(t, gm, 0))

	press(t, gm, "f")
	requireInSync(t, gm, 7)
	require.True(t, gm.sess.list.HasFooter(0))

	press(t, gm, "J")
	requireInSync(t, gm, 7)
	require.Equal(t, []string{"pear", "apple", "plum"}, itemTitles(t, gm, 0))
	require.Equal(t, 2, gm.items.Index())

	press(t, gm, "K")
	require.Equal(t, []string{"apple", "pear", "plum"}, itemTitles(t, gm, 0))
	require.Equal(t, 1, gm.items.Index())

	press(t, gm, "n")
	requireInSync(t, gm, 8)
	require.Equal(t, 3, gm.sess.list.GroupCount())

	state, err := gm.sess.ctrl.Classify(5)
	require.NoError(t, err)
	require.Equal(t, m.HeaderState(1), state)

	press(t, gm, "D")
	requireInSync(t, gm, 3)
	require.Equal(t, 2, gm.sess.list.GroupCount())
	require.Contains(t, gm.status, "deleted group 0")
}

func TestGroupModel_FooterToggle(t *testing.T) {
	gm := newTestModel(t, sampleGroups())

	gm.items.Select(5)
	press(t, gm, "f")
	requireInSync(t, gm, 5)
	require.False(t, gm.sess.list.HasFooter(1))

	// The cursor moved past the end and is clamped to the last row.
	require.Equal(t, 4, gm.items.Index())

	press(t, gm, "f")
	requireInSync(t, gm, 6)
}

func TestGroupModel_IgnoredEdits(t *testing.T) {
	gm := newTestModel(t, sampleGroups())

	press(t, gm, "x")
	require.Equal(t, "select an item to remove", gm.status)

	press(t, gm, "J")
	require.Equal(t, "select an item to move", gm.status)

	// Moving the last item down is a no-op.
	gm.items.Select(3)
	press(t, gm, "J")
	require.Equal(t, []string{"apple", "pear", "plum"}, itemTitles(t, gm, 0))
	requireInSync(t, gm, 6)
}

func TestGroupModel_DeleteLastGroupClampsCursor(t *testing.T) {
	gm := newTestModel(t, sampleGroups())

	gm.items.Select(5)
	press(t, gm, "D")
	requireInSync(t, gm, 4)
	require.Equal(t, 3, gm.items.Index())

	press(t, gm, "D")
	requireInSync(t, gm, 0)

	press(t, gm, "n")
	requireInSync(t, gm, 1)
	require.Equal(t, "New group 1", gm.sess.list.Groups()[0].Title)
}

func TestGroupModel_ReplaceResetsWidget(t *testing.T) {
	gm := newTestModel(t, sampleGroups())

	require.NoError(t, gm.sess.list.Replace(sampleGroups()[:1]))
	requireInSync(t, gm, 4)
}

func TestGroupModel_Quit(t *testing.T) {
	gm := newTestModel(t, sampleGroups())

	cmd := press(t, gm, "q")
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestGroupModel_View(t *testing.T) {
	gm := newTestModel(t, sampleGroups())
	gm.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := gm.View()
	for _, want := range []string{"Grouped List", "Positions:", "fruits (3)", "apple", "nothing here", "a add item"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q\nview:\n%s", want, view)
		}
	}
}

func TestTUI_Index(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewTUI(&buf).Index(sampleGroups()))
	require.Contains(t, buf.String(), "Grouped list positions")
	require.Contains(t, buf.String(), "TOTAL GROUPS 2")
}

func TestTUI_View_QuitsOnKey(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	tui.input = strings.NewReader("q")

	require.NoError(t, tui.View(sampleGroups()))
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"longer text", 6, "longe…"},
		{"ab", 1, "…"},
		{"unbounded", 0, "unbounded"},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
