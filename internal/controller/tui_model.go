package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/grouplist/internal/domain"
	m "github.com/mouse-blink/grouplist/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	headerRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	itemRowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).PaddingLeft(2)
	footerRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true).PaddingLeft(2)
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).PaddingLeft(2)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingLeft(2)
)

// keyMap defines key bindings.
type keyMap struct {
	AddItem     key.Binding
	RemoveItem  key.Binding
	Footer      key.Binding
	MoveDown    key.Binding
	MoveUp      key.Binding
	NewGroup    key.Binding
	DeleteGroup key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	AddItem:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
	RemoveItem:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove item")),
	Footer:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "toggle footer")),
	MoveDown:    key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
	MoveUp:      key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
	NewGroup:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new group")),
	DeleteGroup: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete group")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) help() string {
	bindings := []key.Binding{k.AddItem, k.RemoveItem, k.Footer, k.MoveDown, k.MoveUp, k.NewGroup, k.DeleteGroup, k.Quit}

	out := "↑/k ↓/j move"
	for _, b := range bindings {
		h := b.Help()
		out += " • " + h.Key + " " + h.Desc
	}

	return out
}

// positionItem is a placeholder list entry. Its content is resolved from
// the flat index at render time.
type positionItem struct{}

func (positionItem) FilterValue() string { return "" }

// rowDelegate renders each list index through the controller's holder
// dispatch.
type rowDelegate struct {
	sess *session
}

func (d rowDelegate) Height() int  { return 1 }
func (d rowDelegate) Spacing() int { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d rowDelegate) Render(w io.Writer, lm list.Model, index int, _ list.Item) {
	r, err := d.sess.render(index)
	if err != nil {
		_, _ = fmt.Fprint(w, errorStyle.Render(err.Error()))
		return
	}

	var style lipgloss.Style

	switch r.region {
	case m.RegionHeader:
		style = headerRowStyle
	case m.RegionFooter:
		style = footerRowStyle
	default:
		style = itemRowStyle
	}

	text := truncateToWidth(r.text, lm.Width()-4)
	if index == lm.Index() {
		text = selectedStyle.Render(text)
	}

	_, _ = fmt.Fprint(w, style.Render(text))
}

// listMirror replays store mutations onto the list widget, so the widget's
// item count follows the flat positions.
type listMirror struct {
	items *list.Model
	count func() int
}

var _ domain.Listener = listMirror{}

func (lm listMirror) OnMutation(mu m.Mutation) {
	switch mu.Kind {
	case m.MutationChanged:
		lm.items.SetItems(placeholders(lm.count()))
	case m.MutationRangeInserted:
		for i := range mu.Count {
			lm.items.InsertItem(mu.Start+i, positionItem{})
		}
	case m.MutationRangeRemoved:
		for range mu.Count {
			lm.items.RemoveItem(mu.Start)
		}
	case m.MutationRangeMoved:
		for range mu.Count {
			lm.items.RemoveItem(mu.Start)
			lm.items.InsertItem(mu.To, positionItem{})
		}
	case m.MutationRangeChanged:
		// Rows are bound on every render.
	}
}

func placeholders(n int) []list.Item {
	items := make([]list.Item, n)
	for i := range items {
		items[i] = positionItem{}
	}

	return items
}

// groupModel is the interactive grouped list.
type groupModel struct {
	sess    *session
	items   list.Model
	width   int
	height  int
	created int
	status  string
	err     error
}

func newGroupModel(groups []m.Group, opts Options) (*groupModel, error) {
	sess, err := newSession(groups, opts.logger)
	if err != nil {
		return nil, err
	}

	items := list.New(placeholders(sess.ctrl.Len()), rowDelegate{sess: sess}, 80, 20)
	items.SetFilteringEnabled(false)
	items.SetShowFilter(false)
	items.SetShowHelp(false)
	items.SetShowTitle(false)
	items.SetShowStatusBar(false)
	items.KeyMap.Quit.SetEnabled(false)

	model := &groupModel{sess: sess, items: items}
	sess.ctrl.Observer().AddListener(listMirror{items: &model.items, count: sess.list.ReportedCount})

	return model, nil
}

func (gm *groupModel) Init() tea.Cmd {
	return nil
}

func (gm *groupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		gm.resize(msg.Width, msg.Height)
		return gm, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return gm, tea.Quit
		}

		handled, err := gm.handleKey(msg)
		if err != nil {
			gm.err = err
			return gm, tea.Quit
		}

		if handled {
			return gm, nil
		}
	}

	var cmd tea.Cmd

	gm.items, cmd = gm.items.Update(msg)

	return gm, cmd
}

func (gm *groupModel) resize(width, height int) {
	gm.width = width
	gm.height = height

	listHeight := height - 6
	if listHeight < 5 {
		listHeight = 5
	}

	gm.items.SetSize(width, listHeight)
}

// handleKey applies the edit bound to msg at the selected position.
func (gm *groupModel) handleKey(msg tea.KeyMsg) (bool, error) {
	if len(gm.items.Items()) == 0 {
		if key.Matches(msg, keys.NewGroup) {
			return true, gm.newGroup(0)
		}

		return false, nil
	}

	gm.clampSelection()

	state, err := gm.sess.ctrl.Classify(gm.items.Index())
	if err != nil {
		return true, err
	}

	store := gm.sess.list

	switch {
	case key.Matches(msg, keys.AddItem):
		child := gm.nextChild(state)
		gm.created++

		return true, gm.apply(fmt.Sprintf("added item to group %d", state.Group),
			store.InsertItem(state.Group, child, m.Item{Title: fmt.Sprintf("New item %d", gm.created)}))

	case key.Matches(msg, keys.RemoveItem):
		if state.Region() != m.RegionItem {
			gm.status = "select an item to remove"
			return true, nil
		}

		return true, gm.apply(fmt.Sprintf("removed item %d of group %d", state.Child, state.Group),
			store.RemoveItem(state.Group, state.Child))

	case key.Matches(msg, keys.Footer):
		footer := ""
		if !store.HasFooter(state.Group) {
			footer = fmt.Sprintf("%d items", store.ItemCount(state.Group))
		}

		return true, gm.apply(fmt.Sprintf("toggled footer of group %d", state.Group),
			store.SetFooter(state.Group, footer))

	case key.Matches(msg, keys.MoveDown), key.Matches(msg, keys.MoveUp):
		return true, gm.move(state, key.Matches(msg, keys.MoveDown))

	case key.Matches(msg, keys.NewGroup):
		return true, gm.newGroup(state.Group + 1)

	case key.Matches(msg, keys.DeleteGroup):
		return true, gm.apply(fmt.Sprintf("deleted group %d", state.Group), store.RemoveGroup(state.Group))
	}

	return false, nil
}

// nextChild is the insertion index for a new item relative to state.
func (gm *groupModel) nextChild(state m.PositionState) int {
	switch state.Region() {
	case m.RegionItem:
		return state.Child + 1
	case m.RegionFooter:
		return gm.sess.list.ItemCount(state.Group)
	default:
		return 0
	}
}

func (gm *groupModel) move(state m.PositionState, down bool) error {
	if state.Region() != m.RegionItem {
		gm.status = "select an item to move"
		return nil
	}

	to, step := state.Child-1, -1
	if down {
		to, step = state.Child+1, 1
	}

	if to < 0 || to >= gm.sess.list.ItemCount(state.Group) {
		return nil
	}

	if err := gm.apply(fmt.Sprintf("moved item %d to %d", state.Child, to),
		gm.sess.list.MoveItem(state.Group, state.Child, to)); err != nil {
		return err
	}

	gm.items.Select(gm.items.Index() + step)

	return nil
}

func (gm *groupModel) newGroup(at int) error {
	gm.created++
	title := fmt.Sprintf("New group %d", gm.created)

	return gm.apply("created "+title, gm.sess.list.InsertGroup(at, m.Group{Title: title}))
}

// apply records the outcome of a store edit. Edit errors carry the
// controller's rebuild fault, after which the list cannot be queried.
func (gm *groupModel) apply(status string, err error) error {
	if err != nil {
		return err
	}

	gm.status = status
	gm.clampSelection()

	return nil
}

// clampSelection keeps the cursor on an existing row after removals.
func (gm *groupModel) clampSelection() {
	if n := len(gm.items.Items()); n > 0 && gm.items.Index() >= n {
		gm.items.Select(n - 1)
	}
}

func (gm *groupModel) View() string {
	title := titleStyle.Render("Grouped List")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Groups: %s   Positions: %s   Total: %s",
		accentStyle.Render(fmt.Sprintf("%d", gm.sess.list.GroupCount())),
		accentStyle.Render(fmt.Sprintf("%d", gm.sess.ctrl.Len())),
		accentStyle.Render(fmt.Sprintf("%d", gm.sess.ctrl.TotalCount())),
	))

	parts := []string{title, summary, gm.items.View()}
	if gm.status != "" {
		parts = append(parts, helpStyle.Render(gm.status))
	}

	parts = append(parts, helpStyle.Render(keys.help()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
