// Package adapter provides the host side of the grouped list: the mutable
// group store that reports structural changes and group file persistence.
package adapter

import (
	"errors"
	"fmt"
	"slices"

	m "github.com/mouse-blink/grouplist/internal/model"
)

var (
	// ErrNoSuchGroup is returned for a group index outside the list.
	ErrNoSuchGroup = errors.New("no such group")
	// ErrNoSuchItem is returned for an item index outside its group.
	ErrNoSuchItem = errors.New("no such item")
)

// Notifier receives the flat-position mutations a GroupList emits.
type Notifier interface {
	Notify(mu m.Mutation) error
}

// GroupList is an in-memory, mutable list of groups. Every edit is reported
// to the subscribed notifiers as the flat-position mutation a list widget
// would see. It keeps its own running item count, reported via
// ReportedCount, the way a widget adapter tracks its size.
type GroupList struct {
	groups    []m.Group
	count     int
	notifiers []Notifier
}

// NewGroupList creates a GroupList holding a copy of groups.
func NewGroupList(groups []m.Group) *GroupList {
	l := &GroupList{groups: cloneGroups(groups)}
	l.count = l.size()

	return l
}

// Subscribe adds n to the notifiers called after every edit.
func (l *GroupList) Subscribe(n Notifier) {
	l.notifiers = append(l.notifiers, n)
}

// GroupCount is the number of groups.
func (l *GroupList) GroupCount() int {
	return len(l.groups)
}

// ItemCount is the number of items in group.
func (l *GroupList) ItemCount(group int) int {
	return len(l.groups[group].Items)
}

// HasFooter reports whether group has a footer row.
func (l *GroupList) HasFooter(group int) bool {
	return l.groups[group].HasFooter()
}

// ReportedCount is the running number of flat positions.
func (l *GroupList) ReportedCount() int {
	return l.count
}

// Group returns a copy of group i.
func (l *GroupList) Group(i int) (m.Group, error) {
	if err := l.checkGroup(i); err != nil {
		return m.Group{}, err
	}

	return cloneGroup(l.groups[i]), nil
}

// Groups returns a copy of every group.
func (l *GroupList) Groups() []m.Group {
	return cloneGroups(l.groups)
}

// Offset is the flat position of group's header. Offset(GroupCount()) is
// the position just past the last group.
func (l *GroupList) Offset(group int) int {
	offset := 0
	for _, g := range l.groups[:group] {
		offset += g.Size()
	}

	return offset
}

// Replace swaps in a new set of groups and reports a full reset.
func (l *GroupList) Replace(groups []m.Group) error {
	l.groups = cloneGroups(groups)
	l.count = l.size()

	return l.notify(m.Changed())
}

// AddGroup appends g.
func (l *GroupList) AddGroup(g m.Group) error {
	return l.InsertGroup(len(l.groups), g)
}

// InsertGroup inserts g before group at.
func (l *GroupList) InsertGroup(at int, g m.Group) error {
	if at < 0 || at > len(l.groups) {
		return fmt.Errorf("insert group at %d: %w", at, ErrNoSuchGroup)
	}

	g = cloneGroup(g)
	start := l.Offset(at)
	l.groups = slices.Insert(l.groups, at, g)
	l.count += g.Size()

	return l.notify(m.RangeInserted(start, g.Size()))
}

// RemoveGroup removes group i with its header, items and footer.
func (l *GroupList) RemoveGroup(i int) error {
	if err := l.checkGroup(i); err != nil {
		return err
	}

	start := l.Offset(i)
	size := l.groups[i].Size()
	l.groups = slices.Delete(l.groups, i, i+1)
	l.count -= size

	return l.notify(m.RangeRemoved(start, size))
}

// AppendItem adds item at the end of group.
func (l *GroupList) AppendItem(group int, item m.Item) error {
	if err := l.checkGroup(group); err != nil {
		return err
	}

	return l.InsertItem(group, len(l.groups[group].Items), item)
}

// InsertItem inserts item into group before child.
func (l *GroupList) InsertItem(group, child int, item m.Item) error {
	if err := l.checkGroup(group); err != nil {
		return err
	}

	g := &l.groups[group]
	if child < 0 || child > len(g.Items) {
		return fmt.Errorf("insert item %d into group %d: %w", child, group, ErrNoSuchItem)
	}

	g.Items = slices.Insert(g.Items, child, item)
	l.count++

	return l.notify(m.RangeInserted(l.itemPosition(group, child), 1))
}

// RemoveItem removes the child-th item of group.
func (l *GroupList) RemoveItem(group, child int) error {
	if err := l.checkItem(group, child); err != nil {
		return err
	}

	position := l.itemPosition(group, child)
	g := &l.groups[group]
	g.Items = slices.Delete(g.Items, child, child+1)
	l.count--

	return l.notify(m.RangeRemoved(position, 1))
}

// UpdateItem replaces the child-th item of group.
func (l *GroupList) UpdateItem(group, child int, item m.Item) error {
	if err := l.checkItem(group, child); err != nil {
		return err
	}

	l.groups[group].Items[child] = item

	return l.notify(m.RangeChanged(l.itemPosition(group, child), 1))
}

// MoveItem moves an item within its group.
func (l *GroupList) MoveItem(group, from, to int) error {
	if err := l.checkItem(group, from); err != nil {
		return err
	}

	if err := l.checkItem(group, to); err != nil {
		return err
	}

	if from == to {
		return nil
	}

	g := &l.groups[group]
	item := g.Items[from]
	g.Items = slices.Delete(g.Items, from, from+1)
	g.Items = slices.Insert(g.Items, to, item)

	return l.notify(m.RangeMoved(l.itemPosition(group, from), l.itemPosition(group, to), 1))
}

// SetFooter sets group's footer text. An empty footer removes the row.
func (l *GroupList) SetFooter(group int, footer string) error {
	if err := l.checkGroup(group); err != nil {
		return err
	}

	g := &l.groups[group]
	had := g.HasFooter()
	g.Footer = footer
	position := l.Offset(group) + 1 + len(g.Items)

	switch {
	case !had && g.HasFooter():
		l.count++
		return l.notify(m.RangeInserted(position, 1))
	case had && !g.HasFooter():
		l.count--
		return l.notify(m.RangeRemoved(position, 1))
	case had:
		return l.notify(m.RangeChanged(position, 1))
	default:
		return nil
	}
}

func (l *GroupList) itemPosition(group, child int) int {
	return l.Offset(group) + 1 + child
}

func (l *GroupList) size() int {
	return l.Offset(len(l.groups))
}

func (l *GroupList) checkGroup(group int) error {
	if group < 0 || group >= len(l.groups) {
		return fmt.Errorf("group %d of %d: %w", group, len(l.groups), ErrNoSuchGroup)
	}

	return nil
}

func (l *GroupList) checkItem(group, child int) error {
	if err := l.checkGroup(group); err != nil {
		return err
	}

	if child < 0 || child >= len(l.groups[group].Items) {
		return fmt.Errorf("item %d of group %d: %w", child, group, ErrNoSuchItem)
	}

	return nil
}

func (l *GroupList) notify(mu m.Mutation) error {
	for _, n := range l.notifiers {
		if err := n.Notify(mu); err != nil {
			return fmt.Errorf("failed to apply %s: %w", mu, err)
		}
	}

	return nil
}

func cloneGroup(g m.Group) m.Group {
	g.Items = slices.Clone(g.Items)
	return g
}

func cloneGroups(groups []m.Group) []m.Group {
	out := make([]m.Group, len(groups))
	for i, g := range groups {
		out[i] = cloneGroup(g)
	}

	return out
}
