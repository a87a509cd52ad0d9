package domain

import m "github.com/mouse-blink/grouplist/internal/model"

// Index builds the position sequence for src without a controller.
// Optional capabilities (footers, reported count) are honoured the same way
// the controller honours them.
func Index(src Source) ([]m.PositionState, error) {
	return index(resolveShape(src, nil))
}

// index walks the groups in order and emits, per group, a header, its
// items and, when present, its footer. The whole sequence is rebuilt from
// scratch: callers swap it in only when it is returned without error.
func index(s shape) ([]m.PositionState, error) {
	groups := s.src.GroupCount()
	reported := s.reportedCount()

	capacity := reported
	if capacity < groups {
		capacity = groups
	}

	states := make([]m.PositionState, 0, capacity)

	for group := range groups {
		states = append(states, m.HeaderState(group))

		count := s.src.ItemCount(group)
		if count < 0 {
			return nil, &ShapeError{Last: len(states) - 1, Reported: reported, Group: group, ItemCount: count}
		}

		for child := range count {
			states = append(states, m.ItemState(group, child))
		}

		if s.hasFooter(group) {
			states = append(states, m.FooterState(group))
		}
	}

	last := len(states) - 1
	if reported > 0 && last != reported-1 {
		return nil, &ShapeError{Last: last, Reported: reported, Group: -1}
	}

	return states, nil
}
