package domain_test

import (
	m "github.com/mouse-blink/grouplist/internal/model"
)

// shapeSource is a host with per-group item counts and footer flags.
type shapeSource struct {
	items   []int
	footers []bool
}

func (s *shapeSource) GroupCount() int { return len(s.items) }

func (s *shapeSource) ItemCount(group int) int { return s.items[group] }

func (s *shapeSource) HasFooter(group int) bool {
	return group < len(s.footers) && s.footers[group]
}

// countedSource additionally reports its own total, which may disagree with
// the shape.
type countedSource struct {
	shapeSource
	reported int
}

func (s *countedSource) ReportedCount() int { return s.reported }

// itemsOnlySource has no footer capability at all.
type itemsOnlySource struct {
	items []int
}

func (s itemsOnlySource) GroupCount() int { return len(s.items) }

func (s itemsOnlySource) ItemCount(group int) int { return s.items[group] }

// typedSource overrides every type code and classifies them consistently.
type typedSource struct {
	shapeSource
}

const (
	customHeader = 100
	customFooter = 200
)

func (s *typedSource) HeaderTypeCode(group int) int { return customHeader + group }

func (s *typedSource) FooterTypeCode(group int) int { return customFooter + group }

func (s *typedSource) ItemTypeCode(group, child int) int { return 10*group + child%2 }

func (s *typedSource) IsHeaderTypeCode(code int) bool {
	return code >= customHeader && code < customFooter
}

func (s *typedSource) IsFooterTypeCode(code int) bool { return code >= customFooter }

// headerOnlyTypedSource overrides the header code but forgets the predicate.
type headerOnlyTypedSource struct {
	shapeSource
}

func (s *headerOnlyTypedSource) HeaderTypeCode(int) int { return 7 }

// scenarioA is two groups: three items without footer, then an empty group
// with a footer.
func scenarioA() *countedSource {
	return &countedSource{
		shapeSource: shapeSource{items: []int{3, 0}, footers: []bool{false, true}},
		reported:    6,
	}
}

func scenarioAStates() []m.PositionState {
	return []m.PositionState{
		m.HeaderState(0),
		m.ItemState(0, 0),
		m.ItemState(0, 1),
		m.ItemState(0, 2),
		m.HeaderState(1),
		m.FooterState(1),
	}
}

// recordingFooterBinder is a Binder that also renders footers and records
// every call in order.
type recordingFooterBinder struct {
	calls []string
}

func (b *recordingFooterBinder) CreateHeader(code int) any { return "header" }

func (b *recordingFooterBinder) CreateItem(code int) any { return "item" }

func (b *recordingFooterBinder) CreateFooter(code int) any { return "footer" }

func (b *recordingFooterBinder) BindHeader(holder any, code, group int) {
	b.calls = append(b.calls, "header")
}

func (b *recordingFooterBinder) BindItem(holder any, code, position, group, child int) {
	b.calls = append(b.calls, "item")
}

func (b *recordingFooterBinder) BindFooter(holder any, code, group int) {
	b.calls = append(b.calls, "footer")
}
