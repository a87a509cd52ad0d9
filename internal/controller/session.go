package controller

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mouse-blink/grouplist/internal/adapter"
	"github.com/mouse-blink/grouplist/internal/domain"
	m "github.com/mouse-blink/grouplist/internal/model"
)

// row is the holder every host renders: a single line of list content.
type row struct {
	region m.Region
	code   int
	text   string
}

// rowBinder creates row holders and fills them from a GroupList.
type rowBinder struct {
	list *adapter.GroupList
}

func (b rowBinder) CreateHeader(code int) domain.Holder {
	return &row{region: m.RegionHeader, code: code}
}

func (b rowBinder) CreateItem(code int) domain.Holder {
	return &row{region: m.RegionItem, code: code}
}

func (b rowBinder) CreateFooter(code int) domain.Holder {
	return &row{region: m.RegionFooter, code: code}
}

func (b rowBinder) BindHeader(holder domain.Holder, _, group int) {
	r, ok := holder.(*row)
	if !ok {
		return
	}

	g, err := b.list.Group(group)
	if err != nil {
		return
	}

	r.text = fmt.Sprintf("%s (%d)", g.Title, len(g.Items))
}

func (b rowBinder) BindItem(holder domain.Holder, _, _, group, child int) {
	r, ok := holder.(*row)
	if !ok {
		return
	}

	g, err := b.list.Group(group)
	if err != nil || child >= len(g.Items) {
		return
	}

	r.text = g.Items[child].Title
}

func (b rowBinder) BindFooter(holder domain.Holder, _, group int) {
	r, ok := holder.(*row)
	if !ok {
		return
	}

	g, err := b.list.Group(group)
	if err != nil {
		return
	}

	r.text = g.Footer
}

// session wires a GroupList to a list controller the way a widget host does:
// the controller observes the list and is attached before the first query.
type session struct {
	list *adapter.GroupList
	ctrl *domain.Controller
}

func newSession(groups []m.Group, logger *zap.Logger) (*session, error) {
	list := adapter.NewGroupList(groups)
	ctrl := domain.NewController(list, rowBinder{list: list}, domain.WithLogger(logger))
	list.Subscribe(ctrl.Observer())

	if err := ctrl.Attach(); err != nil {
		return nil, fmt.Errorf("failed to index groups: %w", err)
	}

	return &session{list: list, ctrl: ctrl}, nil
}

// render creates and binds the row at position.
func (s *session) render(position int) (*row, error) {
	holder, err := s.ctrl.Render(position)
	if err != nil {
		return nil, err
	}

	r, ok := holder.(*row)
	if !ok {
		return nil, fmt.Errorf("position %d rendered %T, want *row", position, holder)
	}

	return r, nil
}

// positionRow is one line of the position table.
type positionRow struct {
	Position int    `yaml:"position"`
	Kind     string `yaml:"kind"`
	Group    int    `yaml:"group"`
	Child    int    `yaml:"child"`
	Type     int    `yaml:"type"`
}

func (s *session) positions() ([]positionRow, error) {
	rows := make([]positionRow, 0, s.ctrl.Len())

	for position := range s.ctrl.Len() {
		vt, err := s.ctrl.ViewRegionType(position)
		if err != nil {
			return nil, err
		}

		rows = append(rows, positionRow{
			Position: position,
			Kind:     vt.Region.String(),
			Group:    vt.Group,
			Child:    vt.Child,
			Type:     vt.Code,
		})
	}

	return rows, nil
}
