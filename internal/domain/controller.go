// Package domain maps flat list positions onto grouped header/item/footer
// rows and keeps that mapping in step with backing store mutations.
package domain

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	m "github.com/mouse-blink/grouplist/internal/model"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for rebuild diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller answers position queries for a grouped list and dispatches
// holder creation and binding to the host.
//
// The position sequence is replaced wholesale on every rebuild rather than
// patched per mutation. A Controller is not safe for concurrent use; it is
// driven from the goroutine that owns the list widget.
type Controller struct {
	shape    shape
	binder   Binder
	states   []m.PositionState
	fault    error
	attached bool
	observer *Observer
	logger   *zap.Logger
}

// NewController creates a Controller over src. Optional capabilities of src
// and binder are resolved once, here. A nil binder creates nil holders and
// binds nothing.
func NewController(src Source, binder Binder, opts ...Option) *Controller {
	if binder == nil {
		binder = nopBinder{}
	}

	c := &Controller{
		shape:  resolveShape(src, binder),
		binder: binder,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.observer = newObserver(c)

	return c
}

// Observer returns the mutation observer that keeps this controller fresh.
func (c *Controller) Observer() *Observer {
	return c.observer
}

// Attach seeds the position sequence from the current shape.
func (c *Controller) Attach() error {
	c.attached = true

	return c.Rebuild()
}

// Detach drops the position sequence. Queries fail until the next rebuild.
func (c *Controller) Detach() {
	c.attached = false
	c.states = nil
	c.fault = nil
}

// Attached reports whether the controller is attached to a widget.
func (c *Controller) Attached() bool {
	return c.attached
}

// Rebuild recomputes the position sequence from the host's group shape.
// A shape fault clears the sequence and is returned by every query until a
// later rebuild succeeds.
func (c *Controller) Rebuild() error {
	states, err := index(c.shape)
	if err != nil {
		c.states = nil
		c.fault = err
		c.logger.Error("position rebuild failed", zap.Error(err))

		return err
	}

	c.states = states
	c.fault = nil
	c.logger.Debug("positions rebuilt",
		zap.Int("groups", c.shape.src.GroupCount()),
		zap.Int("positions", len(states)))

	return nil
}

// Fault returns the shape fault recorded by the last rebuild, if any.
func (c *Controller) Fault() error {
	return c.fault
}

// TotalCount sums header, items and footer over all groups. It is computed
// from the host on every call.
func (c *Controller) TotalCount() int {
	return c.shape.total()
}

// Len is the length of the indexed position sequence.
func (c *Controller) Len() int {
	return len(c.states)
}

// Snapshot returns a copy of the indexed position sequence.
func (c *Controller) Snapshot() []m.PositionState {
	return slices.Clone(c.states)
}

// Classify returns the state stored for position.
func (c *Controller) Classify(position int) (m.PositionState, error) {
	if c.fault != nil {
		return m.PositionState{}, fmt.Errorf("list halted: %w", c.fault)
	}

	if position < 0 || position >= len(c.states) {
		return m.PositionState{}, outOfRange(position, len(c.states))
	}

	return c.states[position], nil
}

// IsHeaderAt reports whether position is a group header.
func (c *Controller) IsHeaderAt(position int) (bool, error) {
	state, err := c.Classify(position)
	if err != nil {
		return false, err
	}

	return state.IsHeader, nil
}

// IsFooterAt reports whether position is a group footer.
func (c *Controller) IsFooterAt(position int) (bool, error) {
	state, err := c.Classify(position)
	if err != nil {
		return false, err
	}

	return state.IsFooter, nil
}

// ViewRegionType resolves position to its region and host type code.
func (c *Controller) ViewRegionType(position int) (m.ViewType, error) {
	state, err := c.Classify(position)
	if err != nil {
		return m.ViewType{}, err
	}

	vt := m.ViewType{Region: state.Region(), Group: state.Group, Child: state.Child}

	switch vt.Region {
	case m.RegionHeader:
		vt.Code = c.shape.headerCode(state.Group)
	case m.RegionFooter:
		vt.Code = c.shape.footerCode(state.Group)
	case m.RegionItem:
		vt.Code = c.shape.itemCode(state.Group, state.Child)
	default:
		return m.ViewType{}, fmt.Errorf("position %d (%+v): %w", position, state, ErrUnhandledRegion)
	}

	return vt, nil
}

// ItemViewType returns only the numeric type code for position.
func (c *Controller) ItemViewType(position int) (int, error) {
	vt, err := c.ViewRegionType(position)
	if err != nil {
		return 0, err
	}

	return vt.Code, nil
}

// CreateHolder asks the host for a holder suited to code. Footer codes are
// checked first, then header codes; everything else is an item.
func (c *Controller) CreateHolder(code int) Holder {
	switch {
	case c.shape.isFooterCode(code):
		return c.shape.createFooter(code)
	case c.shape.isHeaderCode(code):
		return c.binder.CreateHeader(code)
	default:
		return c.binder.CreateItem(code)
	}
}

// BindHolder binds holder to the content at position.
func (c *Controller) BindHolder(holder Holder, position int) error {
	vt, err := c.ViewRegionType(position)
	if err != nil {
		return err
	}

	if err := c.checkCode(vt); err != nil {
		return fmt.Errorf("position %d: %w", position, err)
	}

	switch vt.Region {
	case m.RegionHeader:
		c.binder.BindHeader(holder, vt.Code, vt.Group)
	case m.RegionFooter:
		c.shape.bindFooter(holder, vt.Code, vt.Group)
	default:
		c.binder.BindItem(holder, vt.Code, position, vt.Group, vt.Child)
	}

	return nil
}

// Render creates a holder for position and binds it.
func (c *Controller) Render(position int) (Holder, error) {
	code, err := c.ItemViewType(position)
	if err != nil {
		return nil, err
	}

	holder := c.CreateHolder(code)
	if err := c.BindHolder(holder, position); err != nil {
		return nil, err
	}

	return holder, nil
}

// SpanSize is the number of grid columns position occupies: headers and
// footers fill the row, items take one cell.
func (c *Controller) SpanSize(position, columns int) (int, error) {
	state, err := c.Classify(position)
	if err != nil {
		return 0, err
	}

	if columns < 1 {
		columns = 1
	}

	if state.IsHeader || state.IsFooter {
		return columns, nil
	}

	return 1, nil
}

func (c *Controller) checkCode(vt m.ViewType) error {
	isHeader := c.shape.isHeaderCode(vt.Code)
	isFooter := c.shape.isFooterCode(vt.Code)

	var ok bool

	switch vt.Region {
	case m.RegionHeader:
		ok = isHeader && !isFooter
	case m.RegionFooter:
		ok = isFooter
	default:
		ok = !isHeader && !isFooter
	}

	if !ok {
		return fmt.Errorf("%s code %d: %w", vt.Region, vt.Code, ErrTypeCodeMismatch)
	}

	return nil
}
