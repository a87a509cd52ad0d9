package domain

import (
	"slices"

	"go.uber.org/zap"

	m "github.com/mouse-blink/grouplist/internal/model"
)

// Listener receives every mutation before the controller re-indexes, so it
// sees the raw change exactly as the backing store reported it.
type Listener interface {
	OnMutation(mu m.Mutation)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(mu m.Mutation)

// OnMutation calls f(mu).
func (f ListenerFunc) OnMutation(mu m.Mutation) {
	f(mu)
}

// Observer receives backing store mutations for a Controller. It forwards
// each one to the registered listeners in registration order and then
// rebuilds the controller's position sequence.
type Observer struct {
	ctrl      *Controller
	listeners []registration
	nextID    uint64
}

type registration struct {
	id       uint64
	listener Listener
}

func newObserver(ctrl *Controller) *Observer {
	return &Observer{ctrl: ctrl}
}

// AddListener registers l after every listener already registered and
// returns a function that unregisters it.
func (o *Observer) AddListener(l Listener) (remove func()) {
	if l == nil {
		return func() {}
	}

	o.nextID++
	id := o.nextID
	o.listeners = append(o.listeners, registration{id: id, listener: l})

	return func() {
		o.listeners = slices.DeleteFunc(o.listeners, func(r registration) bool {
			return r.id == id
		})
	}
}

// Listening reports whether any listener is registered.
func (o *Observer) Listening() bool {
	return len(o.listeners) > 0
}

// Notify forwards mu and rebuilds. The rebuild error, a shape fault, is
// returned to the caller that reported the mutation.
func (o *Observer) Notify(mu m.Mutation) error {
	for _, r := range slices.Clone(o.listeners) {
		r.listener.OnMutation(mu)
	}

	o.ctrl.logger.Debug("mutation received", zap.Stringer("mutation", mu))

	return o.ctrl.Rebuild()
}

// Changed reports a full reset.
func (o *Observer) Changed() error {
	return o.Notify(m.Changed())
}

// ItemRangeChanged reports count updated positions starting at start.
func (o *Observer) ItemRangeChanged(start, count int) error {
	return o.Notify(m.RangeChanged(start, count))
}

// ItemRangeInserted reports count inserted positions starting at start.
func (o *Observer) ItemRangeInserted(start, count int) error {
	return o.Notify(m.RangeInserted(start, count))
}

// ItemRangeMoved reports count positions moved from one position to another.
func (o *Observer) ItemRangeMoved(from, to, count int) error {
	return o.Notify(m.RangeMoved(from, to, count))
}

// ItemRangeRemoved reports count removed positions starting at start.
func (o *Observer) ItemRangeRemoved(start, count int) error {
	return o.Notify(m.RangeRemoved(start, count))
}
