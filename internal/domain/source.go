package domain

import m "github.com/mouse-blink/grouplist/internal/model"

// Source is the minimal group model a host must provide.
type Source interface {
	GroupCount() int
	ItemCount(group int) int
}

// FooterSource is implemented by hosts whose groups can carry footers.
// Without it no group has a footer.
type FooterSource interface {
	HasFooter(group int) bool
}

// HeaderTyper overrides the header type code (default m.HeaderType).
type HeaderTyper interface {
	HeaderTypeCode(group int) int
}

// FooterTyper overrides the footer type code (default m.FooterType).
type FooterTyper interface {
	FooterTypeCode(group int) int
}

// ItemTyper overrides the item type code (default m.ItemType).
type ItemTyper interface {
	ItemTypeCode(group, child int) int
}

// TypeClassifier must be implemented together with HeaderTyper or
// FooterTyper so that custom codes are still recognized as header or footer.
type TypeClassifier interface {
	IsHeaderTypeCode(code int) bool
	IsFooterTypeCode(code int) bool
}

// Counter reports the total item count the list widget believes in.
// Without it the reported count is the computed total.
type Counter interface {
	ReportedCount() int
}

// Holder is an opaque view object created and bound by the host.
type Holder = any

// Binder creates and binds holders for headers and items.
type Binder interface {
	CreateHeader(code int) Holder
	CreateItem(code int) Holder
	BindHeader(holder Holder, code, group int)
	BindItem(holder Holder, code, position, group, child int)
}

// nopBinder is used when a controller only answers position queries.
type nopBinder struct{}

func (nopBinder) CreateHeader(int) Holder { return nil }
func (nopBinder) CreateItem(int) Holder { return nil }
func (nopBinder) BindHeader(Holder, int, int) {}
func (nopBinder) BindItem(Holder, int, int, int, int) {}

// FooterBinder is implemented by binders that render footers.
type FooterBinder interface {
	CreateFooter(code int) Holder
	BindFooter(holder Holder, code, group int)
}

// shape is the host contract with every optional capability resolved.
type shape struct {
	src           Source
	hasFooter     func(group int) bool
	headerCode    func(group int) int
	footerCode    func(group int) int
	itemCode      func(group, child int) int
	isHeaderCode  func(code int) bool
	isFooterCode  func(code int) bool
	reportedCount func() int
	createFooter  func(code int) Holder
	bindFooter    func(holder Holder, code, group int)
}

func resolveShape(src Source, binder Binder) shape {
	s := shape{
		src:          src,
		hasFooter:    func(int) bool { return false },
		headerCode:   func(int) int { return m.HeaderType },
		footerCode:   func(int) int { return m.FooterType },
		itemCode:     func(int, int) int { return m.ItemType },
		isHeaderCode: func(code int) bool { return code == m.HeaderType },
		isFooterCode: func(code int) bool { return code == m.FooterType },
		createFooter: func(int) Holder { return nil },
		bindFooter:   func(Holder, int, int) {},
	}
	if fs, ok := src.(FooterSource); ok {
		s.hasFooter = fs.HasFooter
	}

	if ht, ok := src.(HeaderTyper); ok {
		s.headerCode = ht.HeaderTypeCode
	}

	if ft, ok := src.(FooterTyper); ok {
		s.footerCode = ft.FooterTypeCode
	}

	if it, ok := src.(ItemTyper); ok {
		s.itemCode = it.ItemTypeCode
	}

	if tc, ok := src.(TypeClassifier); ok {
		s.isHeaderCode = tc.IsHeaderTypeCode
		s.isFooterCode = tc.IsFooterTypeCode
	}

	if fb, ok := binder.(FooterBinder); ok {
		s.createFooter = fb.CreateFooter
		s.bindFooter = fb.BindFooter
	}

	// Bound last: the method value copies s with every override applied.
	s.reportedCount = s.total
	if c, ok := src.(Counter); ok {
		s.reportedCount = c.ReportedCount
	}

	return s
}

// total sums every group's header, items and footer.
func (s shape) total() int {
	groups := s.src.GroupCount()
	total := 0

	for group := range groups {
		total += s.src.ItemCount(group) + 1
		if s.hasFooter(group) {
			total++
		}
	}

	return total
}
