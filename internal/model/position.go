package model

// Child index sentinels stored in PositionState.Child for non-item rows.
const (
	HeaderIndex = -1
	FooterIndex = -2
)

// Default view type codes. Host codes for custom item types are expected to
// be >= 0 so they never collide with the header and footer codes.
const (
	HeaderType = -1
	FooterType = -2
	ItemType   = 0
)

// Region is the semantic kind of a flat list position.
type Region int

// Available Region values.
const (
	RegionUnknown Region = iota
	RegionHeader
	RegionItem
	RegionFooter
)

func (r Region) String() string {
	switch r {
	case RegionHeader:
		return "header"
	case RegionItem:
		return "item"
	case RegionFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// PositionState describes what lives at one flat position.
type PositionState struct {
	IsHeader bool `yaml:"header,omitempty"`
	IsFooter bool `yaml:"footer,omitempty"`
	Group    int  `yaml:"group"`
	Child    int  `yaml:"child"`
}

// HeaderState builds the state of a group header row.
func HeaderState(group int) PositionState {
	return PositionState{IsHeader: true, Group: group, Child: HeaderIndex}
}

// FooterState builds the state of a group footer row.
func FooterState(group int) PositionState {
	return PositionState{IsFooter: true, Group: group, Child: FooterIndex}
}

// ItemState builds the state of the child-th item of a group.
func ItemState(group, child int) PositionState {
	return PositionState{Group: group, Child: child}
}

// Region derives the region kind. A record flagged as both header and
// footer, or carrying a sentinel child without its flag, is RegionUnknown.
func (s PositionState) Region() Region {
	switch {
	case s.IsHeader && !s.IsFooter && s.Child == HeaderIndex:
		return RegionHeader
	case s.IsFooter && !s.IsHeader && s.Child == FooterIndex:
		return RegionFooter
	case !s.IsHeader && !s.IsFooter && s.Child >= 0:
		return RegionItem
	default:
		return RegionUnknown
	}
}

// ViewType is a resolved position: its region, the host's numeric type
// code, and the group/child coordinates the code was computed from.
type ViewType struct {
	Region Region
	Code   int
	Group  int
	Child  int
}
