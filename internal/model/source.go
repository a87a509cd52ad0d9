package model

// Path represents a file system path.
type Path string

// Item is a single entry inside a group.
type Item struct {
	Title string `yaml:"title"`
}

// Group is a titled section of items with an optional footer line.
// A group has a footer when Footer is non-empty.
type Group struct {
	Title  string `yaml:"title"`
	Items  []Item `yaml:"items,omitempty"`
	Footer string `yaml:"footer,omitempty"`
}

// HasFooter reports whether the group renders a footer row.
func (g Group) HasFooter() bool {
	return g.Footer != ""
}

// Size is the number of flat positions the group occupies:
// header, items, and the footer when present.
func (g Group) Size() int {
	size := 1 + len(g.Items)
	if g.HasFooter() {
		size++
	}

	return size
}
