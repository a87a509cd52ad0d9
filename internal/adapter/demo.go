package adapter

import (
	"fmt"

	m "github.com/mouse-blink/grouplist/internal/model"
)

const demoGroups = 6

// DemoGroups returns the built-in sample data: six groups where group g
// holds 10-g items and no footers.
func DemoGroups() []m.Group {
	groups := make([]m.Group, 0, demoGroups)

	for g := range demoGroups {
		group := m.Group{Title: fmt.Sprintf("Group %d", g)}
		for child := range 10 - g {
			group.Items = append(group.Items, m.Item{Title: fmt.Sprintf("Item %d", child)})
		}

		groups = append(groups, group)
	}

	return groups
}
