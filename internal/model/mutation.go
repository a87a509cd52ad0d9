// Package model defines the data structures shared by the grouped list layers.
package model

import "fmt"

// MutationKind identifies the structural change a backing store reports.
type MutationKind string

const (
	// MutationChanged is a full reset: anything may have changed.
	MutationChanged MutationKind = "changed"
	// MutationRangeChanged reports updated content for Count positions at Start.
	MutationRangeChanged MutationKind = "range-changed"
	// MutationRangeInserted reports Count new positions starting at Start.
	MutationRangeInserted MutationKind = "range-inserted"
	// MutationRangeMoved reports Count positions moved from Start to To.
	MutationRangeMoved MutationKind = "range-moved"
	// MutationRangeRemoved reports Count positions removed at Start.
	MutationRangeRemoved MutationKind = "range-removed"
)

// Mutation is a single notification emitted by a backing store.
// Positions are flat list positions, not group-relative indices.
type Mutation struct {
	Kind  MutationKind
	Start int
	To    int // destination, only meaningful for MutationRangeMoved
	Count int
}

// Changed builds a full-reset mutation.
func Changed() Mutation {
	return Mutation{Kind: MutationChanged}
}

// RangeChanged builds a range-changed mutation.
func RangeChanged(start, count int) Mutation {
	return Mutation{Kind: MutationRangeChanged, Start: start, Count: count}
}

// RangeInserted builds a range-inserted mutation.
func RangeInserted(start, count int) Mutation {
	return Mutation{Kind: MutationRangeInserted, Start: start, Count: count}
}

// RangeMoved builds a range-moved mutation.
func RangeMoved(from, to, count int) Mutation {
	return Mutation{Kind: MutationRangeMoved, Start: from, To: to, Count: count}
}

// RangeRemoved builds a range-removed mutation.
func RangeRemoved(start, count int) Mutation {
	return Mutation{Kind: MutationRangeRemoved, Start: start, Count: count}
}

func (mu Mutation) String() string {
	switch mu.Kind {
	case MutationChanged:
		return string(mu.Kind)
	case MutationRangeMoved:
		return fmt.Sprintf("%s(%d->%d,%d)", mu.Kind, mu.Start, mu.To, mu.Count)
	default:
		return fmt.Sprintf("%s(%d,%d)", mu.Kind, mu.Start, mu.Count)
	}
}
