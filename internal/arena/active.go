package arena

import (
	"github.com/unixpickle/essentials"
)

// ActiveList holds arena ids of points that may still spawn children.
// Order carries no meaning, so removal swaps the last entry into the hole.
type ActiveList struct {
	ids []int
}

// NewActiveList returns an empty active list
func NewActiveList() *ActiveList {
	return &ActiveList{ids: []int{}}
}

// Push adds an arena id
func (l *ActiveList) Push(id int) {
	l.ids = append(l.ids, id)
}

// Len returns the number of active ids
func (l *ActiveList) Len() int {
	return len(l.ids)
}

// At returns the arena id held in the given slot
func (l *ActiveList) At(slot int) int {
	return l.ids[slot]
}

// Remove drops the given slot. The last entry moves into it, every other
// slot keeps its id.
func (l *ActiveList) Remove(slot int) {
	essentials.UnorderedDelete(&l.ids, slot)
}
