package lmu2png

import (
	"sort"

	"github.com/bodgit/lmu2png/rpg"
)

// drawOrder returns the indices of events sorted by their y position. Events
// on the same row keep their original order.
func drawOrder(events []rpg.Event) []int {
	order := make([]int, len(events))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return events[order[i]].Y < events[order[j]].Y
	})
	return order
}
