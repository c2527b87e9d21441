// Package inventory computes carried-weight figures over a flat item list.
// Containment is encoded by parent pointers; containers contribute their own
// weight plus their contents, except magical containers that ignore content
// weight.
package inventory

import (
	"math"

	"github.com/cory-johannsen/charsheet/internal/game/item"
)

// Roots returns the items carried directly, in list order.
func Roots(items []*item.Item) []*item.Item {
	var out []*item.Item
	for _, it := range items {
		if it.ParentID == "" {
			out = append(out, it)
		}
	}
	return out
}

// Children returns the direct contents of the container with the given
// instance ID, in list order.
func Children(items []*item.Item, parentID string) []*item.Item {
	var out []*item.Item
	for _, it := range items {
		if it.ParentID != "" && it.ParentID == parentID {
			out = append(out, it)
		}
	}
	return out
}

// WeightOf returns the effective weight of it, including container contents.
// A stack weighs its unit weight times quantity. Contents of containers
// marked ignoreContentWeight are excluded. A containment cycle contributes
// each item's weight once.
func WeightOf(it *item.Item, items []*item.Item) float64 {
	visited := make(map[string]bool)
	return weightOf(it, items, visited)
}

func weightOf(it *item.Item, items []*item.Item, visited map[string]bool) float64 {
	if visited[it.InstanceID] {
		return 0
	}
	visited[it.InstanceID] = true

	qty := it.Quantity
	if qty < 1 {
		qty = 1
	}
	w := it.Weight * float64(qty)

	c := it.Data.Container
	if c == nil || c.IgnoreContentWeight {
		return w
	}
	for _, child := range Children(items, it.InstanceID) {
		w += weightOf(child, items, visited)
	}
	return w
}

// DisplayWeight returns the item's effective weight rounded to two decimals.
func DisplayWeight(it *item.Item, items []*item.Item) float64 {
	return round2(WeightOf(it, items))
}

// TotalCarriedWeight sums the effective weight of every root item, rounded to
// two decimals. Contained items are never double counted: their weight
// arrives through their container.
func TotalCarriedWeight(items []*item.Item) float64 {
	var total float64
	for _, root := range Roots(items) {
		total += WeightOf(root, items)
	}
	return round2(total)
}

// CarryingCapacity returns the maximum carried weight for a strength score.
func CarryingCapacity(strength int) int {
	return strength * 15
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
