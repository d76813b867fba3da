// Package pack copies variable-length live collections into fixed-capacity
// legacy tables.
package pack

import (
	"errors"
	"fmt"
	"sort"
)

var ErrOverCapacity = errors.New("collection exceeds fixed capacity")

// NoSlot is passed to the link callback for evicted elements.
const NoSlot = -1

// Fill converts src into dst in order and fills the remaining slots with
// sentinel. A source longer than dst is rejected without writing anything.
func Fill[S, D any](dst []D, src []S, conv func(S) D, sentinel D) error {
	if len(src) > len(dst) {
		return fmt.Errorf("%w: %d > %d", ErrOverCapacity, len(src), len(dst))
	}
	for i := range src {
		dst[i] = conv(src[i])
	}
	for i := len(src); i < len(dst); i++ {
		dst[i] = sentinel
	}
	return nil
}

// FillLRU is Fill for tables that evict by recency. When src does not fit,
// the len(dst) elements with the highest recency are kept (the earlier
// element wins a tie) and written in their original relative order. link is
// called once per source element with its slot, or NoSlot if evicted.
func FillLRU[S, D any](dst []D, src []S, recency func(S) uint32, conv func(S) D, sentinel D, link func(i, slot int)) {
	keep := make([]bool, len(src))
	if len(src) <= len(dst) {
		for i := range keep {
			keep[i] = true
		}
	} else {
		order := make([]int, len(src))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return recency(src[order[a]]) > recency(src[order[b]])
		})
		for _, i := range order[:len(dst)] {
			keep[i] = true
		}
	}

	slot := 0
	for i := range src {
		if !keep[i] {
			if link != nil {
				link(i, NoSlot)
			}
			continue
		}
		dst[slot] = conv(src[i])
		if link != nil {
			link(i, slot)
		}
		slot++
	}
	for ; slot < len(dst); slot++ {
		dst[slot] = sentinel
	}
}
