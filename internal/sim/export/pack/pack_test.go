package pack

import (
	"errors"
	"testing"
)

func double(v int) int { return v * 2 }

func TestFill_SentinelFillsTail(t *testing.T) {
	dst := make([]int, 5)
	if err := Fill(dst, []int{1, 2, 3}, double, -1); err != nil {
		t.Fatalf("fill: %v", err)
	}
	want := []int{2, 4, 6, -1, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("slot %d: got=%d want=%d", i, dst[i], want[i])
		}
	}
}

func TestFill_OverCapacity(t *testing.T) {
	dst := []int{7, 7}
	err := Fill(dst, []int{1, 2, 3}, double, -1)
	if !errors.Is(err, ErrOverCapacity) {
		t.Fatalf("err: got=%v want=%v", err, ErrOverCapacity)
	}
	if dst[0] != 7 || dst[1] != 7 {
		t.Fatalf("dst modified on error: %v", dst)
	}
}

type sample struct {
	owner int
	tick  uint32
}

func TestFillLRU_KeepsMostRecentInOrder(t *testing.T) {
	src := []sample{{owner: 10, tick: 5}, {owner: 11, tick: 9}, {owner: 12, tick: 1}, {owner: 13, tick: 7}, {owner: 14, tick: 3}}
	dst := make([]int, 3)
	links := map[int]int{}
	FillLRU(dst, src,
		func(s sample) uint32 { return s.tick },
		func(s sample) int { return s.owner },
		-1,
		func(i, slot int) { links[src[i].owner] = slot })

	want := []int{10, 11, 13}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("slot %d: got=%d want=%d", i, dst[i], want[i])
		}
	}
	wantLinks := map[int]int{10: 0, 11: 1, 12: NoSlot, 13: 2, 14: NoSlot}
	for owner, slot := range wantLinks {
		if links[owner] != slot {
			t.Fatalf("owner %d: got=%d want=%d", owner, links[owner], slot)
		}
	}
}

func TestFillLRU_TiesPreferEarlier(t *testing.T) {
	src := []sample{{owner: 1, tick: 4}, {owner: 2, tick: 4}, {owner: 3, tick: 4}}
	dst := make([]int, 2)
	FillLRU(dst, src, func(s sample) uint32 { return s.tick }, func(s sample) int { return s.owner }, -1, nil)
	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("tie break: got=%v want=[1 2]", dst)
	}
}

func TestFillLRU_UnderCapacity(t *testing.T) {
	src := []sample{{owner: 1, tick: 1}}
	dst := []int{9, 9, 9}
	var slots []int
	FillLRU(dst, src, func(s sample) uint32 { return s.tick }, func(s sample) int { return s.owner }, -1,
		func(_, slot int) { slots = append(slots, slot) })
	if dst[0] != 1 || dst[1] != -1 || dst[2] != -1 {
		t.Fatalf("dst: got=%v", dst)
	}
	if len(slots) != 1 || slots[0] != 0 {
		t.Fatalf("links: got=%v", slots)
	}
}
