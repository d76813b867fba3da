package park

// entity returns the slot at i, or nil when i is out of the pool.
func (s *State) entity(i uint16) *Entity {
	if i == NoEntity || int(i) >= len(s.Entities) {
		return nil
	}
	return &s.Entities[i]
}

// walk follows next from head and reports the first slot visited twice.
func (s *State) walk(head uint16, next func(*Entity) uint16) (int, bool) {
	seen := make(map[uint16]struct{})
	for i := head; ; {
		e := s.entity(i)
		if e == nil {
			return 0, false
		}
		if _, ok := seen[i]; ok {
			return int(i), true
		}
		seen[i] = struct{}{}
		i = next(e)
	}
}

// SpatialCycle reports the first spatial quadrant whose chain loops, and the
// slot where the loop closes.
func (s *State) SpatialCycle() (quadrant, slot int, found bool) {
	for q, head := range s.SpatialHeads {
		if at, ok := s.walk(head, func(e *Entity) uint16 { return e.Common.NextInQuadrant }); ok {
			return q, at, true
		}
	}
	return 0, 0, false
}

// ListCycle reports the first sprite list whose chain loops.
func (s *State) ListCycle() (list, slot int, found bool) {
	for l, sl := range s.Lists {
		if at, ok := s.walk(sl.Head, func(e *Entity) uint16 { return e.Common.Next }); ok {
			return l, at, true
		}
	}
	return 0, 0, false
}

// FixDisjointNull links null entities that are missing from the null list
// back into it and returns how many were repaired. Call after ListCycle
// reported no cycle.
func (s *State) FixDisjointNull() int {
	s.ensureLists()
	reached := make(map[uint16]struct{})
	for i := s.Lists[ListNull].Head; ; {
		e := s.entity(i)
		if e == nil {
			break
		}
		if _, ok := reached[i]; ok {
			break
		}
		reached[i] = struct{}{}
		i = e.Common.Next
	}

	fixed := 0
	for idx := range s.Entities {
		e := &s.Entities[idx]
		if e.Kind != KindNull {
			continue
		}
		i := uint16(idx)
		if _, ok := reached[i]; ok {
			continue
		}
		head := s.Lists[ListNull].Head
		e.Common.List = ListNull
		e.Common.Next = head
		e.Common.Previous = NoEntity
		if h := s.entity(head); h != nil {
			h.Common.Previous = i
		}
		s.Lists[ListNull].Head = i
		s.Lists[ListNull].Count++
		reached[i] = struct{}{}
		fixed++
	}
	return fixed
}
