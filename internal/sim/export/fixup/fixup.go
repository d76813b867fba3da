// Package fixup holds the passes that run over a fully gathered snapshot
// before it is saved.
package fixup

import (
	"parksave.dev/internal/persistence/sv6"
	"parksave.dev/internal/persistence/textenc"
)

// RemoveTracklessRides nulls every ride that no track element references. The
// ride's user-string name and measurement slot are released with it. It
// returns the number of rides removed.
func RemoveTracklessRides(s *sv6.S6) int {
	var hasTrack [sv6.MaxRides + 1]bool
	for _, t := range s.Tiles[:usedTiles(s)] {
		if t.Kind() == sv6.TileTrack {
			hasTrack[t.TrackRide()] = true
		}
	}

	removed := 0
	for i := range s.Rest.Rides {
		r := &s.Rest.Rides[i]
		if r.Type == sv6.RideTypeNull || hasTrack[i] {
			continue
		}
		clearUserString(s, r.Name)
		if m := int(r.MeasurementIndex); m < len(s.Rest.Env.RideMeasurements) {
			s.Rest.Env.RideMeasurements[m] = sv6.EmptyMeasurement()
		}
		*r = sv6.EmptyRide()
		if s.Rest.Company.RideCount > 0 {
			s.Rest.Company.RideCount--
		}
		removed++
	}
	return removed
}

// FixGhosts drops ghost elements from the tile grid, compacting the survivors
// in order. Banners owned by a dropped ghost are released along with their
// custom text. Every tile keeps at least one element: if all of a tile's
// elements are ghosts the first one is kept with its ghost flag cleared. It
// returns the number of elements removed.
func FixGhosts(s *sv6.S6) int {
	n := usedTiles(s)
	out := 0
	removed := 0
	for start := 0; start < n; {
		end := start
		for end < n && !s.Tiles[end].IsLast() {
			end++
		}
		if end == n {
			end = n - 1
		}

		keepFirst := true
		for i := start; i <= end; i++ {
			if !s.Tiles[i].IsGhost() {
				keepFirst = false
				break
			}
		}
		for i := start; i <= end; i++ {
			t := s.Tiles[i]
			if t.IsGhost() && !(keepFirst && i == start) {
				releaseBanner(s, t)
				removed++
				continue
			}
			t.Flags &^= sv6.TileFlagGhost | sv6.TileFlagLast
			s.Tiles[out] = t
			out++
		}
		s.Tiles[out-1].Flags |= sv6.TileFlagLast
		start = end + 1
	}
	for i := out; i < n; i++ {
		s.Tiles[i] = sv6.TileElement{}
	}
	s.Park.NextFreeTileElement = uint32(out)
	return removed
}

// ConvertStrings re-encodes custom strings and news text from UTF-8 into the
// legacy encoding in place.
func ConvertStrings(s *sv6.S6) {
	for i := range s.Rest.Company.CustomStrings {
		buf := s.Rest.Company.CustomStrings[i][:]
		textenc.PutLegacy(buf, textenc.CString(buf))
	}
	for i := range s.Rest.Env.NewsItems {
		buf := s.Rest.Env.NewsItems[i].Text[:]
		textenc.PutLegacy(buf, textenc.CString(buf))
	}
}

// usedTiles bounds the live part of the grid.
func usedTiles(s *sv6.S6) int {
	return min(int(s.Park.NextFreeTileElement), len(s.Tiles))
}

func releaseBanner(s *sv6.S6, t sv6.TileElement) {
	idx, ok := t.BannerIndex()
	if !ok || idx >= len(s.Rest.Company.Banners) {
		return
	}
	b := &s.Rest.Company.Banners[idx]
	b.Type = sv6.BannerNull
	clearUserString(s, b.StringIdx)
}

func clearUserString(s *sv6.S6, id uint16) {
	if !sv6.IsUserStringID(id) {
		return
	}
	clear(s.Rest.Company.CustomStrings[sv6.UserStringIndex(id)][:])
}
