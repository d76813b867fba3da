package fixup

import (
	"testing"

	"parksave.dev/internal/persistence/sv6"
	"parksave.dev/internal/persistence/textenc"
)

func el(kind, flags uint8, data ...uint8) sv6.TileElement {
	t := sv6.TileElement{Type: kind, Flags: flags}
	copy(t.Data[:], data)
	return t
}

func withTiles(tiles ...sv6.TileElement) *sv6.S6 {
	s := sv6.New()
	copy(s.Tiles[:], tiles)
	s.Park.NextFreeTileElement = uint32(len(tiles))
	return s
}

func TestFixGhosts_CompactsAndRelinks(t *testing.T) {
	const ghost, last = sv6.TileFlagGhost, sv6.TileFlagLast
	s := withTiles(
		el(sv6.TileSurface, 0),
		el(sv6.TilePath, ghost|last),
		el(sv6.TileSurface, 0),
		el(sv6.TileBanner, ghost, 7),
		el(sv6.TilePath, last),
	)
	s.Rest.Company.Banners[7] = sv6.Banner{Type: 1, StringIdx: sv6.UserStringStart + 3}
	copy(s.Rest.Company.CustomStrings[3][:], "Hello")

	if n := FixGhosts(s); n != 2 {
		t.Fatalf("removed: got=%d want=2", n)
	}
	if s.Park.NextFreeTileElement != 3 {
		t.Fatalf("next free: got=%d want=3", s.Park.NextFreeTileElement)
	}
	want := []sv6.TileElement{
		el(sv6.TileSurface, last),
		el(sv6.TileSurface, 0),
		el(sv6.TilePath, last),
	}
	for i, w := range want {
		if s.Tiles[i] != w {
			t.Fatalf("tile %d: got=%+v want=%+v", i, s.Tiles[i], w)
		}
	}
	if s.Tiles[3] != (sv6.TileElement{}) || s.Tiles[4] != (sv6.TileElement{}) {
		t.Fatalf("tail not cleared")
	}
	if s.Rest.Company.Banners[7].Type != sv6.BannerNull {
		t.Fatalf("ghost banner not released")
	}
	if s.Rest.Company.CustomStrings[3][0] != 0 {
		t.Fatalf("ghost banner text not cleared")
	}
}

func TestFixGhosts_AllGhostTileKeepsOne(t *testing.T) {
	const ghost, last = sv6.TileFlagGhost, sv6.TileFlagLast
	s := withTiles(el(sv6.TileSurface, ghost), el(sv6.TilePath, ghost|last))
	if n := FixGhosts(s); n != 1 {
		t.Fatalf("removed: got=%d want=1", n)
	}
	if got := s.Tiles[0]; got != el(sv6.TileSurface, last) {
		t.Fatalf("kept element: got=%+v", got)
	}
}

func TestFixGhosts_NoGhostsUnchanged(t *testing.T) {
	tiles := []sv6.TileElement{
		el(sv6.TileSurface, sv6.TileFlagLast),
		el(sv6.TileSurface, 0),
		el(sv6.TileTrack, sv6.TileFlagLast, 0, 0, 0, 4),
	}
	s := withTiles(tiles...)
	if n := FixGhosts(s); n != 0 {
		t.Fatalf("removed: got=%d want=0", n)
	}
	for i, w := range tiles {
		if s.Tiles[i] != w {
			t.Fatalf("tile %d changed: got=%+v want=%+v", i, s.Tiles[i], w)
		}
	}
}

func TestRemoveTracklessRides(t *testing.T) {
	s := withTiles(el(sv6.TileTrack, sv6.TileFlagLast, 0, 0, 0, 1))
	s.Rest.Rides[0] = sv6.RideRecord{Type: 5, Name: sv6.UserStringStart + 2, MeasurementIndex: 0}
	s.Rest.Rides[1] = sv6.RideRecord{Type: 6, MeasurementIndex: sv6.MeasurementIndexNone}
	s.Rest.Env.RideMeasurements[0] = sv6.RideMeasurementRecord{RideIndex: 0}
	copy(s.Rest.Company.CustomStrings[2][:], "Loopy")

	if n := RemoveTracklessRides(s); n != 1 {
		t.Fatalf("removed: got=%d want=1", n)
	}
	if s.Rest.Rides[0] != sv6.EmptyRide() {
		t.Fatalf("trackless ride kept")
	}
	if s.Rest.Rides[1].Type != 6 {
		t.Fatalf("tracked ride removed")
	}
	if s.Rest.Env.RideMeasurements[0].RideIndex != sv6.RideIDNull {
		t.Fatalf("measurement of removed ride kept")
	}
	if s.Rest.Company.CustomStrings[2][0] != 0 {
		t.Fatalf("ride name not released")
	}
}

func TestConvertStrings(t *testing.T) {
	s := sv6.New()
	textenc.PutUTF8(s.Rest.Company.CustomStrings[0][:], "Café")
	textenc.PutUTF8(s.Rest.Env.NewsItems[0].Text[:], "Żółw")
	ConvertStrings(s)

	if got := textenc.Decode(s.Rest.Company.CustomStrings[0][:]); got != "Café" {
		t.Fatalf("custom string: got=%q", got)
	}
	if s.Rest.Company.CustomStrings[0][3] != 0xE9 {
		t.Fatalf("custom string byte: got=%#x want=0xe9", s.Rest.Company.CustomStrings[0][3])
	}
	if got := textenc.Decode(s.Rest.Env.NewsItems[0].Text[:]); got != "Żółw" {
		t.Fatalf("news text: got=%q", got)
	}
}
