package mapper

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"parksave.dev/internal/persistence/sv6"
	"parksave.dev/internal/sim/export/pack"
	"parksave.dev/internal/sim/park"
)

func TestRide_NullSlot(t *testing.T) {
	got := Ride(&park.Ride{Type: park.RideTypeNull, Name: 7, Price: 30})
	if got != sv6.EmptyRide() {
		t.Fatalf("null ride carries data beyond its type")
	}
}

func TestRide_StationsAndPacking(t *testing.T) {
	r := &park.Ride{
		Type:             3,
		Inversions:       40,
		ShelteredEighths: 5,
		MinCarsPerTrain:  2,
		MaxCarsPerTrain:  6,
		Stations: []park.Station{
			{Start: &park.TileXY{X: 10, Y: 20}, Entrance: &park.TileXY{X: 11, Y: 20}, LastPeepInQueue: 42},
		},
		Vehicles: []uint16{5},
	}
	got := Ride(r)
	if got.StationStarts[0] != 10|20<<8 {
		t.Fatalf("station start: got=%#x want=%#x", got.StationStarts[0], 10|20<<8)
	}
	if got.Entrances[0] != 11|20<<8 {
		t.Fatalf("entrance: got=%#x", got.Entrances[0])
	}
	if got.Exits[0] != sv6.XY8Undefined {
		t.Fatalf("unset exit: got=%#x want=%#x", got.Exits[0], sv6.XY8Undefined)
	}
	for i := 1; i < sv6.MaxStationsPerRide; i++ {
		if got.Entrances[i] != sv6.XY8Undefined || got.LastPeepInQueue[i] != sv6.SpriteIndexNull {
			t.Fatalf("station %d not sentinel", i)
		}
	}
	if got.Inversions != 31|5<<5 {
		t.Fatalf("inversions: got=%#x want=%#x", got.Inversions, 31|5<<5)
	}
	if got.MinMaxCarsPerTrain != 0x26 {
		t.Fatalf("cars per train: got=%#x want=0x26", got.MinMaxCarsPerTrain)
	}
	if got.Vehicles[0] != 5 || got.Vehicles[1] != sv6.SpriteIndexNull {
		t.Fatalf("vehicles: got=%v", got.Vehicles[:2])
	}
	if got.MeasurementIndex != sv6.MeasurementIndexNone {
		t.Fatalf("measurement index: got=%d", got.MeasurementIndex)
	}
	if got.NumStations != 1 {
		t.Fatalf("num stations: got=%d want=1", got.NumStations)
	}
}

func TestRide_MiniGolfUsesHoles(t *testing.T) {
	got := Ride(&park.Ride{Type: int(sv6.RideTypeMiniGolf), Inversions: 3, Holes: 9})
	if got.Inversions != 9 {
		t.Fatalf("holes: got=%d want=9", got.Inversions)
	}
}

func TestRideMeasurement(t *testing.T) {
	m := &park.RideMeasurement{LastUseTick: 77, NumItems: 2, Velocity: []int{-3, 4}, Altitude: []int{300}}
	got := RideMeasurement(12, m)
	if got.RideIndex != 12 || got.LastUseTick != 77 || got.NumItems != 2 {
		t.Fatalf("header: got=%d/%d/%d", got.RideIndex, got.LastUseTick, got.NumItems)
	}
	if got.Velocity[0] != 0xFD || got.Velocity[1] != 4 {
		t.Fatalf("velocity: got=%v", got.Velocity[:2])
	}
	if got.Altitude[0] != uint8(300&0xFF) {
		t.Fatalf("altitude truncation: got=%d", got.Altitude[0])
	}
}

func TestSprite_KindsAndBodies(t *testing.T) {
	cases := []struct {
		name string
		e    park.Entity
		id   uint8
		body bool
	}{
		{"null", park.Entity{Kind: park.KindNull}, sv6.SpriteNull, false},
		{"vehicle", park.Entity{Kind: park.KindVehicle, Vehicle: &park.Vehicle{}}, sv6.SpriteVehicle, true},
		{"peep", park.Entity{Kind: park.KindPeep, Peep: &park.Peep{}}, sv6.SpritePeep, true},
		{"litter", park.Entity{Kind: park.KindLitter, Litter: &park.Litter{CreationTick: 9}}, sv6.SpriteLitter, true},
		{"misc", park.Entity{Kind: park.KindMisc, Misc: &park.Misc{}}, sv6.SpriteMisc, true},
		{"vehicle without payload", park.Entity{Kind: park.KindVehicle}, sv6.SpriteVehicle, false},
	}
	for _, tc := range cases {
		rec := Sprite(nil, &tc.e)
		if rec.Base.Identifier != tc.id {
			t.Fatalf("%s identifier: got=%d want=%d", tc.name, rec.Base.Identifier, tc.id)
		}
		if (rec.Body != nil) != tc.body {
			t.Fatalf("%s body: got=%v want present=%v", tc.name, rec.Body, tc.body)
		}
	}
}

func TestSprite_UnknownKindLogsHeaderOnly(t *testing.T) {
	var logs bytes.Buffer
	e := park.Entity{Kind: park.EntityKind(42)}
	e.Common.Index = 17
	e.Common.X = 100
	rec := Sprite(log.New(&logs, "", 0), &e)
	if rec.Body != nil {
		t.Fatalf("unknown kind produced a body")
	}
	if rec.Base.X != 100 || rec.Base.SpriteIndex != 17 {
		t.Fatalf("common header not preserved: %+v", rec.Base)
	}
	if !strings.Contains(logs.String(), "unknown entity kind") {
		t.Fatalf("log: got=%q", logs.String())
	}
}

func TestSprite_CommonHeader(t *testing.T) {
	e := park.Entity{Kind: park.KindLitter, Litter: &park.Litter{}}
	e.Common = park.EntityCommon{Type: 4, Index: 3, Next: 9, Previous: park.NoEntity, NextInQuadrant: 8, List: park.ListLitter, X: -5, Z: 70000}
	b := Sprite(nil, &e).Base
	if b.LinkedListTypeOffset != uint8(park.ListLitter*2) {
		t.Fatalf("list offset: got=%d want=%d", b.LinkedListTypeOffset, park.ListLitter*2)
	}
	if b.Next != 9 || b.Previous != park.NoEntity || b.NextInQuadrant != 8 || b.Type != 4 {
		t.Fatalf("links: got=%+v", b)
	}
	if b.X != -5 || b.Z != 4464 {
		t.Fatalf("coords: got x=%d z=%d", b.X, b.Z)
	}
}

func TestMisc_SubKinds(t *testing.T) {
	m := &park.Misc{Frame: 6, Value: 250, DuckState: 2, Popped: true, BalloonColour: 4}
	switch b := Misc(nil, park.MiscMoneyEffect, m).(type) {
	case *sv6.MoneyEffectBody:
		if b.Value != 250 {
			t.Fatalf("money value: got=%d", b.Value)
		}
	default:
		t.Fatalf("money effect: got=%T", b)
	}
	for _, kind := range []uint8{park.MiscExplosionCloud, park.MiscExplosionFlare, park.MiscCrashSplash} {
		b, ok := Misc(nil, kind, m).(*sv6.ParticleBody)
		if !ok || b.Frame != 6 {
			t.Fatalf("particle %d: got=%v", kind, b)
		}
	}
	if b, ok := Misc(nil, park.MiscBalloon, m).(*sv6.BalloonBody); !ok || b.Popped != 1 || b.Colour != 4 {
		t.Fatalf("balloon: got=%+v", b)
	}
	if b, ok := Misc(nil, park.MiscDuck, m).(*sv6.DuckBody); !ok || b.State != 2 {
		t.Fatalf("duck: got=%+v", b)
	}
	if b, ok := Misc(nil, park.MiscJumpingFountainSnow, m).(*sv6.JumpingFountainBody); !ok || b.Frame != 6 {
		t.Fatalf("fountain: got=%+v", b)
	}

	var logs bytes.Buffer
	if b := Misc(log.New(&logs, "", 0), 200, m); b != nil {
		t.Fatalf("unknown misc: got=%T", b)
	}
	if logs.Len() == 0 {
		t.Fatalf("unknown misc sub-kind not logged")
	}
}

func TestVehicle_TrackTypeAndSeats(t *testing.T) {
	v := Vehicle(&park.Vehicle{TrackType: 10, TrackDirection: 7, Peeps: []uint16{3}, PeepTshirtColours: []int{12}})
	if v.TrackType != 10<<2|3 {
		t.Fatalf("track type: got=%d want=%d", v.TrackType, 10<<2|3)
	}
	if v.Peep[0] != 3 || v.Peep[1] != sv6.SpriteIndexNull {
		t.Fatalf("seats: got=%v", v.Peep[:2])
	}
	if v.PeepTshirtColours[0] != 12 {
		t.Fatalf("tshirt: got=%d", v.PeepTshirtColours[0])
	}
}

func TestPeep_BitmapsAndThoughts(t *testing.T) {
	p := Peep(&park.Peep{
		OutsideOfPark:   true,
		RideTypesBeenOn: []int{0, 9, 90},
		RidesBeenOn:     []int{254},
		Thoughts:        []park.Thought{{Type: 3, Item: 1}},
	})
	if p.OutsideOfPark != 1 {
		t.Fatalf("outside of park: got=%d", p.OutsideOfPark)
	}
	if p.RideTypesBeenOn[0] != 0x01 || p.RideTypesBeenOn[1] != 0x02 || p.RideTypesBeenOn[11] != 0x04 {
		t.Fatalf("ride types bitmap: got=%v", p.RideTypesBeenOn)
	}
	if p.RidesBeenOn[31] != 0x40 {
		t.Fatalf("rides bitmap: got=%#x want=0x40", p.RidesBeenOn[31])
	}
	if p.Thoughts[0].Type != 3 || p.Thoughts[1].Type != sv6.PeepThoughtNone {
		t.Fatalf("thoughts: got=%+v", p.Thoughts)
	}
}

func TestCampaigns(t *testing.T) {
	var weeks [sv6.CampaignSlots]uint8
	var index [sv6.CampaignRideSlots]uint8
	weeks[4] = 9
	err := Campaigns(&weeks, &index, []park.Campaign{
		{Type: park.CampaignRide, WeeksLeft: 3, RideID: 17},
		{Type: park.CampaignFoodOrDrinkFree, WeeksLeft: 1, ShopItemType: 6},
		{Type: park.CampaignParkEntryFree, WeeksLeft: 2, RideID: 99},
	})
	if err != nil {
		t.Fatalf("campaigns: %v", err)
	}
	if weeks[park.CampaignRide] != 3|0x80 || index[park.CampaignRide] != 17 {
		t.Fatalf("ride campaign: got=%#x/%d", weeks[park.CampaignRide], index[park.CampaignRide])
	}
	if index[park.CampaignFoodOrDrinkFree] != 6 {
		t.Fatalf("food campaign item: got=%d", index[park.CampaignFoodOrDrinkFree])
	}
	if index[park.CampaignParkEntryFree] != 0 {
		t.Fatalf("park campaign stored a ride")
	}
	if weeks[4] != 0 {
		t.Fatalf("stale campaign not cleared")
	}

	if err := Campaigns(&weeks, &index, []park.Campaign{{Type: 30}}); err == nil {
		t.Fatalf("out of range campaign accepted")
	}
}

func TestPeepSpawn_ZInLandUnits(t *testing.T) {
	got := PeepSpawn(park.Coords{X: 64, Y: 96, Z: 224, Direction: 1})
	want := sv6.PeepSpawn{X: 64, Y: 96, Z: 14, Direction: 1}
	if got != want {
		t.Fatalf("spawn: got=%+v want=%+v", got, want)
	}
}

func TestParkEntrances(t *testing.T) {
	var c sv6.CompanyBlock
	if err := ParkEntrances(&c, []park.Coords{{X: 1, Y: 2, Z: 3, Direction: 2}}); err != nil {
		t.Fatalf("entrances: %v", err)
	}
	if c.ParkEntranceX[0] != 1 || c.ParkEntranceDirection[0] != 2 {
		t.Fatalf("entrance 0: got=%d/%d", c.ParkEntranceX[0], c.ParkEntranceDirection[0])
	}
	for i := 1; i < sv6.MaxParkEntrances; i++ {
		if c.ParkEntranceX[i] != sv6.LocationNull || c.ParkEntranceY[i] != sv6.LocationNull {
			t.Fatalf("entrance %d not null", i)
		}
	}
	err := ParkEntrances(&c, make([]park.Coords, 5))
	if !errors.Is(err, pack.ErrOverCapacity) {
		t.Fatalf("overflow: got=%v want=%v", err, pack.ErrOverCapacity)
	}
}

func TestObjectEntry(t *testing.T) {
	if got := ObjectEntry(park.Object{Name: "RCT2"}); !got.IsEmpty() {
		t.Fatalf("unloaded object not empty")
	}
	got := ObjectEntry(park.Object{Loaded: true, Flags: 0x80, Name: "TWIST1", Checksum: 0xDEAD})
	if string(got.Name[:]) != "TWIST1  " || got.Flags != 0x80 || got.Checksum != 0xDEAD {
		t.Fatalf("object: got=%q/%#x/%#x", got.Name, got.Flags, got.Checksum)
	}
}

func TestNewsItem_TextTruncated(t *testing.T) {
	got := NewsItem(park.NewsItem{Type: 2, Text: strings.Repeat("x", 400)})
	if got.Text[sv6.NewsTextLength-1] != 0 || got.Text[sv6.NewsTextLength-2] != 'x' {
		t.Fatalf("news text not NUL terminated")
	}
}
