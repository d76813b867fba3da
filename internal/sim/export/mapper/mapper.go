package mapper

import (
	"fmt"

	"parksave.dev/internal/persistence/sv6"
	"parksave.dev/internal/persistence/textenc"
	"parksave.dev/internal/sim/export/pack"
	"parksave.dev/internal/sim/park"
)

// NewsItem keeps the text as UTF-8; string conversion re-encodes it once the
// snapshot is complete.
func NewsItem(n park.NewsItem) sv6.NewsItem {
	dst := sv6.NewsItem{
		Type:      uint8(n.Type),
		Flags:     uint8(n.Flags),
		Assoc:     n.Assoc,
		Ticks:     uint16(n.Ticks),
		MonthYear: uint16(n.MonthYear),
		Day:       uint8(n.Day),
	}
	textenc.PutUTF8(dst.Text[:], n.Text)
	return dst
}

func Award(a park.Award) sv6.Award {
	return sv6.Award{Time: uint16(a.Time), Type: uint16(a.Type)}
}

// Campaigns writes the active campaigns into the per-type tables. Each
// active type gets its weeks left with the active flag set; ride campaigns
// also record the ride, the free food or drink campaign its shop item.
func Campaigns(weeks *[sv6.CampaignSlots]uint8, index *[sv6.CampaignRideSlots]uint8, cs []park.Campaign) error {
	clear(weeks[:])
	clear(index[:])
	for _, c := range cs {
		if c.Type < 0 || c.Type >= len(weeks) {
			return fmt.Errorf("campaign type %d out of range", c.Type)
		}
		weeks[c.Type] = uint8(c.WeeksLeft) | sv6.CampaignActiveFlag
		switch c.Type {
		case park.CampaignRideFree, park.CampaignRide:
			index[c.Type] = uint8(c.RideID)
		case park.CampaignFoodOrDrinkFree:
			index[c.Type] = uint8(c.ShopItemType)
		}
	}
	return nil
}

// PeepSpawn stores z in land height units.
func PeepSpawn(c park.Coords) sv6.PeepSpawn {
	return sv6.PeepSpawn{
		X:         uint16(c.X),
		Y:         uint16(c.Y),
		Z:         uint8(c.Z / 16),
		Direction: uint8(c.Direction),
	}
}

// ParkEntrances fills the four entrance columns; unused slots keep x and y at
// LocationNull.
func ParkEntrances(c *sv6.CompanyBlock, es []park.Coords) error {
	if len(es) > sv6.MaxParkEntrances {
		return fmt.Errorf("park entrances: %w: %d > %d", pack.ErrOverCapacity, len(es), sv6.MaxParkEntrances)
	}
	for i := 0; i < sv6.MaxParkEntrances; i++ {
		if i >= len(es) {
			c.ParkEntranceX[i] = sv6.LocationNull
			c.ParkEntranceY[i] = sv6.LocationNull
			c.ParkEntranceZ[i] = 0
			c.ParkEntranceDirection[i] = 0
			continue
		}
		c.ParkEntranceX[i] = int16(es[i].X)
		c.ParkEntranceY[i] = int16(es[i].Y)
		c.ParkEntranceZ[i] = int16(es[i].Z)
		c.ParkEntranceDirection[i] = uint8(es[i].Direction)
	}
	return nil
}

func ResearchItem(r park.ResearchItem) sv6.ResearchItem {
	return sv6.ResearchItem{RawValue: r.RawValue, Category: uint8(r.Category)}
}

func Banner(b park.Banner) sv6.Banner {
	return sv6.Banner{
		Type:       b.Type,
		Flags:      b.Flags,
		StringIdx:  b.StringIdx,
		Colour:     b.Colour,
		TextColour: b.TextColour,
		X:          b.X,
		Y:          b.Y,
	}
}

// RatingsCalc maps the rating calculator's scan state.
func RatingsCalc(r *park.RatingsCalc) (sv6.RideRatingsCalcData, error) {
	d := sv6.RideRatingsCalcData{
		ProximityX:          uint16(r.ProximityX),
		ProximityY:          uint16(r.ProximityY),
		ProximityZ:          uint16(r.ProximityZ),
		ProximityStartX:     uint16(r.ProximityStartX),
		ProximityStartY:     uint16(r.ProximityStartY),
		ProximityStartZ:     uint16(r.ProximityStartZ),
		CurrentRide:         uint8(r.CurrentRide),
		State:               uint8(r.State),
		ProximityTrackType:  uint8(r.ProximityTrackType),
		ProximityBaseHeight: uint8(r.ProximityBaseHeight),
		ProximityTotal:      uint16(r.ProximityTotal),
		NumBrakes:           uint16(r.NumBrakes),
		NumReversers:        uint16(r.NumReversers),
		StationFlags:        uint16(r.StationFlags),
	}
	toUint16 := func(v int) uint16 { return uint16(v) }
	if err := pack.Fill(d.ProximityScores[:], r.ProximityScores, toUint16, 0); err != nil {
		return d, fmt.Errorf("proximity scores: %w", err)
	}
	return d, nil
}

func MapAnimation(a park.MapAnimation) sv6.MapAnimation {
	return sv6.MapAnimation{
		Type:  uint8(a.Type),
		BaseZ: uint8(a.BaseZ),
		X:     uint16(a.X),
		Y:     uint16(a.Y),
	}
}

// ObjectEntry maps an object-table slot. Names are space padded to eight
// characters.
func ObjectEntry(o park.Object) sv6.ObjectEntry {
	if !o.Loaded {
		return sv6.EmptyObjectEntry()
	}
	dst := sv6.ObjectEntry{Flags: o.Flags, Checksum: o.Checksum}
	for i := range dst.Name {
		dst.Name[i] = ' '
	}
	copy(dst.Name[:], o.Name)
	return dst
}
