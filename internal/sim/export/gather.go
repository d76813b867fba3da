package export

import (
	"fmt"

	"parksave.dev/internal/persistence/sv6"
	"parksave.dev/internal/persistence/textenc"
	"parksave.dev/internal/sim/encoding"
	"parksave.dev/internal/sim/export/mapper"
	"parksave.dev/internal/sim/export/pack"
	"parksave.dev/internal/sim/logic/integrity"
	"parksave.dev/internal/sim/park"
)

func toInt32(v int) int32 { return int32(v) }
func toUint8(v int) uint8 { return uint8(v) }

// flags turns a slice of booleans into a predicate over its indices.
func flags(b []bool) func(int) bool {
	return func(i int) bool { return i < len(b) && b[i] }
}

func (x *Exporter) gatherInfo(s *sv6.S6, st *park.State) error {
	sc := &st.Scenario
	s.Info.EditorStep = uint8(sc.EditorStep)
	s.Info.Category = uint8(sc.Category)
	s.Info.ObjectiveType = uint8(sc.ObjectiveType)
	s.Info.ObjectiveArg1 = uint8(sc.ObjectiveArg1)
	s.Info.ObjectiveArg2 = int32(sc.ObjectiveArg2)
	s.Info.ObjectiveArg3 = int16(sc.ObjectiveArg3)
	textenc.PutLegacy(s.Info.Name[:], sc.Name)
	textenc.PutLegacy(s.Info.Details[:], sc.Details)
	s.Info.Entry = mapper.ObjectEntry(sc.Entry)
	return nil
}

func (x *Exporter) gatherObjects(s *sv6.S6, st *park.State) error {
	if err := pack.Fill(s.Objects[:], st.Objects, mapper.ObjectEntry, sv6.EmptyObjectEntry()); err != nil {
		return err
	}
	if x.PackObjects {
		for _, o := range st.Objects {
			if o.Loaded && o.Packable {
				s.Packed = append(s.Packed, mapper.ObjectEntry(o))
			}
		}
	}
	return nil
}

func gatherClock(s *sv6.S6, st *park.State) error {
	c := &st.Clock
	s.Clock = sv6.Clock{
		ElapsedMonths: uint16(c.MonthsElapsed),
		CurrentDay:    uint16(c.MonthTicks),
		ScenarioTicks: c.ScenarioTicks,
		Srand0:        c.Srand0,
		Srand1:        c.Srand1,
	}
	return nil
}

func gatherTiles(s *sv6.S6, st *park.State) error {
	conv := func(t park.TileElement) sv6.TileElement {
		return sv6.TileElement{
			Type:            t.Type,
			Flags:           t.Flags,
			BaseHeight:      t.BaseHeight,
			ClearanceHeight: t.ClearanceHeight,
			Data:            t.Data,
		}
	}
	if err := pack.Fill(s.Tiles[:], st.Map.Tiles, conv, sv6.TileElement{}); err != nil {
		return err
	}
	next := st.Map.NextFreeTileElement
	if next == 0 || int(next) > len(st.Map.Tiles) {
		next = uint32(len(st.Map.Tiles))
	}
	s.Park.NextFreeTileElement = next
	return nil
}

func (x *Exporter) gatherSprites(s *sv6.S6, st *park.State) error {
	logger := x.logger()
	conv := func(e park.Entity) sv6.SpriteRecord { return mapper.Sprite(logger, &e) }
	if err := pack.Fill(s.Park.Sprites[:], st.Entities, conv, sv6.EmptySprite()); err != nil {
		return err
	}
	for i := range s.Park.Lists.Heads {
		s.Park.Lists.Heads[i] = sv6.SpriteIndexNull
		s.Park.Lists.Counts[i] = 0
		if i < len(st.Lists) {
			s.Park.Lists.Heads[i] = st.Lists[i].Head
			s.Park.Lists.Counts[i] = uint16(st.Lists[i].Count)
		}
	}
	return nil
}

func gatherPark(s *sv6.S6, st *park.State) error {
	p := &st.Park
	ps := &s.Park.Scalars
	ps.ParkName = p.Name
	ps.ParkNameArgs = p.NameArgs
	ps.InitialCash = int32(st.Finance.InitialCash)
	ps.CurrentLoan = int32(st.Finance.Loan)
	ps.ParkFlags = p.Flags
	ps.ParkEntranceFee = int16(p.EntranceFee)
	ps.Rct1EntranceX = uint16(p.Rct1Entrance.X)
	ps.Rct1EntranceY = uint16(p.Rct1Entrance.Y)
	ps.Rct1EntranceZ = uint8(p.Rct1Entrance.Z)
	undefinedSpawn := sv6.PeepSpawn{X: sv6.PeepSpawnUndefined, Y: sv6.PeepSpawnUndefined}
	if err := pack.Fill(ps.PeepSpawns[:], p.PeepSpawns, mapper.PeepSpawn, undefinedSpawn); err != nil {
		return fmt.Errorf("peep spawns: %w", err)
	}
	ps.GuestChangeModifier = uint8(p.GuestChangeModifier)
	ps.CurrentResearchLevel = uint8(st.Research.FundingLevel)

	r, inv := &st.Research, &s.Inventions
	encoding.PackBitsInto(inv.RideTypes[:], sv6.RideTypeCount, flags(r.RideTypesInvented))
	encoding.PackBitsInto(inv.RideEntries[:], sv6.MaxRideObjects, flags(r.RideEntriesInvented))
	encoding.PackBitsInto(s.Scenery.Researched[:], sv6.MaxResearchedSceneryItems, flags(r.SceneryInvented))
	for i := range inv.TrackTypesA {
		var mask uint64
		if i < len(r.TrackConfigurations) {
			mask = r.TrackConfigurations[i]
		}
		inv.TrackTypesA[i] = uint32(mask)
		inv.TrackTypesB[i] = uint32(mask >> 32)
	}

	s.Guests.GuestsInPark = uint16(p.GuestsInPark)
	s.Guests.GuestsHeadingForPark = uint16(p.GuestsHeadingForPark)
	s.Staff.LastGuestsInPark = uint16(p.GuestsInParkLastWeek)
	s.Staff.HandymanColour = uint8(st.Staff.HandymanColour)
	s.Staff.MechanicColour = uint8(st.Staff.MechanicColour)
	s.Staff.SecurityColour = uint8(st.Staff.SecurityColour)
	s.Rating.ParkRating = uint16(p.Rating)

	if err := pack.Fill(s.History.ParkRating[:], p.RatingHistory, toUint8, sv6.HistoryUndefined); err != nil {
		return fmt.Errorf("rating history: %w", err)
	}
	if err := pack.Fill(s.History.GuestsInPark[:], p.GuestsInParkHistory, toUint8, sv6.HistoryUndefined); err != nil {
		return fmt.Errorf("guest history: %w", err)
	}
	s.Value.ParkValue = int32(p.Value)
	if err := pack.Fill(s.ValueHistory.History[:], p.ValueHistory, toInt32, sv6.MoneyUndefined); err != nil {
		return fmt.Errorf("value history: %w", err)
	}
	return nil
}

func gatherFinance(s *sv6.S6, st *park.State) error {
	f := &st.Finance
	if len(f.Expenditure) > sv6.ExpenditureMonths {
		return fmt.Errorf("expenditure: %w: %d months", pack.ErrOverCapacity, len(f.Expenditure))
	}
	for m, row := range f.Expenditure {
		if err := pack.Fill(s.Expenditure.Table[m][:], row, toInt32, 0); err != nil {
			return fmt.Errorf("expenditure month %d: %w", m, err)
		}
	}
	if err := pack.Fill(s.Balance.CashHistory[:], f.CashHistory, toInt32, sv6.MoneyUndefined); err != nil {
		return fmt.Errorf("cash history: %w", err)
	}
	if err := pack.Fill(s.WeeklyProfit.History[:], f.WeeklyProfitHistory, toInt32, sv6.MoneyUndefined); err != nil {
		return fmt.Errorf("weekly profit history: %w", err)
	}
	s.Finance = sv6.FinanceBlock{
		CurrentExpenditure:          int32(f.CurrentExpenditure),
		CurrentProfit:               int32(f.CurrentProfit),
		WeeklyProfitAverageDividend: int32(f.WeeklyProfitAverageDividend),
		WeeklyProfitAverageDivisor:  uint16(f.WeeklyProfitAverageDivisor),
	}
	return nil
}

func gatherResearch(s *sv6.S6, st *park.State) error {
	r := &st.Research
	rb := &s.Research
	rb.ResearchPriorities = uint8(r.Priorities)
	rb.ResearchProgressStage = uint8(r.ProgressStage)
	rb.LastResearchedItemSubject = r.LastItem.RawValue
	rb.ResearchProgress = uint16(r.Progress)
	rb.NextResearchItem = r.NextItem.RawValue
	rb.NextResearchCategory = uint8(r.NextItem.Category)
	rb.NextResearchExpectedDay = uint8(r.ExpectedDay)
	rb.NextResearchExpectedMonth = uint8(r.ExpectedMonth)

	g := &st.Guests
	rb.GuestInitialHappiness = uint8(g.InitialHappiness)
	rb.ParkSize = uint16(st.Park.Size)
	rb.GuestGenerationProbability = uint16(st.Park.GuestGenerationProbability)
	rb.TotalRideValueForMoney = uint16(st.Park.TotalRideValueForMoney)
	rb.MaxLoan = int32(st.Finance.MaxLoan)
	rb.GuestInitialCash = int16(g.InitialCash)
	rb.GuestInitialHunger = uint8(g.InitialHunger)
	rb.GuestInitialThirst = uint8(g.InitialThirst)

	o := &st.Objective
	rb.ObjectiveType = uint8(o.Type)
	rb.ObjectiveYear = uint8(o.Year)
	rb.ObjectiveCurrency = int32(o.Currency)
	rb.ObjectiveGuests = uint16(o.Guests)
	return mapper.Campaigns(&rb.CampaignWeeksLeft, &rb.CampaignRideIndex, st.Campaigns)
}

func (x *Exporter) gatherCompany(s *sv6.S6, st *park.State) error {
	p, f, o := &st.Park, &st.Finance, &st.Objective
	c := &s.Rest.Company
	c.CompletedCompanyValue = int32(o.CompletedCompanyValue)
	c.TotalAdmissions = p.TotalAdmissions
	c.IncomeFromAdmissions = int32(p.IncomeFromAdmissions)
	c.CompanyValue = int32(p.CompanyValue)
	if err := pack.Fill(c.PeepWarningThrottle[:], p.PeepWarningThrottle, toUint8, 0); err != nil {
		return fmt.Errorf("peep warning throttle: %w", err)
	}
	if err := pack.Fill(c.Awards[:], p.Awards, mapper.Award, sv6.Award{}); err != nil {
		return fmt.Errorf("awards: %w", err)
	}
	c.LandPrice = int16(p.LandPrice)
	c.ConstructionRightsFee = int16(p.ConstructionRightsPrice)
	c.GameVersionNumber = x.GameVersion
	if c.GameVersionNumber == 0 {
		c.GameVersionNumber = sv6.GameVersion
	}
	c.CompletedValueRecord = int32(o.CompanyValueRecord)
	c.LoanHash = integrity.LoanHash(int32(f.InitialCash), int32(f.Loan), uint32(f.MaxLoan))
	for i := range st.Rides {
		if !st.Rides[i].IsNull() {
			c.RideCount++
		}
	}
	c.HistoricalProfit = int32(f.HistoricalProfit)
	textenc.PutLegacy(c.ScenarioCompletedName[:], o.CompletedBy)
	c.Cash = integrity.EncryptMoney(int32(f.Cash))

	c.ParkRatingCasualtyPenalty = uint16(p.RatingCasualtyPenalty)
	m := &st.Map
	c.MapSizeUnits = uint16(m.SizeUnits)
	c.MapSizeMinus2 = uint16(m.SizeMinus2)
	c.MapSize = uint16(m.Size)
	c.MapMaxXYCoordinate = uint16(m.MaxXY)
	c.SamePriceThroughoutPark = uint32(p.SamePriceThroughout)
	c.SamePriceExtended = uint32(p.SamePriceThroughout >> 32)
	c.SuggestedMaxGuests = uint16(p.SuggestedMaxGuests)
	c.ParkRatingWarningDays = uint16(p.RatingWarningDays)
	c.LastEntranceStyle = uint8(p.LastEntranceStyle)

	end := sv6.ResearchItem{RawValue: sv6.ResearchItemEnd}
	if err := pack.Fill(c.ResearchItems[:], st.Research.Items, mapper.ResearchItem, end); err != nil {
		return fmt.Errorf("research items: %w", err)
	}
	c.MapBaseZ = uint16(m.BaseZ)
	textenc.PutLegacy(c.ScenarioName[:], o.ScenarioName)
	textenc.PutLegacy(c.ScenarioDescription[:], o.ScenarioDetails)
	c.CurrentInterestRate = uint8(f.InterestRate)
	if err := mapper.ParkEntrances(c, p.Entrances); err != nil {
		return err
	}
	textenc.PutLegacy(c.ScenarioFilename[:], st.Scenario.FileName)
	if len(st.Scenario.ExpansionPacks) > len(c.ExpansionPackNames) {
		return fmt.Errorf("expansion packs: %w: %d bytes", pack.ErrOverCapacity, len(st.Scenario.ExpansionPacks))
	}
	copy(c.ExpansionPackNames[:], st.Scenario.ExpansionPacks)
	if err := pack.Fill(c.Banners[:], st.Banners, mapper.Banner, sv6.Banner{Type: sv6.BannerNull}); err != nil {
		return fmt.Errorf("banners: %w", err)
	}
	if len(st.UserStrings) > sv6.MaxUserStrings {
		return fmt.Errorf("user strings: %w: %d", pack.ErrOverCapacity, len(st.UserStrings))
	}
	for i := range c.CustomStrings {
		clear(c.CustomStrings[i][:])
		if i < len(st.UserStrings) {
			textenc.PutUTF8(c.CustomStrings[i][:], st.UserStrings[i])
		}
	}
	c.GameTicks = st.Clock.CurrentTicks
	return nil
}

// gatherRides places rides by id and packs their performance samples into
// the measurement table, least recently used first out. Two rides sharing an
// id fail the export.
func gatherRides(s *sv6.S6, st *park.State) error {
	rides := &s.Rest.Rides
	var seen [sv6.MaxRides]bool
	var owners []*park.Ride
	for i := range st.Rides {
		r := &st.Rides[i]
		if r.ID < 0 || r.ID >= len(rides) {
			return fmt.Errorf("ride id %d: %w", r.ID, pack.ErrOverCapacity)
		}
		if seen[r.ID] {
			return fmt.Errorf("ride id %d: %w", r.ID, ErrDuplicateRide)
		}
		seen[r.ID] = true
		rides[r.ID] = mapper.Ride(r)
		if !r.IsNull() && r.Measurement != nil {
			owners = append(owners, r)
		}
	}

	pack.FillLRU(s.Rest.Env.RideMeasurements[:], owners,
		func(r *park.Ride) uint32 { return r.Measurement.LastUseTick },
		func(r *park.Ride) sv6.RideMeasurementRecord { return mapper.RideMeasurement(r.ID, r.Measurement) },
		sv6.EmptyMeasurement(),
		func(i, slot int) {
			idx := sv6.MeasurementIndexNone
			if slot != pack.NoSlot {
				idx = uint8(slot)
			}
			rides[owners[i].ID].MeasurementIndex = idx
		})
	return nil
}

func gatherEnvironment(s *sv6.S6, st *park.State) error {
	e := &s.Rest.Env
	v := &st.View
	e.SavedAge = uint16(st.Park.SavedAge)
	e.SavedViewX = int16(v.X)
	e.SavedViewY = int16(v.Y)
	e.SavedViewZoom = uint8(v.Zoom)
	e.SavedViewRotation = uint8(v.Rotation)
	if err := pack.Fill(e.MapAnimations[:], st.MapAnimations, mapper.MapAnimation, sv6.MapAnimation{}); err != nil {
		return fmt.Errorf("map animations: %w", err)
	}
	e.NumMapAnimations = uint16(len(st.MapAnimations))
	rc, err := mapper.RatingsCalc(&st.RatingsCalc)
	if err != nil {
		return fmt.Errorf("ratings calc: %w", err)
	}
	e.RatingsCalc = rc
	e.NextGuestIndex = st.Park.NextGuestNumber
	e.GrassSceneryLoop = uint16(st.Map.GrassSceneryLoop)
	if err := gatherPatrolAreas(&e.PatrolAreas, st.Staff.PatrolAreas); err != nil {
		return err
	}
	if err := pack.Fill(e.StaffModes[:], st.Staff.Modes, toUint8, 0); err != nil {
		return fmt.Errorf("staff modes: %w", err)
	}
	e.Unknown13CA740 = uint8(st.Park.Unknown13CA740)

	cl := &st.Climate
	e.Climate = uint8(cl.Climate)
	e.ClimateUpdateTimer = uint16(cl.UpdateTimer)
	e.CurrentWeather = uint8(cl.Current.Weather)
	e.NextWeather = uint8(cl.Next.Weather)
	e.TemperatureCurrent = int8(cl.Current.Temperature)
	e.TemperatureNext = int8(cl.Next.Temperature)
	e.CurrentWeatherEffect = uint8(cl.Current.Effect)
	e.NextWeatherEffect = uint8(cl.Next.Effect)
	e.CurrentWeatherGloom = uint8(cl.Current.Gloom)
	e.NextWeatherGloom = uint8(cl.Next.Gloom)
	e.CurrentRainLevel = uint8(cl.Current.RainLevel)
	e.NextRainLevel = uint8(cl.Next.RainLevel)

	if err := pack.Fill(e.NewsItems[:], st.News, mapper.NewsItem, sv6.NewsItem{}); err != nil {
		return fmt.Errorf("news: %w", err)
	}
	e.WidePathTileLoopX = uint16(st.Map.WidePathTileLoopX)
	e.WidePathTileLoopY = uint16(st.Map.WidePathTileLoopY)
	return nil
}

// gatherPatrolAreas packs each slot's patrol cells into its bitmap. Slots
// without an entry patrol nowhere.
func gatherPatrolAreas(dst *[sv6.PatrolAreaSlots][sv6.PatrolAreaWords]uint32, areas []park.PatrolArea) error {
	for i := range dst {
		clear(dst[i][:])
	}
	for _, a := range areas {
		if a.Slot < 0 || a.Slot >= len(dst) {
			return fmt.Errorf("patrol area slot %d: %w", a.Slot, pack.ErrOverCapacity)
		}
		var cells [park.PatrolCells]bool
		for _, c := range a.Cells {
			if c < 0 || c >= len(cells) {
				return fmt.Errorf("patrol area slot %d cell %d: %w", a.Slot, c, pack.ErrOverCapacity)
			}
			cells[c] = true
		}
		encoding.PackBitsInto(dst[a.Slot][:], park.PatrolCells, flags(cells[:]))
	}
	return nil
}
