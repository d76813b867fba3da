// Package mapper converts live park records into their fixed-layout legacy
// counterparts. Every narrowing conversion truncates to the legacy width.
package mapper

import (
	"parksave.dev/internal/persistence/sv6"
	"parksave.dev/internal/sim/park"
)

// XY8 packs a tile coordinate into the legacy x/y byte pair; nil is
// undefined.
func XY8(p *park.TileXY) uint16 {
	if p == nil {
		return sv6.XY8Undefined
	}
	return uint16(uint8(p.X)) | uint16(uint8(p.Y))<<8
}

// Ride maps one ride slot. A null ride carries nothing but its type. The
// measurement index is left at none; the measurement packer assigns it.
func Ride(r *park.Ride) sv6.RideRecord {
	if r == nil || r.IsNull() {
		return sv6.EmptyRide()
	}
	dst := sv6.RideRecord{
		Type:             uint8(r.Type),
		Subtype:          uint8(r.Subtype),
		Mode:             uint8(r.Mode),
		ColourSchemeType: uint8(r.ColourSchemeType),
		Status:           uint8(r.Status),
		Name:             r.Name,
		NameArguments:    r.NameArguments,
		OverallView:      XY8(r.OverallView),
		MeasurementIndex: sv6.MeasurementIndexNone,
	}
	for i := range dst.VehicleColours {
		if i < len(r.VehicleColours) {
			c := r.VehicleColours[i]
			dst.VehicleColours[i] = sv6.VehicleColour{Body: c.Body, Trim: c.Trim}
			dst.VehicleColoursExtended[i] = c.Extended
		}
	}

	for i := 0; i < sv6.MaxStationsPerRide; i++ {
		if i >= len(r.Stations) {
			dst.StationStarts[i] = sv6.XY8Undefined
			dst.Entrances[i] = sv6.XY8Undefined
			dst.Exits[i] = sv6.XY8Undefined
			dst.LastPeepInQueue[i] = sv6.SpriteIndexNull
			continue
		}
		st := &r.Stations[i]
		dst.StationStarts[i] = XY8(st.Start)
		dst.StationHeights[i] = uint8(st.Height)
		dst.StationLength[i] = uint8(st.Length)
		dst.StationDepart[i] = uint8(st.Depart)
		dst.TrainAtStation[i] = uint8(st.TrainAtStation)
		dst.Entrances[i] = XY8(st.Entrance)
		dst.Exits[i] = XY8(st.Exit)
		dst.LastPeepInQueue[i] = st.LastPeepInQueue
		dst.Length[i] = int32(st.SegmentLength)
		dst.Time[i] = uint16(st.SegmentTime)
		dst.QueueTime[i] = uint8(st.QueueTime)
		dst.QueueLength[i] = uint16(st.QueueLength)
	}
	for i := range dst.Vehicles {
		dst.Vehicles[i] = sv6.SpriteIndexNull
		if i < len(r.Vehicles) {
			dst.Vehicles[i] = r.Vehicles[i]
		}
	}

	dst.DepartFlags = uint8(r.DepartFlags)
	dst.NumStations = uint8(len(r.Stations))
	dst.NumVehicles = uint8(r.NumVehicles)
	dst.NumCarsPerTrain = uint8(r.NumCarsPerTrain)
	dst.ProposedNumVehicles = uint8(r.ProposedNumVehicles)
	dst.ProposedNumCarsPerTrain = uint8(r.ProposedNumCarsPerTrain)
	dst.MaxTrains = uint8(r.MaxTrains)
	dst.MinMaxCarsPerTrain = uint8(r.MinCarsPerTrain)<<4 | uint8(r.MaxCarsPerTrain)&0x0F
	dst.MinWaitingTime = uint8(r.MinWaitingTime)
	dst.MaxWaitingTime = uint8(r.MaxWaitingTime)
	dst.OperationOption = uint8(r.OperationOption)
	dst.BoatHireReturnDirection = uint8(r.BoatHireReturnDirection)
	dst.BoatHireReturnPosition = XY8(r.BoatHireReturnPosition)
	dst.SpecialTrackElements = uint8(r.SpecialTrackElements)

	dst.MaxSpeed = int32(r.MaxSpeed)
	dst.AverageSpeed = int32(r.AverageSpeed)
	dst.CurrentTestSegment = uint8(r.CurrentTestSegment)
	dst.AverageSpeedTestTimeout = uint8(r.AverageSpeedTestTimeout)
	dst.MaxPositiveVerticalG = int16(r.MaxPositiveVerticalG)
	dst.MaxNegativeVerticalG = int16(r.MaxNegativeVerticalG)
	dst.MaxLateralG = int16(r.MaxLateralG)
	dst.PreviousVerticalG = int16(r.PreviousVerticalG)
	dst.PreviousLateralG = int16(r.PreviousLateralG)
	dst.TestingFlags = r.TestingFlags
	dst.CurTestTrackLocation = XY8(r.CurTestTrackLocation)
	dst.TurnCountDefault = uint16(r.TurnCountDefault)
	dst.TurnCountBanked = uint16(r.TurnCountBanked)
	dst.TurnCountSloped = uint16(r.TurnCountSloped)
	dst.Inversions = inversions(dst.Type, r)
	dst.Drops = uint8(r.Drops)
	dst.StartDropHeight = uint8(r.StartDropHeight)
	dst.HighestDropHeight = uint8(r.HighestDropHeight)
	dst.ShelteredLength = int32(r.ShelteredLength)
	dst.Var11C = uint16(r.Var11C)
	dst.NumShelteredSections = uint8(r.NumShelteredSections)
	dst.CurTestTrackZ = uint8(r.CurTestTrackZ)

	dst.CurNumCustomers = uint16(r.CurNumCustomers)
	dst.NumCustomersTimeout = uint16(r.NumCustomersTimeout)
	for i := 0; i < len(dst.NumCustomers) && i < len(r.NumCustomers); i++ {
		dst.NumCustomers[i] = uint16(r.NumCustomers[i])
	}
	dst.Price = int16(r.Price)
	for i := range dst.ChairliftBullwheelLocation {
		dst.ChairliftBullwheelLocation[i] = XY8(&r.ChairliftBullwheels[i])
		dst.ChairliftBullwheelZ[i] = uint8(r.ChairliftBullwheelZ[i])
	}
	dst.Excitement = int16(r.Ratings.Excitement)
	dst.Intensity = int16(r.Ratings.Intensity)
	dst.Nausea = int16(r.Ratings.Nausea)
	dst.Value = uint16(r.Value)
	dst.ChairliftBullwheelRotation = uint16(r.ChairliftBullwheelRotation)
	dst.Satisfaction = uint8(r.Satisfaction)
	dst.SatisfactionTimeOut = uint8(r.SatisfactionTimeOut)
	dst.SatisfactionNext = uint8(r.SatisfactionNext)
	dst.WindowInvalidateFlags = uint8(r.WindowInvalidateFlags)
	dst.TotalCustomers = r.TotalCustomers
	dst.TotalProfit = int32(r.TotalProfit)
	dst.Popularity = uint8(r.Popularity)
	dst.PopularityTimeOut = uint8(r.PopularityTimeOut)
	dst.PopularityNext = uint8(r.PopularityNext)
	dst.NumRiders = uint8(r.NumRiders)
	dst.MusicTuneID = uint8(r.MusicTuneID)
	dst.SlideInUse = uint8(r.SlideInUse)
	dst.SlidePeep = r.SlidePeep
	dst.SlidePeepTShirtColour = uint8(r.SlidePeepTShirtColour)
	dst.SpiralSlideProgress = uint8(r.SpiralSlideProgress)
	dst.BuildDate = int16(r.BuildDate)
	dst.UpkeepCost = int16(r.UpkeepCost)
	dst.RaceWinner = r.RaceWinner
	dst.MusicPosition = r.MusicPosition

	dst.BreakdownReasonPending = uint8(r.BreakdownReasonPending)
	dst.MechanicStatus = uint8(r.MechanicStatus)
	dst.Mechanic = r.Mechanic
	dst.InspectionStation = uint8(r.InspectionStation)
	dst.BrokenVehicle = uint8(r.BrokenVehicle)
	dst.BrokenCar = uint8(r.BrokenCar)
	dst.BreakdownReason = uint8(r.BreakdownReason)
	dst.PriceSecondary = int16(r.PriceSecondary)
	dst.Reliability = uint16(r.Reliability)
	dst.UnreliabilityFactor = uint8(r.UnreliabilityFactor)
	dst.Downtime = uint8(r.Downtime)
	dst.InspectionInterval = uint8(r.InspectionInterval)
	dst.LastInspection = uint8(r.LastInspection)
	for i := 0; i < len(dst.DowntimeHistory) && i < len(r.DowntimeHistory); i++ {
		dst.DowntimeHistory[i] = uint8(r.DowntimeHistory[i])
	}
	dst.NoPrimaryItemsSold = r.NoPrimaryItemsSold
	dst.NoSecondaryItemsSold = r.NoSecondaryItemsSold

	dst.BreakdownSoundModifier = uint8(r.BreakdownSoundModifier)
	dst.NotFixedTimeout = uint8(r.NotFixedTimeout)
	dst.LastCrashType = uint8(r.LastCrashType)
	dst.ConnectedMessageThrottle = uint8(r.ConnectedMessageThrottle)
	dst.IncomePerHour = int32(r.IncomePerHour)
	dst.Profit = int32(r.Profit)
	for i := 0; i < sv6.NumColourSchemes && i < len(r.TrackColours); i++ {
		dst.TrackColourMain[i] = r.TrackColours[i].Main
		dst.TrackColourAdditional[i] = r.TrackColours[i].Additional
		dst.TrackColourSupports[i] = r.TrackColours[i].Supports
	}
	dst.Music = uint8(r.Music)
	dst.EntranceStyle = uint8(r.EntranceStyle)
	dst.VehicleChangeTimeout = uint16(r.VehicleChangeTimeout)
	dst.NumBlockBrakes = uint8(r.NumBlockBrakes)
	dst.LiftHillSpeed = uint8(r.LiftHillSpeed)
	dst.GuestsFavourite = uint16(r.GuestsFavourite)
	dst.LifecycleFlags = r.LifecycleFlags
	dst.TotalAirTime = uint16(r.TotalAirTime)
	dst.CurrentTestStation = uint8(r.CurrentTestStation)
	dst.NumCircuits = uint8(r.NumCircuits)
	dst.CableLiftX = int16(r.CableLiftX)
	dst.CableLiftY = int16(r.CableLiftY)
	dst.CableLiftZ = uint8(r.CableLiftZ)
	dst.CableLift = r.CableLift
	return dst
}

// inversions packs the inversion (or, for mini golf, hole) count into the low
// five bits and the sheltered eighths into the top three.
func inversions(rideType uint8, r *park.Ride) uint8 {
	n, limit := r.Inversions, sv6.MaxInversions
	if rideType == sv6.RideTypeMiniGolf {
		n, limit = r.Holes, sv6.MaxGolfHoles
	}
	n = min(n, limit)
	return uint8(n) | uint8(r.ShelteredEighths)<<5
}

// RideMeasurement maps a performance sample owned by rideID.
func RideMeasurement(rideID int, m *park.RideMeasurement) sv6.RideMeasurementRecord {
	dst := sv6.RideMeasurementRecord{
		RideIndex:      uint8(rideID),
		Flags:          uint8(m.Flags),
		LastUseTick:    m.LastUseTick,
		NumItems:       uint16(m.NumItems),
		CurrentItem:    uint16(m.CurrentItem),
		VehicleIndex:   uint8(m.VehicleIndex),
		CurrentStation: uint8(m.CurrentStation),
	}
	for i := 0; i < sv6.RideMeasurementMaxItems; i++ {
		if i < len(m.Velocity) {
			dst.Velocity[i] = uint8(m.Velocity[i])
		}
		if i < len(m.Altitude) {
			dst.Altitude[i] = uint8(m.Altitude[i])
		}
		if i < len(m.Vertical) {
			dst.Vertical[i] = int8(m.Vertical[i])
		}
		if i < len(m.Lateral) {
			dst.Lateral[i] = int8(m.Lateral[i])
		}
	}
	return dst
}
