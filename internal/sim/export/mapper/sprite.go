package mapper

import (
	"log"

	"parksave.dev/internal/persistence/sv6"
	"parksave.dev/internal/sim/encoding"
	"parksave.dev/internal/sim/park"
)

func base(e *park.Entity, identifier uint8) sv6.SpriteBase {
	c := &e.Common
	return sv6.SpriteBase{
		Identifier:           identifier,
		Type:                 c.Type,
		NextInQuadrant:       c.NextInQuadrant,
		Next:                 c.Next,
		Previous:             c.Previous,
		LinkedListTypeOffset: uint8(c.List * 2),
		SpriteHeightNegative: uint8(c.HeightNegative),
		SpriteIndex:          c.Index,
		Flags:                c.Flags,
		X:                    int16(c.X),
		Y:                    int16(c.Y),
		Z:                    int16(c.Z),
		SpriteWidth:          uint8(c.Width),
		SpriteHeightPositive: uint8(c.HeightPositive),
		SpriteLeft:           int16(c.Left),
		SpriteTop:            int16(c.Top),
		SpriteRight:          int16(c.Right),
		SpriteBottom:         int16(c.Bottom),
		SpriteDirection:      uint8(c.Direction),
	}
}

// Sprite maps one entity-pool slot. Kinds the legacy layout cannot express are
// logged and written as the common header only.
func Sprite(logger *log.Logger, e *park.Entity) sv6.SpriteRecord {
	switch e.Kind {
	case park.KindNull:
		return sv6.SpriteRecord{Base: base(e, sv6.SpriteNull)}
	case park.KindVehicle:
		rec := sv6.SpriteRecord{Base: base(e, sv6.SpriteVehicle)}
		if e.Vehicle != nil {
			rec.Body = Vehicle(e.Vehicle)
		}
		return rec
	case park.KindPeep:
		rec := sv6.SpriteRecord{Base: base(e, sv6.SpritePeep)}
		if e.Peep != nil {
			rec.Body = Peep(e.Peep)
		}
		return rec
	case park.KindLitter:
		rec := sv6.SpriteRecord{Base: base(e, sv6.SpriteLitter)}
		if e.Litter != nil {
			rec.Body = Litter(e.Litter)
		}
		return rec
	case park.KindMisc:
		rec := sv6.SpriteRecord{Base: base(e, sv6.SpriteMisc)}
		if e.Misc != nil {
			rec.Body = Misc(logger, e.Common.Type, e.Misc)
		}
		return rec
	default:
		logf(logger, "sprite %d: unknown entity kind %s", e.Common.Index, e.Kind)
		return sv6.SpriteRecord{Base: base(e, sv6.SpriteNull)}
	}
}

func Vehicle(v *park.Vehicle) *sv6.VehicleBody {
	dst := &sv6.VehicleBody{
		VehicleSpriteType:  uint8(v.SpriteType),
		BankRotation:       uint8(v.BankRotation),
		RemainingDistance:  int32(v.RemainingDistance),
		Velocity:           int32(v.Velocity),
		Acceleration:       int32(v.Acceleration),
		Ride:               uint8(v.Ride),
		VehicleType:        uint8(v.VehicleType),
		Colours:            sv6.VehicleColour{Body: v.Colours.Body, Trim: v.Colours.Trim},
		TrackProgress:      uint16(v.TrackProgress),
		TrackType:          uint16(v.TrackType<<2 | v.TrackDirection&3),
		TrackX:             int16(v.TrackX),
		TrackY:             int16(v.TrackY),
		TrackZ:             int16(v.TrackZ),
		NextVehicleOnTrain: v.NextVehicleOnTrain,
		PrevVehicleOnRide:  v.PrevVehicleOnRide,
		NextVehicleOnRide:  v.NextVehicleOnRide,
		Var44:              uint16(v.Var44),
		Mass:               uint16(v.Mass),
		UpdateFlags:        uint16(v.UpdateFlags),
		SwingSprite:        uint8(v.SwingSprite),
		CurrentStation:     uint8(v.CurrentStation),
		CurrentTime:        int16(v.CurrentTime),
		CrashZ:             int16(v.CrashZ),
		Status:             uint8(v.Status),
		SubState:           uint8(v.SubState),
	}
	for i := range dst.Peep {
		dst.Peep[i] = sv6.SpriteIndexNull
		if i < len(v.Peeps) {
			dst.Peep[i] = v.Peeps[i]
		}
		if i < len(v.PeepTshirtColours) {
			dst.PeepTshirtColours[i] = uint8(v.PeepTshirtColours[i])
		}
	}
	dst.NumSeats = uint8(v.NumSeats)
	dst.NumPeeps = uint8(v.NumPeeps)
	dst.NextFreeSeat = uint8(v.NextFreeSeat)
	dst.RestraintsPosition = uint8(v.RestraintsPosition)
	dst.CrashX = int16(v.CrashX)
	dst.Sound2Flags = uint16(v.Sound2Flags)
	dst.SpinSprite = uint8(v.SpinSprite)
	dst.Sound1ID = uint8(v.Sound1ID)
	dst.Sound1Volume = uint8(v.Sound1Volume)
	dst.Sound2ID = uint8(v.Sound2ID)
	dst.Sound2Volume = uint8(v.Sound2Volume)
	dst.SoundVectorFactor = int8(v.SoundVectorFactor)
	dst.TimeWaiting = uint16(v.TimeWaiting)
	dst.Speed = uint8(v.Speed)
	dst.PoweredAcceleration = uint8(v.PoweredAcceleration)
	dst.DodgemsCollisionDirection = uint8(v.DodgemsCollisionDirection)
	dst.AnimationFrame = uint8(v.AnimationFrame)
	dst.VarC8 = uint16(v.VarC8)
	dst.VarCA = uint16(v.VarCA)
	dst.ScreamSoundID = uint8(v.ScreamSoundID)
	dst.VarCD = uint8(v.VarCD)
	dst.VarCE = uint8(v.VarCE)
	dst.VarCF = uint8(v.VarCF)
	dst.LostTimeOut = uint16(v.LostTimeOut)
	dst.VerticalDropCountdown = int8(v.VerticalDropCountdown)
	dst.VarD3 = uint8(v.VarD3)
	dst.MiniGolfCurrentAnimation = uint8(v.MiniGolfCurrentAnimation)
	dst.MiniGolfFlags = uint8(v.MiniGolfFlags)
	dst.RideSubtype = uint8(v.RideSubtype)
	dst.ColoursExtended = uint8(v.ColoursExtended)
	dst.SeatRotation = uint8(v.SeatRotation)
	dst.TargetSeatRotation = uint8(v.TargetSeatRotation)
	return dst
}

// contains builds a membership predicate over a small id set.
func contains(ids []int) func(int) bool {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(i int) bool {
		_, ok := set[i]
		return ok
	}
}

func Peep(p *park.Peep) *sv6.PeepBody {
	dst := &sv6.PeepBody{
		NameStringIdx:        p.NameStringIdx,
		NextX:                uint16(p.NextX),
		NextY:                uint16(p.NextY),
		NextZ:                uint8(p.NextZ),
		NextFlags:            uint8(p.NextFlags),
		State:                uint8(p.State),
		SubState:             uint8(p.SubState),
		SpriteType:           uint8(p.SpriteType),
		PeepType:             uint8(p.PeepType),
		NoOfRides:            uint8(p.NoOfRides),
		TshirtColour:         uint8(p.TshirtColour),
		TrousersColour:       uint8(p.TrousersColour),
		DestinationX:         uint16(p.DestinationX),
		DestinationY:         uint16(p.DestinationY),
		DestinationTolerance: uint8(p.DestinationTolerance),
		Var37:                uint8(p.Var37),
	}
	if p.OutsideOfPark {
		dst.OutsideOfPark = 1
	}
	dst.Energy = uint8(p.Energy)
	dst.EnergyTarget = uint8(p.EnergyTarget)
	dst.Happiness = uint8(p.Happiness)
	dst.HappinessTarget = uint8(p.HappinessTarget)
	dst.Nausea = uint8(p.Nausea)
	dst.NauseaTarget = uint8(p.NauseaTarget)
	dst.Hunger = uint8(p.Hunger)
	dst.Thirst = uint8(p.Thirst)
	dst.Toilet = uint8(p.Toilet)
	dst.Mass = uint8(p.Mass)
	dst.TimeToConsume = uint8(p.TimeToConsume)
	dst.Intensity = uint8(p.Intensity)
	dst.NauseaTolerance = uint8(p.NauseaTolerance)
	dst.WindowInvalidateFlags = uint8(p.WindowInvalidate)
	dst.PaidOnDrink = int16(p.PaidOnDrink)
	encoding.PackByteBits(dst.RideTypesBeenOn[:], contains(p.RideTypesBeenOn))
	dst.ItemExtraFlags = p.ItemExtraFlags
	dst.Photo1RideRef = uint8(p.Photo1RideRef)
	dst.Photo2RideRef = uint8(p.Photo2RideRef)
	dst.Photo3RideRef = uint8(p.Photo3RideRef)
	dst.Photo4RideRef = uint8(p.Photo4RideRef)

	dst.CurrentRide = uint8(p.CurrentRide)
	dst.CurrentRideStation = uint8(p.CurrentRideStation)
	dst.CurrentTrain = uint8(p.CurrentTrain)
	dst.TimeToSitdown = uint16(p.TimeToSitdown)
	dst.SpecialSprite = uint8(p.SpecialSprite)
	dst.ActionSpriteType = uint8(p.ActionSpriteType)
	dst.NextActionSpriteType = uint8(p.NextActionSpriteType)
	dst.ActionSpriteImageOffset = uint8(p.ActionSpriteImageOffset)
	dst.Action = uint8(p.Action)
	dst.ActionFrame = uint8(p.ActionFrame)
	dst.StepProgress = uint8(p.StepProgress)
	dst.NextInQueue = p.NextInQueue
	dst.Direction = uint8(p.Direction)
	dst.InteractionRideIndex = uint8(p.InteractionRideIndex)
	dst.TimeInQueue = uint16(p.TimeInQueue)
	encoding.PackByteBits(dst.RidesBeenOn[:], contains(p.RidesBeenOn))

	dst.ID = p.ID
	dst.CashInPocket = int32(p.CashInPocket)
	dst.CashSpent = int32(p.CashSpent)
	dst.TimeInPark = int32(p.TimeInPark)
	dst.RejoinQueueTimeout = int8(p.RejoinQueueTimeout)
	dst.PreviousRide = uint8(p.PreviousRide)
	dst.PreviousRideTimeOut = uint16(p.PreviousRideTimeOut)
	for i := range dst.Thoughts {
		if i >= len(p.Thoughts) {
			dst.Thoughts[i] = sv6.PeepThought{Type: sv6.PeepThoughtNone}
			continue
		}
		th := p.Thoughts[i]
		dst.Thoughts[i] = sv6.PeepThought{
			Type:         uint8(th.Type),
			Item:         uint8(th.Item),
			Freshness:    uint8(th.Freshness),
			FreshTimeout: uint8(th.FreshTimeout),
		}
	}
	dst.PathCheckOptimisation = uint8(p.PathCheckOptimisation)
	dst.GuestHeadingToRideID = uint8(p.GuestHeadingToRideID)
	dst.PeepIsLostCountdown = uint8(p.PeepIsLostCountdown)
	dst.PeepFlags = p.PeepFlags
	dst.PathfindGoal = pathStep(p.PathfindGoal)
	for i := 0; i < len(dst.PathfindHistory) && i < len(p.PathfindHistory); i++ {
		dst.PathfindHistory[i] = pathStep(p.PathfindHistory[i])
	}

	dst.NoActionFrameNum = uint8(p.NoActionFrameNum)
	dst.LitterCount = uint8(p.LitterCount)
	dst.TimeOnRide = uint8(p.TimeOnRide)
	dst.DisgustingCount = uint8(p.DisgustingCount)
	dst.PaidToEnter = int16(p.PaidToEnter)
	dst.PaidOnRides = int16(p.PaidOnRides)
	dst.PaidOnFood = int16(p.PaidOnFood)
	dst.PaidOnSouvenirs = int16(p.PaidOnSouvenirs)
	dst.NoOfFood = uint8(p.NoOfFood)
	dst.NoOfDrinks = uint8(p.NoOfDrinks)
	dst.NoOfSouvenirs = uint8(p.NoOfSouvenirs)
	dst.VandalismSeen = uint8(p.VandalismSeen)
	dst.VoucherType = uint8(p.VoucherType)
	dst.VoucherArguments = uint8(p.VoucherArguments)
	dst.SurroundingsThoughtTimeout = uint8(p.SurroundingsThoughtTimeout)
	dst.Angriness = uint8(p.Angriness)
	dst.TimeLost = uint8(p.TimeLost)
	dst.DaysInQueue = uint8(p.DaysInQueue)
	dst.BalloonColour = uint8(p.BalloonColour)
	dst.UmbrellaColour = uint8(p.UmbrellaColour)
	dst.HatColour = uint8(p.HatColour)
	dst.FavouriteRide = uint8(p.FavouriteRide)
	dst.FavouriteRideRating = uint8(p.FavouriteRideRating)
	dst.ItemStandardFlags = p.ItemStandardFlags
	return dst
}

func pathStep(s park.PathStep) sv6.PathfindStep {
	return sv6.PathfindStep{X: uint8(s.X), Y: uint8(s.Y), Z: uint8(s.Z), Direction: uint8(s.Direction)}
}

func Litter(l *park.Litter) *sv6.LitterBody {
	return &sv6.LitterBody{CreationTick: l.CreationTick}
}

// Misc maps a misc payload by its sub-kind. An unknown sub-kind is logged and
// yields no body.
func Misc(logger *log.Logger, kind uint8, m *park.Misc) sv6.SpriteBody {
	switch kind {
	case park.MiscSteamParticle:
		return &sv6.SteamParticleBody{TimeToMove: uint16(m.TimeToMove), Frame: uint16(m.Frame)}
	case park.MiscMoneyEffect:
		return &sv6.MoneyEffectBody{
			MoveDelay:    uint16(m.MoveDelay),
			NumMovements: uint8(m.NumMovements),
			Vertical:     uint8(m.Vertical),
			Value:        int32(m.Value),
			OffsetX:      int16(m.OffsetX),
			Wiggle:       uint16(m.Wiggle),
		}
	case park.MiscCrashedVehicleParticle:
		return &sv6.CrashedVehicleParticleBody{
			Frame:             uint16(m.Frame),
			TimeToLive:        uint16(m.TimeToLive),
			Colour:            m.Colour,
			CrashedSpriteBase: uint16(m.CrashedSpriteBase),
			VelocityX:         int16(m.VelocityX),
			VelocityY:         int16(m.VelocityY),
			VelocityZ:         int16(m.VelocityZ),
			AccelerationX:     int32(m.AccelerationX),
			AccelerationY:     int32(m.AccelerationY),
			AccelerationZ:     int32(m.AccelerationZ),
		}
	case park.MiscExplosionCloud, park.MiscExplosionFlare, park.MiscCrashSplash:
		return &sv6.ParticleBody{Frame: uint16(m.Frame)}
	case park.MiscJumpingFountainWater, park.MiscJumpingFountainSnow:
		return &sv6.JumpingFountainBody{
			NumTicksAlive: uint8(m.NumTicksAlive),
			Frame:         uint8(m.Frame),
			FountainFlags: uint8(m.FountainFlags),
			TargetX:       int16(m.TargetX),
			TargetY:       int16(m.TargetY),
			Iteration:     uint16(m.Iteration),
		}
	case park.MiscBalloon:
		b := &sv6.BalloonBody{
			TimeToMove: uint8(m.TimeToMove),
			Frame:      uint8(m.Frame),
			Colour:     uint8(m.BalloonColour),
		}
		if m.Popped {
			b.Popped = 1
		}
		return b
	case park.MiscDuck:
		return &sv6.DuckBody{
			Frame:   uint16(m.Frame),
			TargetX: int16(m.TargetX),
			TargetY: int16(m.TargetY),
			State:   uint8(m.DuckState),
		}
	default:
		logf(logger, "misc sprite: unknown sub-kind %d", kind)
		return nil
	}
}

func logf(logger *log.Logger, format string, args ...any) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}
