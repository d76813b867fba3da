package sv6

// SpriteBase is the header shared by every sprite slot.
type SpriteBase struct {
	Identifier           uint8
	Type                 uint8
	NextInQuadrant       uint16
	Next                 uint16
	Previous             uint16
	LinkedListTypeOffset uint8
	SpriteHeightNegative uint8
	SpriteIndex          uint16
	Flags                uint16
	X                    int16
	Y                    int16
	Z                    int16
	SpriteWidth          uint8
	SpriteHeightPositive uint8
	SpriteLeft           int16
	SpriteTop            int16
	SpriteRight          int16
	SpriteBottom         int16
	SpriteDirection      uint8
}

// SpriteBody is the kind-specific tail of a sprite slot, written right after
// the base.
type SpriteBody interface {
	spriteBody()
}

// SpriteRecord is one 256-byte sprite slot. Body is nil for null sprites and
// for kinds that only carry the common header.
type SpriteRecord struct {
	Base SpriteBase
	Body SpriteBody
}

// EmptySprite is the sentinel for an unused sprite slot.
func EmptySprite() SpriteRecord {
	return SpriteRecord{Base: SpriteBase{
		Identifier:     SpriteNull,
		NextInQuadrant: SpriteIndexNull,
		Next:           SpriteIndexNull,
		Previous:       SpriteIndexNull,
	}}
}

type VehicleBody struct {
	VehicleSpriteType         uint8
	BankRotation              uint8
	_                         [3]byte
	RemainingDistance         int32
	Velocity                  int32
	Acceleration              int32
	Ride                      uint8
	VehicleType               uint8
	Colours                   VehicleColour
	TrackProgress             uint16
	TrackType                 uint16
	TrackX                    int16
	TrackY                    int16
	TrackZ                    int16
	NextVehicleOnTrain        uint16
	PrevVehicleOnRide         uint16
	NextVehicleOnRide         uint16
	Var44                     uint16
	Mass                      uint16
	UpdateFlags               uint16
	SwingSprite               uint8
	CurrentStation            uint8
	CurrentTime               int16
	CrashZ                    int16
	Status                    uint8
	SubState                  uint8
	Peep                      [VehiclePeepSlots]uint16
	PeepTshirtColours         [VehiclePeepSlots]uint8
	NumSeats                  uint8
	NumPeeps                  uint8
	NextFreeSeat              uint8
	RestraintsPosition        uint8
	CrashX                    int16
	Sound2Flags               uint16
	SpinSprite                uint8
	Sound1ID                  uint8
	Sound1Volume              uint8
	Sound2ID                  uint8
	Sound2Volume              uint8
	SoundVectorFactor         int8
	TimeWaiting               uint16
	Speed                     uint8
	PoweredAcceleration       uint8
	DodgemsCollisionDirection uint8
	AnimationFrame            uint8
	_                         [2]byte
	VarC8                     uint16
	VarCA                     uint16
	ScreamSoundID             uint8
	VarCD                     uint8
	VarCE                     uint8
	VarCF                     uint8
	LostTimeOut               uint16
	VerticalDropCountdown     int8
	VarD3                     uint8
	MiniGolfCurrentAnimation  uint8
	MiniGolfFlags             uint8
	RideSubtype               uint8
	ColoursExtended           uint8
	SeatRotation              uint8
	TargetSeatRotation        uint8
}

type PeepThought struct {
	Type         uint8
	Item         uint8
	Freshness    uint8
	FreshTimeout uint8
}

type PathfindStep struct {
	X         uint8
	Y         uint8
	Z         uint8
	Direction uint8
}

type PeepBody struct {
	NameStringIdx              uint16
	NextX                      uint16
	NextY                      uint16
	NextZ                      uint8
	NextFlags                  uint8
	OutsideOfPark              uint8
	State                      uint8
	SubState                   uint8
	SpriteType                 uint8
	PeepType                   uint8
	NoOfRides                  uint8
	TshirtColour               uint8
	TrousersColour             uint8
	DestinationX               uint16
	DestinationY               uint16
	DestinationTolerance       uint8
	Var37                      uint8
	Energy                     uint8
	EnergyTarget               uint8
	Happiness                  uint8
	HappinessTarget            uint8
	Nausea                     uint8
	NauseaTarget               uint8
	Hunger                     uint8
	Thirst                     uint8
	Toilet                     uint8
	Mass                       uint8
	TimeToConsume              uint8
	Intensity                  uint8
	NauseaTolerance            uint8
	WindowInvalidateFlags      uint8
	PaidOnDrink                int16
	RideTypesBeenOn            [PeepRideTypesBeenOn]uint8
	ItemExtraFlags             uint32
	Photo2RideRef              uint8
	Photo3RideRef              uint8
	Photo4RideRef              uint8
	_                          [9]byte
	CurrentRide                uint8
	CurrentRideStation         uint8
	CurrentTrain               uint8
	TimeToSitdown              uint16
	SpecialSprite              uint8
	ActionSpriteType           uint8
	NextActionSpriteType       uint8
	ActionSpriteImageOffset    uint8
	Action                     uint8
	ActionFrame                uint8
	StepProgress               uint8
	NextInQueue                uint16
	Direction                  uint8
	InteractionRideIndex       uint8
	TimeInQueue                uint16
	RidesBeenOn                [PeepRidesBeenOn]uint8
	ID                         uint32
	CashInPocket               int32
	CashSpent                  int32
	TimeInPark                 int32
	RejoinQueueTimeout         int8
	PreviousRide               uint8
	PreviousRideTimeOut        uint16
	Thoughts                   [PeepThoughtCount]PeepThought
	PathCheckOptimisation      uint8
	GuestHeadingToRideID       uint8
	PeepIsLostCountdown        uint8
	Photo1RideRef              uint8
	PeepFlags                  uint32
	PathfindGoal               PathfindStep
	PathfindHistory            [PeepPathfindHistory]PathfindStep
	NoActionFrameNum           uint8
	LitterCount                uint8
	TimeOnRide                 uint8
	DisgustingCount            uint8
	PaidToEnter                int16
	PaidOnRides                int16
	PaidOnFood                 int16
	PaidOnSouvenirs            int16
	NoOfFood                   uint8
	NoOfDrinks                 uint8
	NoOfSouvenirs              uint8
	VandalismSeen              uint8
	VoucherType                uint8
	VoucherArguments           uint8
	SurroundingsThoughtTimeout uint8
	Angriness                  uint8
	TimeLost                   uint8
	DaysInQueue                uint8
	BalloonColour              uint8
	UmbrellaColour             uint8
	HatColour                  uint8
	FavouriteRide              uint8
	FavouriteRideRating        uint8
	_                          uint8
	ItemStandardFlags          uint32
}

type LitterBody struct {
	_            [5]byte
	CreationTick uint32
}

type SteamParticleBody struct {
	_          [5]byte
	TimeToMove uint16
	Frame      uint16
}

type MoneyEffectBody struct {
	_            [5]byte
	MoveDelay    uint16
	NumMovements uint8
	Vertical     uint8
	Value        int32
	_            [0x18]byte
	OffsetX      int16
	Wiggle       uint16
}

type CrashedVehicleParticleBody struct {
	_                 [7]byte
	Frame             uint16
	_                 [4]byte
	TimeToLive        uint16
	Colour            [2]uint8
	CrashedSpriteBase uint16
	VelocityX         int16
	VelocityY         int16
	VelocityZ         int16
	_                 [2]byte
	AccelerationX     int32
	AccelerationY     int32
	AccelerationZ     int32
}

// ParticleBody covers explosion clouds, explosion flares and crash splashes.
type ParticleBody struct {
	_     [7]byte
	Frame uint16
}

type JumpingFountainBody struct {
	_             [7]byte
	NumTicksAlive uint8
	Frame         uint8
	_             [7]byte
	FountainFlags uint8
	TargetX       int16
	TargetY       int16
	_             [0x12]byte
	Iteration     uint16
}

type BalloonBody struct {
	_          [5]byte
	Popped     uint16
	TimeToMove uint8
	Frame      uint8
	_          [4]byte
	Colour     uint8
}

type DuckBody struct {
	_       [7]byte
	Frame   uint16
	_       [8]byte
	TargetX int16
	TargetY int16
	_       [0x14]byte
	State   uint8
}

func (*VehicleBody) spriteBody() {}
func (*PeepBody) spriteBody() {}
func (*LitterBody) spriteBody() {}
func (*SteamParticleBody) spriteBody() {}
func (*MoneyEffectBody) spriteBody() {}
func (*CrashedVehicleParticleBody) spriteBody() {}
func (*ParticleBody) spriteBody() {}
func (*JumpingFountainBody) spriteBody() {}
func (*BalloonBody) spriteBody() {}
func (*DuckBody) spriteBody() {}
