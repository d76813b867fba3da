package sv6

// Records in this file are encoded little-endian with encoding/binary; every
// field is fixed-width and blank fields are written as zero padding.

type Header struct {
	Type             uint8
	ClassicFlag      uint8
	NumPackedObjects uint16
	Version          uint32
	MagicNumber      uint32
	_                [20]byte
}

type ScenarioInfo struct {
	EditorStep    uint8
	Category      uint8
	ObjectiveType uint8
	ObjectiveArg1 uint8
	ObjectiveArg2 int32
	ObjectiveArg3 int16
	_             [62]byte
	Name          [ScenarioNameLength]byte
	Details       [ScenarioDetailLength]byte
	Entry         ObjectEntry
}

// ObjectEntry identifies an external asset. An unused slot is all 0xFF.
type ObjectEntry struct {
	Flags    uint32
	Name     [8]byte
	Checksum uint32
}

// EmptyObjectEntry is the sentinel for an unused object slot.
func EmptyObjectEntry() ObjectEntry {
	return ObjectEntry{
		Flags:    0xFFFFFFFF,
		Name:     [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		Checksum: 0xFFFFFFFF,
	}
}

func (e ObjectEntry) IsEmpty() bool { return e == EmptyObjectEntry() }

// Clock is the 16-byte date/RNG chunk.
type Clock struct {
	ElapsedMonths uint16
	CurrentDay    uint16
	ScenarioTicks uint32
	Srand0        uint32
	Srand1        uint32
}

type TileElement struct {
	Type            uint8
	Flags           uint8
	BaseHeight      uint8
	ClearanceHeight uint8
	Data            [4]uint8
}

func (t TileElement) Kind() uint8 { return t.Type & TileTypeMask }
func (t TileElement) IsGhost() bool { return t.Flags&TileFlagGhost != 0 }
func (t TileElement) IsLast() bool { return t.Flags&TileFlagLast != 0 }
func (t TileElement) TrackRide() uint8 { return t.Data[3] }

// BannerIndex returns the banner slot referenced by the element, if any.
func (t TileElement) BannerIndex() (int, bool) {
	switch t.Kind() {
	case TileBanner:
		return int(t.Data[0]), true
	case TileWall, TileLargeScenery:
		if t.Data[3] == BannerNull {
			return 0, false
		}
		return int(t.Data[3]), true
	default:
		return 0, false
	}
}

type PeepSpawn struct {
	X         uint16
	Y         uint16
	Z         uint8
	Direction uint8
}

type Award struct {
	Time uint16
	Type uint16
}

type NewsItem struct {
	Type      uint8
	Flags     uint8
	Assoc     uint32
	Ticks     uint16
	MonthYear uint16
	Day       uint8
	_         uint8
	Text      [NewsTextLength]byte
}

type ResearchItem struct {
	RawValue uint32
	Category uint8
}

type Banner struct {
	Type       uint8
	Flags      uint8
	StringIdx  uint16
	Colour     uint8
	TextColour uint8
	X          uint8
	Y          uint8
}

type MapAnimation struct {
	BaseZ uint8
	Type  uint8
	X     uint16
	Y     uint16
}

type VehicleColour struct {
	Body uint8
	Trim uint8
}

// RideMeasurementRecord is one performance-sample slot. RideIndex is the back
// reference to the owning ride; RideIDNull marks an unused slot.
type RideMeasurementRecord struct {
	RideIndex      uint8
	Flags          uint8
	LastUseTick    uint32
	NumItems       uint16
	CurrentItem    uint16
	VehicleIndex   uint8
	CurrentStation uint8
	Vertical       [RideMeasurementMaxItems]int8
	Lateral        [RideMeasurementMaxItems]int8
	Velocity       [RideMeasurementMaxItems]uint8
	Altitude       [RideMeasurementMaxItems]uint8
}

// RideRatingsCalcData is the rating calculator's in-flight proximity scan.
type RideRatingsCalcData struct {
	ProximityX          uint16
	ProximityY          uint16
	ProximityZ          uint16
	ProximityStartX     uint16
	ProximityStartY     uint16
	ProximityStartZ     uint16
	CurrentRide         uint8
	State               uint8
	ProximityTrackType  uint8
	ProximityBaseHeight uint8
	ProximityTotal      uint16
	ProximityScores     [ProximityScoreCount]uint16
	NumBrakes           uint16
	NumReversers        uint16
	StationFlags        uint16
}

// RideRecord is the fixed-layout ride. An unused slot has Type RideTypeNull
// and every other field zero.
type RideRecord struct {
	Type             uint8
	Subtype          uint8
	_                [2]byte
	Mode             uint8
	ColourSchemeType uint8
	VehicleColours   [MaxCarsPerTrain]VehicleColour
	_                [3]byte
	Status           uint8
	Name             uint16
	NameArguments    uint32
	OverallView      uint16

	StationStarts   [MaxStationsPerRide]uint16
	StationHeights  [MaxStationsPerRide]uint8
	StationLength   [MaxStationsPerRide]uint8
	StationDepart   [MaxStationsPerRide]uint8
	TrainAtStation  [MaxStationsPerRide]uint8
	Entrances       [MaxStationsPerRide]uint16
	Exits           [MaxStationsPerRide]uint16
	LastPeepInQueue [MaxStationsPerRide]uint16
	_               [4]byte

	Vehicles                [MaxVehiclesPerRide]uint16
	DepartFlags             uint8
	NumStations             uint8
	NumVehicles             uint8
	NumCarsPerTrain         uint8
	ProposedNumVehicles     uint8
	ProposedNumCarsPerTrain uint8
	MaxTrains               uint8
	MinMaxCarsPerTrain      uint8
	MinWaitingTime          uint8
	MaxWaitingTime          uint8
	OperationOption         uint8
	BoatHireReturnDirection uint8
	BoatHireReturnPosition  uint16
	MeasurementIndex        uint8
	SpecialTrackElements    uint8
	_                       [2]byte

	MaxSpeed                int32
	AverageSpeed            int32
	CurrentTestSegment      uint8
	AverageSpeedTestTimeout uint8
	_                       [2]byte
	Length                  [MaxStationsPerRide]int32
	Time                    [MaxStationsPerRide]uint16
	MaxPositiveVerticalG    int16
	MaxNegativeVerticalG    int16
	MaxLateralG             int16
	PreviousVerticalG       int16
	PreviousLateralG        int16
	_                       [2]byte
	TestingFlags            uint32
	CurTestTrackLocation    uint16
	TurnCountDefault        uint16
	TurnCountBanked         uint16
	TurnCountSloped         uint16
	Inversions              uint8
	Drops                   uint8
	StartDropHeight         uint8
	HighestDropHeight       uint8
	ShelteredLength         int32
	Var11C                  uint16
	NumShelteredSections    uint8
	CurTestTrackZ           uint8

	CurNumCustomers            uint16
	NumCustomersTimeout        uint16
	NumCustomers               [CustomerHistorySize]uint16
	Price                      int16
	ChairliftBullwheelLocation [2]uint16
	ChairliftBullwheelZ        [2]uint8
	Excitement                 int16
	Intensity                  int16
	Nausea                     int16
	Value                      uint16
	ChairliftBullwheelRotation uint16
	Satisfaction               uint8
	SatisfactionTimeOut        uint8
	SatisfactionNext           uint8
	WindowInvalidateFlags      uint8
	_                          [2]byte
	TotalCustomers             uint32
	TotalProfit                int32
	Popularity                 uint8
	PopularityTimeOut          uint8
	PopularityNext             uint8
	NumRiders                  uint8
	MusicTuneID                uint8
	SlideInUse                 uint8
	SlidePeep                  uint16
	_                          [14]byte
	SlidePeepTShirtColour      uint8
	_                          [7]byte
	SpiralSlideProgress        uint8
	_                          [9]byte
	BuildDate                  int16
	UpkeepCost                 int16
	RaceWinner                 uint16
	_                          [2]byte
	MusicPosition              uint32

	BreakdownReasonPending uint8
	MechanicStatus         uint8
	Mechanic               uint16
	InspectionStation      uint8
	BrokenVehicle          uint8
	BrokenCar              uint8
	BreakdownReason        uint8
	PriceSecondary         int16
	Reliability            uint16
	UnreliabilityFactor    uint8
	Downtime               uint8
	InspectionInterval     uint8
	LastInspection         uint8
	DowntimeHistory        [DowntimeHistorySize]uint8
	NoPrimaryItemsSold     uint32
	NoSecondaryItemsSold   uint32

	BreakdownSoundModifier   uint8
	NotFixedTimeout          uint8
	LastCrashType            uint8
	ConnectedMessageThrottle uint8
	IncomePerHour            int32
	Profit                   int32
	QueueTime                [MaxStationsPerRide]uint8
	TrackColourMain          [NumColourSchemes]uint8
	TrackColourAdditional    [NumColourSchemes]uint8
	TrackColourSupports      [NumColourSchemes]uint8
	Music                    uint8
	EntranceStyle            uint8
	VehicleChangeTimeout     uint16
	NumBlockBrakes           uint8
	LiftHillSpeed            uint8
	GuestsFavourite          uint16
	LifecycleFlags           uint32
	VehicleColoursExtended   [MaxCarsPerTrain]uint8
	TotalAirTime             uint16
	CurrentTestStation       uint8
	NumCircuits              uint8
	CableLiftX               int16
	CableLiftY               int16
	CableLiftZ               uint8
	_                        uint8
	CableLift                uint16
	QueueLength              [MaxStationsPerRide]uint16
}

// EmptyRide is the sentinel for an unused ride slot.
func EmptyRide() RideRecord { return RideRecord{Type: RideTypeNull} }

// EmptyMeasurement is the sentinel for an unused measurement slot.
func EmptyMeasurement() RideMeasurementRecord {
	return RideMeasurementRecord{RideIndex: RideIDNull}
}
