package sv6

// S6 is one exported snapshot. Every table is dimensioned to its legacy
// capacity; New fills unused slots with their sentinels.
type S6 struct {
	Header  Header
	Info    ScenarioInfo
	Objects [ObjectEntryCount]ObjectEntry
	Clock   Clock
	Tiles   [MaxTileElements]TileElement

	Park         ParkBlock
	Inventions   InventionBlock
	Guests       GuestBlock
	Expenditure  ExpenditureBlock
	Staff        StaffBlock
	Scenery      SceneryBlock
	Rating       RatingBlock
	History      HistoryBlock
	Research     ResearchBlock
	Balance      BalanceBlock
	Finance      FinanceBlock
	WeeklyProfit WeeklyProfitBlock
	Value        ValueBlock
	ValueHistory ValueHistoryBlock
	Rest         RestBlock

	// Packed lists the objects whose data is embedded after the header.
	Packed []ObjectEntry
}

// New allocates a snapshot with every fixed table set to its sentinel.
func New() *S6 {
	s := &S6{}
	for i := range s.Objects {
		s.Objects[i] = EmptyObjectEntry()
	}
	for i := range s.Park.Sprites {
		s.Park.Sprites[i] = EmptySprite()
	}
	for i := range s.Park.Lists.Heads {
		s.Park.Lists.Heads[i] = SpriteIndexNull
	}
	for i := range s.Park.Scalars.PeepSpawns {
		s.Park.Scalars.PeepSpawns[i] = PeepSpawn{X: PeepSpawnUndefined, Y: PeepSpawnUndefined}
	}
	c := &s.Rest.Company
	for i := range c.ResearchItems {
		c.ResearchItems[i] = ResearchItem{RawValue: ResearchItemEnd}
	}
	for i := range c.ParkEntranceX {
		c.ParkEntranceX[i] = LocationNull
		c.ParkEntranceY[i] = LocationNull
	}
	for i := range c.Banners {
		c.Banners[i] = Banner{Type: BannerNull}
	}
	for i := range s.Rest.Rides {
		s.Rest.Rides[i] = EmptyRide()
	}
	for i := range s.Rest.Env.RideMeasurements {
		s.Rest.Env.RideMeasurements[i] = EmptyMeasurement()
	}
	return s
}

type SpriteLists struct {
	Heads  [NumSpriteLists]uint16
	Counts [NumSpriteLists]uint16
}

// ParkBlock opens the tail: tile allocator, the sprite pool and the park
// registers that follow it.
type ParkBlock struct {
	NextFreeTileElement uint32
	Sprites             [MaxSprites]SpriteRecord
	Lists               SpriteLists
	Scalars             ParkScalars
}

type ParkScalars struct {
	ParkName             uint16
	_                    [2]byte
	ParkNameArgs         uint32
	InitialCash          int32
	CurrentLoan          int32
	ParkFlags            uint32
	ParkEntranceFee      int16
	Rct1EntranceX        uint16
	Rct1EntranceY        uint16
	_                    [2]byte
	Rct1EntranceZ        uint8
	_                    uint8
	PeepSpawns           [MaxPeepSpawns]PeepSpawn
	GuestChangeModifier  uint8
	CurrentResearchLevel uint8
	_                    [4]byte
}

// InventionBlock holds the researched bitsets. Saved games only.
type InventionBlock struct {
	RideTypes   [ResearchedRideTypeWords]uint32
	RideEntries [ResearchedRideEntryWords]uint32
	TrackTypesA [TrackTypeWords]uint32
	TrackTypesB [TrackTypeWords]uint32
}

type GuestBlock struct {
	GuestsInPark         uint16
	GuestsHeadingForPark uint16
}

type ExpenditureBlock struct {
	Table [ExpenditureMonths][ExpenditureTypes]int32
}

type StaffBlock struct {
	LastGuestsInPark uint16
	_                [3]byte
	HandymanColour   uint8
	MechanicColour   uint8
	SecurityColour   uint8
}

// SceneryBlock is the researched scenery bitset. Saved games only.
type SceneryBlock struct {
	Researched [ResearchedSceneryWords]uint32
}

type RatingBlock struct {
	ParkRating uint16
}

type HistoryBlock struct {
	ParkRating   [RatingHistorySize]uint8
	GuestsInPark [RatingHistorySize]uint8
}

type ResearchBlock struct {
	ResearchPriorities         uint8
	ResearchProgressStage      uint8
	LastResearchedItemSubject  uint32
	_                          [1000]byte
	NextResearchItem           uint32
	ResearchProgress           uint16
	NextResearchCategory       uint8
	NextResearchExpectedDay    uint8
	NextResearchExpectedMonth  uint8
	GuestInitialHappiness      uint8
	ParkSize                   uint16
	GuestGenerationProbability uint16
	TotalRideValueForMoney     uint16
	MaxLoan                    int32
	GuestInitialCash           int16
	GuestInitialHunger         uint8
	GuestInitialThirst         uint8
	ObjectiveType              uint8
	ObjectiveYear              uint8
	_                          [2]byte
	ObjectiveCurrency          int32
	ObjectiveGuests            uint16
	CampaignWeeksLeft          [CampaignSlots]uint8
	CampaignRideIndex          [CampaignRideSlots]uint8
}

type BalanceBlock struct {
	CashHistory [FinanceHistorySize]int32
}

type FinanceBlock struct {
	CurrentExpenditure          int32
	CurrentProfit               int32
	WeeklyProfitAverageDividend int32
	WeeklyProfitAverageDivisor  uint16
	_                           [2]byte
}

type WeeklyProfitBlock struct {
	History [FinanceHistorySize]int32
}

type ValueBlock struct {
	ParkValue int32
}

type ValueHistoryBlock struct {
	History [FinanceHistorySize]int32
}

// RestBlock is everything from the company value onward.
type RestBlock struct {
	Company CompanyBlock
	Rides   [MaxRides]RideRecord
	Env     EnvBlock
}

type CompanyBlock struct {
	CompletedCompanyValue int32
	TotalAdmissions       uint32
	IncomeFromAdmissions  int32
	CompanyValue          int32
	PeepWarningThrottle   [PeepWarningThrottle]uint8
	Awards                [MaxAwards]Award
	LandPrice             int16
	ConstructionRightsFee int16
	Word01358774          uint16
	_                     [2]byte
	CDKey                 uint32
	_                     [64]byte
	GameVersionNumber     uint32
	CompletedValueRecord  int32
	LoanHash              uint32
	RideCount             uint16
	_                     [6]byte
	HistoricalProfit      int32
	_                     [4]byte
	ScenarioCompletedName [CompletedNameLength]byte
	Cash                  int32
	_                     [50]byte

	ParkRatingCasualtyPenalty uint16
	MapSizeUnits              uint16
	MapSizeMinus2             uint16
	MapSize                   uint16
	MapMaxXYCoordinate        uint16
	SamePriceThroughoutPark   uint32
	SuggestedMaxGuests        uint16
	ParkRatingWarningDays     uint16
	LastEntranceStyle         uint8
	Rct1WaterColour           uint8
	_                         [2]byte

	ResearchItems       [MaxResearchItems]ResearchItem
	MapBaseZ            uint16
	ScenarioName        [ScenarioNameLength]byte
	ScenarioDescription [ScenarioDetailLength]byte
	CurrentInterestRate uint8
	_                   uint8
	SamePriceExtended   uint32

	ParkEntranceX         [MaxParkEntrances]int16
	ParkEntranceY         [MaxParkEntrances]int16
	ParkEntranceZ         [MaxParkEntrances]int16
	ParkEntranceDirection [MaxParkEntrances]uint8

	ScenarioFilename   [ScenarioFileLength]byte
	ExpansionPackNames [ExpansionPackNames]byte
	Banners            [MaxBanners]Banner
	CustomStrings      [MaxUserStrings][UserStringLength]byte
	GameTicks          uint32
}

type EnvBlock struct {
	SavedAge          uint16
	SavedViewX        int16
	SavedViewY        int16
	SavedViewZoom     uint8
	SavedViewRotation uint8
	MapAnimations     [MaxMapAnimations]MapAnimation
	NumMapAnimations  uint16
	_                 [2]byte
	RatingsCalc       RideRatingsCalcData
	_                 [60]byte
	RideMeasurements  [MaxRideMeasurements]RideMeasurementRecord
	NextGuestIndex    uint32
	GrassSceneryLoop  uint16
	PatrolAreas       [PatrolAreaSlots][PatrolAreaWords]uint32
	StaffModes        [MaxStaffModes]uint8
	_                 [2]byte
	Unknown13CA740    uint8
	_                 uint8
	_                 [4]byte

	Climate              uint8
	_                    uint8
	ClimateUpdateTimer   uint16
	CurrentWeather       uint8
	NextWeather          uint8
	TemperatureCurrent   int8
	TemperatureNext      int8
	CurrentWeatherEffect uint8
	NextWeatherEffect    uint8
	CurrentWeatherGloom  uint8
	NextWeatherGloom     uint8
	CurrentRainLevel     uint8
	NextRainLevel        uint8
	NewsItems            [MaxNewsItems]NewsItem
	_                    [64]byte
	Rct1ScenarioFlags    uint32
	WidePathTileLoopX    uint16
	WidePathTileLoopY    uint16
	_                    [432]byte
}
