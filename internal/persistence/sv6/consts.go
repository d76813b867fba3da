package sv6

// Header discriminants and stamps.
const (
	TypeSavedGame uint8 = 0
	TypeScenario  uint8 = 1

	FormatVersion uint32 = 120001
	MagicNumber   uint32 = 0x00031144
	GameVersion   uint32 = 201028
)

// Fixed capacities of the legacy tables.
const (
	ObjectEntryCount    = 721
	MaxTileElements     = 0x30000
	MaxSprites          = 10000
	NumSpriteLists      = 6
	MaxRides            = 255
	MaxRideMeasurements = 8
	MaxPeepSpawns       = 2
	MaxParkEntrances    = 4
	MaxAwards           = 4
	MaxNewsItems        = 61
	MaxResearchItems    = 500
	MaxBanners          = 250
	MaxUserStrings      = 1024
	UserStringLength    = 32
	MaxMapAnimations    = 2000
	MaxStaffModes       = 204
	MaxStaff            = 200
	StaffTypeCount      = 4
	PatrolAreaSlots     = MaxStaff + StaffTypeCount
	PatrolAreaWords     = 128
	ProximityScoreCount = 26
	ExpansionPackNames  = 3256

	MaxStationsPerRide      = 4
	MaxVehiclesPerRide      = 32
	MaxCarsPerTrain         = 32
	NumColourSchemes        = 4
	CustomerHistorySize     = 10
	DowntimeHistorySize     = 8
	RideMeasurementMaxItems = 4800
	MaxInversions           = 31
	MaxGolfHoles            = 31

	ExpenditureMonths   = 16
	ExpenditureTypes    = 14
	FinanceHistorySize  = 128
	RatingHistorySize   = 32
	PeepWarningThrottle = 16
	CampaignSlots       = 20
	CampaignRideSlots   = 22

	RideTypeCount             = 91
	MaxRideObjects            = 128
	MaxResearchedSceneryItems = 1792
	ResearchedRideTypeWords   = 8
	ResearchedRideEntryWords  = 8
	ResearchedSceneryWords    = MaxResearchedSceneryItems / 32
	TrackTypeWords            = 128

	PeepThoughtCount     = 5
	PeepRideTypesBeenOn  = 16
	PeepRidesBeenOn      = 32
	PeepPathfindHistory  = 4
	VehiclePeepSlots     = 32
	ScenarioNameLength   = 64
	ScenarioDetailLength = 256
	ScenarioFileLength   = 256
	CompletedNameLength  = 32
	NewsTextLength       = 256
)

// Slot sizes for tables whose records are variant-shaped.
const (
	SpriteSlotSize = 0x100
	RideSlotSize   = 0x260
)

// Sentinels.
const (
	RideTypeNull         uint8  = 0xFF
	RideTypeMiniGolf     uint8  = 0x55
	RideIDNull           uint8  = 0xFF
	MeasurementIndexNone uint8  = 0xFF
	SpriteIndexNull      uint16 = 0xFFFF
	PeepSpawnUndefined   uint16 = 0xFFFF
	LocationNull         int16  = -0x8000
	XY8Undefined         uint16 = 0xFFFF
	ResearchItemEnd      uint32 = 0xFFFFFFFE
	BannerNull           uint8  = 0xFF
	CampaignActiveFlag   uint8  = 0x80
	PeepThoughtNone      uint8  = 0xFF
	HistoryUndefined     uint8  = 0xFF
	MoneyUndefined       int32  = -0x80000000
)

// Sprite identifiers and misc sub-types as stored in SpriteBase.
const (
	SpriteVehicle uint8 = 0
	SpritePeep    uint8 = 1
	SpriteMisc    uint8 = 2
	SpriteLitter  uint8 = 3
	SpriteNull    uint8 = 0xFF

	MiscSteamParticle          uint8 = 0
	MiscMoneyEffect            uint8 = 1
	MiscCrashedVehicleParticle uint8 = 2
	MiscExplosionCloud         uint8 = 3
	MiscCrashSplash            uint8 = 4
	MiscExplosionFlare         uint8 = 5
	MiscJumpingFountainWater   uint8 = 6
	MiscBalloon                uint8 = 7
	MiscDuck                   uint8 = 8
	MiscJumpingFountainSnow    uint8 = 9
)

// Tile element type codes live in bits 2..5 of TileElement.Type.
const (
	TileTypeMask uint8 = 0x3C

	TileSurface      uint8 = 0 << 2
	TilePath         uint8 = 1 << 2
	TileTrack        uint8 = 2 << 2
	TileSmallScenery uint8 = 3 << 2
	TileEntrance     uint8 = 4 << 2
	TileWall         uint8 = 5 << 2
	TileLargeScenery uint8 = 6 << 2
	TileBanner       uint8 = 7 << 2

	TileFlagGhost uint8 = 0x10
	TileFlagLast  uint8 = 0x80

	// MapSizeTechnical is the edge length the tile grid is laid out for.
	MapSizeTechnical = 256
)

// User string ids map into CustomStrings.
const (
	UserStringStart uint16 = 0x8000
	UserStringEnd   uint16 = 0x8FFF
)

// Marketing campaign types.
const (
	CampaignParkEntryFree      = 0
	CampaignRideFree           = 1
	CampaignParkEntryHalfPrice = 2
	CampaignFoodOrDrinkFree    = 3
	CampaignPark               = 4
	CampaignRide               = 5
)

// IsUserStringID reports whether id refers to a CustomStrings entry.
func IsUserStringID(id uint16) bool {
	return id >= UserStringStart && id <= UserStringEnd
}

// UserStringIndex maps a user string id to its CustomStrings slot.
func UserStringIndex(id uint16) int {
	return int(id) % MaxUserStrings
}
