// Package park is the snapshot-time view of a running park simulation: the
// registers, pools and collections an export reads from.
package park

// State is frozen for the duration of an export. Only FixDisjointNull
// mutates it.
type State struct {
	Scenario ScenarioInfo `json:"scenario"`
	Objects  []Object     `json:"objects,omitempty"`
	Clock    Clock        `json:"clock"`
	Map      Map          `json:"map"`

	Entities     []Entity     `json:"entities,omitempty"`
	Lists        []SpriteList `json:"lists,omitempty"`
	SpatialHeads []uint16     `json:"spatial_heads,omitempty"`

	Park      Park          `json:"park"`
	Finance   Finance       `json:"finance"`
	Guests    GuestDefaults `json:"guests"`
	Staff     Staff         `json:"staff"`
	Research  Research      `json:"research"`
	Objective Objective     `json:"objective"`
	Climate   Climate       `json:"climate"`
	View      SavedView     `json:"view"`

	RatingsCalc RatingsCalc `json:"ratings_calc"`

	Rides         []Ride         `json:"rides,omitempty"`
	Campaigns     []Campaign     `json:"campaigns,omitempty"`
	News          []NewsItem     `json:"news,omitempty"`
	Banners       []Banner       `json:"banners,omitempty"`
	UserStrings   []string       `json:"user_strings,omitempty"`
	MapAnimations []MapAnimation `json:"map_animations,omitempty"`
}

type ScenarioInfo struct {
	EditorStep    int    `json:"editor_step"`
	Category      int    `json:"category"`
	ObjectiveType int    `json:"objective_type"`
	ObjectiveArg1 int    `json:"objective_arg_1"`
	ObjectiveArg2 int    `json:"objective_arg_2"`
	ObjectiveArg3 int    `json:"objective_arg_3"`
	Name          string `json:"name"`
	Details       string `json:"details"`
	Entry         Object `json:"entry"`
	FileName      string `json:"file_name"`

	// ExpansionPacks is the raw expansion pack name table, copied verbatim.
	ExpansionPacks []byte `json:"expansion_packs,omitempty"`
}

// Object is one object-table slot. Slots that are not loaded export as the
// empty entry.
type Object struct {
	Loaded   bool   `json:"loaded"`
	Flags    uint32 `json:"flags"`
	Name     string `json:"name"`
	Checksum uint32 `json:"checksum"`

	// Packable objects are embedded when saving with packed objects.
	Packable bool `json:"packable,omitempty"`
}

type Clock struct {
	MonthsElapsed int    `json:"months_elapsed"`
	MonthTicks    int    `json:"month_ticks"`
	ScenarioTicks uint32 `json:"scenario_ticks"`
	CurrentTicks  uint32 `json:"current_ticks"`
	Srand0        uint32 `json:"srand0"`
	Srand1        uint32 `json:"srand1"`
}

type TileElement struct {
	Type            uint8    `json:"type"`
	Flags           uint8    `json:"flags"`
	BaseHeight      uint8    `json:"base_height"`
	ClearanceHeight uint8    `json:"clearance_height"`
	Data            [4]uint8 `json:"data"`
}

type Map struct {
	Tiles               []TileElement `json:"tiles,omitempty"`
	NextFreeTileElement uint32        `json:"next_free_tile_element"`
	SizeUnits           int           `json:"size_units"`
	SizeMinus2          int           `json:"size_minus_2"`
	Size                int           `json:"size"`
	MaxXY               int           `json:"max_xy"`
	BaseZ               int           `json:"base_z"`
	GrassSceneryLoop    int           `json:"grass_scenery_loop"`
	WidePathTileLoopX   int           `json:"wide_path_tile_loop_x"`
	WidePathTileLoopY   int           `json:"wide_path_tile_loop_y"`
}

type SpriteList struct {
	Head  uint16 `json:"head"`
	Count int    `json:"count"`
}

type Coords struct {
	X         int `json:"x"`
	Y         int `json:"y"`
	Z         int `json:"z"`
	Direction int `json:"direction"`
}

type Award struct {
	Time int `json:"time"`
	Type int `json:"type"`
}

type Park struct {
	Name                       uint16   `json:"name"`
	NameArgs                   uint32   `json:"name_args"`
	Flags                      uint32   `json:"flags"`
	EntranceFee                int      `json:"entrance_fee"`
	Rating                     int      `json:"rating"`
	RatingHistory              []int    `json:"rating_history,omitempty"`
	RatingCasualtyPenalty      int      `json:"rating_casualty_penalty"`
	RatingWarningDays          int      `json:"rating_warning_days"`
	GuestsInPark               int      `json:"guests_in_park"`
	GuestsHeadingForPark       int      `json:"guests_heading_for_park"`
	GuestsInParkLastWeek       int      `json:"guests_in_park_last_week"`
	GuestsInParkHistory        []int    `json:"guests_in_park_history,omitempty"`
	GuestChangeModifier        int      `json:"guest_change_modifier"`
	GuestGenerationProbability int      `json:"guest_generation_probability"`
	SuggestedMaxGuests         int      `json:"suggested_max_guests"`
	NextGuestNumber            uint32   `json:"next_guest_number"`
	Size                       int      `json:"size"`
	Value                      int      `json:"value"`
	ValueHistory               []int    `json:"value_history,omitempty"`
	CompanyValue               int      `json:"company_value"`
	TotalAdmissions            uint32   `json:"total_admissions"`
	IncomeFromAdmissions       int      `json:"income_from_admissions"`
	TotalRideValueForMoney     int      `json:"total_ride_value_for_money"`
	LastEntranceStyle          int      `json:"last_entrance_style"`
	SamePriceThroughout        uint64   `json:"same_price_throughout"`
	LandPrice                  int      `json:"land_price"`
	ConstructionRightsPrice    int      `json:"construction_rights_price"`
	Entrances                  []Coords `json:"entrances,omitempty"`
	Rct1Entrance               Coords   `json:"rct1_entrance"`
	PeepSpawns                 []Coords `json:"peep_spawns,omitempty"`
	Awards                     []Award  `json:"awards,omitempty"`
	PeepWarningThrottle        []int    `json:"peep_warning_throttle,omitempty"`
	SavedAge                   int      `json:"saved_age"`
	Unknown13CA740             int      `json:"unknown_13ca740"`
}

type Finance struct {
	Cash                        int     `json:"cash"`
	InitialCash                 int     `json:"initial_cash"`
	Loan                        int     `json:"loan"`
	MaxLoan                     int     `json:"max_loan"`
	InterestRate                int     `json:"interest_rate"`
	CurrentExpenditure          int     `json:"current_expenditure"`
	CurrentProfit               int     `json:"current_profit"`
	WeeklyProfitAverageDividend int     `json:"weekly_profit_average_dividend"`
	WeeklyProfitAverageDivisor  int     `json:"weekly_profit_average_divisor"`
	HistoricalProfit            int     `json:"historical_profit"`
	CashHistory                 []int   `json:"cash_history,omitempty"`
	WeeklyProfitHistory         []int   `json:"weekly_profit_history,omitempty"`
	Expenditure                 [][]int `json:"expenditure,omitempty"`
}

type GuestDefaults struct {
	InitialCash      int `json:"initial_cash"`
	InitialHappiness int `json:"initial_happiness"`
	InitialHunger    int `json:"initial_hunger"`
	InitialThirst    int `json:"initial_thirst"`
}

type Staff struct {
	HandymanColour int   `json:"handyman_colour"`
	MechanicColour int   `json:"mechanic_colour"`
	SecurityColour int   `json:"security_colour"`
	Modes          []int `json:"modes,omitempty"`

	PatrolAreas []PatrolArea `json:"patrol_areas,omitempty"`
}

// Patrol areas are kept in 4x4 tile blocks on a 64x64 grid.
const (
	PatrolBlockTiles = 4
	PatrolGridSize   = 64
	PatrolCells      = PatrolGridSize * PatrolGridSize
)

// PatrolArea lists the blocks a staff member (slots below 200) or a staff
// type (slots 200 to 203) may patrol. Cells are x + y*64 in block units.
type PatrolArea struct {
	Slot  int   `json:"slot"`
	Cells []int `json:"cells,omitempty"`
}

// PatrolCell returns the cell holding the tile at (x, y).
func PatrolCell(x, y int) int {
	return x/PatrolBlockTiles + (y/PatrolBlockTiles)*PatrolGridSize
}

type ResearchItem struct {
	RawValue uint32 `json:"raw_value"`
	Category int    `json:"category"`
}

type Research struct {
	FundingLevel  int            `json:"funding_level"`
	Priorities    int            `json:"priorities"`
	ProgressStage int            `json:"progress_stage"`
	Progress      int            `json:"progress"`
	LastItem      ResearchItem   `json:"last_item"`
	NextItem      ResearchItem   `json:"next_item"`
	ExpectedDay   int            `json:"expected_day"`
	ExpectedMonth int            `json:"expected_month"`
	Items         []ResearchItem `json:"items,omitempty"`

	RideTypesInvented   []bool   `json:"ride_types_invented,omitempty"`
	RideEntriesInvented []bool   `json:"ride_entries_invented,omitempty"`
	SceneryInvented     []bool   `json:"scenery_invented,omitempty"`
	TrackConfigurations []uint64 `json:"track_configurations,omitempty"`
}

type Objective struct {
	Type                  int    `json:"type"`
	Year                  int    `json:"year"`
	Currency              int    `json:"currency"`
	Guests                int    `json:"guests"`
	CompletedCompanyValue int    `json:"completed_company_value"`
	CompanyValueRecord    int    `json:"company_value_record"`
	CompletedBy           string `json:"completed_by"`
	ScenarioName          string `json:"scenario_name"`
	ScenarioDetails       string `json:"scenario_details"`
}

type Weather struct {
	Weather     int `json:"weather"`
	Temperature int `json:"temperature"`
	Effect      int `json:"effect"`
	Gloom       int `json:"gloom"`
	RainLevel   int `json:"rain_level"`
}

type Climate struct {
	Climate     int     `json:"climate"`
	UpdateTimer int     `json:"update_timer"`
	Current     Weather `json:"current"`
	Next        Weather `json:"next"`
}

// RatingsCalc is the ride rating calculator's in-progress proximity scan.
type RatingsCalc struct {
	ProximityX          int   `json:"proximity_x"`
	ProximityY          int   `json:"proximity_y"`
	ProximityZ          int   `json:"proximity_z"`
	ProximityStartX     int   `json:"proximity_start_x"`
	ProximityStartY     int   `json:"proximity_start_y"`
	ProximityStartZ     int   `json:"proximity_start_z"`
	CurrentRide         int   `json:"current_ride"`
	State               int   `json:"state"`
	ProximityTrackType  int   `json:"proximity_track_type"`
	ProximityBaseHeight int   `json:"proximity_base_height"`
	ProximityTotal      int   `json:"proximity_total"`
	ProximityScores     []int `json:"proximity_scores,omitempty"`
	NumBrakes           int   `json:"num_brakes"`
	NumReversers        int   `json:"num_reversers"`
	StationFlags        int   `json:"station_flags"`
}

type SavedView struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	Zoom     int `json:"zoom"`
	Rotation int `json:"rotation"`
}

// Campaign types index the campaign tables directly.
const (
	CampaignParkEntryFree = iota
	CampaignRideFree
	CampaignParkEntryHalfPrice
	CampaignFoodOrDrinkFree
	CampaignPark
	CampaignRide
)

type Campaign struct {
	Type         int `json:"type"`
	WeeksLeft    int `json:"weeks_left"`
	RideID       int `json:"ride_id,omitempty"`
	ShopItemType int `json:"shop_item_type,omitempty"`
}

type NewsItem struct {
	Type      int    `json:"type"`
	Flags     int    `json:"flags"`
	Assoc     uint32 `json:"assoc"`
	Ticks     int    `json:"ticks"`
	MonthYear int    `json:"month_year"`
	Day       int    `json:"day"`
	Text      string `json:"text"`
}

type Banner struct {
	Type       uint8  `json:"type"`
	Flags      uint8  `json:"flags"`
	StringIdx  uint16 `json:"string_idx"`
	Colour     uint8  `json:"colour"`
	TextColour uint8  `json:"text_colour"`
	X          uint8  `json:"x"`
	Y          uint8  `json:"y"`
}

type MapAnimation struct {
	Type  int `json:"type"`
	BaseZ int `json:"base_z"`
	X     int `json:"x"`
	Y     int `json:"y"`
}
