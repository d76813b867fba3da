package park

// RideTypeNull marks an unused ride slot.
const RideTypeNull = 0xFF

// TileXY is a tile coordinate pair. A nil *TileXY means unset.
type TileXY struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Station struct {
	Start           *TileXY `json:"start,omitempty"`
	Height          int     `json:"height"`
	Length          int     `json:"length"`
	Depart          int     `json:"depart"`
	TrainAtStation  int     `json:"train_at_station"`
	Entrance        *TileXY `json:"entrance,omitempty"`
	Exit            *TileXY `json:"exit,omitempty"`
	LastPeepInQueue uint16  `json:"last_peep_in_queue"`
	SegmentLength   int     `json:"segment_length"`
	SegmentTime     int     `json:"segment_time"`
	QueueTime       int     `json:"queue_time"`
	QueueLength     int     `json:"queue_length"`
}

type TrackColour struct {
	Main       uint8 `json:"main"`
	Additional uint8 `json:"additional"`
	Supports   uint8 `json:"supports"`
}

type Ratings struct {
	Excitement int `json:"excitement"`
	Intensity  int `json:"intensity"`
	Nausea     int `json:"nausea"`
}

type Ride struct {
	ID               int      `json:"id"`
	Type             int      `json:"type"`
	Subtype          int      `json:"subtype"`
	Mode             int      `json:"mode"`
	ColourSchemeType int      `json:"colour_scheme_type"`
	VehicleColours   []Colour `json:"vehicle_colours,omitempty"`
	Status           int      `json:"status"`
	Name             uint16   `json:"name"`
	NameArguments    uint32   `json:"name_arguments"`
	OverallView      *TileXY  `json:"overall_view,omitempty"`

	Stations []Station `json:"stations,omitempty"`
	Vehicles []uint16  `json:"vehicles,omitempty"`

	DepartFlags             int     `json:"depart_flags"`
	NumVehicles             int     `json:"num_vehicles"`
	NumCarsPerTrain         int     `json:"num_cars_per_train"`
	ProposedNumVehicles     int     `json:"proposed_num_vehicles"`
	ProposedNumCarsPerTrain int     `json:"proposed_num_cars_per_train"`
	MaxTrains               int     `json:"max_trains"`
	MinCarsPerTrain         int     `json:"min_cars_per_train"`
	MaxCarsPerTrain         int     `json:"max_cars_per_train"`
	MinWaitingTime          int     `json:"min_waiting_time"`
	MaxWaitingTime          int     `json:"max_waiting_time"`
	OperationOption         int     `json:"operation_option"`
	BoatHireReturnDirection int     `json:"boat_hire_return_direction"`
	BoatHireReturnPosition  *TileXY `json:"boat_hire_return_position,omitempty"`
	SpecialTrackElements    int     `json:"special_track_elements"`

	MaxSpeed                int     `json:"max_speed"`
	AverageSpeed            int     `json:"average_speed"`
	CurrentTestSegment      int     `json:"current_test_segment"`
	AverageSpeedTestTimeout int     `json:"average_speed_test_timeout"`
	MaxPositiveVerticalG    int     `json:"max_positive_vertical_g"`
	MaxNegativeVerticalG    int     `json:"max_negative_vertical_g"`
	MaxLateralG             int     `json:"max_lateral_g"`
	PreviousVerticalG       int     `json:"previous_vertical_g"`
	PreviousLateralG        int     `json:"previous_lateral_g"`
	TestingFlags            uint32  `json:"testing_flags"`
	CurTestTrackLocation    *TileXY `json:"cur_test_track_location,omitempty"`
	TurnCountDefault        int     `json:"turn_count_default"`
	TurnCountBanked         int     `json:"turn_count_banked"`
	TurnCountSloped         int     `json:"turn_count_sloped"`
	Inversions              int     `json:"inversions"`
	Holes                   int     `json:"holes"`
	ShelteredEighths        int     `json:"sheltered_eighths"`
	Drops                   int     `json:"drops"`
	StartDropHeight         int     `json:"start_drop_height"`
	HighestDropHeight       int     `json:"highest_drop_height"`
	ShelteredLength         int     `json:"sheltered_length"`
	Var11C                  int     `json:"var_11c"`
	NumShelteredSections    int     `json:"num_sheltered_sections"`
	CurTestTrackZ           int     `json:"cur_test_track_z"`

	CurNumCustomers            int       `json:"cur_num_customers"`
	NumCustomersTimeout        int       `json:"num_customers_timeout"`
	NumCustomers               []int     `json:"num_customers,omitempty"`
	Price                      int       `json:"price"`
	ChairliftBullwheels        [2]TileXY `json:"chairlift_bullwheels"`
	ChairliftBullwheelZ        [2]int    `json:"chairlift_bullwheel_z"`
	Ratings                    Ratings   `json:"ratings"`
	Value                      int       `json:"value"`
	ChairliftBullwheelRotation int       `json:"chairlift_bullwheel_rotation"`
	Satisfaction               int       `json:"satisfaction"`
	SatisfactionTimeOut        int       `json:"satisfaction_time_out"`
	SatisfactionNext           int       `json:"satisfaction_next"`
	WindowInvalidateFlags      int       `json:"window_invalidate_flags"`
	TotalCustomers             uint32    `json:"total_customers"`
	TotalProfit                int       `json:"total_profit"`
	Popularity                 int       `json:"popularity"`
	PopularityTimeOut          int       `json:"popularity_time_out"`
	PopularityNext             int       `json:"popularity_next"`
	NumRiders                  int       `json:"num_riders"`
	MusicTuneID                int       `json:"music_tune_id"`
	SlideInUse                 int       `json:"slide_in_use"`
	SlidePeep                  uint16    `json:"slide_peep"`
	SlidePeepTShirtColour      int       `json:"slide_peep_tshirt_colour"`
	SpiralSlideProgress        int       `json:"spiral_slide_progress"`
	BuildDate                  int       `json:"build_date"`
	UpkeepCost                 int       `json:"upkeep_cost"`
	RaceWinner                 uint16    `json:"race_winner"`
	MusicPosition              uint32    `json:"music_position"`

	BreakdownReasonPending int    `json:"breakdown_reason_pending"`
	MechanicStatus         int    `json:"mechanic_status"`
	Mechanic               uint16 `json:"mechanic"`
	InspectionStation      int    `json:"inspection_station"`
	BrokenVehicle          int    `json:"broken_vehicle"`
	BrokenCar              int    `json:"broken_car"`
	BreakdownReason        int    `json:"breakdown_reason"`
	PriceSecondary         int    `json:"price_secondary"`
	Reliability            int    `json:"reliability"`
	UnreliabilityFactor    int    `json:"unreliability_factor"`
	Downtime               int    `json:"downtime"`
	InspectionInterval     int    `json:"inspection_interval"`
	LastInspection         int    `json:"last_inspection"`
	DowntimeHistory        []int  `json:"downtime_history,omitempty"`
	NoPrimaryItemsSold     uint32 `json:"no_primary_items_sold"`
	NoSecondaryItemsSold   uint32 `json:"no_secondary_items_sold"`

	BreakdownSoundModifier   int           `json:"breakdown_sound_modifier"`
	NotFixedTimeout          int           `json:"not_fixed_timeout"`
	LastCrashType            int           `json:"last_crash_type"`
	ConnectedMessageThrottle int           `json:"connected_message_throttle"`
	IncomePerHour            int           `json:"income_per_hour"`
	Profit                   int           `json:"profit"`
	TrackColours             []TrackColour `json:"track_colours,omitempty"`
	Music                    int           `json:"music"`
	EntranceStyle            int           `json:"entrance_style"`
	VehicleChangeTimeout     int           `json:"vehicle_change_timeout"`
	NumBlockBrakes           int           `json:"num_block_brakes"`
	LiftHillSpeed            int           `json:"lift_hill_speed"`
	GuestsFavourite          int           `json:"guests_favourite"`
	LifecycleFlags           uint32        `json:"lifecycle_flags"`
	TotalAirTime             int           `json:"total_air_time"`
	CurrentTestStation       int           `json:"current_test_station"`
	NumCircuits              int           `json:"num_circuits"`
	CableLiftX               int           `json:"cable_lift_x"`
	CableLiftY               int           `json:"cable_lift_y"`
	CableLiftZ               int           `json:"cable_lift_z"`
	CableLift                uint16        `json:"cable_lift"`

	Measurement *RideMeasurement `json:"measurement,omitempty"`
}

// IsNull reports whether the ride slot is unused.
func (r *Ride) IsNull() bool { return r.Type == RideTypeNull }

// RideMeasurement is the live performance sample of a ride.
type RideMeasurement struct {
	Flags          int    `json:"flags"`
	LastUseTick    uint32 `json:"last_use_tick"`
	NumItems       int    `json:"num_items"`
	CurrentItem    int    `json:"current_item"`
	VehicleIndex   int    `json:"vehicle_index"`
	CurrentStation int    `json:"current_station"`
	Velocity       []int  `json:"velocity,omitempty"`
	Altitude       []int  `json:"altitude,omitempty"`
	Vertical       []int  `json:"vertical,omitempty"`
	Lateral        []int  `json:"lateral,omitempty"`
}
