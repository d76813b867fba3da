package park

import "fmt"

// NoEntity terminates sprite chains.
const NoEntity uint16 = 0xFFFF

// EntityKind is the outer tag of an entity.
type EntityKind uint8

const (
	KindNull EntityKind = iota
	KindVehicle
	KindPeep
	KindMisc
	KindLitter
)

var kindNames = [...]string{"null", "vehicle", "peep", "misc", "litter"}

func (k EntityKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k EntityKind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown entity kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *EntityKind) UnmarshalText(b []byte) error {
	for i, n := range kindNames {
		if n == string(b) {
			*k = EntityKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown entity kind %q", b)
}

// Misc sub-kinds, stored in EntityCommon.Type for KindMisc.
const (
	MiscSteamParticle uint8 = iota
	MiscMoneyEffect
	MiscCrashedVehicleParticle
	MiscExplosionCloud
	MiscCrashSplash
	MiscExplosionFlare
	MiscJumpingFountainWater
	MiscBalloon
	MiscDuck
	MiscJumpingFountainSnow
)

// Sprite lists partition the pool by kind.
const (
	ListNull = iota
	ListTrainHead
	ListPeep
	ListMisc
	ListLitter
	ListVehicle
	NumLists
)

type EntityCommon struct {
	Type           uint8  `json:"type"`
	Index          uint16 `json:"index"`
	NextInQuadrant uint16 `json:"next_in_quadrant"`
	Next           uint16 `json:"next"`
	Previous       uint16 `json:"previous"`
	List           int    `json:"list"`
	Flags          uint16 `json:"flags"`
	X              int    `json:"x"`
	Y              int    `json:"y"`
	Z              int    `json:"z"`
	Width          int    `json:"width"`
	HeightNegative int    `json:"height_negative"`
	HeightPositive int    `json:"height_positive"`
	Left           int    `json:"left"`
	Top            int    `json:"top"`
	Right          int    `json:"right"`
	Bottom         int    `json:"bottom"`
	Direction      int    `json:"direction"`
}

// Entity is one sprite-pool slot. Exactly the payload matching Kind is set.
type Entity struct {
	Kind   EntityKind   `json:"kind"`
	Common EntityCommon `json:"common"`

	Vehicle *Vehicle `json:"vehicle,omitempty"`
	Peep    *Peep    `json:"peep,omitempty"`
	Misc    *Misc    `json:"misc,omitempty"`
	Litter  *Litter  `json:"litter,omitempty"`
}

type Colour struct {
	Body     uint8 `json:"body"`
	Trim     uint8 `json:"trim"`
	Extended uint8 `json:"extended,omitempty"`
}

type Vehicle struct {
	SpriteType        int    `json:"sprite_type"`
	BankRotation      int    `json:"bank_rotation"`
	RemainingDistance int    `json:"remaining_distance"`
	Velocity          int    `json:"velocity"`
	Acceleration      int    `json:"acceleration"`
	Ride              int    `json:"ride"`
	VehicleType       int    `json:"vehicle_type"`
	Colours           Colour `json:"colours"`
	TrackProgress     int    `json:"track_progress"`
	TrackType         int    `json:"track_type"`
	TrackDirection    int    `json:"track_direction"`
	TrackX            int    `json:"track_x"`
	TrackY            int    `json:"track_y"`
	TrackZ            int    `json:"track_z"`

	NextVehicleOnTrain uint16 `json:"next_vehicle_on_train"`
	PrevVehicleOnRide  uint16 `json:"prev_vehicle_on_ride"`
	NextVehicleOnRide  uint16 `json:"next_vehicle_on_ride"`

	Var44          int `json:"var_44"`
	Mass           int `json:"mass"`
	UpdateFlags    int `json:"update_flags"`
	SwingSprite    int `json:"swing_sprite"`
	CurrentStation int `json:"current_station"`
	CurrentTime    int `json:"current_time"`
	CrashZ         int `json:"crash_z"`
	Status         int `json:"status"`
	SubState       int `json:"sub_state"`

	Peeps             []uint16 `json:"peeps,omitempty"`
	PeepTshirtColours []int    `json:"peep_tshirt_colours,omitempty"`

	NumSeats                  int `json:"num_seats"`
	NumPeeps                  int `json:"num_peeps"`
	NextFreeSeat              int `json:"next_free_seat"`
	RestraintsPosition        int `json:"restraints_position"`
	CrashX                    int `json:"crash_x"`
	Sound2Flags               int `json:"sound2_flags"`
	SpinSprite                int `json:"spin_sprite"`
	Sound1ID                  int `json:"sound1_id"`
	Sound1Volume              int `json:"sound1_volume"`
	Sound2ID                  int `json:"sound2_id"`
	Sound2Volume              int `json:"sound2_volume"`
	SoundVectorFactor         int `json:"sound_vector_factor"`
	TimeWaiting               int `json:"time_waiting"`
	Speed                     int `json:"speed"`
	PoweredAcceleration       int `json:"powered_acceleration"`
	DodgemsCollisionDirection int `json:"dodgems_collision_direction"`
	AnimationFrame            int `json:"animation_frame"`
	VarC8                     int `json:"var_c8"`
	VarCA                     int `json:"var_ca"`
	ScreamSoundID             int `json:"scream_sound_id"`
	VarCD                     int `json:"var_cd"`
	VarCE                     int `json:"var_ce"`
	VarCF                     int `json:"var_cf"`
	LostTimeOut               int `json:"lost_time_out"`
	VerticalDropCountdown     int `json:"vertical_drop_countdown"`
	VarD3                     int `json:"var_d3"`
	MiniGolfCurrentAnimation  int `json:"mini_golf_current_animation"`
	MiniGolfFlags             int `json:"mini_golf_flags"`
	RideSubtype               int `json:"ride_subtype"`
	ColoursExtended           int `json:"colours_extended"`
	SeatRotation              int `json:"seat_rotation"`
	TargetSeatRotation        int `json:"target_seat_rotation"`
}

type Thought struct {
	Type         int `json:"type"`
	Item         int `json:"item"`
	Freshness    int `json:"freshness"`
	FreshTimeout int `json:"fresh_timeout"`
}

type PathStep struct {
	X         int `json:"x"`
	Y         int `json:"y"`
	Z         int `json:"z"`
	Direction int `json:"direction"`
}

type Peep struct {
	NameStringIdx        uint16 `json:"name_string_idx"`
	NextX                int    `json:"next_x"`
	NextY                int    `json:"next_y"`
	NextZ                int    `json:"next_z"`
	NextFlags            int    `json:"next_flags"`
	OutsideOfPark        bool   `json:"outside_of_park"`
	State                int    `json:"state"`
	SubState             int    `json:"sub_state"`
	SpriteType           int    `json:"sprite_type"`
	PeepType             int    `json:"peep_type"`
	NoOfRides            int    `json:"no_of_rides"`
	TshirtColour         int    `json:"tshirt_colour"`
	TrousersColour       int    `json:"trousers_colour"`
	DestinationX         int    `json:"destination_x"`
	DestinationY         int    `json:"destination_y"`
	DestinationTolerance int    `json:"destination_tolerance"`
	Var37                int    `json:"var_37"`

	Energy           int `json:"energy"`
	EnergyTarget     int `json:"energy_target"`
	Happiness        int `json:"happiness"`
	HappinessTarget  int `json:"happiness_target"`
	Nausea           int `json:"nausea"`
	NauseaTarget     int `json:"nausea_target"`
	Hunger           int `json:"hunger"`
	Thirst           int `json:"thirst"`
	Toilet           int `json:"toilet"`
	Mass             int `json:"mass"`
	TimeToConsume    int `json:"time_to_consume"`
	Intensity        int `json:"intensity"`
	NauseaTolerance  int `json:"nausea_tolerance"`
	WindowInvalidate int `json:"window_invalidate_flags"`
	PaidOnDrink      int `json:"paid_on_drink"`

	// RideTypesBeenOn and RidesBeenOn are stored as bitmaps.
	RideTypesBeenOn []int  `json:"ride_types_been_on,omitempty"`
	ItemExtraFlags  uint32 `json:"item_extra_flags"`
	Photo1RideRef   int    `json:"photo1_ride_ref"`
	Photo2RideRef   int    `json:"photo2_ride_ref"`
	Photo3RideRef   int    `json:"photo3_ride_ref"`
	Photo4RideRef   int    `json:"photo4_ride_ref"`

	CurrentRide             int    `json:"current_ride"`
	CurrentRideStation      int    `json:"current_ride_station"`
	CurrentTrain            int    `json:"current_train"`
	TimeToSitdown           int    `json:"time_to_sitdown"`
	SpecialSprite           int    `json:"special_sprite"`
	ActionSpriteType        int    `json:"action_sprite_type"`
	NextActionSpriteType    int    `json:"next_action_sprite_type"`
	ActionSpriteImageOffset int    `json:"action_sprite_image_offset"`
	Action                  int    `json:"action"`
	ActionFrame             int    `json:"action_frame"`
	StepProgress            int    `json:"step_progress"`
	NextInQueue             uint16 `json:"next_in_queue"`
	Direction               int    `json:"direction"`
	InteractionRideIndex    int    `json:"interaction_ride_index"`
	TimeInQueue             int    `json:"time_in_queue"`
	RidesBeenOn             []int  `json:"rides_been_on,omitempty"`

	ID                  uint32 `json:"id"`
	CashInPocket        int    `json:"cash_in_pocket"`
	CashSpent           int    `json:"cash_spent"`
	TimeInPark          int    `json:"time_in_park"`
	RejoinQueueTimeout  int    `json:"rejoin_queue_timeout"`
	PreviousRide        int    `json:"previous_ride"`
	PreviousRideTimeOut int    `json:"previous_ride_time_out"`

	Thoughts              []Thought  `json:"thoughts,omitempty"`
	PathCheckOptimisation int        `json:"path_check_optimisation"`
	GuestHeadingToRideID  int        `json:"guest_heading_to_ride_id"`
	PeepIsLostCountdown   int        `json:"peep_is_lost_countdown"`
	PeepFlags             uint32     `json:"peep_flags"`
	PathfindGoal          PathStep   `json:"pathfind_goal"`
	PathfindHistory       []PathStep `json:"pathfind_history,omitempty"`

	NoActionFrameNum           int    `json:"no_action_frame_num"`
	LitterCount                int    `json:"litter_count"`
	TimeOnRide                 int    `json:"time_on_ride"`
	DisgustingCount            int    `json:"disgusting_count"`
	PaidToEnter                int    `json:"paid_to_enter"`
	PaidOnRides                int    `json:"paid_on_rides"`
	PaidOnFood                 int    `json:"paid_on_food"`
	PaidOnSouvenirs            int    `json:"paid_on_souvenirs"`
	NoOfFood                   int    `json:"no_of_food"`
	NoOfDrinks                 int    `json:"no_of_drinks"`
	NoOfSouvenirs              int    `json:"no_of_souvenirs"`
	VandalismSeen              int    `json:"vandalism_seen"`
	VoucherType                int    `json:"voucher_type"`
	VoucherArguments           int    `json:"voucher_arguments"`
	SurroundingsThoughtTimeout int    `json:"surroundings_thought_timeout"`
	Angriness                  int    `json:"angriness"`
	TimeLost                   int    `json:"time_lost"`
	DaysInQueue                int    `json:"days_in_queue"`
	BalloonColour              int    `json:"balloon_colour"`
	UmbrellaColour             int    `json:"umbrella_colour"`
	HatColour                  int    `json:"hat_colour"`
	FavouriteRide              int    `json:"favourite_ride"`
	FavouriteRideRating        int    `json:"favourite_ride_rating"`
	ItemStandardFlags          uint32 `json:"item_standard_flags"`
}

type Litter struct {
	CreationTick uint32 `json:"creation_tick"`
}

// Misc holds the fields of every misc sub-kind; which ones are meaningful
// depends on EntityCommon.Type.
type Misc struct {
	Frame      int `json:"frame"`
	TimeToMove int `json:"time_to_move,omitempty"`

	MoveDelay    int `json:"move_delay,omitempty"`
	NumMovements int `json:"num_movements,omitempty"`
	Vertical     int `json:"vertical,omitempty"`
	Value        int `json:"value,omitempty"`
	OffsetX      int `json:"offset_x,omitempty"`
	Wiggle       int `json:"wiggle,omitempty"`

	TimeToLive        int      `json:"time_to_live,omitempty"`
	Colour            [2]uint8 `json:"colour,omitempty"`
	CrashedSpriteBase int      `json:"crashed_sprite_base,omitempty"`
	VelocityX         int      `json:"velocity_x,omitempty"`
	VelocityY         int      `json:"velocity_y,omitempty"`
	VelocityZ         int      `json:"velocity_z,omitempty"`
	AccelerationX     int      `json:"acceleration_x,omitempty"`
	AccelerationY     int      `json:"acceleration_y,omitempty"`
	AccelerationZ     int      `json:"acceleration_z,omitempty"`

	NumTicksAlive int `json:"num_ticks_alive,omitempty"`
	FountainFlags int `json:"fountain_flags,omitempty"`
	TargetX       int `json:"target_x,omitempty"`
	TargetY       int `json:"target_y,omitempty"`
	Iteration     int `json:"iteration,omitempty"`

	Popped        bool `json:"popped,omitempty"`
	BalloonColour int  `json:"balloon_colour,omitempty"`

	DuckState int `json:"duck_state,omitempty"`
}
