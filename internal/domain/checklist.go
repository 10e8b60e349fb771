package domain

// Checklist is the fixed inspection form recorded once per job.
// Condition fields hold a short rating text, service fields are yes/no.
type Checklist struct {
	ID      int64  `json:"id"`
	JobID   int64  `json:"job_id" validate:"required"`
	OrderID int64  `json:"order_id"`
	JobDesc string `json:"job_desc" validate:"required"`

	// Steering
	LinkRods      string `json:"link_rods" validate:"required,max=15"`
	TieRodEnds    string `json:"tie_rod_ends" validate:"required,max=15"`
	SteeringBox   string `json:"steering_box" validate:"required,max=15"`
	SteeringWheel string `json:"steering_wheel" validate:"required,max=15"`

	// Suspension
	FrontShocks   string `json:"front_shocks" validate:"required,max=15"`
	RearShocks    string `json:"rear_shocks" validate:"required,max=15"`
	StabilizerBar string `json:"stabilizer_bar" validate:"required,max=15"`
	ControlArms   string `json:"control_arms" validate:"required,max=15"`

	// Tires
	FrontTires string `json:"front_tires" validate:"required,max=15"`
	RearTires  string `json:"rear_tires" validate:"required,max=15"`
	Balancing  string `json:"balancing" validate:"required,max=15"`
	Alignment  string `json:"alignment" validate:"required,max=15"`

	// Lights
	HighBeams   string `json:"high_beams" validate:"required,max=15"`
	LowBeams    string `json:"low_beams" validate:"required,max=15"`
	FogLights   string `json:"fog_lights" validate:"required,max=15"`
	ReverseLights string `json:"reverse_lights" validate:"required,max=15"`
	TurnSignals string `json:"turn_signals" validate:"required,max=15"`
	Hazards     string `json:"hazards" validate:"required,max=15"`

	// Brakes
	FrontDiscsDrums string `json:"front_discs_drums" validate:"required,max=15"`
	RearDiscsDrums  string `json:"rear_discs_drums" validate:"required,max=15"`
	FrontPads       string `json:"front_pads" validate:"required,max=15"`
	RearPads        string `json:"rear_pads" validate:"required,max=15"`

	// Replaced parts
	EngineOilReplaced      bool `json:"engine_oil_replaced"`
	OilFilterReplaced      bool `json:"oil_filter_replaced"`
	EngineAirFilterReplaced bool `json:"engine_air_filter_replaced"`
	CabinAirFilterReplaced bool `json:"cabin_air_filter_replaced"`

	// Fluid levels checked
	BrakeFluidLevel    bool `json:"brake_fluid_level"`
	CoolantLevel       bool `json:"coolant_level"`
	WasherFluidLevel   bool `json:"washer_fluid_level"`
	EngineOilLevel     bool `json:"engine_oil_level"`

	// Work performed
	DrumDiscCleanup       bool `json:"drum_disc_cleanup"`
	BrakeAdjustment       bool `json:"brake_adjustment"`
	TirePressureCalibrated bool `json:"tire_pressure_calibrated"`
	WheelTorqueApplied    bool `json:"wheel_torque_applied"`
	TiresRotated          bool `json:"tires_rotated"`
}
