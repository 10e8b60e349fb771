package repository

import (
	"context"
	"time"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

type checklistModel struct {
	ID      int64  `gorm:"column:id;primaryKey"`
	JobID   int64  `gorm:"column:job_id;uniqueIndex"`
	OrderID int64  `gorm:"column:order_id;index"`
	JobDesc string `gorm:"column:job_desc;type:text"`

	LinkRods      string `gorm:"column:link_rods;size:15"`
	TieRodEnds    string `gorm:"column:tie_rod_ends;size:15"`
	SteeringBox   string `gorm:"column:steering_box;size:15"`
	SteeringWheel string `gorm:"column:steering_wheel;size:15"`

	FrontShocks   string `gorm:"column:front_shocks;size:15"`
	RearShocks    string `gorm:"column:rear_shocks;size:15"`
	StabilizerBar string `gorm:"column:stabilizer_bar;size:15"`
	ControlArms   string `gorm:"column:control_arms;size:15"`

	FrontTires string `gorm:"column:front_tires;size:15"`
	RearTires  string `gorm:"column:rear_tires;size:15"`
	Balancing  string `gorm:"column:balancing;size:15"`
	Alignment  string `gorm:"column:alignment;size:15"`

	HighBeams     string `gorm:"column:high_beams;size:15"`
	LowBeams      string `gorm:"column:low_beams;size:15"`
	FogLights     string `gorm:"column:fog_lights;size:15"`
	ReverseLights string `gorm:"column:reverse_lights;size:15"`
	TurnSignals   string `gorm:"column:turn_signals;size:15"`
	Hazards       string `gorm:"column:hazards;size:15"`

	FrontDiscsDrums string `gorm:"column:front_discs_drums;size:15"`
	RearDiscsDrums  string `gorm:"column:rear_discs_drums;size:15"`
	FrontPads       string `gorm:"column:front_pads;size:15"`
	RearPads        string `gorm:"column:rear_pads;size:15"`

	EngineOilReplaced       bool `gorm:"column:engine_oil_replaced"`
	OilFilterReplaced       bool `gorm:"column:oil_filter_replaced"`
	EngineAirFilterReplaced bool `gorm:"column:engine_air_filter_replaced"`
	CabinAirFilterReplaced  bool `gorm:"column:cabin_air_filter_replaced"`

	BrakeFluidLevel  bool `gorm:"column:brake_fluid_level"`
	CoolantLevel     bool `gorm:"column:coolant_level"`
	WasherFluidLevel bool `gorm:"column:washer_fluid_level"`
	EngineOilLevel   bool `gorm:"column:engine_oil_level"`

	DrumDiscCleanup        bool `gorm:"column:drum_disc_cleanup"`
	BrakeAdjustment        bool `gorm:"column:brake_adjustment"`
	TirePressureCalibrated bool `gorm:"column:tire_pressure_calibrated"`
	WheelTorqueApplied     bool `gorm:"column:wheel_torque_applied"`
	TiresRotated           bool `gorm:"column:tires_rotated"`
}

func (checklistModel) TableName() string { return "checklists" }

func toChecklistModel(c *domain.Checklist) checklistModel {
	return checklistModel{
		ID:      c.ID,
		JobID:   c.JobID,
		OrderID: c.OrderID,
		JobDesc: c.JobDesc,

		LinkRods:      c.LinkRods,
		TieRodEnds:    c.TieRodEnds,
		SteeringBox:   c.SteeringBox,
		SteeringWheel: c.SteeringWheel,

		FrontShocks:   c.FrontShocks,
		RearShocks:    c.RearShocks,
		StabilizerBar: c.StabilizerBar,
		ControlArms:   c.ControlArms,

		FrontTires: c.FrontTires,
		RearTires:  c.RearTires,
		Balancing:  c.Balancing,
		Alignment:  c.Alignment,

		HighBeams:     c.HighBeams,
		LowBeams:      c.LowBeams,
		FogLights:     c.FogLights,
		ReverseLights: c.ReverseLights,
		TurnSignals:   c.TurnSignals,
		Hazards:       c.Hazards,

		FrontDiscsDrums: c.FrontDiscsDrums,
		RearDiscsDrums:  c.RearDiscsDrums,
		FrontPads:       c.FrontPads,
		RearPads:        c.RearPads,

		EngineOilReplaced:       c.EngineOilReplaced,
		OilFilterReplaced:       c.OilFilterReplaced,
		EngineAirFilterReplaced: c.EngineAirFilterReplaced,
		CabinAirFilterReplaced:  c.CabinAirFilterReplaced,

		BrakeFluidLevel:  c.BrakeFluidLevel,
		CoolantLevel:     c.CoolantLevel,
		WasherFluidLevel: c.WasherFluidLevel,
		EngineOilLevel:   c.EngineOilLevel,

		DrumDiscCleanup:        c.DrumDiscCleanup,
		BrakeAdjustment:        c.BrakeAdjustment,
		TirePressureCalibrated: c.TirePressureCalibrated,
		WheelTorqueApplied:     c.WheelTorqueApplied,
		TiresRotated:           c.TiresRotated,
	}
}

func toDomainChecklist(m checklistModel) *domain.Checklist {
	return &domain.Checklist{
		ID:      m.ID,
		JobID:   m.JobID,
		OrderID: m.OrderID,
		JobDesc: m.JobDesc,

		LinkRods:      m.LinkRods,
		TieRodEnds:    m.TieRodEnds,
		SteeringBox:   m.SteeringBox,
		SteeringWheel: m.SteeringWheel,

		FrontShocks:   m.FrontShocks,
		RearShocks:    m.RearShocks,
		StabilizerBar: m.StabilizerBar,
		ControlArms:   m.ControlArms,

		FrontTires: m.FrontTires,
		RearTires:  m.RearTires,
		Balancing:  m.Balancing,
		Alignment:  m.Alignment,

		HighBeams:     m.HighBeams,
		LowBeams:      m.LowBeams,
		FogLights:     m.FogLights,
		ReverseLights: m.ReverseLights,
		TurnSignals:   m.TurnSignals,
		Hazards:       m.Hazards,

		FrontDiscsDrums: m.FrontDiscsDrums,
		RearDiscsDrums:  m.RearDiscsDrums,
		FrontPads:       m.FrontPads,
		RearPads:        m.RearPads,

		EngineOilReplaced:       m.EngineOilReplaced,
		OilFilterReplaced:       m.OilFilterReplaced,
		EngineAirFilterReplaced: m.EngineAirFilterReplaced,
		CabinAirFilterReplaced:  m.CabinAirFilterReplaced,

		BrakeFluidLevel:  m.BrakeFluidLevel,
		CoolantLevel:     m.CoolantLevel,
		WasherFluidLevel: m.WasherFluidLevel,
		EngineOilLevel:   m.EngineOilLevel,

		DrumDiscCleanup:        m.DrumDiscCleanup,
		BrakeAdjustment:        m.BrakeAdjustment,
		TirePressureCalibrated: m.TirePressureCalibrated,
		WheelTorqueApplied:     m.WheelTorqueApplied,
		TiresRotated:           m.TiresRotated,
	}
}

// UpsertAndCompleteJob writes the checklist (insert or full overwrite),
// stores the technician's comments and forces the job to completed, then
// refreshes order progress, all in one transaction. Completion here is
// unconditional: submitting the form is the completion act.
func (r *ChecklistRepository) UpsertAndCompleteJob(ctx context.Context, c *domain.Checklist, techComments string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing checklistModel
		err := tx.Where("job_id = ?", c.JobID).First(&existing).Error
		switch {
		case err == nil:
			m := toChecklistModel(c)
			m.ID = existing.ID
			// Save writes every column; Updates would skip false booleans
			if err := tx.Save(&m).Error; err != nil {
				return err
			}
			c.ID = existing.ID
		case err == gorm.ErrRecordNotFound:
			m := toChecklistModel(c)
			m.ID = 0
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			c.ID = m.ID
		default:
			return err
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":        int(domain.JobCompleted),
			"finished_at":   now,
			"tech_comments": strOrNil(techComments),
		}
		if err := tx.Model(&jobModel{}).Where("id = ?", c.JobID).Updates(updates).Error; err != nil {
			return err
		}

		return recalcOrderProgress(tx, c.OrderID)
	})
}

func (r *ChecklistRepository) GetByJob(ctx context.Context, jobID int64) (*domain.Checklist, error) {
	var m checklistModel
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainChecklist(m), nil
}
