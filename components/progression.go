package components

import (
	"github.com/automoto/gridrunner/config"
	"github.com/yohamta/donburi"
)

// ProgressionData advances the run's scalar distance and derives the speed
// tier ("gear") from it. Distance and Gear are monotonic non-decreasing;
// Gear is capped at MaxGear.
type ProgressionData struct {
	Distance float64
	Gear     int
	Speed    float64
	Elapsed  float64 // run clock in seconds, used for input timestamps

	MinSpeed         float64
	MaxSpeed         float64
	GearStepDistance float64
	MaxGear          int
}

var Progression = donburi.NewComponentType[ProgressionData]()

// NewProgression builds progression state from the run config.
func NewProgression() ProgressionData {
	return ProgressionData{
		Speed:            config.Run.MinSpeed,
		MinSpeed:         config.Run.MinSpeed,
		MaxSpeed:         config.Run.MaxSpeed,
		GearStepDistance: config.Run.GearStepDistance,
		MaxGear:          config.Run.MaxGear,
	}
}

// Advance moves the run forward by dt seconds. speedMultiplier scales the
// current speed for this step only (the slide boost); the stored Speed stays
// the gear-derived base value.
func (p *ProgressionData) Advance(dt, speedMultiplier float64) {
	p.Elapsed += dt
	p.Distance += p.Speed * speedMultiplier * dt

	gear := int(p.Distance / p.GearStepDistance)
	if gear > p.MaxGear {
		gear = p.MaxGear
	}
	if gear > p.Gear {
		p.Gear = gear
	}

	t := float64(p.Gear) / float64(p.MaxGear)
	p.Speed = p.MinSpeed + (p.MaxSpeed-p.MinSpeed)*t
}
