// Package config loads the hero, sensor, and attack tuning from yaml and
// converts it into the plain structs the core consumes.
package config

import (
	"fmt"
	"os"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/grotto/machine"
	"github.com/milk9111/grotto/sensor"
	"github.com/milk9111/grotto/world"
)

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VecSpec) Vector() cp.Vector { return cp.Vector{X: v.X, Y: v.Y} }

type AttackSpec struct {
	Offset      VecSpec `yaml:"offset"`
	Size        VecSpec `yaml:"size"`
	Distance    float64 `yaml:"distance"`
	TargetMax   int     `yaml:"target_max"`
	DamageScale float64 `yaml:"damage_scale"`
}

type HeroSpec struct {
	Speed           float64 `yaml:"speed"`
	JumpForce       float64 `yaml:"jump_force"`
	SecondJumpForce float64 `yaml:"second_jump_force"`
	Gravity         float64 `yaml:"gravity"`
	ClimbSpeed      float64 `yaml:"climb_speed"`
	WallSlideSpeed  float64 `yaml:"wall_slide_speed"`

	LandingThreshold    float64 `yaml:"landing_threshold"`
	CrouchColliderScale float64 `yaml:"crouch_collider_scale"`
	LedgeHangOffset     VecSpec `yaml:"ledge_hang_offset"`
	LedgeStandOffset    VecSpec `yaml:"ledge_stand_offset"`

	HPMax          float64      `yaml:"hp_max"`
	AttackForceMin float64      `yaml:"attack_force_min"`
	AttackForceMax float64      `yaml:"attack_force_max"`
	KnockbackForce float64      `yaml:"knockback_force"`
	ComboMax       int          `yaml:"combo_max"`
	ComboResetTime float64      `yaml:"combo_reset_time"`
	Attacks        []AttackSpec `yaml:"attacks"`
}

type SensorSpec struct {
	GroundBoxOffset VecSpec `yaml:"ground_box_offset"`
	GroundBoxSize   VecSpec `yaml:"ground_box_size"`

	LadderUpOffset   VecSpec `yaml:"ladder_up_offset"`
	LadderDownOffset VecSpec `yaml:"ladder_down_offset"`
	LadderRadius     float64 `yaml:"ladder_radius"`

	LedgeRayOffset VecSpec `yaml:"ledge_ray_offset"`
	LedgeRayLength float64 `yaml:"ledge_ray_length"`

	WallTopOffset    VecSpec `yaml:"wall_top_offset"`
	WallBottomOffset VecSpec `yaml:"wall_bottom_offset"`
	WallRayLength    float64 `yaml:"wall_ray_length"`
}

type Spec struct {
	Hero   HeroSpec   `yaml:"hero"`
	Sensor SensorSpec `yaml:"sensor"`
}

// Load reads and decodes a yaml spec file.
func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return spec, nil
}

// Default returns the built-in tuning, used when no file is supplied and as
// the doc of record for the yaml shape.
func Default() Spec {
	return Spec{
		Hero: HeroSpec{
			Speed:           160,
			JumpForce:       340,
			SecondJumpForce: 300,
			Gravity:         900,
			ClimbSpeed:      90,
			WallSlideSpeed:  40,

			LandingThreshold:    96,
			CrouchColliderScale: 0.5,
			LedgeHangOffset:     VecSpec{X: -10, Y: 18},
			LedgeStandOffset:    VecSpec{X: 10, Y: -20},

			HPMax:          100,
			AttackForceMin: 8,
			AttackForceMax: 14,
			KnockbackForce: 120,
			ComboMax:       3,
			ComboResetTime: 1.2,
			Attacks: []AttackSpec{
				{Offset: VecSpec{X: 14}, Size: VecSpec{X: 20, Y: 24}, Distance: 12, TargetMax: 3, DamageScale: 1},
				{Offset: VecSpec{X: 14}, Size: VecSpec{X: 20, Y: 24}, Distance: 14, TargetMax: 3, DamageScale: 1.25},
				{Offset: VecSpec{X: 16}, Size: VecSpec{X: 24, Y: 28}, Distance: 18, TargetMax: 4, DamageScale: 1.75},
			},
		},
		Sensor: SensorSpec{
			GroundBoxOffset: VecSpec{Y: 17},
			GroundBoxSize:   VecSpec{X: 12, Y: 4},

			LadderUpOffset:   VecSpec{Y: -20},
			LadderDownOffset: VecSpec{Y: 20},
			LadderRadius:     8,

			LedgeRayOffset: VecSpec{X: 10, Y: -18},
			LedgeRayLength: 24,

			WallTopOffset:    VecSpec{X: 8, Y: -10},
			WallBottomOffset: VecSpec{X: 8, Y: 10},
			WallRayLength:    6,
		},
	}
}

// Machine converts the hero spec into the machine config. fixedDelta is the
// physics step in seconds.
func (s Spec) Machine(fixedDelta float64) machine.Config {
	h := s.Hero
	attacks := make([]machine.AttackSettings, 0, len(h.Attacks))
	for _, a := range h.Attacks {
		attacks = append(attacks, machine.AttackSettings{
			Offset:      a.Offset.Vector(),
			Size:        a.Size.Vector(),
			Distance:    a.Distance,
			TargetLayer: world.LayerEnemy,
			TargetMax:   a.TargetMax,
			DamageScale: a.DamageScale,
		})
	}
	return machine.Config{
		Speed:               h.Speed,
		JumpForce:           h.JumpForce,
		SecondJumpForce:     h.SecondJumpForce,
		Gravity:             h.Gravity,
		ClimbSpeed:          h.ClimbSpeed,
		WallSlideSpeed:      h.WallSlideSpeed,
		FixedDelta:          fixedDelta,
		LandingThreshold:    h.LandingThreshold,
		CrouchColliderScale: h.CrouchColliderScale,
		LedgeHangOffset:     h.LedgeHangOffset.Vector(),
		LedgeStandOffset:    h.LedgeStandOffset.Vector(),
		HPMax:               h.HPMax,
		AttackForceMin:      h.AttackForceMin,
		AttackForceMax:      h.AttackForceMax,
		KnockbackForce:      h.KnockbackForce,
		ComboMax:            h.ComboMax,
		ComboResetTime:      h.ComboResetTime,
		Attacks:             attacks,
	}
}

// SensorConfig converts the sensor spec into the sensor probe layout.
func (s Spec) SensorConfig() sensor.Config {
	sp := s.Sensor
	return sensor.Config{
		GroundBoxOffset:  sp.GroundBoxOffset.Vector(),
		GroundBoxSize:    sp.GroundBoxSize.Vector(),
		LadderUpOffset:   sp.LadderUpOffset.Vector(),
		LadderDownOffset: sp.LadderDownOffset.Vector(),
		LadderRadius:     sp.LadderRadius,
		LedgeRayOffset:   sp.LedgeRayOffset.Vector(),
		LedgeRayLength:   sp.LedgeRayLength,
		WallTopOffset:    sp.WallTopOffset.Vector(),
		WallBottomOffset: sp.WallBottomOffset.Vector(),
		WallRayLength:    sp.WallRayLength,
	}
}
