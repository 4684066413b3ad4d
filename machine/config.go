package machine

import "github.com/jakecoffman/cp"

// AttackSettings is the immutable per-combo-step sweep configuration. The
// offset is expressed for positive facing and mirrored at cast time.
type AttackSettings struct {
	Offset      cp.Vector
	Size        cp.Vector
	Distance    float64
	TargetLayer uint
	TargetMax   int
	DamageScale float64
}

// Config holds every tuning value the machine and its states read. Supplied
// at construction; see the config package for the yaml form.
type Config struct {
	Speed           float64
	JumpForce       float64
	SecondJumpForce float64
	Gravity         float64
	ClimbSpeed      float64
	WallSlideSpeed  float64
	FixedDelta      float64

	// Fall shorter than this and landing goes straight back to idle.
	LandingThreshold float64

	CrouchColliderScale float64

	// Offset from the detected ledge point to the hanging body position and
	// to the stand-up position after the climb, positive facing.
	LedgeHangOffset  cp.Vector
	LedgeStandOffset cp.Vector

	HPMax          float64
	AttackForceMin float64
	AttackForceMax float64
	KnockbackForce float64
	ComboMax       int
	ComboResetTime float64
	Attacks        []AttackSettings
}
