package constant

import "time"

// Session Lifecycle
const (
	// CountdownDuration is the pre-play countdown length
	CountdownDuration = 3 * time.Second

	// CardInterval is Playing time between upgrade selection pauses
	CardInterval = 30 * time.Second

	// CardChoiceCount is how many cards a selection offers at most
	CardChoiceCount = 3

	// SurvivalScorePerSecond is score accrued per whole second of Playing time
	SurvivalScorePerSecond = 1
)

// Difficulty Ramp
const (
	// HumidityRampInterval is survival time per humidity step
	HumidityRampInterval = 10.0 // seconds

	// HumidityRampStep is the humidity increase per ramp interval
	HumidityRampStep = 0.20

	// HumidityBase is the floor humidity at session start
	HumidityBase = 1.0
)

// Enemy Spawn Roll (Bernoulli per frame)
const (
	// SpawnRateBase is the per-frame spawn probability at zero humidity
	SpawnRateBase = 0.003

	// SpawnRateSlope scales spawn probability with humidity
	SpawnRateSlope = 0.005

	// SpawnRateCap bounds the per-frame spawn probability
	SpawnRateCap = 0.12

	// SpawnTierHumidityStep is the humidity gap between enemy pool tiers
	SpawnTierHumidityStep = 0.4
)

// Defense Cards
const (
	// TinyHitboxStep is the hitbox multiplier reduction per Tiny level
	TinyHitboxStep = 0.15

	// FocusHitboxStep is the additional reduction per Focus level while moving slowly
	FocusHitboxStep = 0.15

	// FocusSlowThreshold is the input magnitude below which Focus applies
	FocusSlowThreshold = 0.5

	// HitboxMultiplierFloor is the lowest hitbox multiplier reachable
	HitboxMultiplierFloor = 0.25

	// IFrameBase is the base invincibility window after a hit
	IFrameBase = 0.5 // seconds

	// IFramePerGhostLevel extends the invincibility window per Ghost level
	IFramePerGhostLevel = 0.3 // seconds

	// ShieldReadyBase is seconds since last absorb until the shield is ready
	ShieldReadyBase = 10.0

	// ShieldReadyPerLevel shortens the shield recharge per Shield level
	ShieldReadyPerLevel = 2.0
)

// Movement Cards
const (
	// SwiftSpeedStep is the speed multiplier gain per Swift level
	SwiftSpeedStep = 0.15

	// BlinkCooldownBase is the blink cooldown at level 1
	BlinkCooldownBase = 5.0 // seconds

	// BlinkCooldownPerLevel shortens the blink cooldown per level
	BlinkCooldownPerLevel = 1.0

	// BlinkDistanceBase is the teleport distance at level 1
	BlinkDistanceBase = 25.0

	// BlinkDistancePerLevel extends the teleport per level
	BlinkDistancePerLevel = 10.0
)

// Bullet Manipulation Cards
const (
	// ReflectDamageStep is the bounced-hit damage multiplier gain per Reflect level
	ReflectDamageStep = 0.5

	// RepelForcePerLevel is the repel impulse magnitude per level
	RepelForcePerLevel = 15.0

	// RepelRangeBase / RepelRangePerLevel define the repel field radius
	RepelRangeBase     = 30.0
	RepelRangePerLevel = 5.0

	// RepelSpeedCapFactor bounds post-repel projectile speed relative to base speed
	RepelSpeedCapFactor = 1.5

	// FreezeRangeBase / FreezeRangePerLevel define the slow field radius
	FreezeRangeBase     = 25.0
	FreezeRangePerLevel = 10.0

	// FreezeSlowStep is the speed reduction factor per Freeze level at zero distance
	FreezeSlowStep = 0.15

	// ShrinkRangeBase / ShrinkRangePerLevel define the shrink field radius
	ShrinkRangeBase     = 40.0
	ShrinkRangePerLevel = 15.0

	// ShrinkStep is the radius reduction per Shrink level at zero distance
	ShrinkStep = 0.25

	// ShrinkRadiusFloor is the minimum effective radius fraction of nominal
	ShrinkRadiusFloor = 0.3
)

// Utility Cards
const (
	// CalmFireRateStep raises the enemy fire-rate divisor per Calm level
	CalmFireRateStep = 0.15

	// ChaosSpreadStep is enemy aim jitter in radians per Chaos level
	ChaosSpreadStep = 0.2
)
