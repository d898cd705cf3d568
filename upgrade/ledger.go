package upgrade

import (
	"github.com/aposine/monsoon/constant"
)

// Ledger tracks the committed level of every card and derives effect scalars
// All accessors are pure functions of the level map and tolerate level zero;
// levels above MaxLevel cannot occur because only Selector.Commit mutates them
type Ledger struct {
	levels [cardCount]int
}

// NewLedger creates a ledger with every card at level zero
func NewLedger() *Ledger {
	return &Ledger{}
}

// NewLedgerFromLevels creates a pre-leveled ledger, clamping each level to
// the card's cap. Hosts use it for practice presets
func NewLedgerFromLevels(levels map[Card]int) *Ledger {
	l := &Ledger{}
	for c, level := range levels {
		if level < 0 {
			level = 0
		}
		if max := MaxLevel(c); level > max {
			level = max
		}
		l.levels[c] = level
	}
	return l
}

// Level returns the committed level of a card
func (l *Ledger) Level(c Card) int {
	return l.levels[c]
}

// Reset returns every card to level zero for a new session
func (l *Ledger) Reset() {
	l.levels = [cardCount]int{}
}

// increment is called by Selector.Commit only
func (l *Ledger) increment(c Card) {
	l.levels[c]++
}

// === Defense ===

// HitboxMultiplier scales the player's contact radius
// Focus applies only while the movement input magnitude is below the slow threshold
func (l *Ledger) HitboxMultiplier(movingSlowly bool) float64 {
	m := 1.0 - float64(l.levels[CardTiny])*constant.TinyHitboxStep
	if movingSlowly {
		m -= float64(l.levels[CardFocus]) * constant.FocusHitboxStep
	}
	if m < constant.HitboxMultiplierFloor {
		m = constant.HitboxMultiplierFloor
	}
	return m
}

// IFrameDuration is the invincibility window granted on a hit, in seconds
func (l *Ledger) IFrameDuration() float64 {
	return constant.IFrameBase + float64(l.levels[CardGhost])*constant.IFramePerGhostLevel
}

// ShieldEnabled reports whether any Shield level is committed
func (l *Ledger) ShieldEnabled() bool {
	return l.levels[CardShield] > 0
}

// ShieldRechargeTime is seconds since last absorb until the shield is ready
func (l *Ledger) ShieldRechargeTime() float64 {
	return constant.ShieldReadyBase - float64(l.levels[CardShield])*constant.ShieldReadyPerLevel
}

// === Movement ===

// SpeedMultiplier scales player movement speed
func (l *Ledger) SpeedMultiplier() float64 {
	return 1.0 + float64(l.levels[CardSwift])*constant.SwiftSpeedStep
}

// BlinkEnabled reports whether any Blink level is committed
func (l *Ledger) BlinkEnabled() bool {
	return l.levels[CardBlink] > 0
}

// BlinkCooldown is seconds between blinks
func (l *Ledger) BlinkCooldown() float64 {
	return constant.BlinkCooldownBase - float64(l.levels[CardBlink])*constant.BlinkCooldownPerLevel
}

// BlinkDistance is teleport length in play units
func (l *Ledger) BlinkDistance() float64 {
	return constant.BlinkDistanceBase + float64(l.levels[CardBlink])*constant.BlinkDistancePerLevel
}

// === Bullet manipulation ===

// ReflectDamageMultiplier scales damage of a bounced hit (bounce count applies separately)
func (l *Ledger) ReflectDamageMultiplier() float64 {
	return 1.0 + float64(l.levels[CardReflect])*constant.ReflectDamageStep
}

// RepelRange is the repel field radius
func (l *Ledger) RepelRange() float64 {
	if l.levels[CardRepel] == 0 {
		return 0
	}
	return constant.RepelRangeBase + float64(l.levels[CardRepel])*constant.RepelRangePerLevel
}

// RepelStrengthAt is the repel impulse magnitude at distance d, falling off
// linearly to zero at the field edge
func (l *Ledger) RepelStrengthAt(d float64) float64 {
	rng := l.RepelRange()
	if rng <= 0 || d >= rng {
		return 0
	}
	force := float64(l.levels[CardRepel]) * constant.RepelForcePerLevel
	return force * (1.0 - d/rng)
}

// FreezeRange is the slow field radius
func (l *Ledger) FreezeRange() float64 {
	if l.levels[CardFreeze] == 0 {
		return 0
	}
	return constant.FreezeRangeBase + float64(l.levels[CardFreeze])*constant.FreezeRangePerLevel
}

// FreezeMultiplierAt is the projectile speed multiplier at distance d
// Full slow at the player, none at the field edge, 1.0 outside
func (l *Ledger) FreezeMultiplierAt(d float64) float64 {
	rng := l.FreezeRange()
	if rng <= 0 || d >= rng {
		return 1.0
	}
	slow := float64(l.levels[CardFreeze]) * constant.FreezeSlowStep
	return 1.0 - slow*(1.0-d/rng)
}

// ShrinkRange is the shrink field radius
func (l *Ledger) ShrinkRange() float64 {
	if l.levels[CardShrink] == 0 {
		return 0
	}
	return constant.ShrinkRangeBase + float64(l.levels[CardShrink])*constant.ShrinkRangePerLevel
}

// ShrinkMultiplierAt is the projectile radius multiplier at distance d,
// floored at the minimum effective radius fraction
func (l *Ledger) ShrinkMultiplierAt(d float64) float64 {
	rng := l.ShrinkRange()
	if rng <= 0 || d >= rng {
		return 1.0
	}
	amount := float64(l.levels[CardShrink]) * constant.ShrinkStep
	m := 1.0 - amount*(1.0-d/rng)
	if m < constant.ShrinkRadiusFloor {
		m = constant.ShrinkRadiusFloor
	}
	return m
}

// === Utility ===

// FireRateDivisor divides enemy fire rate (longer cooldowns)
func (l *Ledger) FireRateDivisor() float64 {
	return 1.0 + float64(l.levels[CardCalm])*constant.CalmFireRateStep
}

// ChaosSpread is the enemy aim jitter half-width in radians
func (l *Ledger) ChaosSpread() float64 {
	return float64(l.levels[CardChaos]) * constant.ChaosSpreadStep
}

// === Vitality ===

// MaxHPBonus is added to the player's starting max hp
func (l *Ledger) MaxHPBonus() int {
	return l.levels[CardVigor]
}
