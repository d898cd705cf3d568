package upgrade

import (
	"math"
	"testing"
)

// ledgerAt returns a ledger with one card raised to the given level
func ledgerAt(c Card, level int) *Ledger {
	l := NewLedger()
	for i := 0; i < level; i++ {
		l.increment(c)
	}
	return l
}

func TestHitboxMultiplierFloor(t *testing.T) {
	l := ledgerAt(CardTiny, 5)
	got := l.HitboxMultiplier(false)
	if got != 0.25 {
		t.Errorf("Expected floor 0.25 at tiny=5, got %f", got)
	}
}

func TestHitboxMultiplierFocusOnlyWhileSlow(t *testing.T) {
	l := ledgerAt(CardFocus, 2)
	if got := l.HitboxMultiplier(false); got != 1.0 {
		t.Errorf("Expected 1.0 while moving fast, got %f", got)
	}
	if got := l.HitboxMultiplier(true); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("Expected 0.7 while slow, got %f", got)
	}
}

func TestHitboxMultiplierStacksToFloor(t *testing.T) {
	l := NewLedger()
	for i := 0; i < 3; i++ {
		l.increment(CardTiny)
	}
	for i := 0; i < 3; i++ {
		l.increment(CardFocus)
	}
	// 1 - 0.45 - 0.45 = 0.10 -> floored
	if got := l.HitboxMultiplier(true); got != 0.25 {
		t.Errorf("Expected floor 0.25, got %f", got)
	}
}

func TestIFrameDuration(t *testing.T) {
	if got := NewLedger().IFrameDuration(); got != 0.5 {
		t.Errorf("Expected base 0.5s, got %f", got)
	}
	if got := ledgerAt(CardGhost, 3).IFrameDuration(); math.Abs(got-1.4) > 1e-9 {
		t.Errorf("Expected 1.4s at ghost=3, got %f", got)
	}
}

func TestShieldRecharge(t *testing.T) {
	l := ledgerAt(CardShield, 2)
	if !l.ShieldEnabled() {
		t.Error("Expected shield enabled at level 2")
	}
	if got := l.ShieldRechargeTime(); got != 6.0 {
		t.Errorf("Expected 6s recharge at shield=2, got %f", got)
	}
	if NewLedger().ShieldEnabled() {
		t.Error("Expected shield disabled at level 0")
	}
}

func TestSpeedMultiplier(t *testing.T) {
	if got := ledgerAt(CardSwift, 4).SpeedMultiplier(); math.Abs(got-1.6) > 1e-9 {
		t.Errorf("Expected 1.6 at swift=4, got %f", got)
	}
}

func TestBlinkDerivations(t *testing.T) {
	l := ledgerAt(CardBlink, 3)
	if got := l.BlinkCooldown(); got != 2.0 {
		t.Errorf("Expected cooldown 2s at blink=3, got %f", got)
	}
	if got := l.BlinkDistance(); got != 55.0 {
		t.Errorf("Expected distance 55 at blink=3, got %f", got)
	}
	if NewLedger().BlinkEnabled() {
		t.Error("Expected blink disabled at level 0")
	}
}

func TestReflectDamageMultiplier(t *testing.T) {
	if got := NewLedger().ReflectDamageMultiplier(); got != 1.0 {
		t.Errorf("Expected 1.0 at reflect=0, got %f", got)
	}
	if got := ledgerAt(CardReflect, 4).ReflectDamageMultiplier(); got != 3.0 {
		t.Errorf("Expected 3.0 at reflect=4, got %f", got)
	}
}

func TestRepelFalloff(t *testing.T) {
	l := ledgerAt(CardRepel, 2)
	rng := l.RepelRange()
	if rng != 40.0 {
		t.Errorf("Expected range 40 at repel=2, got %f", rng)
	}
	if got := l.RepelStrengthAt(0); got != 30.0 {
		t.Errorf("Expected full force 30 at distance 0, got %f", got)
	}
	if got := l.RepelStrengthAt(20); math.Abs(got-15.0) > 1e-9 {
		t.Errorf("Expected half force at half range, got %f", got)
	}
	if got := l.RepelStrengthAt(40); got != 0 {
		t.Errorf("Expected zero force at range edge, got %f", got)
	}
	if got := NewLedger().RepelStrengthAt(0); got != 0 {
		t.Errorf("Expected zero force at level 0, got %f", got)
	}
}

func TestFreezeInterpolation(t *testing.T) {
	l := ledgerAt(CardFreeze, 2)
	rng := l.FreezeRange()
	if rng != 45.0 {
		t.Errorf("Expected range 45 at freeze=2, got %f", rng)
	}
	if got := l.FreezeMultiplierAt(0); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("Expected 0.7 at distance 0, got %f", got)
	}
	if got := l.FreezeMultiplierAt(45); got != 1.0 {
		t.Errorf("Expected 1.0 at range edge, got %f", got)
	}
	if got := NewLedger().FreezeMultiplierAt(0); got != 1.0 {
		t.Errorf("Expected 1.0 at level 0, got %f", got)
	}
}

func TestShrinkFloor(t *testing.T) {
	l := ledgerAt(CardShrink, 5)
	// amount = 1.25 at distance 0 -> raw multiplier would go negative
	if got := l.ShrinkMultiplierAt(0); got != 0.3 {
		t.Errorf("Expected floor 0.3, got %f", got)
	}
	if got := l.ShrinkMultiplierAt(l.ShrinkRange() + 1); got != 1.0 {
		t.Errorf("Expected 1.0 outside range, got %f", got)
	}
}

func TestUtilityDerivations(t *testing.T) {
	if got := ledgerAt(CardCalm, 2).FireRateDivisor(); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("Expected divisor 1.3 at calm=2, got %f", got)
	}
	if got := ledgerAt(CardChaos, 3).ChaosSpread(); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("Expected spread 0.6 at chaos=3, got %f", got)
	}
	if got := NewLedger().ChaosSpread(); got != 0 {
		t.Errorf("Expected zero spread at chaos=0, got %f", got)
	}
}

func TestLevelZeroNoEffect(t *testing.T) {
	l := NewLedger()
	if l.HitboxMultiplier(true) != 1.0 {
		t.Error("Expected neutral hitbox at level 0")
	}
	if l.SpeedMultiplier() != 1.0 {
		t.Error("Expected neutral speed at level 0")
	}
	if l.FireRateDivisor() != 1.0 {
		t.Error("Expected neutral fire rate at level 0")
	}
	if l.MaxHPBonus() != 0 {
		t.Error("Expected no hp bonus at level 0")
	}
}
