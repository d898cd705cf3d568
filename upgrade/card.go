package upgrade

// Card is the closed enumeration of upgrade cards
type Card uint8

const (
	// Defense
	CardTiny   Card = iota // Shrinks the player hitbox
	CardFocus              // Shrinks the hitbox further while moving slowly
	CardGhost              // Extends i-frames after a hit
	CardShield             // Periodic automatic one-time hit absorption

	// Movement
	CardSwift // Raises movement speed
	CardBlink // Short teleport along the last movement direction

	// Bullet manipulation
	CardReflect // Bounced projectiles hit enemies harder
	CardRepel   // Pushes nearby projectiles away
	CardFreeze  // Slows projectiles near the player
	CardShrink  // Shrinks projectile hitboxes near the player

	// Utility
	CardCalm  // Divides enemy fire rate
	CardChaos // Jitters enemy aim

	// CardVigor raises max hp and heals one on commit (heal applied by the session)
	CardVigor

	cardCount
)

// Category groups card effects by the system they modify
type Category uint8

const (
	CategoryDefense Category = iota
	CategoryMovement
	CategoryBullet
	CategoryUtility
)

// Cards lists every card in enumeration order
func Cards() []Card {
	out := make([]Card, cardCount)
	for i := range out {
		out[i] = Card(i)
	}
	return out
}

// MaxLevel returns the level cap for a card
// Blink and Shield cap at 4 so blink cooldown stays >= 1s and shield
// recharge stays >= 2s; everything else caps at 5
func MaxLevel(c Card) int {
	switch c {
	case CardBlink, CardShield:
		return 4
	default:
		return 5
	}
}

// CategoryOf returns the card's effect category
func CategoryOf(c Card) Category {
	switch c {
	case CardTiny, CardFocus, CardGhost, CardShield:
		return CategoryDefense
	case CardSwift, CardBlink:
		return CategoryMovement
	case CardReflect, CardRepel, CardFreeze, CardShrink:
		return CategoryBullet
	default:
		return CategoryUtility
	}
}

func (c Card) String() string {
	switch c {
	case CardTiny:
		return "tiny"
	case CardFocus:
		return "focus"
	case CardGhost:
		return "ghost"
	case CardShield:
		return "shield"
	case CardSwift:
		return "swift"
	case CardBlink:
		return "blink"
	case CardReflect:
		return "reflect"
	case CardRepel:
		return "repel"
	case CardFreeze:
		return "freeze"
	case CardShrink:
		return "shrink"
	case CardCalm:
		return "calm"
	case CardChaos:
		return "chaos"
	case CardVigor:
		return "vigor"
	default:
		return "unknown"
	}
}
