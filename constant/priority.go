package constant

// System execution order within a tick, lowest runs first
// The ordering is load-bearing: input precedes movement, enemy fire precedes
// projectile integration, collisions precede the spawn roll, session timers
// run after gameplay, the bridge forwards after the session decides, culling last
const (
	PriorityInput      = 10
	PriorityPlayer     = 20
	PriorityEnemy      = 30
	PriorityBullet     = 40
	PriorityCollision  = 50
	PrioritySpawn      = 60
	PriorityDifficulty = 70
	PrioritySession    = 80
	PriorityBridge     = 90
	PriorityCull       = 100
)
