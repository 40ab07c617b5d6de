package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Mob        = donburi.NewTag().SetName("Mob")
	Projectile = donburi.NewTag().SetName("Projectile")
	Barrier    = donburi.NewTag().SetName("Barrier")
)

// Resolv tags for collision checks
const (
	ResolvSolid           = "solid"
	ResolvBottom          = "bottom"
	ResolvPlayer          = "Player"
	ResolvMob             = "Mob"
	ResolvAllyProjectile  = "AllyProjectile"
	ResolvEnemyProjectile = "EnemyProjectile"
)
