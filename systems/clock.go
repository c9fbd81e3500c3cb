package systems

import (
	cfg "github.com/automoto/doomerang-recoil/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the session clock by one fixed simulation tick.
// Must run first so every later system sees the same dt.
func UpdateClock(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)
	clock.DeltaTime = 1.0 / float64(max(cfg.C.TPS, 1))
	clock.Elapsed += clock.DeltaTime
	clock.Ticks++
}
