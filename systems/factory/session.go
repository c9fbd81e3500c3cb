package factory

import (
	"github.com/automoto/doomerang-recoil/archetypes"
	"github.com/automoto/doomerang-recoil/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding the clock, input and score.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Clock.Set(session, &components.ClockData{})
	components.Input.Set(session, &components.InputData{})
	components.Score.Set(session, &components.ScoreData{})
	components.ShotLog.Set(session, &components.ShotLogData{})
	return session
}
