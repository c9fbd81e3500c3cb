package systems

import (
	"github.com/automoto/doomerang-recoil/components"
	"github.com/automoto/doomerang-recoil/systems/factory"
	"github.com/automoto/doomerang-recoil/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateSession(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := tags.Session.First(ecs.World)
	if !ok {
		entry = factory.CreateSession(ecs)
	}
	return entry
}

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	return components.Clock.Get(getOrCreateSession(ecs))
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(getOrCreateSession(ecs))
}

// GetOrCreateScore returns the session score.
func GetOrCreateScore(ecs *ecs.ECS) *components.ScoreData {
	return components.Score.Get(getOrCreateSession(ecs))
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id components.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
