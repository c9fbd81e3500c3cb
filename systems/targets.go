package systems

import (
	"github.com/automoto/doomerang-recoil/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTargets counts down hit flashes and the feedback line.
func UpdateTargets(ecs *ecs.ECS) {
	dt := getOrCreateClock(ecs).DeltaTime

	components.Target.Each(ecs.World, func(entry *donburi.Entry) {
		target := components.Target.Get(entry)
		if target.FlashRemaining > 0 {
			target.FlashRemaining = max(0, target.FlashRemaining-dt)
		}
	})

	score := GetOrCreateScore(ecs)
	if score.FeedbackRemaining > 0 {
		score.FeedbackRemaining = max(0, score.FeedbackRemaining-dt)
		if score.FeedbackRemaining == 0 {
			score.Feedback = ""
		}
	}
}
