package systems

import (
	"fmt"
	"log/slog"

	"github.com/automoto/doomerang-recoil/components"
	cfg "github.com/automoto/doomerang-recoil/config"
	"github.com/automoto/doomerang-recoil/recoil"
	"github.com/automoto/doomerang-recoil/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AimPoint maps a view orientation to world pixels. The zero orientation
// looks at the centre of the world; negative pitch looks up.
func AimPoint(view recoil.Orientation) (x, y float64) {
	x = float64(cfg.Range.WorldWidth)/2 + view.Yaw*cfg.Range.PixelsPerDegree
	y = float64(cfg.Range.WorldHeight)/2 + view.Pitch*cfg.Range.PixelsPerDegree
	return x, y
}

// HitScan returns the target under the world point. Where zones overlap,
// the one worth the most points wins.
func HitScan(ecs *ecs.ECS, x, y float64) (*donburi.Entry, bool) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(x, y, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	collision := probe.Check(0, 0, tags.ResolvTarget)
	if collision == nil {
		return nil, false
	}

	var best *donburi.Entry
	bestPoints := 0
	for _, obj := range collision.Objects {
		// Check is cell based, so confirm the point is really inside.
		if !contains(obj, x, y) {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		points := components.Target.Get(entry).Points
		if best == nil || points > bestPoints {
			best, bestPoints = entry, points
		}
	}
	return best, best != nil
}

func contains(obj *resolv.Object, x, y float64) bool {
	return x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H
}

func registerHit(score *components.ScoreData, target *components.TargetData) {
	target.Hits++
	target.FlashRemaining = cfg.Range.FlashSeconds

	score.Hits++
	score.Points += target.Points
	score.Feedback = fmt.Sprintf("%s +%d", target.Name, target.Points)
	score.FeedbackHit = true
	score.FeedbackRemaining = cfg.Range.FeedbackSeconds

	slog.Debug("target_hit", "target", target.Name, "points", target.Points, "total", score.Points)

	if score.Points > score.Best {
		score.Best = score.Points
		SaveBestScore(score.Best)
	}
}

func registerMiss(score *components.ScoreData) {
	score.Feedback = "Miss"
	score.FeedbackHit = false
	score.FeedbackRemaining = cfg.Range.FeedbackSeconds
}
