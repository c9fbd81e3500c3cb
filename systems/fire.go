package systems

import (
	"log/slog"

	"github.com/automoto/doomerang-recoil/components"
	"github.com/automoto/doomerang-recoil/recoil"
	"github.com/automoto/doomerang-recoil/tags"
	"github.com/automoto/doomerang-recoil/telemetry"
	"github.com/yohamta/donburi/ecs"
)

// Guards against float drift leaving a sliver of cooldown after an
// exact number of ticks.
const cooldownEpsilon = 1e-9

// UpdateFire applies fire control to the active weapon. Automatic weapons
// fire while the trigger is held, limited by their fire rate; semi-automatic
// weapons fire once per press.
func UpdateFire(ecs *ecs.ECS) {
	entry, ok := ActiveWeapon(ecs)
	if !ok {
		return
	}
	w := components.Weapon.Get(entry)
	clock := getOrCreateClock(ecs)
	input := getOrCreateInput(ecs)

	if w.Fire.Cooldown > 0 {
		w.Fire.Cooldown = max(0, w.Fire.Cooldown-clock.DeltaTime)
	}

	trigger := GetAction(input, components.ActionFire)
	if w.Fire.Automatic {
		if !trigger.Pressed || w.Fire.Cooldown > cooldownEpsilon {
			return
		}
		w.Fire.Cooldown = w.Fire.Interval
	} else if !trigger.JustPressed {
		return
	}

	Shoot(ecs, w)
}

// Shoot resolves one shot: the hit-scan uses the view as it was before
// this shot's recoil, then the engine applies the kick.
func Shoot(ecs *ecs.ECS, w *components.WeaponData) recoil.Shot {
	score := GetOrCreateScore(ecs)
	score.Shots++

	x, y := AimPoint(aimView(ecs, w))
	record := telemetry.ShotRecord{AimX: x, AimY: y, Weapon: w.Name}
	if target, ok := HitScan(ecs, x, y); ok {
		t := components.Target.Get(target)
		registerHit(score, t)
		record.Target, record.Points = t.Name, t.Points
	} else {
		registerMiss(score)
	}

	shot := w.Engine.Fire()
	recordShot(ecs, record, shot)
	return shot
}

func recordShot(ecs *ecs.ECS, record telemetry.ShotRecord, shot recoil.Shot) {
	session := getOrCreateSession(ecs)
	clock := components.Clock.Get(session)

	record.Tick = clock.Ticks
	record.Time = clock.Elapsed
	record.Index = shot.Index
	record.DeltaX, record.DeltaY = shot.Delta.X, shot.Delta.Y

	if err := components.ShotLog.Get(session).Log.Write(record); err != nil {
		slog.Warn("shot_log_write_failed", "err", err)
	}
}

func aimView(ecs *ecs.ECS, w *components.WeaponData) recoil.Orientation {
	if entry, ok := tags.Camera.First(ecs.World); ok {
		return components.Camera.Get(entry).Rotation
	}
	view, _ := w.Engine.View()
	return view
}
