package systems

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/automoto/doomerang-recoil/components"
	cfg "github.com/automoto/doomerang-recoil/config"
	"github.com/automoto/doomerang-recoil/recoil"
	"github.com/automoto/doomerang-recoil/systems/factory"
	"github.com/automoto/doomerang-recoil/tags"
	"github.com/automoto/doomerang-recoil/telemetry"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestUpdateClockUsesTPS(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	for range 3 {
		UpdateClock(e)
	}
	clock := getOrCreateClock(e)

	want := 1.0 / float64(cfg.C.TPS)
	if math.Abs(clock.DeltaTime-want) > 1e-12 {
		t.Errorf("expected dt %v, got %v", want, clock.DeltaTime)
	}
	if clock.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", clock.Ticks)
	}
	if math.Abs(clock.Elapsed-3*want) > 1e-12 {
		t.Errorf("expected elapsed %v, got %v", 3*want, clock.Elapsed)
	}
}

func TestHitScan(t *testing.T) {
	e := newRange(t)

	testCases := []struct {
		name string
		x, y float64
		want string
	}{
		{name: "centre prefers the bullseye", x: 2048, y: 1024, want: "Bullseye"},
		{name: "inner ring", x: 2015, y: 1024, want: "Inner"},
		{name: "outer ring", x: 1980, y: 1024, want: "Outer"},
		{name: "left plate", x: 1730, y: 1150, want: "Left plate"},
		{name: "wall", x: 100, y: 100, want: ""},
		{name: "just outside the outer ring", x: 1975, y: 1024, want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, ok := HitScan(e, tc.x, tc.y)
			if tc.want == "" {
				if ok {
					t.Fatalf("expected a miss, hit %s", components.Target.Get(entry).Name)
				}
				return
			}
			if !ok {
				t.Fatalf("expected to hit %s", tc.want)
			}
			if got := components.Target.Get(entry).Name; got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestHitScanRemovesProbe(t *testing.T) {
	e := newRange(t)
	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry)
	before := len(space.Objects())

	HitScan(e, 2048, 1024)

	if after := len(space.Objects()); after != before {
		t.Errorf("expected %d objects after hit-scan, got %d", before, after)
	}
}

func TestAimPoint(t *testing.T) {
	x, y := AimPoint(recoil.Orientation{})
	if x != float64(cfg.Range.WorldWidth)/2 || y != float64(cfg.Range.WorldHeight)/2 {
		t.Errorf("zero view should aim at the world centre, got %v,%v", x, y)
	}

	_, upY := AimPoint(recoil.Orientation{Pitch: -1})
	if upY >= y {
		t.Errorf("negative pitch should aim higher, got y=%v", upY)
	}
	rightX, _ := AimPoint(recoil.Orientation{Yaw: 1})
	if rightX-x != cfg.Range.PixelsPerDegree {
		t.Errorf("one degree of yaw should move %v pixels, got %v", cfg.Range.PixelsPerDegree, rightX-x)
	}
}

func TestShootScoresBeforeRecoil(t *testing.T) {
	e := newRange(t)
	w := activeWeapon(t, e)

	shot := Shoot(e, w)

	score := GetOrCreateScore(e)
	if score.Shots != 1 || score.Hits != 1 {
		t.Fatalf("expected 1 shot and 1 hit, got %d/%d", score.Hits, score.Shots)
	}
	if score.Points != 50 {
		t.Errorf("expected 50 points for the bullseye, got %d", score.Points)
	}
	if score.Feedback != "Bullseye +50" || !score.FeedbackHit {
		t.Errorf("unexpected feedback %q", score.Feedback)
	}
	if shot.Index != 0 {
		t.Errorf("first shot should use pattern index 0, got %d", shot.Index)
	}
	if w.Engine.Target().Y <= 0 {
		t.Errorf("shot should kick the recoil target up, got %v", w.Engine.Target())
	}

	entry, _ := HitScan(e, 2048, 1024)
	bullseye := components.Target.Get(entry)
	if bullseye.Hits != 1 || bullseye.FlashRemaining != cfg.Range.FlashSeconds {
		t.Errorf("expected bullseye to register the hit, got %+v", bullseye)
	}
}

func TestShootMiss(t *testing.T) {
	e := newRange(t)
	cameraEntry, _ := tags.Camera.First(e.World)
	components.Camera.Get(cameraEntry).Rotation = recoil.Orientation{Pitch: -40}

	Shoot(e, activeWeapon(t, e))

	score := GetOrCreateScore(e)
	if score.Hits != 0 || score.Points != 0 {
		t.Errorf("expected a miss, got %+v", score)
	}
	if score.Feedback != "Miss" || score.FeedbackHit {
		t.Errorf("expected miss feedback, got %q", score.Feedback)
	}
}

func TestUpdateFireAutomaticRate(t *testing.T) {
	e := newRange(t)
	w := activeWeapon(t, e)
	if !w.Fire.Automatic || w.Fire.Interval != 0.1 {
		t.Fatalf("expected an automatic rifle at 600 rpm, got %+v", w.Fire)
	}

	for range cfg.C.TPS {
		hold(e, components.ActionFire, true)
		step(e)
	}

	if shots := GetOrCreateScore(e).Shots; shots != 10 {
		t.Errorf("expected 10 shots in one second, got %d", shots)
	}
}

func TestUpdateFireSemiAutomatic(t *testing.T) {
	e := newRange(t)
	if !SelectWeapon(e, "pistol") {
		t.Fatal("pistol missing")
	}

	for range 30 {
		hold(e, components.ActionFire, true)
		step(e)
	}
	if shots := GetOrCreateScore(e).Shots; shots != 1 {
		t.Fatalf("holding the trigger should fire once, got %d", shots)
	}

	hold(e, components.ActionFire, false)
	step(e)
	hold(e, components.ActionFire, true)
	step(e)
	if shots := GetOrCreateScore(e).Shots; shots != 2 {
		t.Errorf("a second press should fire again, got %d", shots)
	}
}

func TestUpdateRecoilDrivesCameraAndGun(t *testing.T) {
	e := newRange(t)
	Shoot(e, activeWeapon(t, e))

	for range 5 {
		step(e)
	}

	cameraEntry, _ := tags.Camera.First(e.World)
	camera := components.Camera.Get(cameraEntry)
	if camera.Rotation.Pitch >= 0 {
		t.Errorf("recoil should pitch the view up, got %+v", camera.Rotation)
	}
	if camera.Base != (recoil.Orientation{}) {
		t.Errorf("recoil must not change the base orientation, got %+v", camera.Base)
	}

	gunEntry, _ := tags.GunModel.First(e.World)
	gun := components.GunModel.Get(gunEntry)
	if gun.Pose.Position.Z >= 0 {
		t.Errorf("gun should kick back, got %+v", gun.Pose.Position)
	}
	if gun.Pose.Rotation.X >= 0 {
		t.Errorf("gun should tilt up, got %+v", gun.Pose.Rotation)
	}
}

func TestUpdateRecoilWithoutCollaborators(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	w, _ := cfg.Weapon(cfg.DefaultWeapon)
	entry := factory.CreateWeapon(e, w, 0, recoil.WithRandom(steadyRandom{}))
	weapon := components.Weapon.Get(entry)
	weapon.Active = true

	weapon.Engine.Fire()
	for range 10 {
		UpdateClock(e)
		UpdateRecoil(e)
	}

	if _, ok := weapon.Engine.View(); ok {
		t.Error("engine without a camera should not report a view")
	}
	if _, ok := weapon.Engine.Model(); ok {
		t.Error("engine without a gun model should not report a pose")
	}
	if weapon.Engine.Offset().Y <= 0 {
		t.Errorf("offsets should still accumulate, got %v", weapon.Engine.Offset())
	}
}

func TestUpdateRecoilRecoversToBase(t *testing.T) {
	e := newRange(t)
	Shoot(e, activeWeapon(t, e))

	for range 3 * cfg.C.TPS {
		step(e)
	}

	cameraEntry, _ := tags.Camera.First(e.World)
	camera := components.Camera.Get(cameraEntry)
	if math.Abs(camera.Rotation.Pitch) > 1e-3 || math.Abs(camera.Rotation.Yaw) > 1e-3 {
		t.Errorf("view should return to base, got %+v", camera.Rotation)
	}
	if w := activeWeapon(t, e); w.Engine.PatternIndex() != 0 {
		t.Errorf("pattern should restart after idling, got index %d", w.Engine.PatternIndex())
	}
}

func TestUpdateAimClampsPitch(t *testing.T) {
	e := newRange(t)
	input := getOrCreateInput(e)
	input.LookX = 10
	input.LookY = 10000

	UpdateAim(e)

	cameraEntry, _ := tags.Camera.First(e.World)
	camera := components.Camera.Get(cameraEntry)
	if camera.Base.Pitch != cfg.Range.MaxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", cfg.Range.MaxPitch, camera.Base.Pitch)
	}
	if want := 10 * cfg.Range.LookSensitivity; math.Abs(camera.Base.Yaw-want) > 1e-9 {
		t.Errorf("expected yaw %v, got %v", want, camera.Base.Yaw)
	}

	view, _ := activeWeapon(t, e).Engine.View()
	if view != camera.Base {
		t.Errorf("engine should see the new base orientation, got %+v", view)
	}
}

func TestSelectWeaponResets(t *testing.T) {
	e := newRange(t)
	rifle := activeWeapon(t, e)
	Shoot(e, rifle)
	Shoot(e, rifle)

	if !SelectWeapon(e, "smg") {
		t.Fatal("expected smg to be selected")
	}

	if rifle.Active {
		t.Error("rifle should be inactive")
	}
	if rifle.Engine.Target().Y != 0 || rifle.Engine.PatternIndex() != 0 {
		t.Errorf("rifle should be reset, got target %v index %d", rifle.Engine.Target(), rifle.Engine.PatternIndex())
	}
	if w := activeWeapon(t, e); w.Name != "smg" {
		t.Errorf("expected smg active, got %s", w.Name)
	}
	if SelectWeapon(e, "railgun") {
		t.Error("unknown weapon should not be selected")
	}
	if w := activeWeapon(t, e); w.Name != "smg" {
		t.Errorf("failed selection should keep smg, got %s", w.Name)
	}
}

func TestUpdateWeaponSwitchSlots(t *testing.T) {
	e := newRange(t)

	hold(e, components.ActionWeapon3, true)
	UpdateWeaponSwitch(e)
	if w := activeWeapon(t, e); w.Name != cfg.WeaponOrder[2] {
		t.Errorf("expected %s, got %s", cfg.WeaponOrder[2], w.Name)
	}

	hold(e, components.ActionWeapon3, false)
	hold(e, components.ActionNextWeapon, true)
	UpdateWeaponSwitch(e)
	if w := activeWeapon(t, e); w.Name != cfg.WeaponOrder[0] {
		t.Errorf("next weapon should wrap to %s, got %s", cfg.WeaponOrder[0], w.Name)
	}
}

func TestUpdateWeaponSwitchMultiplier(t *testing.T) {
	e := newRange(t)
	w := activeWeapon(t, e)
	start := w.Engine.RecoilMultiplier()

	hold(e, components.ActionMultiplierUp, true)
	UpdateWeaponSwitch(e)
	if got := w.Engine.RecoilMultiplier(); math.Abs(got-(start+cfg.Range.MultiplierStep)) > 1e-9 {
		t.Errorf("expected %v, got %v", start+cfg.Range.MultiplierStep, got)
	}

	// Held keys do not repeat.
	hold(e, components.ActionMultiplierUp, true)
	UpdateWeaponSwitch(e)
	if got := w.Engine.RecoilMultiplier(); math.Abs(got-(start+cfg.Range.MultiplierStep)) > 1e-9 {
		t.Errorf("held key should not repeat, got %v", got)
	}

	w.Engine.SetRecoilMultiplier(0.05)
	hold(e, components.ActionMultiplierUp, false)
	hold(e, components.ActionMultiplierDown, true)
	UpdateWeaponSwitch(e)
	if got := w.Engine.RecoilMultiplier(); got != 0 {
		t.Errorf("multiplier should not go below zero, got %v", got)
	}
}

func TestUpdateWeaponSwitchResetAndShake(t *testing.T) {
	e := newRange(t)
	w := activeWeapon(t, e)
	Shoot(e, w)

	input := getOrCreateInput(e)
	input.Current[components.ActionReset] = true
	input.Current[components.ActionToggleShake] = true
	UpdateWeaponSwitch(e)

	if w.Engine.Target().Y != 0 || w.Engine.PatternIndex() != 0 {
		t.Errorf("reset should clear recoil, got %v index %d", w.Engine.Target(), w.Engine.PatternIndex())
	}
	components.Weapon.Each(e.World, func(entry *donburi.Entry) {
		weapon := components.Weapon.Get(entry)
		if weapon.Engine.Settings().ScreenShake.Enabled {
			t.Errorf("shake should be off for %s", weapon.Name)
		}
	})
}

func TestUpdateTargetsCountsDown(t *testing.T) {
	e := newRange(t)
	Shoot(e, activeWeapon(t, e))

	score := GetOrCreateScore(e)
	ticks := int(math.Ceil(cfg.Range.FeedbackSeconds*float64(cfg.C.TPS))) + 1
	for range ticks {
		UpdateClock(e)
		UpdateTargets(e)
	}

	if score.Feedback != "" || score.FeedbackRemaining != 0 {
		t.Errorf("feedback should have expired, got %q (%v)", score.Feedback, score.FeedbackRemaining)
	}
	components.Target.Each(e.World, func(entry *donburi.Entry) {
		if r := components.Target.Get(entry).FlashRemaining; r != 0 {
			t.Errorf("flash should have expired, got %v", r)
		}
	})
}

func TestApplySavedSettings(t *testing.T) {
	e := newRange(t)

	ApplySavedSettings(e, &SavedSettings{
		Weapon:      "pistol",
		ScreenShake: false,
		Multipliers: map[string]float64{"pistol": 1.5, "smg": -1},
	})

	pistol := weaponNamed(t, e, "pistol")
	if !pistol.Active {
		t.Error("saved weapon should be active")
	}
	if pistol.Engine.RecoilMultiplier() != 1.5 {
		t.Errorf("expected saved multiplier 1.5, got %v", pistol.Engine.RecoilMultiplier())
	}
	if pistol.Engine.Settings().ScreenShake.Enabled {
		t.Error("saved shake setting should be applied")
	}

	smg := weaponNamed(t, e, "smg")
	if smg.Engine.RecoilMultiplier() < 0 {
		t.Errorf("negative saved multiplier should be ignored, got %v", smg.Engine.RecoilMultiplier())
	}

	ApplySavedSettings(e, nil)
	if !pistol.Active {
		t.Error("nil settings should change nothing")
	}
}

func TestPersistenceWithoutStore(t *testing.T) {
	e := newRange(t)

	SaveCurrentSettings(e)
	saved, err := LoadSettings()
	if err != nil || saved != nil {
		t.Errorf("expected no settings without a store, got %+v, %v", saved, err)
	}
	if best := LoadBestScore(); best != 0 {
		t.Errorf("expected no best score without a store, got %d", best)
	}
}

func TestShootWritesShotLog(t *testing.T) {
	e := newRange(t)
	log, err := telemetry.NewShotLog(filepath.Join(t.TempDir(), "shots.csv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer log.Close()
	session, _ := tags.Session.First(e.World)
	components.ShotLog.Get(session).Log = log

	UpdateClock(e)
	Shoot(e, activeWeapon(t, e))
	Shoot(e, activeWeapon(t, e))

	if log.Count() != 2 {
		t.Errorf("expected 2 logged shots, got %d", log.Count())
	}
}
