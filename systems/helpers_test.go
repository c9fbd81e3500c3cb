package systems

import (
	"testing"

	"github.com/automoto/doomerang-recoil/components"
	cfg "github.com/automoto/doomerang-recoil/config"
	"github.com/automoto/doomerang-recoil/recoil"
	"github.com/automoto/doomerang-recoil/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// steadyRandom pins the per-shot multiplier to 1 and the jitter to zero.
type steadyRandom struct{}

func (steadyRandom) Float64() float64         { return 0.5 }
func (steadyRandom) InsideUnitSphere() r3.Vec { return r3.Vec{} }

// newRange builds a world with the default targets, camera, gun model and
// weapons, with the default weapon active.
func newRange(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e)

	spaceEntry := factory.CreateSpace(e, cfg.Range.WorldWidth, cfg.Range.WorldHeight, 16, 16)
	space := components.Space.Get(spaceEntry)
	for _, target := range cfg.Range.Targets {
		factory.CreateTarget(e, space, target)
	}

	factory.CreateCamera(e, r3.Vec{})
	factory.CreateGunModel(e, recoil.Pose{})
	for slot, name := range cfg.WeaponOrder {
		w, _ := cfg.Weapon(name)
		factory.CreateWeapon(e, w, slot, recoil.WithRandom(steadyRandom{}))
	}

	if !SelectWeapon(e, cfg.DefaultWeapon) {
		t.Fatalf("default weapon %q not spawned", cfg.DefaultWeapon)
	}
	return e
}

// step runs one simulation tick without polling real input.
func step(e *ecs.ECS) {
	UpdateClock(e)
	UpdateWeaponSwitch(e)
	UpdateAim(e)
	UpdateFire(e)
	UpdateRecoil(e)
	UpdateTargets(e)
}

// hold sets this frame's state of an action, keeping last frame's as previous.
func hold(e *ecs.ECS, id components.ActionID, pressed bool) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current[id] = pressed
}

func activeWeapon(t *testing.T, e *ecs.ECS) *components.WeaponData {
	t.Helper()
	entry, ok := ActiveWeapon(e)
	if !ok {
		t.Fatal("expected an active weapon")
	}
	return components.Weapon.Get(entry)
}

func weaponNamed(t *testing.T, e *ecs.ECS, name string) *components.WeaponData {
	t.Helper()
	entry, ok := findWeapon(e, name)
	if !ok {
		t.Fatalf("weapon %q not found", name)
	}
	return components.Weapon.Get(entry)
}
