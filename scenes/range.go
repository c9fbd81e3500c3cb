package scenes

import (
	"image/color"
	"log/slog"
	"sync"

	"github.com/automoto/doomerang-recoil/components"
	cfg "github.com/automoto/doomerang-recoil/config"
	"github.com/automoto/doomerang-recoil/recoil"
	"github.com/automoto/doomerang-recoil/systems"
	"github.com/automoto/doomerang-recoil/systems/factory"
	"github.com/automoto/doomerang-recoil/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cell size of the hit-scan space, in world pixels.
const spaceCellSize = 16

type RangeScene struct {
	ecs    *ecs.ECS
	weapon string
	shots  *telemetry.ShotLog
	once   sync.Once
}

// NewRangeScene creates the shooting range with the named weapon active.
// An empty name selects cfg.DefaultWeapon. shots may be nil.
func NewRangeScene(weapon string, shots *telemetry.ShotLog) *RangeScene {
	return &RangeScene{weapon: weapon, shots: shots}
}

func (rs *RangeScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *RangeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RangeScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateWeaponSwitch)
	ecs.AddSystem(systems.UpdateAim)
	ecs.AddSystem(systems.UpdateFire)
	ecs.AddSystem(systems.UpdateRecoil)
	ecs.AddSystem(systems.UpdateTargets)

	ecs.AddRenderer(components.LayerDefault, systems.DrawRange)
	ecs.AddRenderer(components.LayerDefault, systems.DrawGun)
	ecs.AddRenderer(components.LayerDefault, systems.DrawCrosshair)
	ecs.AddRenderer(components.LayerHUD, systems.DrawHUD)

	rs.ecs = ecs
	session := Populate(rs.ecs)
	components.ShotLog.Get(session).Log = rs.shots

	systems.GetOrCreateScore(rs.ecs).Best = systems.LoadBestScore()

	saved, err := systems.LoadSettings()
	if err != nil {
		slog.Warn("settings_ignored", "err", err)
	}
	systems.ApplySavedSettings(rs.ecs, saved)

	// An explicit weapon beats the saved one.
	switch {
	case rs.weapon != "":
		systems.SelectWeapon(rs.ecs, rs.weapon)
	case saved == nil || saved.Weapon == "":
		systems.SelectWeapon(rs.ecs, cfg.DefaultWeapon)
	}
	if _, ok := systems.ActiveWeapon(rs.ecs); !ok {
		systems.SelectWeapon(rs.ecs, cfg.DefaultWeapon)
	}

	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

// Populate spawns the session, space, targets, camera, gun model and one
// engine per configured weapon. The camera and gun exist before the
// weapons so each engine captures their rest poses. Returns the session.
func Populate(ecs *ecs.ECS, opts ...recoil.Option) *donburi.Entry {
	session := factory.CreateSession(ecs)

	spaceEntry := factory.CreateSpace(ecs,
		cfg.Range.WorldWidth, cfg.Range.WorldHeight,
		spaceCellSize, spaceCellSize,
	)
	space := components.Space.Get(spaceEntry)
	for _, t := range cfg.Range.Targets {
		factory.CreateTarget(ecs, space, t)
	}

	factory.CreateCamera(ecs, r3.Vec{})
	factory.CreateGunModel(ecs, recoil.Pose{})

	for slot, name := range cfg.WeaponOrder {
		w, ok := cfg.Weapon(name)
		if !ok {
			continue
		}
		if err := cfg.Validate(w); err != nil {
			slog.Warn("weapon_config_invalid", "weapon", name, "err", err)
		}
		factory.CreateWeapon(ecs, w, slot, opts...)
	}
	return session
}
