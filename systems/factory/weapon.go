package factory

import (
	"github.com/automoto/doomerang-recoil/archetypes"
	"github.com/automoto/doomerang-recoil/components"
	cfg "github.com/automoto/doomerang-recoil/config"
	"github.com/automoto/doomerang-recoil/recoil"
	"github.com/automoto/doomerang-recoil/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWeapon builds a recoil engine for w. The engine captures the rest
// transforms of the camera and gun model that exist at spawn time; a weapon
// spawned without them simply drives nothing.
func CreateWeapon(ecs *ecs.ECS, w cfg.WeaponConfig, slot int, opts ...recoil.Option) *donburi.Entry {
	engine := recoil.NewEngine(w, opts...)

	if entry, ok := tags.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(entry)
		engine.CaptureCamera(recoil.CameraRig{RestPosition: camera.RestPosition})
		engine.SetBaseOrientation(camera.Base)
	}
	if entry, ok := tags.GunModel.First(ecs.World); ok {
		engine.CaptureModel(components.GunModel.Get(entry).Rest)
	}

	interval := 0.0
	if w.FireRate > 0 {
		interval = 60.0 / w.FireRate
	}

	weapon := archetypes.Weapon.Spawn(ecs)
	components.Weapon.Set(weapon, &components.WeaponData{
		Name:   w.Name,
		Slot:   slot,
		Engine: engine,
		Fire: components.FireControlData{
			Automatic: w.Automatic,
			Interval:  interval,
		},
	})
	return weapon
}
