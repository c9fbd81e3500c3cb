package systems

import (
	"github.com/automoto/doomerang-recoil/components"
	"github.com/automoto/doomerang-recoil/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRecoil ticks every engine and copies the active one's output onto
// the camera and gun model. Inactive engines keep recovering in the
// background. A missing camera or gun entity just skips that write.
func UpdateRecoil(ecs *ecs.ECS) {
	clock := getOrCreateClock(ecs)

	var camera *components.CameraData
	if entry, ok := tags.Camera.First(ecs.World); ok {
		camera = components.Camera.Get(entry)
		camera.Rotation = camera.Base
		camera.Position = camera.RestPosition
	}
	var gun *components.GunModelData
	if entry, ok := tags.GunModel.First(ecs.World); ok {
		gun = components.GunModel.Get(entry)
	}

	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		w := components.Weapon.Get(entry)
		w.Engine.Tick(clock.DeltaTime)
		if !w.Active {
			return
		}

		if camera != nil {
			if view, ok := w.Engine.View(); ok {
				camera.Rotation = view
			}
			if pos, ok := w.Engine.CameraPosition(); ok {
				camera.Position = pos
			}
		}
		if gun != nil {
			if pose, ok := w.Engine.Model(); ok {
				gun.Pose = pose
			}
		}
	})
}
