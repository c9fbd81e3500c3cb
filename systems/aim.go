package systems

import (
	"github.com/automoto/doomerang-recoil/components"
	cfg "github.com/automoto/doomerang-recoil/config"
	"github.com/automoto/doomerang-recoil/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAim turns the look delta into the camera's base orientation and
// feeds it to every engine before they tick.
func UpdateAim(ecs *ecs.ECS) {
	cameraEntry, ok := tags.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(ecs)

	sensitivity := cfg.Range.LookSensitivity
	camera.Base.Yaw += input.LookX * sensitivity
	camera.Base.Pitch += input.LookY * sensitivity

	maxPitch := cfg.Range.MaxPitch
	camera.Base.Pitch = max(-maxPitch, min(camera.Base.Pitch, maxPitch))

	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		components.Weapon.Get(entry).Engine.SetBaseOrientation(camera.Base)
	})
}
