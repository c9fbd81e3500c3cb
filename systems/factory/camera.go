package factory

import (
	"github.com/automoto/doomerang-recoil/archetypes"
	"github.com/automoto/doomerang-recoil/components"
	"github.com/automoto/doomerang-recoil/recoil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

func CreateCamera(ecs *ecs.ECS, rest r3.Vec) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		RestPosition: rest,
		Position:     rest,
	})
	return camera
}

func CreateGunModel(ecs *ecs.ECS, rest recoil.Pose) *donburi.Entry {
	gun := archetypes.GunModel.Spawn(ecs)
	components.GunModel.Set(gun, &components.GunModelData{
		Rest: rest,
		Pose: rest,
	})
	return gun
}
