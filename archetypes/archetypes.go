package archetypes

import (
	"github.com/automoto/doomerang-recoil/components"
	"github.com/automoto/doomerang-recoil/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		tags.Session,
		components.Clock,
		components.Input,
		components.Score,
		components.ShotLog,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	GunModel = newArchetype(
		tags.GunModel,
		components.GunModel,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.Weapon,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
