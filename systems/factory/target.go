package factory

import (
	"github.com/automoto/doomerang-recoil/archetypes"
	"github.com/automoto/doomerang-recoil/components"
	cfg "github.com/automoto/doomerang-recoil/config"
	"github.com/automoto/doomerang-recoil/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTarget(ecs *ecs.ECS, space *resolv.Space, t cfg.TargetConfig) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)

	obj := resolv.NewObject(t.X, t.Y, t.Width, t.Height, tags.ResolvTarget)
	obj.Data = target
	space.Add(obj)

	components.Object.Set(target, &components.ObjectData{Object: obj})
	components.Target.Set(target, &components.TargetData{
		Name:   t.Name,
		Points: t.Points,
	})
	return target
}
