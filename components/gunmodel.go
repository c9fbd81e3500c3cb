package components

import (
	"github.com/automoto/doomerang-recoil/recoil"
	"github.com/yohamta/donburi"
)

type GunModelData struct {
	Rest recoil.Pose
	Pose recoil.Pose
}

var GunModel = donburi.NewComponentType[GunModelData]()
