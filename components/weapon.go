package components

import (
	"github.com/automoto/doomerang-recoil/recoil"
	"github.com/yohamta/donburi"
)

// FireControlData gates how often the trigger produces a shot
type FireControlData struct {
	Automatic bool
	Interval  float64 // seconds between automatic shots
	Cooldown  float64 // seconds until the next automatic shot is allowed
}

type WeaponData struct {
	Name   string
	Slot   int // position in the weapon order
	Active bool
	Engine *recoil.Engine
	Fire   FireControlData
}

var Weapon = donburi.NewComponentType[WeaponData]()
