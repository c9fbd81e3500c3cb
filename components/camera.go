package components

import (
	"github.com/automoto/doomerang-recoil/recoil"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// CameraData is the first-person view. Base is what the player aims at,
// Rotation is Base plus the active weapon's recoil.
type CameraData struct {
	Base     recoil.Orientation
	Rotation recoil.Orientation

	RestPosition r3.Vec
	Position     r3.Vec // RestPosition plus screen shake
}

var Camera = donburi.NewComponentType[CameraData]()
