package tags

import "github.com/yohamta/donburi"

var (
	Camera   = donburi.NewTag().SetName("Camera")
	GunModel = donburi.NewTag().SetName("GunModel")
	Weapon   = donburi.NewTag().SetName("Weapon")
	Target   = donburi.NewTag().SetName("Target")
	Session  = donburi.NewTag().SetName("Session")
)

// Resolv tags for hit-scan queries
const (
	ResolvTarget = "target"
	ResolvProbe  = "probe"
)
