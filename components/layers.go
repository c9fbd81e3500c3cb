package components

import "github.com/yohamta/donburi/ecs"

const (
	LayerDefault ecs.LayerID = iota
	LayerHUD
)
