package components

import (
	"github.com/automoto/doomerang-recoil/telemetry"
	"github.com/yohamta/donburi"
)

type ShotLogData struct {
	Log *telemetry.ShotLog // nil when shot logging is off
}

var ShotLog = donburi.NewComponentType[ShotLogData]()
