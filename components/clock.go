package components

import "github.com/yohamta/donburi"

type ClockData struct {
	DeltaTime float64 // seconds covered by the current tick
	Elapsed   float64
	Ticks     int
}

var Clock = donburi.NewComponentType[ClockData]()
