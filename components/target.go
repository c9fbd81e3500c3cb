package components

import "github.com/yohamta/donburi"

type TargetData struct {
	Name   string
	Points int
	Hits   int

	FlashRemaining float64 // seconds the zone stays highlighted after a hit
}

var Target = donburi.NewComponentType[TargetData]()
