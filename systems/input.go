package systems

import (
	"github.com/automoto/doomerang-recoil/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// Bindings maps every range action to its inputs.
var Bindings = map[components.ActionID]InputBinding{
	components.ActionFire: {
		Keys:         []ebiten.Key{ebiten.KeySpace},
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
	},
	components.ActionReset:          {Keys: []ebiten.Key{ebiten.KeyR}},
	components.ActionWeapon1:        {Keys: []ebiten.Key{ebiten.Key1}},
	components.ActionWeapon2:        {Keys: []ebiten.Key{ebiten.Key2}},
	components.ActionWeapon3:        {Keys: []ebiten.Key{ebiten.Key3}},
	components.ActionNextWeapon:     {Keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyTab}},
	components.ActionMultiplierUp:   {Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}},
	components.ActionMultiplierDown: {Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}},
	components.ActionToggleShake:    {Keys: []ebiten.Key{ebiten.KeyF}},
}

var (
	lastCursorX, lastCursorY int
	cursorSeen               bool
)

// UpdateInput polls raw input into the session InputData.
// Must run BEFORE every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [components.ActionCount]bool{}

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}

	// The cursor is captured, so only its movement matters.
	x, y := ebiten.CursorPosition()
	if cursorSeen {
		input.LookX = float64(x - lastCursorX)
		input.LookY = float64(y - lastCursorY)
	} else {
		input.LookX, input.LookY = 0, 0
		cursorSeen = true
	}
	lastCursorX, lastCursorY = x, y
}
