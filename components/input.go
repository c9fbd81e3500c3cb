package components

import "github.com/yohamta/donburi"

// ActionID represents a logical range action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFire
	ActionReset
	ActionWeapon1
	ActionWeapon2
	ActionWeapon3
	ActionNextWeapon
	ActionMultiplierUp
	ActionMultiplierDown
	ActionToggleShake
	ActionCount // Must be last - used for array sizing
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions
// plus the look delta gathered this frame.
type InputData struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool

	// Look delta in screen pixels, positive X = right, positive Y = down
	LookX, LookY float64
}

var Input = donburi.NewComponentType[InputData]()
