package core

// KeyCode identifies a physical key using browser-style code names
// ("ArrowUp", "KeyW", "Space"). Platforms translate their native key events
// to these codes before handing them to a stage.
type KeyCode string

// Key codes recognized by the stages.
const (
	KeyArrowUp    KeyCode = "ArrowUp"
	KeyArrowLeft  KeyCode = "ArrowLeft"
	KeyArrowRight KeyCode = "ArrowRight"
	KeyW          KeyCode = "KeyW"
	KeyA          KeyCode = "KeyA"
	KeyD          KeyCode = "KeyD"
	KeyP          KeyCode = "KeyP"
	KeyR          KeyCode = "KeyR"
	KeySpace      KeyCode = "Space"
	KeyEscape     KeyCode = "Escape"
	KeyDigit1     KeyCode = "Digit1"
	KeyDigit2     KeyCode = "Digit2"
	KeyDigit3     KeyCode = "Digit3"
	KeyDigit4     KeyCode = "Digit4"
	KeyDigit5     KeyCode = "Digit5"
	KeyDigit6     KeyCode = "Digit6"
)

// Action represents a semantic stage action, abstracted from physical keys.
type Action int

const (
	ActionNone        Action = iota
	ActionThrust             // ArrowUp, W - main engine
	ActionRotateLeft         // ArrowLeft, A - counter-clockwise
	ActionRotateRight        // ArrowRight, D - clockwise
	ActionPause              // P - pause/unpause (gameplay only)
	ActionSkipIntro          // Space - skip the intro cinematic
	ActionRestart            // R - restart after an outcome
	ActionMenu               // Escape - return to menu
	ActionGravityDown        // 1 - tuning panel
	ActionGravityUp          // 2
	ActionThrustDown         // 3
	ActionThrustUp           // 4
	ActionFuelDown           // 5
	ActionFuelUp             // 6
)

var keyActions = map[KeyCode]Action{
	KeyArrowUp:    ActionThrust,
	KeyW:          ActionThrust,
	KeyArrowLeft:  ActionRotateLeft,
	KeyA:          ActionRotateLeft,
	KeyArrowRight: ActionRotateRight,
	KeyD:          ActionRotateRight,
	KeyP:          ActionPause,
	KeySpace:      ActionSkipIntro,
	KeyR:          ActionRestart,
	KeyEscape:     ActionMenu,
	KeyDigit1:     ActionGravityDown,
	KeyDigit2:     ActionGravityUp,
	KeyDigit3:     ActionThrustDown,
	KeyDigit4:     ActionThrustUp,
	KeyDigit5:     ActionFuelDown,
	KeyDigit6:     ActionFuelUp,
}

// ActionForKey returns the action bound to a key code.
// Unrecognized codes yield ActionNone.
func ActionForKey(code KeyCode) Action {
	return keyActions[code]
}

// Held reports whether the action is a continuous one that stays active
// between key-down and key-up.
func (a Action) Held() bool {
	return a == ActionThrust || a == ActionRotateLeft || a == ActionRotateRight
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionPause:
		return "Pause"
	case ActionSkipIntro:
		return "SkipIntro"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionGravityDown:
		return "GravityDown"
	case ActionGravityUp:
		return "GravityUp"
	case ActionThrustDown:
		return "ThrustDown"
	case ActionThrustUp:
		return "ThrustUp"
	case ActionFuelDown:
		return "FuelDown"
	case ActionFuelUp:
		return "FuelUp"
	default:
		return "Unknown"
	}
}
