package core

// Action is a semantic player intent, decoupled from the key or mouse button
// that produced it.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Enter, s, or the Start button
	ActionJump              // Space, j, or the Jump button
	ActionStrongJump        // k, Up, or the Jump Jump button
	ActionRestart           // r after death - remounts the session
	ActionHelp              // ? - toggle full help
	ActionQuit              // q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionJump:
		return "Jump"
	case ActionStrongJump:
		return "StrongJump"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
