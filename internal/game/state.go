package game

// State is the top-level game state.
type State int

const (
	NotStarted State = iota // Initial, waiting for Start
	Running                 // Timers and physics are live
	Dead                    // Player crossed x < 0; terminal until remount
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}
