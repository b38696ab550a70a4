package game

// State is the phase of the world-session controller.
type State int

const (
	// StateArmed waits for the world scene to load.
	StateArmed State = iota
	// StateWaitingForDelay holds a parsed dataset until the scene settles.
	StateWaitingForDelay
	StateSpawning
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "Armed"
	case StateWaitingForDelay:
		return "WaitingForDelay"
	case StateSpawning:
		return "Spawning"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
