package view

// Screen identifies a top-level screen.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenHome
	ScreenAuth
)

func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenHome:
		return "home"
	case ScreenAuth:
		return "auth"
	default:
		return "unknown"
	}
}

// Route maps an authentication state to the active screen. It is a pure
// function of the latest state: no history, no side effects. Nothing else
// in the client is allowed to navigate.
func Route(s State) Screen {
	switch s.Phase {
	case Authenticated:
		return ScreenHome
	case Unauthenticated:
		return ScreenAuth
	default:
		return ScreenLoading
	}
}
