// Package input exposes player intent as logical actions, independent of how
// the host polls its devices.
package input

//go:generate go tool mockgen -destination=./mocks/input_mock.go -package=mocks . State

// Action is a logical player intent.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
	Fire
)

var actionNames = [...]string{"up", "down", "left", "right", "fire"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// State answers whether a logical action is currently held.
type State interface {
	Pressed(a Action) bool
}

// Snapshot is a fixed set of held actions. The zero value holds nothing.
type Snapshot map[Action]bool

// Hold returns a snapshot with the given actions held.
func Hold(actions ...Action) Snapshot {
	s := make(Snapshot, len(actions))
	for _, a := range actions {
		s[a] = true
	}
	return s
}

func (s Snapshot) Pressed(a Action) bool { return s[a] }

// None is a State with nothing held.
var None State = Snapshot(nil)
