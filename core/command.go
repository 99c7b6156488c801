package core

// Command is what a single keystroke asks the game to do.
type Command int

const (
	None Command = iota
	TurnLeft
	TurnDown
	TurnUp
	TurnRight
	Quit
)

var key2Command = map[rune]Command{
	'h': TurnLeft,
	'j': TurnDown,
	'k': TurnUp,
	'l': TurnRight,
	'q': Quit,
}

// CommandFor maps a keystroke to its command. Unknown keys and the zero
// rune map to None.
func CommandFor(key rune) Command {
	return key2Command[key]
}

// Direction returns the step a turn command requests. ok is false for
// commands that are not turns.
func (c Command) Direction() (d Direction, ok bool) {
	switch c {
	case TurnLeft:
		return Left(), true
	case TurnDown:
		return Down(), true
	case TurnUp:
		return Up(), true
	case TurnRight:
		return Right(), true
	default:
		return Direction{}, false
	}
}

func (c Command) String() string {
	switch c {
	case TurnLeft:
		return "left"
	case TurnDown:
		return "down"
	case TurnUp:
		return "up"
	case TurnRight:
		return "right"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}
