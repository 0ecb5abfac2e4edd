package outline

import "fmt"

// Level is a heading level. The engine supports exactly three.
type Level int

const (
	LevelH1 Level = iota + 1
	LevelH2
	LevelH3
)

// maxDepth is the deepest supported nesting; anything deeper clamps here.
const maxDepth = 3

// String returns the wire representation ("H1", "H2", "H3").
func (l Level) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return fmt.Sprintf("H%d", int(l))
	}
}

// MarshalJSON encodes the level as its wire string.
func (l Level) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON decodes "H1"/"H2"/"H3".
func (l *Level) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"H1"`:
		*l = LevelH1
	case `"H2"`:
		*l = LevelH2
	case `"H3"`:
		*l = LevelH3
	default:
		return fmt.Errorf("invalid heading level %s", data)
	}
	return nil
}

// Clamp limits a level to the supported depth.
func (l Level) Clamp() Level {
	if l < LevelH1 {
		return LevelH1
	}
	if l > LevelH3 {
		return LevelH3
	}
	return l
}

// levelForDepth maps a pattern nesting depth to a level.
func levelForDepth(depth int) Level {
	return Level(depth).Clamp()
}
