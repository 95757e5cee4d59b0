package entity

// Mark is the content of a board cell: a player's symbol or Empty.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"
	Empty   Mark = "*"
)

// Opponent returns the mark that plays after that one.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) String() string {
	return string(that)
}

// Move is a mark placed on a coordinate during a given turn.
type Move struct {
	Player Mark
	Coord  Coordinate
	Turn   int
}
