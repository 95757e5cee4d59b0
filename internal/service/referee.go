package service

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// DiagonalRule selects how the diagonals are scored.
type DiagonalRule string

const (
	// DiagonalIndependent requires a full main or a full anti-diagonal.
	DiagonalIndependent DiagonalRule = "independent"
	// DiagonalCombined counts matching cells of both diagonals together and
	// wins when the count equals the board size. A partial main diagonal plus a
	// partial anti-diagonal can therefore win, and a full diagonal with extra
	// marks on the other one can fail to.
	DiagonalCombined DiagonalRule = "combined"
)

type Referee interface {
	HasWon(board *entity.Board, player entity.Mark) bool
}

type referee struct {
	diagonalRule DiagonalRule
}

func NewReferee(rule DiagonalRule) Referee {
	return &referee{diagonalRule: rule}
}

// HasWon re-checks the whole board on every call; boards are at most 6x6.
func (that *referee) HasWon(board *entity.Board, player entity.Mark) bool {
	if CheckRows(board, player) || CheckColumns(board, player) {
		return true
	}

	if that.diagonalRule == DiagonalCombined {
		return CheckDiagonalsCombined(board, player)
	}

	return CheckDiagonals(board, player)
}

func CheckRows(board *entity.Board, player entity.Mark) bool {
	size := board.Size()
	for row := 0; row < size; row++ {
		marks := 0
		for col := 0; col < size; col++ {
			if board.At(entity.Coordinate{Row: row, Col: col}) == player {
				marks++
			}
		}
		if marks == size {
			return true
		}
	}
	return false
}

func CheckColumns(board *entity.Board, player entity.Mark) bool {
	size := board.Size()
	for col := 0; col < size; col++ {
		marks := 0
		for row := 0; row < size; row++ {
			if board.At(entity.Coordinate{Row: row, Col: col}) == player {
				marks++
			}
		}
		if marks == size {
			return true
		}
	}
	return false
}

func CheckDiagonals(board *entity.Board, player entity.Mark) bool {
	size := board.Size()
	leading, trailing := 0, 0
	for i := 0; i < size; i++ {
		if board.At(entity.Coordinate{Row: i, Col: i}) == player {
			leading++
		}
		if board.At(entity.Coordinate{Row: i, Col: size - 1 - i}) == player {
			trailing++
		}
	}
	return leading == size || trailing == size
}

// CheckDiagonalsCombined keeps a single counter for cells on either diagonal.
// A centre cell on an odd board is counted once.
func CheckDiagonalsCombined(board *entity.Board, player entity.Mark) bool {
	size := board.Size()
	marks := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			onDiagonal := row == col || row+col == size-1
			if onDiagonal && board.At(entity.Coordinate{Row: row, Col: col}) == player {
				marks++
			}
		}
	}
	return marks == size
}
