package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	colorX = "1"
	colorO = "4"
)

// Printer renders the game as plain text, coloring marks on capable terminals.
type Printer struct {
	out   *termenv.Output
	color bool
}

func NewPrinter(w io.Writer, color bool, opts ...termenv.OutputOption) *Printer {
	return &Printer{
		out:   termenv.NewOutput(w, opts...),
		color: color,
	}
}

func (that *Printer) Welcome() {
	fmt.Fprintln(that.out, "Have fun in the game!")
}

// ShowBoard prints one row per line with cells separated by single spaces.
func (that *Printer) ShowBoard(board *entity.Board) {
	for _, row := range board.Rows() {
		cells := make([]string, len(row))
		for i, mark := range row {
			cells[i] = that.paint(mark)
		}
		fmt.Fprintln(that.out, strings.Join(cells, " "))
	}
}

func (that *Printer) ShowRejected(player entity.Mark, err error) {
	fmt.Fprintf(that.out, "Invalid move for %s: %v. Try again.\n", player, err)
}

func (that *Printer) ShowWinner(player entity.Mark) {
	fmt.Fprintf(that.out, "\nAnd the WINNER is: .....\n!!!!!!!!!!!! %s !!!!!!!!!!!!\n", that.paint(player))
}

func (that *Printer) ShowDraw() {
	fmt.Fprintln(that.out, "\nNo cells left. It's a DRAW!")
}

func (that *Printer) paint(mark entity.Mark) string {
	if !that.color || that.out.Profile == termenv.Ascii || !mark.IsPlayer() {
		return mark.String()
	}

	color := colorX
	if mark == entity.PlayerO {
		color = colorO
	}

	return that.out.String(mark.String()).Foreground(that.out.Color(color)).Bold().String()
}
