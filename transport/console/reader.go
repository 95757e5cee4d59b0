package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Reader prompts for moves on prompt and reads them line by line from in.
type Reader struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

func NewReader(in io.Reader, prompt io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		prompt:  prompt,
	}
}

// ReadMove returns io.EOF once the input is exhausted.
func (that *Reader) ReadMove(player entity.Mark) (entity.Coordinate, error) {
	fmt.Fprintf(that.prompt, "%s's move: ", player)

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return entity.Coordinate{}, fmt.Errorf("failed to read move: %w", err)
		}
		return entity.Coordinate{}, io.EOF
	}

	return ParseMove(that.scanner.Text())
}

// ParseMove parses "row column" into a coordinate. Range is not checked here.
func ParseMove(line string) (entity.Coordinate, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Coordinate{}, fmt.Errorf("%w: got %d values in %q", apperror.ErrInvalidMoveFormat, len(fields), line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: row %q", apperror.ErrInvalidMoveFormat, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: column %q", apperror.ErrInvalidMoveFormat, fields[1])
	}

	return entity.Coordinate{Row: row, Col: col}, nil
}
