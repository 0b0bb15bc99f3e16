package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Human reads 1-based column numbers line by line and asks again until a playable
// column is given.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (that *Human) ChooseMove(board *entity.Board, piece entity.Piece) (Choice, error) {
	that.printf("%s to move. Enter the number of the column you want to insert a piece in\n", piece)

	for that.in.Scan() {
		input := strings.TrimSpace(that.in.Text())

		number, err := strconv.Atoi(input)
		if err != nil || number < 0 {
			that.printf("Please input a valid number bigger than 0\n")
			continue
		}

		if number < 1 || number > entity.Columns {
			that.printf("Please input a number from 1 to %d\n", entity.Columns)
			continue
		}

		column := number - 1
		if board.IsColumnFull(column) {
			that.printf("%s\n", apperror.ErrColumnFull)
			continue
		}

		return Choice{Column: column}, nil
	}

	if err := that.in.Err(); err != nil {
		return Choice{}, fmt.Errorf("failed to read column: %w", err)
	}

	return Choice{}, apperror.ErrInputClosed
}

func (that *Human) printf(format string, args ...any) {
	// prompts are best effort
	_, _ = fmt.Fprintf(that.out, format, args...)
}
