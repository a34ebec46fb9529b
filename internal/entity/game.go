package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Mark is the symbol a player occupies cells with.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

// Opposite returns the mark of the other player.
func (that Mark) Opposite() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Game is a size x size board where the first player to line up
// WinLength marks horizontally, vertically or diagonally wins.
type Game struct {
	Size      int
	WinLength int
	Turn      Mark

	board []Mark
}

func NewGame(size, winLength int) (*Game, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	if winLength < 1 || winLength > size {
		return nil, fmt.Errorf("%w: %d on a %dx%d board", apperror.ErrInvalidWinLength, winLength, size, size)
	}

	return &Game{
		Size:      size,
		WinLength: winLength,
		Turn:      PlayerX,
		board:     make([]Mark, size*size),
	}, nil
}

// MakeTurn places the mark of the player to move and passes the turn.
// It does not refuse moves once the game is over, that is up to the caller.
func (that *Game) MakeTurn(pos Position) error {
	if !pos.In(that.Size) {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, pos)
	}

	idx := that.index(pos)
	if that.board[idx] != EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	that.board[idx] = that.Turn
	that.Turn = that.Turn.Opposite()

	return nil
}

// ApplyMove reports whether the move was accepted. A rejected move leaves the game unchanged.
func (that *Game) ApplyMove(pos Position) bool {
	return that.MakeTurn(pos) == nil
}

// UndoMove takes back the last move, which must have been played at pos.
func (that *Game) UndoMove(pos Position) error {
	if !pos.In(that.Size) {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, pos)
	}

	idx := that.index(pos)
	if that.board[idx] == EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellEmpty, pos)
	}

	that.board[idx] = EmptyCell
	that.Turn = that.Turn.Opposite()

	return nil
}

// LegalMoves returns the empty cells in row-major order.
func (that *Game) LegalMoves() []Position {
	moves := make([]Position, 0, len(that.board))
	for idx, cell := range that.board {
		if cell == EmptyCell {
			moves = append(moves, Position{Row: idx / that.Size, Col: idx % that.Size})
		}
	}

	return moves
}

func (that *Game) hasEmptyCell() bool {
	for _, cell := range that.board {
		if cell == EmptyCell {
			return true
		}
	}

	return false
}

// Winner returns the mark owning a complete window, or EmptyCell.
func (that *Game) Winner() Mark {
	n, k := that.Size, that.WinLength

	// rows
	for row := 0; row < n; row++ {
		for col := 0; col+k <= n; col++ {
			if mark := that.window(row, col, 0, 1); mark != EmptyCell {
				return mark
			}
		}
	}

	// columns
	for col := 0; col < n; col++ {
		for row := 0; row+k <= n; row++ {
			if mark := that.window(row, col, 1, 0); mark != EmptyCell {
				return mark
			}
		}
	}

	// "\" diagonals
	for row := 0; row+k <= n; row++ {
		for col := 0; col+k <= n; col++ {
			if mark := that.window(row, col, 1, 1); mark != EmptyCell {
				return mark
			}
		}
	}

	// "/" diagonals
	for row := 0; row+k <= n; row++ {
		for col := k - 1; col < n; col++ {
			if mark := that.window(row, col, 1, -1); mark != EmptyCell {
				return mark
			}
		}
	}

	return EmptyCell
}

// window returns the mark filling the WinLength cells starting at (row, col)
// along (dRow, dCol), or EmptyCell when the run is broken.
func (that *Game) window(row, col, dRow, dCol int) Mark {
	mark := that.board[row*that.Size+col]
	if mark == EmptyCell {
		return EmptyCell
	}

	for offset := 1; offset < that.WinLength; offset++ {
		if that.board[(row+offset*dRow)*that.Size+col+offset*dCol] != mark {
			return EmptyCell
		}
	}

	return mark
}

func (that *Game) IsTerminal() bool {
	return that.Winner() != EmptyCell || !that.hasEmptyCell()
}

// Utility scores the position from X's side: +1 X won, -1 O won, 0 otherwise.
func (that *Game) Utility() int {
	switch that.Winner() {
	case PlayerX:
		return 1
	case PlayerO:
		return -1
	default:
		return 0
	}
}

// DetermineGameResult returns the winner, PlayerTie for a full board without
// a winner, or EmptyCell while the game continues.
func (that *Game) DetermineGameResult() Mark {
	if winner := that.Winner(); winner != EmptyCell {
		return winner
	}

	// the game will continue until all the squares are full
	if that.hasEmptyCell() {
		return EmptyCell
	}

	return PlayerTie
}

func (that *Game) Status() string {
	if that.IsTerminal() {
		return StatusFinished
	}
	return StatusOngoing
}

func (that *Game) CurrentTurn() Mark {
	return that.Turn
}

// Cell returns the mark at pos, EmptyCell for empty or out-of-bounds cells.
func (that *Game) Cell(pos Position) Mark {
	if !pos.In(that.Size) {
		return EmptyCell
	}
	return that.board[that.index(pos)]
}

func (that *Game) Reset() {
	clear(that.board)
	that.Turn = PlayerX
}

func (that *Game) Clone() *Game {
	board := make([]Mark, len(that.board))
	copy(board, that.board)

	return &Game{
		Size:      that.Size,
		WinLength: that.WinLength,
		Turn:      that.Turn,
		board:     board,
	}
}

// String renders the board one row per line, "." for empty cells.
func (that *Game) String() string {
	var sb strings.Builder
	for row := 0; row < that.Size; row++ {
		for col := 0; col < that.Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}

			cell := that.board[row*that.Size+col]
			if cell == EmptyCell {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(cell))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Game) index(pos Position) int {
	return pos.Row*that.Size + pos.Col
}
