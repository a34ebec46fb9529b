package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Position identifies a cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// In reports whether the position lies on a size x size board.
func (that Position) In(size int) bool {
	return that.Row >= 0 && that.Row < size && that.Col >= 0 && that.Col < size
}

func (that Position) String() string {
	return fmt.Sprintf("%d,%d", that.Row, that.Col)
}

// ParsePosition parses the "row,col" form produced by Position.String.
func ParsePosition(raw string) (Position, error) {
	rowPart, colPart, ok := strings.Cut(strings.TrimSpace(raw), ",")
	if !ok {
		return Position{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, raw)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowPart))
	if err != nil {
		return Position{}, fmt.Errorf("%w: row %q: %w", apperror.ErrInvalidCell, rowPart, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(colPart))
	if err != nil {
		return Position{}, fmt.Errorf("%w: col %q: %w", apperror.ErrInvalidCell, colPart, err)
	}

	return Position{Row: row, Col: col}, nil
}

// ParseMoves parses a ";"-separated list of positions, e.g. "1,1;0,2".
// Blank entries are skipped.
func ParseMoves(raw string) ([]Position, error) {
	parts := lo.Compact(lo.Map(strings.Split(raw, ";"), func(part string, _ int) string {
		return strings.TrimSpace(part)
	}))

	moves := make([]Position, 0, len(parts))
	for _, part := range parts {
		pos, err := ParsePosition(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, pos)
	}

	return moves, nil
}

// FormatMoves is the inverse of ParseMoves.
func FormatMoves(moves []Position) string {
	return strings.Join(lo.Map(moves, func(pos Position, _ int) string {
		return pos.String()
	}), ";")
}
