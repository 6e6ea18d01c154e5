package entity

// Cell is the state of a single field position.
type Cell int

const (
	CellEmpty Cell = iota
	CellPlayer1
	CellPlayer2
)

const (
	MarkPlayer1 = "X"
	MarkPlayer2 = "O"
	MarkEmpty   = ""
)

// String returns the mark drawn for the cell.
func (that Cell) String() string {
	switch that {
	case CellPlayer1:
		return MarkPlayer1
	case CellPlayer2:
		return MarkPlayer2
	default:
		return MarkEmpty
	}
}

// Opponent returns the other player's cell. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case CellPlayer1:
		return CellPlayer2
	case CellPlayer2:
		return CellPlayer1
	default:
		return CellEmpty
	}
}
