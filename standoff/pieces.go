package standoff

import "strings"

// Piece is one of the five fixed movement-pattern categories. The codes
// start at 2 so they double as occupancy values next to empty (0) and
// attacked (1), and they feed straight into the Placement encoding.
type Piece uint8

const (
	King Piece = iota + 2
	Queen
	Bishop
	Rook
	Knight
)

// Pieces lists every type in identifier order.
func Pieces() []Piece {
	return []Piece{King, Queen, Bishop, Rook, Knight}
}

type offset struct {
	dr int
	dc int
}

var (
	royalOffsets = []offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	bishopOffsets = []offset{
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
	rookOffsets = []offset{
		{-1, 0}, {0, -1}, {0, 1}, {1, 0},
	}
	knightOffsets = []offset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
)

// movement pairs an offset table with whether the piece runs along each
// offset until the board edge (Queen/Bishop/Rook) or steps once (King,
// Knight, which share no squares with a run anyway).
type movement struct {
	offsets []offset
	runs    bool
}

var movements = map[Piece]movement{
	King:   {royalOffsets, false},
	Queen:  {royalOffsets, true},
	Bishop: {bishopOffsets, true},
	Rook:   {rookOffsets, true},
	Knight: {knightOffsets, false},
}

// eachAttack visits every square p attacks from (row, col) on a board of
// the given size, stopping early if visit returns false. Run movers emit
// the single-step ring and then walk each direction outward, so the first
// square of every run is visited twice; consumers treat the attack set as
// a set (membership checks and idempotent marking), which makes the
// duplication harmless and keeps the generation single-pass.
func (p Piece) eachAttack(rows, cols, row, col int, visit func(r, c int) bool) {
	m := movements[p]
	for _, o := range m.offsets {
		r, c := row+o.dr, col+o.dc
		if r >= 0 && r < rows && c >= 0 && c < cols {
			if !visit(r, c) {
				return
			}
		}
	}
	if !m.runs {
		return
	}
	for _, o := range m.offsets {
		r, c := row+o.dr, col+o.dc
		for r >= 0 && r < rows && c >= 0 && c < cols {
			if !visit(r, c) {
				return
			}
			r += o.dr
			c += o.dc
		}
	}
}

// EachAttack visits the squares p attacks from (row, col) on b. Squares
// may repeat; see eachAttack.
func (p Piece) EachAttack(b *Board, row, col int, visit func(r, c int) bool) {
	p.eachAttack(b.rows, b.cols, row, col, visit)
}

// AttackedSquares collects the distinct squares p attacks from (row, col)
// on b. Handy for callers and tests that want the set rather than the
// stream.
func (p Piece) AttackedSquares(b *Board, row, col int) map[Coordinate]bool {
	out := make(map[Coordinate]bool)
	p.eachAttack(b.rows, b.cols, row, col, func(r, c int) bool {
		out[Coordinate{r, c}] = true
		return true
	})
	return out
}

func (p Piece) Valid() bool {
	return p >= King && p <= Knight
}

// Identifier is the stable small-integer code used for occupancy values,
// placement packing and ordering.
func (p Piece) Identifier() int {
	return int(p)
}

func (p Piece) Name() string {
	switch p {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	}
	return "Unknown"
}

// Symbol is the single-letter rendering (N for Knight, chess style).
func (p Piece) Symbol() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Knight:
		return "N"
	}
	return "?"
}

// Art is the unicode chess glyph.
func (p Piece) Art() rune {
	switch p {
	case King:
		return '♔'
	case Queen:
		return '♕'
	case Bishop:
		return '♗'
	case Rook:
		return '♖'
	case Knight:
		return '♘'
	}
	return '?'
}

func (p Piece) String() string {
	return p.Name()
}

// ParsePiece accepts a full piece name in any case, or the single-letter
// symbol (N or n for Knight).
func ParsePiece(s string) (Piece, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "king", "k":
		return King, nil
	case "queen", "q":
		return Queen, nil
	case "bishop", "b":
		return Bishop, nil
	case "rook", "r":
		return Rook, nil
	case "knight", "n":
		return Knight, nil
	}
	return 0, errPiece(s)
}
