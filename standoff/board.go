package standoff

import (
	"fmt"
	"sort"
)

// Square states. Codes >= 2 are piece identifiers (see pieces.go), so a
// single uint8 per square records empty/attacked/occupied-by-what.
const (
	empty    uint8 = 0
	attacked uint8 = 1
)

type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(r%d, c%d)", c.Row, c.Col)
}

// Placement packs a piece and its square into 16 bits: 4 bits of piece
// code, 6 bits of column, 6 bits of row. The packing is what makes board
// signatures cheap, and it is why board sides are capped at 64.
type Placement uint16

const MaxSide = 64

func NewPlacement(p Piece, row, col int) Placement {
	return Placement(uint16(p-King) | uint16(col)<<4 | uint16(row)<<10)
}

func (pl Placement) Piece() Piece {
	return Piece(pl&0xf) + King
}

func (pl Placement) Row() int {
	return int(pl >> 10)
}

func (pl Placement) Col() int {
	return int(pl>>4) & 0x3f
}

func (pl Placement) String() string {
	return fmt.Sprintf("%s(r%d, c%d)", pl.Piece().Symbol(), pl.Row(), pl.Col())
}

// Signature is a canonical key over an unordered set of placements: the
// placements sorted and packed big-endian into a string. Two boards with
// the same pieces on the same squares produce identical signatures no
// matter what order the pieces arrived in or where the scan cursor sits.
type Signature string

type SignatureSet struct {
	Map map[Signature]bool
}

func EmptySignatureSet() *SignatureSet {
	return &SignatureSet{make(map[Signature]bool)}
}

// Add reports whether sig was newly inserted.
func (ss *SignatureSet) Add(sig Signature) bool {
	if ss.Map[sig] {
		return false
	}
	ss.Map[sig] = true
	return true
}

func (ss *SignatureSet) Contains(sig Signature) bool {
	return ss.Map[sig]
}

func (ss *SignatureSet) Size() int {
	return len(ss.Map)
}

// Board tracks occupancy and attack coverage for a rows x cols grid,
// plus the set of placements that produced it and a forward-only scan
// cursor used by NextFree.
type Board struct {
	rows    int
	cols    int
	state   [][]uint8
	placed  map[Placement]bool
	nextRow int
	nextCol int
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 || rows > MaxSide || cols > MaxSide {
		return nil, errDimensions(rows, cols)
	}
	state := make([][]uint8, rows)
	for r := 0; r < rows; r++ {
		state[r] = make([]uint8, cols)
	}
	return &Board{
		rows:   rows,
		cols:   cols,
		state:  state,
		placed: make(map[Placement]bool),
	}, nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.rows && col < b.cols
}

func (b *Board) PlacedCount() int {
	return len(b.placed)
}

// At reports what occupies a square: the piece there, or (0, false) when
// the square is empty or merely attacked.
func (b *Board) At(row, col int) (Piece, bool) {
	s := b.state[row][col]
	if s <= attacked {
		return 0, false
	}
	return Piece(s), true
}

// TryPlace attempts to put p on (row, col). It fails, leaving the board
// untouched, when the target square is non-empty or when any square p
// would attack from there already holds a piece. On success the target
// square gets p's code, every square p attacks is marked attacked, and
// the placement is recorded. Marking is idempotent: an occupied square
// keeps its piece code, and a run mover visiting its first ring twice
// (see pieces.go) changes nothing on the second visit.
func (b *Board) TryPlace(p Piece, row, col int) bool {
	if b.state[row][col] != empty {
		return false
	}
	blocked := false
	p.eachAttack(b.rows, b.cols, row, col, func(r, c int) bool {
		if b.state[r][c] > attacked {
			blocked = true
			return false
		}
		return true
	})
	if blocked {
		return false
	}
	b.state[row][col] = uint8(p)
	p.eachAttack(b.rows, b.cols, row, col, func(r, c int) bool {
		if b.state[r][c] == empty {
			b.state[r][c] = attacked
		}
		return true
	})
	b.placed[NewPlacement(p, row, col)] = true
	return true
}

// NextFree returns the first empty square at or after the scan cursor in
// row-major order. The cursor only ever moves forward; squares behind it
// are never free again because placements are never undone in place
// (backtracking works on copies).
func (b *Board) NextFree() (Coordinate, bool) {
	for b.state[b.nextRow][b.nextCol] != empty {
		if b.nextCol < b.cols-1 {
			b.nextCol++
		} else if b.nextRow < b.rows-1 {
			b.nextRow++
			b.nextCol = 0
		} else {
			return Coordinate{}, false
		}
	}
	return Coordinate{b.nextRow, b.nextCol}, true
}

// FreeIter walks the free squares of a board in row-major order. It is
// a single-pass view: mutating the board invalidates it, and a fresh
// FreeSquares call is the only way to restart.
type FreeIter struct {
	b   *Board
	row int
	col int
	ok  bool
}

// FreeSquares returns an iterator over every currently free square,
// starting from the square NextFree would report.
func (b *Board) FreeSquares() *FreeIter {
	start, ok := b.NextFree()
	return &FreeIter{b: b, row: start.Row, col: start.Col, ok: ok}
}

func (it *FreeIter) Next() (Coordinate, bool) {
	if !it.ok {
		return Coordinate{}, false
	}
	for it.row < it.b.rows {
		for it.col < it.b.cols {
			r, c := it.row, it.col
			it.col++
			if it.b.state[r][c] == empty {
				return Coordinate{r, c}, true
			}
		}
		it.col = 0
		it.row++
	}
	it.ok = false
	return Coordinate{}, false
}

// Copy deep-clones the board. The clone and the original evolve
// independently; the solver copies before every exploratory branch so
// sibling branches never observe each other's mutations.
func (b *Board) Copy() *Board {
	state := make([][]uint8, b.rows)
	for r := 0; r < b.rows; r++ {
		state[r] = make([]uint8, b.cols)
		copy(state[r], b.state[r])
	}
	placed := make(map[Placement]bool, len(b.placed))
	for pl := range b.placed {
		placed[pl] = true
	}
	return &Board{
		rows:    b.rows,
		cols:    b.cols,
		state:   state,
		placed:  placed,
		nextRow: b.nextRow,
		nextCol: b.nextCol,
	}
}

// Placements returns the pieces on the board, sorted by packed encoding
// (row-major, then piece code).
func (b *Board) Placements() []Placement {
	out := make([]Placement, 0, len(b.placed))
	for pl := range b.placed {
		out = append(out, pl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Signature keys the board by its placement set alone.
func (b *Board) Signature() Signature {
	pls := b.Placements()
	buf := make([]byte, 0, 2*len(pls))
	for _, pl := range pls {
		buf = append(buf, byte(pl>>8), byte(pl))
	}
	return Signature(buf)
}
