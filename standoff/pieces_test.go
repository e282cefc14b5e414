package standoff

import (
	"errors"
	"testing"
)

func attackSet(t *testing.T, p Piece, rows, cols, row, col int) map[Coordinate]bool {
	t.Helper()
	b := mustBoard(t, rows, cols)
	return p.AttackedSquares(b, row, col)
}

func sameSquares(got map[Coordinate]bool, want []Coordinate) bool {
	if len(got) != len(want) {
		return false
	}
	for _, c := range want {
		if !got[c] {
			return false
		}
	}
	return true
}

func TestStepMoverAttacks(t *testing.T) {
	tests := []struct {
		name       string
		p          Piece
		rows, cols int
		row, col   int
		want       []Coordinate
	}{
		{
			name: "king center", p: King, rows: 3, cols: 3, row: 1, col: 1,
			want: []Coordinate{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
		},
		{
			name: "king corner", p: King, rows: 3, cols: 3, row: 0, col: 0,
			want: []Coordinate{{0, 1}, {1, 0}, {1, 1}},
		},
		{
			name: "knight center", p: Knight, rows: 5, cols: 5, row: 2, col: 2,
			want: []Coordinate{{0, 1}, {0, 3}, {1, 0}, {1, 4}, {3, 0}, {3, 4}, {4, 1}, {4, 3}},
		},
		{
			name: "knight corner", p: Knight, rows: 3, cols: 3, row: 2, col: 1,
			want: []Coordinate{{0, 0}, {0, 2}},
		},
	}
	for _, tt := range tests {
		got := attackSet(t, tt.p, tt.rows, tt.cols, tt.row, tt.col)
		if !sameSquares(got, tt.want) {
			t.Errorf("%s: attacked %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRunMoverAttacks(t *testing.T) {
	tests := []struct {
		name       string
		p          Piece
		rows, cols int
		row, col   int
		want       []Coordinate
	}{
		{
			name: "rook", p: Rook, rows: 4, cols: 4, row: 1, col: 1,
			want: []Coordinate{{0, 1}, {2, 1}, {3, 1}, {1, 0}, {1, 2}, {1, 3}},
		},
		{
			name: "bishop", p: Bishop, rows: 4, cols: 4, row: 1, col: 1,
			want: []Coordinate{{0, 0}, {2, 2}, {3, 3}, {0, 2}, {2, 0}},
		},
		{
			name: "queen", p: Queen, rows: 4, cols: 4, row: 1, col: 1,
			want: []Coordinate{
				{0, 1}, {2, 1}, {3, 1}, {1, 0}, {1, 2}, {1, 3},
				{0, 0}, {2, 2}, {3, 3}, {0, 2}, {2, 0},
			},
		},
		{
			name: "queen 1x1", p: Queen, rows: 1, cols: 1, row: 0, col: 0,
			want: nil,
		},
	}
	for _, tt := range tests {
		got := attackSet(t, tt.p, tt.rows, tt.cols, tt.row, tt.col)
		if !sameSquares(got, tt.want) {
			t.Errorf("%s: attacked %v, want %v", tt.name, got, tt.want)
		}
	}
}

// Run movers visit their first ring in both the step pass and the run
// pass. The stream may repeat squares; the distinct set must not.
func TestRunMoverFirstRingRepeatsInStream(t *testing.T) {
	b := mustBoard(t, 1, 3)
	visits := 0
	first := 0
	Rook.EachAttack(b, 0, 0, func(r, c int) bool {
		visits++
		if r == 0 && c == 1 {
			first++
		}
		return true
	})
	if first != 2 {
		t.Errorf("first-ring square visited %d times, want 2", first)
	}
	if visits != 3 {
		t.Errorf("total visits = %d, want 3", visits)
	}
	if got := Rook.AttackedSquares(b, 0, 0); len(got) != 2 {
		t.Errorf("distinct attacked squares = %v, want 2 entries", got)
	}
}

func TestAttackSymmetry(t *testing.T) {
	const size = 5
	b := mustBoard(t, size, size)
	for _, p := range Pieces() {
		for r1 := 0; r1 < size; r1++ {
			for c1 := 0; c1 < size; c1++ {
				from := p.AttackedSquares(b, r1, c1)
				for r2 := 0; r2 < size; r2++ {
					for c2 := 0; c2 < size; c2++ {
						back := p.AttackedSquares(b, r2, c2)
						a := from[Coordinate{r2, c2}]
						rev := back[Coordinate{r1, c1}]
						if a != rev {
							t.Fatalf("%v attack asymmetry between (%d,%d) and (%d,%d)", p, r1, c1, r2, c2)
						}
					}
				}
			}
		}
	}
}

func TestEachAttackEarlyStop(t *testing.T) {
	b := mustBoard(t, 8, 8)
	visits := 0
	Queen.EachAttack(b, 3, 3, func(r, c int) bool {
		visits++
		return visits < 4
	})
	if visits != 4 {
		t.Errorf("visits = %d, want 4 (visitor stops the stream)", visits)
	}
}

func TestPieceIdentity(t *testing.T) {
	tests := []struct {
		p      Piece
		id     int
		name   string
		symbol string
		art    rune
	}{
		{King, 2, "King", "K", '♔'},
		{Queen, 3, "Queen", "Q", '♕'},
		{Bishop, 4, "Bishop", "B", '♗'},
		{Rook, 5, "Rook", "R", '♖'},
		{Knight, 6, "Knight", "N", '♘'},
	}
	for _, tt := range tests {
		if tt.p.Identifier() != tt.id {
			t.Errorf("%s identifier = %d, want %d", tt.name, tt.p.Identifier(), tt.id)
		}
		if tt.p.Name() != tt.name || tt.p.Symbol() != tt.symbol || tt.p.Art() != tt.art {
			t.Errorf("%s identity = (%s, %s, %c)", tt.name, tt.p.Name(), tt.p.Symbol(), tt.p.Art())
		}
		if !tt.p.Valid() {
			t.Errorf("%s not valid", tt.name)
		}
	}
	if Piece(0).Valid() || Piece(1).Valid() || Piece(7).Valid() {
		t.Error("non-piece codes pass Valid")
	}
}

func TestParsePiece(t *testing.T) {
	tests := []struct {
		in      string
		want    Piece
		wantErr bool
	}{
		{"king", King, false},
		{"King", King, false},
		{"K", King, false},
		{"k", King, false},
		{"QUEEN", Queen, false},
		{"q", Queen, false},
		{"bishop", Bishop, false},
		{"rook", Rook, false},
		{"knight", Knight, false},
		{"N", Knight, false},
		{"n", Knight, false},
		{" rook ", Rook, false},
		{"pawn", 0, true},
		{"", 0, true},
		{"kn", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePiece(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePiece(%q): expected error", tt.in)
			} else if !errors.Is(err, ErrInvalidPieceSpec) {
				t.Errorf("ParsePiece(%q): error %v is not ErrInvalidPieceSpec", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePiece(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}
