package standoff

import (
	"strconv"
	"strings"
)

func (b *Board) charAt(row, col int, art bool) string {
	p, ok := b.At(row, col)
	if !ok {
		if art {
			return "·"
		}
		return "."
	}
	if art {
		return string(p.Art())
	}
	return p.Symbol()
}

// String renders the board with single-letter piece symbols and dots for
// everything else. Attack coverage is deliberately invisible: a solution
// is its pieces.
func (b *Board) String() string {
	return b.render(false)
}

// Art renders the board with unicode chess glyphs.
func (b *Board) Art() string {
	return b.render(true)
}

func (b *Board) render(art bool) string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			sb.WriteString(b.charAt(r, c, art))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// pluralize naively appends "s"; every piece name in scope pluralizes
// that way.
func pluralize(name string, n int) string {
	if n == 1 {
		return name
	}
	return name + "s"
}

// ParsePieceSpec turns a compact spec like "K=2,Q=1,n=3" into piece
// counts, in the order given. Empty segments are skipped; unknown piece
// names and malformed counts are ErrInvalidPieceSpec.
func ParsePieceSpec(spec string) ([]PieceCount, error) {
	out := make([]PieceCount, 0)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, countStr, found := strings.Cut(part, "=")
		if !found {
			return nil, errPiece(part)
		}
		p, err := ParsePiece(name)
		if err != nil {
			return nil, err
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil || count < 0 {
			return nil, errPiece(part)
		}
		out = append(out, PieceCount{Piece: p, Count: count})
	}
	return out, nil
}
