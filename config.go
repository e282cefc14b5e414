package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/salmiakki/standoff/standoff"
)

// Challenge is a board-and-pieces description loaded from a YAML file,
// e.g.:
//
//	rows: 7
//	cols: 7
//	pieces:
//	  king: 2
//	  queen: 2
//	  bishop: 2
//	  knight: 1
type Challenge struct {
	Rows   int            `yaml:"rows"`
	Cols   int            `yaml:"cols"`
	Pieces map[string]int `yaml:"pieces"`
}

func LoadChallenge(path string) (*Challenge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read challenge file: %w", err)
	}
	var ch Challenge
	if err := yaml.Unmarshal(data, &ch); err != nil {
		return nil, fmt.Errorf("failed to parse challenge file: %w", err)
	}
	return &ch, nil
}

// PieceCounts converts the pieces map into ordered counts (identifier
// order, so runs are reproducible regardless of map iteration).
func (ch *Challenge) PieceCounts() ([]standoff.PieceCount, error) {
	out := make([]standoff.PieceCount, 0, len(ch.Pieces))
	for name, count := range ch.Pieces {
		p, err := standoff.ParsePiece(name)
		if err != nil {
			return nil, err
		}
		out = append(out, standoff.PieceCount{Piece: p, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Piece.Identifier() < out[j].Piece.Identifier()
	})
	return out, nil
}
