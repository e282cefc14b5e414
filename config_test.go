package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/salmiakki/standoff/standoff"
)

func TestLoadChallenge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "challenge.yaml")
	data := `rows: 7
cols: 6
pieces:
  knight: 1
  king: 2
  queen: 2
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	ch, err := LoadChallenge(path)
	if err != nil {
		t.Fatalf("LoadChallenge: %v", err)
	}
	if ch.Rows != 7 || ch.Cols != 6 {
		t.Errorf("dimensions = %dx%d, want 7x6", ch.Rows, ch.Cols)
	}

	counts, err := ch.PieceCounts()
	if err != nil {
		t.Fatalf("PieceCounts: %v", err)
	}
	want := []standoff.PieceCount{
		{Piece: standoff.King, Count: 2},
		{Piece: standoff.Queen, Count: 2},
		{Piece: standoff.Knight, Count: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %v, want %v", i, counts[i], want[i])
		}
	}
}

func TestLoadChallengeErrors(t *testing.T) {
	if _, err := LoadChallenge(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rows: [nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadChallenge(path); err == nil {
		t.Error("expected error for malformed YAML")
	}

	path = filepath.Join(t.TempDir(), "badpiece.yaml")
	if err := os.WriteFile(path, []byte("rows: 3\ncols: 3\npieces:\n  pawn: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ch, err := LoadChallenge(path)
	if err != nil {
		t.Fatalf("LoadChallenge: %v", err)
	}
	if _, err := ch.PieceCounts(); err == nil {
		t.Error("expected error for an unknown piece name")
	}
}

func TestCountsFromFlags(t *testing.T) {
	if got := countsFromFlags(0, 0, 0, 0, 0); got != nil {
		t.Errorf("all-zero flags = %v, want nil", got)
	}
	got := countsFromFlags(2, 0, 1, 0, 0)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0].Piece != standoff.King || got[0].Count != 2 {
		t.Errorf("got[0] = %v", got[0])
	}
	if got[2].Piece != standoff.Bishop || got[2].Count != 1 {
		t.Errorf("got[2] = %v", got[2])
	}
}
