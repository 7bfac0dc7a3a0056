package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRotateCW(t *testing.T) {
	tests := []struct {
		name string
		in   Mask
		want Mask
	}{
		{"I horizontal to vertical", ParseMask("####"), ParseMask("#", "#", "#", "#")},
		{"O unchanged", ParseMask("##", "##"), ParseMask("##", "##")},
		{"T", ParseMask("###", ".#."), ParseMask(".#", "##", ".#")},
		{"L", ParseMask("###", "#.."), ParseMask("##", ".#", ".#")},
		{"S", ParseMask("##.", ".##"), ParseMask(".#", "##", "#.")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.RotateCW()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("RotateCW mismatch (-want +got):\n%s\nin:\n%s", diff, tc.in)
			}
		})
	}
}

func TestFourRotationsAreIdentity(t *testing.T) {
	for _, def := range Catalog() {
		t.Run(def.Kind.String(), func(t *testing.T) {
			m := def.Mask
			for i := 0; i < 4; i++ {
				m = m.RotateCW()
			}
			if diff := cmp.Diff(def.Mask, m); diff != "" {
				t.Errorf("four rotations changed the mask (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRotateDoesNotAliasInput(t *testing.T) {
	in := ParseMask("###", ".#.")
	orig := in.Clone()
	out := in.RotateCW()
	out[0][0] = !out[0][0]
	if !cmp.Equal(in, orig) {
		t.Error("RotateCW must return a fresh mask")
	}
}

func TestRotateKicks(t *testing.T) {
	iPiece := func(x, y int) Piece {
		return Piece{Kind: KindI, Mask: Lookup(KindI).Mask, X: x, Y: y}
	}

	tests := []struct {
		name    string
		blocks  []Point
		piece   Piece
		wantOK  bool
		wantPos Point
	}{
		{
			name:    "open board rotates in place",
			piece:   iPiece(0, 5),
			wantOK:  true,
			wantPos: Point{X: 0, Y: 5},
		},
		{
			name:    "left wall blocked column kicks right",
			blocks:  []Point{{X: 0, Y: 8}},
			piece:   iPiece(0, 5),
			wantOK:  true,
			wantPos: Point{X: 1, Y: 5},
		},
		{
			name:    "right side blocked kicks left",
			blocks:  []Point{{X: 4, Y: 7}},
			piece:   iPiece(4, 5),
			wantOK:  true,
			wantPos: Point{X: 3, Y: 5},
		},
		{
			name:    "floor kicks up",
			piece:   iPiece(3, 17),
			wantOK:  true,
			wantPos: Point{X: 3, Y: 16},
		},
		{
			name:    "obstructed on every offset",
			blocks:  []Point{{X: 0, Y: 6}, {X: 1, Y: 6}},
			piece:   iPiece(0, 5),
			wantOK:  false,
			wantPos: Point{X: 0, Y: 5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid()
			for _, b := range tc.blocks {
				g.Set(b.X, b.Y, KindZ.Cell())
			}
			before := tc.piece.Clone()

			got, ok := Rotate(g, tc.piece)
			if ok != tc.wantOK {
				t.Fatalf("Rotate ok = %v, expected %v", ok, tc.wantOK)
			}
			if got.Anchor() != tc.wantPos {
				t.Errorf("anchor = %+v, expected %+v", got.Anchor(), tc.wantPos)
			}
			if !ok {
				if diff := cmp.Diff(before, got); diff != "" {
					t.Errorf("failed rotation must leave the piece unchanged (-want +got):\n%s", diff)
				}
			} else if got.Mask.Height() != 4 || got.Mask.Width() != 1 {
				t.Errorf("expected vertical I, got\n%s", got.Mask)
			}
		})
	}
}
