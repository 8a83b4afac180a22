package layout

import (
	"testing"

	"fixedgrid/pkg/geom"
)

// boxesWithHeights builds one 10-wide box per height.
func boxesWithHeights(heights ...float64) []*Box {
	boxes := make([]*Box, len(heights))
	for i, h := range heights {
		boxes[i] = NewBox(geom.Size{Width: 10, Height: h})
	}
	return boxes
}

func mustFixed(t *testing.T, widths ...float64) *FixedGrid {
	t.Helper()
	g, err := NewFixedGrid(widths)
	if err != nil {
		t.Fatalf("NewFixedGrid: %v", err)
	}
	return g
}

func mustBalanced(t *testing.T, columns int) *BalancedGrid {
	t.Helper()
	g, err := NewBalancedGrid(columns)
	if err != nil {
		t.Fatalf("NewBalancedGrid: %v", err)
	}
	return g
}

func lastPlacement(t *testing.T, b *Box) Placement {
	t.Helper()
	ps := b.Placements()
	if len(ps) == 0 {
		t.Fatalf("box %q was never placed", b.Label)
	}
	return ps[len(ps)-1]
}
