package text

import (
	"testing"

	"fixedgrid/pkg/geom"
)

func TestMeasureText_FixedAdvance(t *testing.T) {
	m := NewMeasurer()
	w, h := m.MeasureText("hello")
	if w != 35 {
		t.Errorf("expected width 35 (5 glyphs x 7px), got %f", w)
	}
	if h != m.LineHeight() {
		t.Errorf("expected line height %f, got %f", m.LineHeight(), h)
	}
}

func TestWrapLines(t *testing.T) {
	m := NewMeasurer()
	lines := m.WrapLines("hello world", 42)
	if len(lines) != 2 || lines[0] != "hello" || lines[1] != "world" {
		t.Errorf("expected [hello world], got %q", lines)
	}
	if got := m.WrapLines("hello world", 0); len(got) != 1 {
		t.Errorf("zero width should not wrap, got %q", got)
	}
	if got := m.WrapLines("", 100); got != nil {
		t.Errorf("expected no lines for empty text, got %q", got)
	}
}

func TestBlockSize_WrapsToProposedWidth(t *testing.T) {
	m := NewMeasurer()
	size := m.BlockSize("hello world", geom.ProposeWidth(50))
	if size.Width != 50 {
		t.Errorf("expected width 50, got %f", size.Width)
	}
	want := 2*m.LineHeight() + 2*DefaultPadding
	if size.Height != want {
		t.Errorf("expected height %f, got %f", want, size.Height)
	}
}

func TestBlockSize_NaturalWidth(t *testing.T) {
	m := NewMeasurer()
	m.SetPadding(0)
	size := m.BlockSize("ab\nabcd", geom.Unspecified)
	if size.Width != 28 {
		t.Errorf("expected widest line 28, got %f", size.Width)
	}
	if size.Height != 2*m.LineHeight() {
		t.Errorf("expected two lines, got height %f", size.Height)
	}
}

func TestBlockSize_NarrowerIsTaller(t *testing.T) {
	m := NewMeasurer()
	body := "the quick brown fox jumps over the lazy dog"
	wide := m.BlockSize(body, geom.ProposeWidth(400))
	narrow := m.BlockSize(body, geom.ProposeWidth(60))
	if narrow.Height <= wide.Height {
		t.Errorf("narrow block (%f) should be taller than wide block (%f)", narrow.Height, wide.Height)
	}
}

func TestNewBox(t *testing.T) {
	m := NewMeasurer()
	b := m.NewBox("hello world")
	if got := b.SizeThatFits(geom.ProposeWidth(50)); got != m.BlockSize("hello world", geom.ProposeWidth(50)) {
		t.Errorf("box size %+v does not match block size", got)
	}
}
