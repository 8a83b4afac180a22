// Package scene describes a single grid layout pass as data: which grid,
// its columns, the size proposal, and the items to lay out. Scenes are
// loaded from YAML, JSON or TOML files or built by scripts, and arranged
// into a Result that renderers and tools consume.
package scene

import (
	"errors"
	"fmt"

	"fixedgrid/pkg/geom"
	"fixedgrid/pkg/layout"
	"fixedgrid/pkg/text"
)

// Kind selects the grid a scene uses.
type Kind string

const (
	KindFixed    Kind = "fixed"
	KindBalanced Kind = "balanced"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid scene")

// Item is one child of the grid. It has either a fixed size or a text body
// that wraps to the width it is offered.
type Item struct {
	Label  string  `mapstructure:"label" json:"label,omitempty"`
	Width  float64 `mapstructure:"width" json:"width,omitempty"`
	Height float64 `mapstructure:"height" json:"height,omitempty"`
	Text   string  `mapstructure:"text" json:"text,omitempty"`
	Color  string  `mapstructure:"color" json:"color,omitempty"`
}

// IsText reports whether the item is sized by its text.
func (it Item) IsText() bool {
	return it.Text != ""
}

// Scene is a grid configuration plus its items.
type Scene struct {
	Name string `mapstructure:"name" json:"name,omitempty"`
	Kind Kind   `mapstructure:"kind" json:"kind"`

	// Fixed grids take explicit widths, or Columns equal columns of
	// ColumnWidth. ColumnWidth is nil when the key is absent; any value,
	// zero and negative included, is used as given.
	ColumnWidths []float64 `mapstructure:"column_widths" json:"column_widths,omitempty"`
	ColumnWidth  *float64  `mapstructure:"column_width" json:"column_width,omitempty"`
	Columns      int       `mapstructure:"columns" json:"columns,omitempty"`

	Spacing float64 `mapstructure:"spacing" json:"spacing,omitempty"`
	Anchor  string  `mapstructure:"anchor" json:"anchor,omitempty"`

	// Proposal handed to the grid. Zero leaves the dimension unspecified.
	Width  float64 `mapstructure:"width" json:"width,omitempty"`
	Height float64 `mapstructure:"height" json:"height,omitempty"`

	Items []Item `mapstructure:"items" json:"items"`
}

// New returns an empty scene with the defaults file-based scenes get.
func New(kind Kind) *Scene {
	return &Scene{Kind: kind, Anchor: "center"}
}

// Proposal returns the size proposal the scene hands to its grid.
func (s *Scene) Proposal() geom.Proposal {
	switch {
	case s.Width > 0 && s.Height > 0:
		return geom.Propose(s.Width, s.Height)
	case s.Width > 0:
		return geom.ProposeWidth(s.Width)
	case s.Height > 0:
		return geom.ProposeHeight(s.Height)
	}
	return geom.Unspecified
}

// Validate reports the first configuration problem found.
func (s *Scene) Validate() error {
	switch s.Kind {
	case KindFixed:
		if len(s.ColumnWidths) == 0 && s.Columns < 1 {
			return fmt.Errorf("%w: fixed grid needs column_widths or columns", ErrInvalid)
		}
		if len(s.ColumnWidths) == 0 && s.ColumnWidth == nil {
			return fmt.Errorf("%w: fixed grid with columns needs column_width", ErrInvalid)
		}
	case KindBalanced:
		if s.Columns < 1 {
			return fmt.Errorf("%w: balanced grid needs columns >= 1, got %d", ErrInvalid, s.Columns)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalid, s.Kind)
	}
	if s.Anchor != "" {
		if _, err := geom.ParseAnchor(s.Anchor); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	for i, it := range s.Items {
		if it.IsText() && (it.Width != 0 || it.Height != 0) {
			return fmt.Errorf("%w: item %d has both text and a size", ErrInvalid, i)
		}
	}
	return nil
}

func (s *Scene) options() ([]layout.Option, error) {
	opts := []layout.Option{layout.WithSpacing(s.Spacing)}
	if s.Anchor != "" {
		a, err := geom.ParseAnchor(s.Anchor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, layout.WithItemAnchor(a))
	}
	return opts, nil
}

// Grid builds the layout the scene describes.
func (s *Scene) Grid() (layout.Layout, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	opts, err := s.options()
	if err != nil {
		return nil, err
	}
	var grid layout.Layout
	switch {
	case s.Kind == KindBalanced:
		grid, err = layout.NewBalancedGrid(s.Columns, opts...)
	case len(s.ColumnWidths) > 0:
		grid, err = layout.NewFixedGrid(s.ColumnWidths, opts...)
	default:
		grid, err = layout.NewUniformFixedGrid(s.Columns, *s.ColumnWidth, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return grid, nil
}

// Boxes builds one layout box per item. Text items are measured with m.
func (s *Scene) Boxes(m *text.Measurer) []*layout.Box {
	boxes := make([]*layout.Box, len(s.Items))
	for i, it := range s.Items {
		var b *layout.Box
		if it.IsText() {
			b = m.NewBox(it.Text)
		} else {
			b = layout.NewBox(geom.Size{Width: it.Width, Height: it.Height})
		}
		b.Label = it.Label
		boxes[i] = b
	}
	return boxes
}
