package layout

import (
	"errors"

	"fixedgrid/pkg/geom"
)

// ErrNoColumns is returned when a grid is built without any columns.
var ErrNoColumns = errors.New("grid needs at least one column")

// gridConfig holds the settings both grids accept. Neither spacing nor the
// item anchor is applied to geometry yet; they are stored so hosts can read
// them back.
type gridConfig struct {
	spacing    float64
	itemAnchor geom.Anchor
}

func defaultGridConfig() gridConfig {
	return gridConfig{itemAnchor: geom.Center}
}

// Spacing returns the configured spacing.
func (c gridConfig) Spacing() float64 { return c.spacing }

// ItemAnchor returns the configured item anchor.
func (c gridConfig) ItemAnchor() geom.Anchor { return c.itemAnchor }

// Option configures a grid at construction.
type Option func(*gridConfig)

// WithSpacing sets the spacing between items. Default 0.
func WithSpacing(spacing float64) Option {
	return func(c *gridConfig) {
		c.spacing = spacing
	}
}

// WithItemAnchor sets the anchor items are aligned to. Default geom.Center.
func WithItemAnchor(anchor geom.Anchor) Option {
	return func(c *gridConfig) {
		c.itemAnchor = anchor
	}
}

func buildConfig(opts []Option) gridConfig {
	c := defaultGridConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// tallest returns the largest accumulated column height.
func tallest(heights []float64) float64 {
	if len(heights) == 0 {
		return 0
	}
	m := heights[0]
	for _, h := range heights[1:] {
		if h > m {
			m = h
		}
	}
	return m
}

// shortest returns the first column holding the minimum height, so ties go
// to the lowest index.
func shortest(heights []float64) int {
	idx := 0
	for i, h := range heights {
		if h < heights[idx] {
			idx = i
		}
	}
	return idx
}
