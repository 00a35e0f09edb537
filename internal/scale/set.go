package scale

import (
	"github.com/dbmrq/bubblechart/internal/config"
	"github.com/dbmrq/bubblechart/internal/dataset"
)

// Set holds the four scales of a chart. It is built once per dataset.
type Set struct {
	X     Linear
	Y     Linear
	R     Sqrt
	Color *Ordinal

	// Fallback is true when the dataset was empty and every numeric domain
	// was replaced by [lo, lo+1].
	Fallback bool
}

// Build computes the scales for ds using the chart geometry in cfg.
func Build(ds *dataset.Dataset, cfg config.ChartConfig) Set {
	maxGNI := ds.MaxGNI()
	maxLife := ds.MaxLifeExpectancy()
	maxPop := ds.MaxPopulation()
	empty := ds.Empty()
	if empty {
		maxGNI = 1
		maxLife = cfg.YMin + 1
		maxPop = 1
	}

	return Set{
		X:        NewLinear(0, maxGNI, 0, float64(cfg.InnerWidth())),
		Y:        NewLinear(cfg.YMin, maxLife, float64(cfg.InnerHeight()), 0),
		R:        NewSqrt(0, maxPop, cfg.RadiusMin, cfg.RadiusMax),
		Color:    NewOrdinal(cfg.Palette, ds.Countries()...),
		Fallback: empty,
	}
}
