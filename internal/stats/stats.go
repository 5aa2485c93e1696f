// Package stats summarizes sampled path distributions for reporting. The
// engine never filters non-finite samples; this package separates them out
// and reports their count instead of hiding them.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/fieldtopo/internal/topo"
)

type Summary struct {
	Count     int
	NonFinite int
	Mean      float64
	Std       float64
	Min       float64
	Max       float64
}

// Summarize computes moments over the finite values only. Count is the total
// input length; NonFinite the number excluded.
func Summarize(values []float64) Summary {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	s := Summary{
		Count:     len(values),
		NonFinite: len(values) - len(finite),
	}
	if len(finite) == 0 {
		return s
	}

	s.Mean, s.Std = stat.MeanStdDev(finite, nil)
	if len(finite) == 1 {
		s.Std = 0
	}
	s.Min = floats.Min(finite)
	s.Max = floats.Max(finite)
	return s
}

// Histogram bins the finite values into equal-width bins over [min, max].
// Returns the per-bin counts and the bin centers.
func Histogram(values []float64, bins int) (counts, centers []float64) {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if bins <= 0 || len(finite) == 0 {
		return nil, nil
	}

	lo := floats.Min(finite)
	hi := floats.Max(finite)
	width := (hi - lo) / float64(bins)

	counts = make([]float64, bins)
	centers = make([]float64, bins)
	for i := range centers {
		centers[i] = lo + (float64(i)+0.5)*width
	}
	if width == 0 {
		counts[0] = float64(len(finite))
		return counts, centers
	}

	for _, v := range finite {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts, centers
}

func Distances(samples []topo.PathSample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Distance
	}
	return out
}

func Curvatures(samples []topo.PathSample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Curvature
	}
	return out
}
