package main

import (
	"fmt"
	"math"
)

// patternFunc returns the brightness generator for a named synthetic pattern.
func patternFunc(name string, width, height int, level uint8) (func(i, j int) uint8, error) {
	switch name {
	case "flat":
		return func(i, j int) uint8 { return level }, nil
	case "slope":
		return slope(width), nil
	case "bumps":
		return bumps(width, height, level), nil
	default:
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
}

// slope rises linearly from 0 on the first column to 255 on the last.
func slope(width int) func(i, j int) uint8 {
	if width < 2 {
		return func(i, j int) uint8 { return 0 }
	}
	return func(i, j int) uint8 {
		return uint8(i * 255 / (width - 1))
	}
}

// bumps superimposes two sine waves on level, clamped to the byte range.
func bumps(width, height int, level uint8) func(i, j int) uint8 {
	fx := 4 * math.Pi / float64(max(width-1, 1))
	fz := 3 * math.Pi / float64(max(height-1, 1))
	return func(i, j int) uint8 {
		v := float64(level) + 48*math.Sin(float64(i)*fx)*math.Cos(float64(j)*fz)
		return uint8(math.Round(math.Max(0, math.Min(255, v))))
	}
}

type stats struct {
	Min, Max uint8
	Mean     float64
}

type raster interface {
	Size() (width, height int)
	Brightness(i, j int) uint8
}

func rasterStats(r raster) stats {
	w, h := r.Size()
	if w == 0 || h == 0 {
		return stats{}
	}
	st := stats{Min: 255}
	var sum float64
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			b := r.Brightness(i, j)
			st.Min = min(st.Min, b)
			st.Max = max(st.Max, b)
			sum += float64(b)
		}
	}
	st.Mean = sum / float64(w*h)
	return st
}
