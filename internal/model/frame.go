package model

import (
	"fmt"
	"math"
)

// FramesPerSecond is the simulation clock resolution.
const FramesPerSecond = 60

// Frame is a point or span on the simulation clock, counted in frames.
type Frame int

// Seconds converts a duration in seconds to frames, rounding to the nearest frame.
func Seconds(s float64) Frame {
	return Frame(math.Round(s * FramesPerSecond))
}

// Seconds returns the frame count as seconds.
func (f Frame) Seconds() float64 {
	return float64(f) / FramesPerSecond
}

func (f Frame) String() string {
	return fmt.Sprintf("%df(%.2fs)", int(f), f.Seconds())
}
