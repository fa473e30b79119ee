// Package detect holds the value types delivered by the template-matching
// detection pipeline and the classifier that turns raw per-seat labels into
// closed, typed values. The pixel-level matcher itself lives outside this
// module; everything here consumes its output.
package detect

import "fmt"

// SeatCount is the number of seat slots the detector samples every cycle.
// Empty seats are reported with the Sentinel label, never omitted.
const SeatCount = 6

// Sentinel is the detection name used when no marker was found at a seat.
const Sentinel = "NO"

// Detection is one raw template match: the template name plus where and how
// confidently it matched.
type Detection struct {
	Name  string  `json:"name"`
	X     int     `json:"x,omitempty"`
	Y     int     `json:"y,omitempty"`
	W     int     `json:"w,omitempty"`
	H     int     `json:"h,omitempty"`
	Score float64 `json:"score"`
	Scale float64 `json:"scale,omitempty"`
}

// NoMarker is the detection recorded for a seat with nothing at it.
func NoMarker() Detection {
	return Detection{Name: Sentinel, Score: 1}
}

func (d Detection) String() string {
	return fmt.Sprintf("Detection(name=%q score=%.3f)", d.Name, d.Score)
}
