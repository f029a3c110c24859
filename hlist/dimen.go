package hlist

import "fmt"

// Dimen is a dimension in scaled big points.
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1     // scaled point = BP / 65536
	BP   Dimen = 65536 // big point (PDF) = 1/72 inch
	PT   Dimen = 65291 // printers point 1/72.27 inch
)

func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}
