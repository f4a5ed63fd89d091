package dotcanvas

import "fmt"

// MaxGridDim is the largest cell count allowed per grid axis. It bounds
// worst-case memory use against accidental or hostile inputs.
const MaxGridDim = 10000

// DimensionsError reports a grid dimension that is zero or exceeds MaxGridDim.
type DimensionsError struct {
	Width, Height int
}

func (e *DimensionsError) Error() string {
	return fmt.Sprintf("dotcanvas: invalid grid dimensions %dx%d (each axis must be 1..%d)", e.Width, e.Height, MaxGridDim)
}

// BoundsError reports a cell coordinate outside the current grid shape.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("dotcanvas: cell (%d,%d) out of bounds for %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// DotIndexError reports a dot index outside 0..7.
type DotIndexError struct {
	Index int
}

func (e *DotIndexError) Error() string {
	return fmt.Sprintf("dotcanvas: dot index %d out of range 0..7", e.Index)
}

// ParamRangeError reports a tonal adjustment factor outside its documented
// range.
type ParamRangeError struct {
	Param    string
	Value    float64
	Min, Max float64
}

func (e *ParamRangeError) Error() string {
	return fmt.Sprintf("dotcanvas: %s %v out of range [%v, %v]", e.Param, e.Value, e.Min, e.Max)
}

// SourceError wraps a failure from an upstream image source (file, URL or
// stream decode) without converting it to a default image.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("dotcanvas: reading %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
