package interpolate

import (
	"fmt"
)

// closeEps is the absolute tolerance used to decide whether a query value
// sits exactly on a grid point. Axis validation and all boundary detection
// depend on this exact value, so it is not configurable.
const closeEps = 1e-12

// IsClose returns true if a and b are equal to within an absolute tolerance
// of 1e-12.
func IsClose(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= closeEps
}

// Location is the result of locating a query value on an axis. Lo == Hi
// means the value sits on grid point Lo, otherwise the value is strictly
// between grid points Lo and Hi = Lo + 1.
type Location struct {
	Lo, Hi int
}

// Exact returns true if the located value sits on a grid point.
func (loc Location) Exact() bool { return loc.Lo == loc.Hi }

// OutOfBoundsError is returned when a query value lies outside the valid
// domain of an axis. Values are never clamped or extrapolated.
type OutOfBoundsError struct {
	Value, Min, Max float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"Value %g outside of table range [%g, %g].", e.Value, e.Min, e.Max,
	)
}

// Axis is a strictly increasing 1D coordinate grid.
type Axis interface {
	Len() int
	At(i int) float64
	First() float64
	Last() float64
	Locate(x float64) (Location, error)
	LinearStencil(x float64) (Stencil, error)
}

var (
	_ Axis = UniformAxis{}
	_ Axis = IrregularAxis{}
)

// UniformAxis is an evenly spaced strictly increasing axis. Lookups are
// O(1).
type UniformAxis struct {
	x0, dx float64
	n      int
}

// NewUniformAxis creates an axis with n points starting at x0 and separated
// by dx.
func NewUniformAxis(x0, dx float64, n int) UniformAxis {
	if dx <= 0 || n < 2 {
		panic(fmt.Sprintf(
			"UniformAxis must have dx > 0 and n >= 2, got dx = %g, n = %d.",
			dx, n,
		))
	}
	return UniformAxis{x0, dx, n}
}

// UniformAxisFromValues creates a UniformAxis from explicit axis values,
// checking point by point that they form an arithmetic progression. This
// guards against treating non-uniform source data as uniform.
func UniformAxisFromValues(xs []float64) (UniformAxis, error) {
	if len(xs) < 2 {
		return UniformAxis{}, fmt.Errorf(
			"Axis needs at least 2 values, got %d.", len(xs),
		)
	}
	dx := (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	if dx <= 0 {
		return UniformAxis{}, fmt.Errorf(
			"Axis values starting at %g are not strictly increasing.", xs[0],
		)
	}
	for i, x := range xs {
		if !IsClose(x, xs[0]+float64(i)*dx) {
			return UniformAxis{}, fmt.Errorf(
				"Axis values are not uniformly spaced: value %d is %g, "+
					"but the axis spacing %g puts it at %g.",
				i, x, dx, xs[0]+float64(i)*dx,
			)
		}
	}
	return UniformAxis{xs[0], dx, len(xs)}, nil
}

func (ax UniformAxis) Len() int         { return ax.n }
func (ax UniformAxis) At(i int) float64 { return ax.x0 + float64(i)*ax.dx }
func (ax UniformAxis) First() float64   { return ax.x0 }
func (ax UniformAxis) Last() float64    { return ax.At(ax.n - 1) }
func (ax UniformAxis) Step() float64    { return ax.dx }

// Equal returns true if the two axes have the same length and the same
// first point and spacing to within tolerance.
func (ax UniformAxis) Equal(other UniformAxis) bool {
	return ax.n == other.n &&
		IsClose(ax.x0, other.x0) && IsClose(ax.dx, other.dx)
}

// Locate classifies x against the axis grid. Values within tolerance of a
// grid point are Exact, interior values are bracketed between the two
// neighboring points, and values strictly outside [First, Last] fail with
// an *OutOfBoundsError.
func (ax UniformAxis) Locate(x float64) (Location, error) {
	if IsClose(x, ax.First()) {
		return Location{0, 0}, nil
	} else if IsClose(x, ax.Last()) {
		return Location{ax.n - 1, ax.n - 1}, nil
	} else if x < ax.First() || x > ax.Last() {
		return Location{}, &OutOfBoundsError{x, ax.First(), ax.Last()}
	}

	// Guess from the spacing, then test the guess and its right neighbor
	// for an exact hit.
	i := int((x - ax.x0) / ax.dx)
	if i > ax.n-2 {
		i = ax.n - 2
	}
	if IsClose(x, ax.At(i)) {
		return Location{i, i}, nil
	} else if IsClose(x, ax.At(i+1)) {
		return Location{i + 1, i + 1}, nil
	}
	return Location{i, i + 1}, nil
}

// contains returns true if x lies within [First, Last], with tolerance at
// both endpoints.
func (ax UniformAxis) contains(x float64) bool {
	return (x >= ax.First() || IsClose(x, ax.First())) &&
		(x <= ax.Last() || IsClose(x, ax.Last()))
}

// Intersect returns the longest contiguous sub-axis of ax whose every
// point lies within other's bounds. Containment is by value, not by shared
// spacing. ok is false if fewer than 2 points survive.
func (ax UniformAxis) Intersect(other UniformAxis) (sub UniformAxis, ok bool) {
	start := -1
	count := 0
	for i := 0; i < ax.n; i++ {
		if !other.contains(ax.At(i)) {
			if start != -1 {
				break
			}
			continue
		}
		if start == -1 {
			start = i
		}
		count++
	}

	if count < 2 {
		return UniformAxis{}, false
	}
	return UniformAxis{ax.At(start), ax.dx, count}, true
}

// IrregularAxis is a strictly increasing axis with arbitrary spacing.
// Lookups are O(n): the axes this backs are short composition grids.
type IrregularAxis struct {
	xs []float64
}

// NewIrregularAxis creates an axis from explicit values, which must be
// strictly increasing. The values are copied.
func NewIrregularAxis(xs []float64) (IrregularAxis, error) {
	if len(xs) < 2 {
		return IrregularAxis{}, fmt.Errorf(
			"Axis needs at least 2 values, got %d.", len(xs),
		)
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return IrregularAxis{}, fmt.Errorf(
				"Axis values are not strictly increasing: value %d is %g, "+
					"but value %d is %g.",
				i-1, xs[i-1], i, xs[i],
			)
		}
	}
	out := make([]float64, len(xs))
	copy(out, xs)
	return IrregularAxis{out}, nil
}

func (ax IrregularAxis) Len() int         { return len(ax.xs) }
func (ax IrregularAxis) At(i int) float64 { return ax.xs[i] }
func (ax IrregularAxis) First() float64   { return ax.xs[0] }
func (ax IrregularAxis) Last() float64    { return ax.xs[len(ax.xs)-1] }

// Locate classifies x against the axis grid, as in UniformAxis.Locate.
func (ax IrregularAxis) Locate(x float64) (Location, error) {
	for i, v := range ax.xs {
		if IsClose(x, v) {
			return Location{i, i}, nil
		}
	}
	if x < ax.First() || x > ax.Last() {
		return Location{}, &OutOfBoundsError{x, ax.First(), ax.Last()}
	}
	for i := 1; i < len(ax.xs); i++ {
		if x < ax.xs[i] {
			return Location{i - 1, i}, nil
		}
	}
	panic("Impossible")
}
