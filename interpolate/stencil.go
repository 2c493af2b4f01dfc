package interpolate

import (
	"fmt"
)

///////////////////
// Linear blends //
///////////////////

// LinearBlend interpolates between two anchor points with precomputed
// weights, so that the same blend can be reused across whole arrays.
type LinearBlend struct {
	w float64
}

// NewLinearBlend creates a blend evaluated at the point at between the
// anchors left and right. The anchors must strictly bracket at: exact hits
// must be routed around this constructor by the caller.
func NewLinearBlend(left, right, at float64) LinearBlend {
	if !(left < at && at < right) {
		panic(fmt.Sprintf(
			"LinearBlend anchors [%g, %g] do not bracket %g.",
			left, right, at,
		))
	}
	return LinearBlend{(right - at) / (right - left)}
}

// Blend returns the interpolated value between l, the value at the left
// anchor, and r, the value at the right anchor.
func (b LinearBlend) Blend(l, r float64) float64 {
	return b.w*l + (1-b.w)*r
}

// BlendSlice blends two arrays of anchor values element-wise into dst.
// dst may alias l or r.
func (b LinearBlend) BlendSlice(dst, l, r []float64) {
	if len(dst) != len(l) || len(dst) != len(r) {
		panic(fmt.Sprintf(
			"BlendSlice got slices of length %d, %d, and %d.",
			len(dst), len(l), len(r),
		))
	}
	for i := range dst {
		dst[i] = b.w*l[i] + (1-b.w)*r[i]
	}
}

////////////////////
// Cubic splines  //
////////////////////

// Spline1D evaluates a centered cubic spline through the 4-point window
// (xs, ys) at the point at, which must lie within [xs[1], xs[2]]. The
// derivatives at the two inner points are estimated by centered finite
// differences, which reproduces linear and quadratic data exactly and is
// C1-continuous across neighboring windows.
func Spline1D(xs, ys [4]float64, at float64) float64 {
	dyLeft := (ys[2] - ys[0]) / (xs[2] - xs[0])
	dyRight := (ys[3] - ys[1]) / (xs[3] - xs[1])

	a := dyLeft*(xs[2]-xs[1]) - (ys[2] - ys[1])
	b := -dyRight*(xs[2]-xs[1]) + (ys[2] - ys[1])

	t := (at - xs[1]) / (xs[2] - xs[1])
	return (1-t)*ys[1] + t*ys[2] + t*(1-t)*(a*(1-t)+b*t)
}

//////////////
// Stencils //
//////////////

type stencilKind int

const (
	exactKind stencilKind = iota
	linearKind
	splineKind
)

// Stencil selects the consecutive grid points needed to evaluate a query
// value on an axis, along with the interpolation rule over them: a single
// exact point, a 2-point linear blend, or a 4-point spline window.
type Stencil struct {
	kind  stencilKind
	start int
	n     int
	w     float64    // left weight for linear stencils
	xs    [4]float64 // window abscissas for spline stencils
	at    float64
}

// Start returns the first grid index the stencil reads.
func (s Stencil) Start() int { return s.start }

// Len returns the number of consecutive grid points the stencil reads.
func (s Stencil) Len() int { return s.n }

// Exact returns true if the stencil is a single-point lookup.
func (s Stencil) Exact() bool { return s.kind == exactKind }

// Rebase returns the stencil shifted so that grid index base maps to 0,
// for evaluation against a sliced-out window rather than the full grid.
func (s Stencil) Rebase(base int) Stencil {
	s.start -= base
	return s
}

// Apply evaluates the stencil over a strided lane of ordinates: window
// point k reads vals[k*stride]. vals must already be offset so that its
// first element is the stencil's start point.
func (s Stencil) Apply(vals []float64, stride int) float64 {
	var ys [4]float64
	for k := 0; k < s.n; k++ {
		ys[k] = vals[k*stride]
	}
	return s.apply(ys)
}

func (s Stencil) apply(ys [4]float64) float64 {
	switch s.kind {
	case exactKind:
		return ys[0]
	case linearKind:
		return s.w*ys[0] + (1-s.w)*ys[1]
	default:
		return Spline1D(s.xs, ys, s.at)
	}
}

func exactStencil(i int) Stencil {
	return Stencil{kind: exactKind, start: i, n: 1}
}

// LinearStencil locates x on the axis and returns the stencil for linear
// interpolation: exact hits become single-point stencils, interior values
// a 2-point blend.
func (ax UniformAxis) LinearStencil(x float64) (Stencil, error) {
	return linearStencil(ax, x)
}

// LinearStencil is the IrregularAxis version of
// UniformAxis.LinearStencil.
func (ax IrregularAxis) LinearStencil(x float64) (Stencil, error) {
	return linearStencil(ax, x)
}

func linearStencil(ax Axis, x float64) (Stencil, error) {
	loc, err := ax.Locate(x)
	if err != nil {
		return Stencil{}, err
	}
	if loc.Exact() {
		return exactStencil(loc.Lo), nil
	}
	left, right := ax.At(loc.Lo), ax.At(loc.Hi)
	return Stencil{
		kind:  linearKind,
		start: loc.Lo,
		n:     2,
		w:     (right - x) / (right - left),
	}, nil
}

// SplineStencil locates x on the axis and returns its 4-point cubic window
// [i-1, i+2]. The valid domain is [ax.At(1), ax.At(n-2)]: one point of
// margin is needed on each side for the derivative estimates, and hits on
// the two margin points themselves collapse to exact lookups.
func (ax UniformAxis) SplineStencil(x float64) (Stencil, error) {
	if ax.n < 4 {
		panic(fmt.Sprintf(
			"Spline windows need an axis with at least 4 points, got %d.",
			ax.n,
		))
	}

	lo, hi := ax.At(1), ax.At(ax.n-2)
	if IsClose(x, lo) {
		return exactStencil(1), nil
	} else if IsClose(x, hi) {
		return exactStencil(ax.n - 2), nil
	} else if x < lo || x > hi {
		return Stencil{}, &OutOfBoundsError{x, lo, hi}
	}

	i := int((x - ax.x0) / ax.dx)
	if i < 1 {
		i = 1
	}
	if i > ax.n-3 {
		i = ax.n - 3
	}

	s := Stencil{kind: splineKind, start: i - 1, n: 4, at: x}
	for k := 0; k < 4; k++ {
		s.xs[k] = ax.At(i - 1 + k)
	}
	return s, nil
}
