// Package framework defines the contracts shared by every benchmark function
// in the catalog: the capability interfaces, the canonical bounds model, and
// small helpers for working with objective-space points.
package framework

import (
	"math"
	"math/rand"
)

// AnyDimensions marks a scalable function, one that accepts input vectors of
// any length >= 1. Fixed-dimensionality functions report their required
// length instead.
const AnyDimensions = 0

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func([]float64) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Bounds is one closed per-dimension interval of a function's canonical
// domain. Bounds are advisory: evaluation outside them is permitted and
// simply extrapolates the formula. Functions conventionally evaluated
// without a domain report infinite endpoints.
type Bounds struct {
	L float64
	H float64
}

// Function is the metadata capability shared by both catalog groups.
type Function interface {
	Name() string

	// Dimensions reports the input length the function requires, or
	// AnyDimensions when any length >= 1 is accepted.
	Dimensions() int

	// Bounds returns the canonical domain, one interval per dimension,
	// length n. Fixed-dimensionality functions ignore n and return their
	// fixed-length domain.
	Bounds(n int) []Bounds
}

// SingleObjective describes the contract a single-objective benchmark
// function needs to implement. All methods are pure and safe for concurrent
// use; descriptors carry no state.
type SingleObjective interface {
	Function

	// Evaluate computes the scalar fitness of x. The only failure mode is a
	// *DimensionError when len(x) violates the function's arity.
	Evaluate(x []float64) (float64, error)

	// Minimum returns the known global minimum value, a constant fact per
	// function.
	Minimum() float64

	// Minimizer returns one input vector of length n achieving Minimum().
	// The vector is closed form, not searched. Fixed-dimensionality
	// functions ignore n.
	Minimizer(n int) []float64
}

// MultiObjective describes the contract a multi-objective benchmark function
// needs to implement. There is no single minimum to report; the known
// optimum is the Pareto front.
type MultiObjective interface {
	Function

	// NumObjectives reports how many fitness values Evaluate returns.
	NumObjectives() int

	// Evaluate computes the vector fitness of x, length NumObjectives().
	Evaluate(x []float64) ([]float64, error)

	// TrueParetoFront samples numPoints points of the known Pareto front,
	// both endpoints included, so counts below 2 yield nil. It is optional
	// due to the difficulty of finding the true front in some types of
	// problems. When there isn't a closed form, it returns nil.
	TrueParetoFront(numPoints int) []ObjectiveSpacePoint
}

// Constrained is the optional capability of functions whose canonical
// problem statement carries constraints. A point is feasible when every
// equality constraint is zero and every inequality constraint is <= 0.
type Constrained interface {
	NumEquality() int
	NumInequality() int
	EqualityConstraints(x []float64) ([]float64, error)
	InequalityConstraints(x []float64) ([]float64, error)
}

// UniformBounds returns n copies of the interval [l, h].
func UniformBounds(l, h float64, n int) []Bounds {
	b := make([]Bounds, n)
	for i := range b {
		b[i] = Bounds{L: l, H: h}
	}
	return b
}

// Unbounded returns n infinite intervals.
func Unbounded(n int) []Bounds {
	return UniformBounds(math.Inf(-1), math.Inf(1), n)
}

// InBounds reports whether x lies componentwise inside b. The slices must
// have equal length.
func InBounds(b []Bounds, x []float64) bool {
	for i, xi := range x {
		if xi < b[i].L || xi > b[i].H {
			return false
		}
	}
	return true
}

// RandomVector draws a uniform sample inside b, one coordinate per interval.
// Intervals with infinite endpoints have no sampling box and yield non-finite
// coordinates.
func RandomVector(b []Bounds) []float64 {
	x := make([]float64, len(b))
	for i := range x {
		x[i] = b[i].L + rand.Float64()*(b[i].H-b[i].L)
	}
	return x
}

// ObjectiveFuncs splits f into one closure per objective, the form
// multi-objective solvers consume. Inputs whose length f rejects evaluate to
// NaN.
func ObjectiveFuncs(f MultiObjective) []ObjectiveFunc {
	fns := make([]ObjectiveFunc, f.NumObjectives())
	for i := range fns {
		i := i // per-iteration copy; the closure below must see its own index
		fns[i] = func(x []float64) float64 {
			fx, err := f.Evaluate(x)
			if err != nil {
				return math.NaN()
			}
			return fx[i]
		}
	}
	return fns
}

// Feasible reports whether x satisfies every constraint of c: equality
// constraints exactly zero, inequality constraints <= 0. Callers that need
// a tolerance on equality constraints should inspect the constraint vectors
// directly.
func Feasible(c Constrained, x []float64) (bool, error) {
	h, err := c.EqualityConstraints(x)
	if err != nil {
		return false, err
	}
	for _, hi := range h {
		if hi != 0 {
			return false, nil
		}
	}
	g, err := c.InequalityConstraints(x)
	if err != nil {
		return false, err
	}
	for _, gi := range g {
		if gi > 0 {
			return false, nil
		}
	}
	return true, nil
}

// Dominates checks if point a dominates point b, assuming minimization of
// every objective.
func Dominates(a, b ObjectiveSpacePoint) bool {
	better := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// NonDominated filters points down to its non-dominated subset, preserving
// order. For a correctly sampled Pareto front it returns every point.
func NonDominated(points []ObjectiveSpacePoint) []ObjectiveSpacePoint {
	var front []ObjectiveSpacePoint
	for i, p := range points {
		dominated := false
		for j, q := range points {
			if i != j && Dominates(q, p) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, p)
		}
	}
	return front
}
