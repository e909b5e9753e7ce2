package single

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/yuulive/dfga/pkg/framework"
)

// Ridge rewards sliding along the first axis while penalizing any distance
// from it: f(x) = x1 + d*(sum of tail squares)^alpha with d=1, alpha=0.5.
// The minimum sits on the lower edge of the box, at (-5, 0, ..., 0).
// https://www.sfu.ca/~ssurjano/optimization.html
type Ridge struct{}

var _ framework.SingleObjective = Ridge{}

func (Ridge) Name() string {
	return "Ridge"
}

func (Ridge) Dimensions() int {
	return framework.AnyDimensions
}

func (Ridge) Bounds(n int) []framework.Bounds {
	return framework.UniformBounds(-5, 5, n)
}

func (f Ridge) Evaluate(x []float64) (float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return 0, err
	}
	const (
		d     = 1.0
		alpha = 0.5
	)
	tail := x[1:]
	return x[0] + d*math.Pow(floats.Dot(tail, tail), alpha), nil
}

func (Ridge) Minimum() float64 {
	return -5
}

func (Ridge) Minimizer(n int) []float64 {
	x := make([]float64, n)
	x[0] = -5
	return x
}
