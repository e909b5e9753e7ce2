package single

import (
	"gonum.org/v1/gonum/floats"

	"github.com/yuulive/dfga/pkg/framework"
)

// Sphere is the sum-of-squares bowl, the simplest convex benchmark. It is
// scalable to any dimension and its canonical problem is unrestricted, so
// the bounds are infinite.
// https://en.wikipedia.org/wiki/Test_functions_for_optimization
type Sphere struct{}

var _ framework.SingleObjective = Sphere{}

func (Sphere) Name() string {
	return "Sphere"
}

func (Sphere) Dimensions() int {
	return framework.AnyDimensions
}

func (Sphere) Bounds(n int) []framework.Bounds {
	return framework.Unbounded(n)
}

func (f Sphere) Evaluate(x []float64) (float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return 0, err
	}
	return floats.Dot(x, x), nil
}

func (Sphere) Minimum() float64 {
	return 0
}

func (Sphere) Minimizer(n int) []float64 {
	return make([]float64, n)
}
