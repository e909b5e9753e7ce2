package single

import (
	"github.com/yuulive/dfga/pkg/framework"
)

// Rosenbrock is the classic banana valley. The global minimum lies inside a
// long, narrow, parabolic valley that is easy to reach and hard to traverse.
// The scalable form sums the coupled two-variable terms over consecutive
// coordinate pairs, so a single-variable input degenerates to zero.
// https://en.wikipedia.org/wiki/Test_functions_for_optimization
type Rosenbrock struct{}

var _ framework.SingleObjective = Rosenbrock{}

func (Rosenbrock) Name() string {
	return "Rosenbrock"
}

func (Rosenbrock) Dimensions() int {
	return framework.AnyDimensions
}

func (Rosenbrock) Bounds(n int) []framework.Bounds {
	return framework.UniformBounds(-5, 10, n)
}

func (f Rosenbrock) Evaluate(x []float64) (float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return 0, err
	}
	var fx float64
	for i := 0; i < len(x)-1; i++ {
		d := x[i+1] - x[i]*x[i]
		fx += 100*d*d + (1-x[i])*(1-x[i])
	}
	return fx, nil
}

func (Rosenbrock) Minimum() float64 {
	return 0
}

// Minimizer is the all-ones vector.
func (Rosenbrock) Minimizer(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = 1
	}
	return x
}
