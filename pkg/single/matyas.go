package single

import (
	"github.com/yuulive/dfga/pkg/framework"
)

// Matyas is a plate-shaped two-variable function with a shallow valley along
// the x = y diagonal. It is convex but poorly conditioned.
// https://en.wikipedia.org/wiki/Test_functions_for_optimization
type Matyas struct{}

var _ framework.SingleObjective = Matyas{}

func (Matyas) Name() string {
	return "Matyas"
}

func (Matyas) Dimensions() int {
	return 2
}

func (Matyas) Bounds(int) []framework.Bounds {
	return framework.UniformBounds(-10, 10, 2)
}

func (f Matyas) Evaluate(x []float64) (float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return 0, err
	}
	return 0.26*(x[0]*x[0]+x[1]*x[1]) - 0.48*x[0]*x[1], nil
}

func (Matyas) Minimum() float64 {
	return 0
}

func (Matyas) Minimizer(int) []float64 {
	return make([]float64, 2)
}
