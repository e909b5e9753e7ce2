package single

import (
	"math"

	"github.com/yuulive/dfga/pkg/framework"
)

// Rastrigin is a highly multimodal function: a sphere modulated by a cosine
// ripple that produces a regular grid of local minima around the single
// global one at the origin.
// https://en.wikipedia.org/wiki/Test_functions_for_optimization
type Rastrigin struct{}

var _ framework.SingleObjective = Rastrigin{}

func (Rastrigin) Name() string {
	return "Rastrigin"
}

func (Rastrigin) Dimensions() int {
	return framework.AnyDimensions
}

func (Rastrigin) Bounds(n int) []framework.Bounds {
	return framework.UniformBounds(-5.12, 5.12, n)
}

func (f Rastrigin) Evaluate(x []float64) (float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return 0, err
	}
	const a = 10.0
	fx := a * float64(len(x))
	for _, xi := range x {
		fx += xi*xi - a*math.Cos(2*math.Pi*xi)
	}
	return fx, nil
}

func (Rastrigin) Minimum() float64 {
	return 0
}

func (Rastrigin) Minimizer(n int) []float64 {
	return make([]float64, n)
}
