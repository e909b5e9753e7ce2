package single

import (
	"math"

	"github.com/yuulive/dfga/pkg/framework"
)

// Griewank spreads many regularly distributed local minima over a wide
// domain; the product term couples every dimension, which makes the
// function harder at low dimension than at high.
// https://www.sfu.ca/~ssurjano/griewank.html
type Griewank struct{}

var _ framework.SingleObjective = Griewank{}

func (Griewank) Name() string {
	return "Griewank"
}

func (Griewank) Dimensions() int {
	return framework.AnyDimensions
}

func (Griewank) Bounds(n int) []framework.Bounds {
	return framework.UniformBounds(-600, 600, n)
}

func (f Griewank) Evaluate(x []float64) (float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return 0, err
	}
	var ss float64
	prod := 1.0
	for i, xi := range x {
		ss += xi * xi
		prod *= math.Cos(xi / math.Sqrt(float64(i+1)))
	}
	return 1 + ss/4000 - prod, nil
}

func (Griewank) Minimum() float64 {
	return 0
}

func (Griewank) Minimizer(n int) []float64 {
	return make([]float64, n)
}
