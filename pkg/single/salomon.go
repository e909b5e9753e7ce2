package single

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/yuulive/dfga/pkg/framework"
)

// Salomon depends on the input only through its Euclidean norm, so the local
// minima form concentric rings around the origin.
// https://www.sfu.ca/~ssurjano/optimization.html
type Salomon struct{}

var _ framework.SingleObjective = Salomon{}

func (Salomon) Name() string {
	return "Salomon"
}

func (Salomon) Dimensions() int {
	return framework.AnyDimensions
}

func (Salomon) Bounds(n int) []framework.Bounds {
	return framework.UniformBounds(-100, 100, n)
}

func (f Salomon) Evaluate(x []float64) (float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return 0, err
	}
	r := floats.Norm(x, 2)
	return 1 - math.Cos(2*math.Pi*r) + 0.1*r, nil
}

func (Salomon) Minimum() float64 {
	return 0
}

func (Salomon) Minimizer(n int) []float64 {
	return make([]float64, n)
}
