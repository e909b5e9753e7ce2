package single

import (
	"gonum.org/v1/gonum/floats"

	"github.com/yuulive/dfga/pkg/framework"
)

// Zakharov has no local minima besides the global one; a weighted linear
// sum raised to the second and fourth power steepens the bowl away from
// the origin.
// https://www.sfu.ca/~ssurjano/zakharov.html
type Zakharov struct{}

var _ framework.SingleObjective = Zakharov{}

func (Zakharov) Name() string {
	return "Zakharov"
}

func (Zakharov) Dimensions() int {
	return framework.AnyDimensions
}

func (Zakharov) Bounds(n int) []framework.Bounds {
	return framework.UniformBounds(-5, 10, n)
}

func (f Zakharov) Evaluate(x []float64) (float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return 0, err
	}
	var ws float64
	for i, xi := range x {
		ws += 0.5 * float64(i+1) * xi
	}
	ws2 := ws * ws
	return floats.Dot(x, x) + ws2 + ws2*ws2, nil
}

func (Zakharov) Minimum() float64 {
	return 0
}

func (Zakharov) Minimizer(n int) []float64 {
	return make([]float64, n)
}
