package multi

import (
	"math"

	"github.com/yuulive/dfga/pkg/framework"
)

// Viennet is a two-variable problem with three objectives, all radially
// symmetric or near-symmetric around the origin.
// https://en.wikipedia.org/wiki/Test_functions_for_optimization
type Viennet struct{}

var _ framework.MultiObjective = Viennet{}

func (Viennet) Name() string {
	return "Viennet"
}

func (Viennet) Dimensions() int {
	return 2
}

func (Viennet) NumObjectives() int {
	return 3
}

func (Viennet) Bounds(int) []framework.Bounds {
	return framework.UniformBounds(-3, 3, 2)
}

func (f Viennet) Evaluate(x []float64) ([]float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return nil, err
	}
	u := x[0]*x[0] + x[1]*x[1]
	a := 3*x[0] - 2*x[1] + 4
	b := x[0] - x[1] + 1
	return []float64{
		0.5*u + math.Sin(u),
		a*a/8 + b*b/27 + 15,
		1/(u+1) - 1.1*math.Exp(-u),
	}, nil
}

// TrueParetoFront returns nil; the front has no closed form.
func (Viennet) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}
