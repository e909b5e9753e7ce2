package multi

import (
	"github.com/yuulive/dfga/pkg/framework"
)

// ChankongHaimes is a two-variable problem with two competing quadratic
// objectives and two inequality constraints.
// https://en.wikipedia.org/wiki/Test_functions_for_optimization
type ChankongHaimes struct{}

var _ framework.MultiObjective = ChankongHaimes{}
var _ framework.Constrained = ChankongHaimes{}

func (ChankongHaimes) Name() string {
	return "ChankongHaimes"
}

func (ChankongHaimes) Dimensions() int {
	return 2
}

func (ChankongHaimes) NumObjectives() int {
	return 2
}

func (ChankongHaimes) Bounds(int) []framework.Bounds {
	return framework.UniformBounds(-20, 20, 2)
}

func (f ChankongHaimes) Evaluate(x []float64) ([]float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return nil, err
	}
	a := x[0] - 2
	b := x[1] - 1
	return []float64{
		2 + a*a + b*b,
		9*x[0] - b*b,
	}, nil
}

// TrueParetoFront returns nil; the front has no closed form.
func (ChankongHaimes) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}

func (ChankongHaimes) NumEquality() int {
	return 0
}

func (ChankongHaimes) NumInequality() int {
	return 2
}

func (f ChankongHaimes) EqualityConstraints(x []float64) ([]float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f ChankongHaimes) InequalityConstraints(x []float64) ([]float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return nil, err
	}
	return []float64{
		x[0]*x[0] + x[1]*x[1] - 225,
		x[0] - 3*x[1] + 10,
	}, nil
}
