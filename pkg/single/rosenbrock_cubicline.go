package single

import (
	"github.com/yuulive/dfga/pkg/framework"
)

// RosenbrockCubicLine is the two-variable Rosenbrock function subject to two
// inequality constraints, a cubic and a line, whose feasible region is a
// crescent containing the unconstrained minimizer (1, 1) on its boundary.
// https://en.wikipedia.org/wiki/Test_functions_for_optimization
type RosenbrockCubicLine struct{}

var _ framework.SingleObjective = RosenbrockCubicLine{}
var _ framework.Constrained = RosenbrockCubicLine{}

func (RosenbrockCubicLine) Name() string {
	return "RosenbrockCubicLine"
}

func (RosenbrockCubicLine) Dimensions() int {
	return 2
}

func (RosenbrockCubicLine) Bounds(int) []framework.Bounds {
	return framework.Unbounded(2)
}

func (f RosenbrockCubicLine) Evaluate(x []float64) (float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return 0, err
	}
	d := x[1] - x[0]*x[0]
	return (1-x[0])*(1-x[0]) + 100*d*d, nil
}

func (RosenbrockCubicLine) Minimum() float64 {
	return 0
}

func (RosenbrockCubicLine) Minimizer(int) []float64 {
	return []float64{1, 1}
}

func (RosenbrockCubicLine) NumEquality() int {
	return 0
}

func (RosenbrockCubicLine) NumInequality() int {
	return 2
}

func (f RosenbrockCubicLine) EqualityConstraints(x []float64) ([]float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return nil, err
	}
	return nil, nil
}

// InequalityConstraints returns (x-1)^3 - y + 1 and x + y - 2; both are
// zero at the minimizer.
func (f RosenbrockCubicLine) InequalityConstraints(x []float64) ([]float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return nil, err
	}
	c := x[0] - 1
	return []float64{c*c*c - x[1] + 1, x[0] + x[1] - 2}, nil
}
