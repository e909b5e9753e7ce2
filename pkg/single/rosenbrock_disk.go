package single

import (
	"github.com/yuulive/dfga/pkg/framework"
)

// RosenbrockDisk is the two-variable Rosenbrock function constrained to the
// disk of radius sqrt(2) centered at the origin. The unconstrained minimizer
// (1, 1) lies on the disk boundary, so the constrained minimum is still 0.
// https://en.wikipedia.org/wiki/Test_functions_for_optimization
type RosenbrockDisk struct{}

var _ framework.SingleObjective = RosenbrockDisk{}
var _ framework.Constrained = RosenbrockDisk{}

func (RosenbrockDisk) Name() string {
	return "RosenbrockDisk"
}

func (RosenbrockDisk) Dimensions() int {
	return 2
}

func (RosenbrockDisk) Bounds(int) []framework.Bounds {
	return framework.Unbounded(2)
}

func (f RosenbrockDisk) Evaluate(x []float64) (float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return 0, err
	}
	d := x[1] - x[0]*x[0]
	return (1-x[0])*(1-x[0]) + 100*d*d, nil
}

func (RosenbrockDisk) Minimum() float64 {
	return 0
}

func (RosenbrockDisk) Minimizer(int) []float64 {
	return []float64{1, 1}
}

func (RosenbrockDisk) NumEquality() int {
	return 0
}

func (RosenbrockDisk) NumInequality() int {
	return 1
}

func (f RosenbrockDisk) EqualityConstraints(x []float64) ([]float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f RosenbrockDisk) InequalityConstraints(x []float64) ([]float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return nil, err
	}
	return []float64{x[0]*x[0] + x[1]*x[1] - 2}, nil
}
