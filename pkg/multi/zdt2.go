package multi

import (
	"github.com/yuulive/dfga/pkg/framework"
)

// ZDT2 is the second Zitzler-Deb-Thiele problem. It shares the g function of
// ZDT1 but has a concave Pareto front.
type ZDT2 struct{}

var _ framework.MultiObjective = ZDT2{}

func (ZDT2) Name() string {
	return "ZDT2"
}

func (ZDT2) Dimensions() int {
	return framework.AnyDimensions
}

func (ZDT2) NumObjectives() int {
	return 2
}

func (ZDT2) Bounds(n int) []framework.Bounds {
	return framework.UniformBounds(0, 1, n)
}

func (f ZDT2) Evaluate(x []float64) ([]float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return nil, err
	}
	g := 1.0
	for i := 1; i < len(x); i++ {
		g += 9.0 * x[i] / float64(len(x)-1)
	}
	r := x[0] / g
	return []float64{
		x[0],
		g * (1 - r*r),
	}, nil
}

// TrueParetoFront generates numPoints points on the true Pareto front,
// reached at g = 1: f2 = 1 - f1^2.
func (ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	if numPoints < 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, 1 - x*x,
		}
	}
	return points
}
