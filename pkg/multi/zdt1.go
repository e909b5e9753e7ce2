package multi

import (
	"math"

	"github.com/yuulive/dfga/pkg/framework"
)

// ZDT1 is the first Zitzler-Deb-Thiele problem: a scalable two-objective
// benchmark with a convex Pareto front. For more details, check the article
// below:
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
type ZDT1 struct{}

var _ framework.MultiObjective = ZDT1{}

func (ZDT1) Name() string {
	return "ZDT1"
}

func (ZDT1) Dimensions() int {
	return framework.AnyDimensions
}

func (ZDT1) NumObjectives() int {
	return 2
}

func (ZDT1) Bounds(n int) []framework.Bounds {
	return framework.UniformBounds(0, 1, n)
}

func (f ZDT1) Evaluate(x []float64) ([]float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return nil, err
	}
	g := 1.0
	for i := 1; i < len(x); i++ {
		g += 9.0 * x[i] / float64(len(x)-1)
	}
	return []float64{
		x[0],
		g * (1 - math.Sqrt(x[0]/g)),
	}, nil
}

// TrueParetoFront generates numPoints points on the true Pareto front,
// reached at g = 1: f2 = 1 - sqrt(f1).
func (ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	if numPoints < 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, 1 - math.Sqrt(x),
		}
	}
	return points
}
