package multi

import (
	"math"

	"github.com/yuulive/dfga/pkg/framework"
)

// FonsecaFleming is a scalable two-objective problem whose objectives are
// unit-depth Gaussian wells centered at +-1/sqrt(n) along the diagonal.
// https://en.wikipedia.org/wiki/Test_functions_for_optimization
type FonsecaFleming struct{}

var _ framework.MultiObjective = FonsecaFleming{}

func (FonsecaFleming) Name() string {
	return "FonsecaFleming"
}

func (FonsecaFleming) Dimensions() int {
	return framework.AnyDimensions
}

func (FonsecaFleming) NumObjectives() int {
	return 2
}

func (FonsecaFleming) Bounds(n int) []framework.Bounds {
	return framework.UniformBounds(-4, 4, n)
}

func (f FonsecaFleming) Evaluate(x []float64) ([]float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return nil, err
	}
	inv := 1 / math.Sqrt(float64(len(x)))
	var s1, s2 float64
	for _, xi := range x {
		a := xi - inv
		b := xi + inv
		s1 += a * a
		s2 += b * b
	}
	return []float64{
		1 - math.Exp(-s1),
		1 - math.Exp(-s2),
	}, nil
}

// TrueParetoFront generates numPoints points on the true Pareto front. The
// front is traced by x = (s, ..., s)/sqrt(n) for s in [-1, 1] and is the
// same curve in objective space for every dimension.
func (FonsecaFleming) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	if numPoints < 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		s := -1 + 2*float64(i)/float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			1 - math.Exp(-(s-1)*(s-1)),
			1 - math.Exp(-(s+1)*(s+1)),
		}
	}
	return points
}
