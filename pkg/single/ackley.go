package single

import (
	"math"

	"github.com/yuulive/dfga/pkg/framework"
)

// Ackley combines an exponential well with a cosine ripple: a nearly flat
// outer region riddled with local minima and a deep hole at the origin. This
// is the canonical parameterization a=20, b=0.2, c=2pi on [-32.768, 32.768].
// https://en.wikipedia.org/wiki/Test_functions_for_optimization
type Ackley struct{}

var _ framework.SingleObjective = Ackley{}

func (Ackley) Name() string {
	return "Ackley"
}

func (Ackley) Dimensions() int {
	return framework.AnyDimensions
}

func (Ackley) Bounds(n int) []framework.Bounds {
	return framework.UniformBounds(-32.768, 32.768, n)
}

func (f Ackley) Evaluate(x []float64) (float64, error) {
	if err := framework.CheckInput(f, x); err != nil {
		return 0, err
	}
	const (
		a = 20.0
		b = 0.2
		c = 2 * math.Pi
	)
	n := float64(len(x))
	var ss, cs float64
	for _, xi := range x {
		ss += xi * xi
		cs += math.Cos(c * xi)
	}
	return -a*math.Exp(-b*math.Sqrt(ss/n)) - math.Exp(cs/n) + a + math.E, nil
}

func (Ackley) Minimum() float64 {
	return 0
}

func (Ackley) Minimizer(n int) []float64 {
	return make([]float64, n)
}
