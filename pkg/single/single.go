// Package single contains the single-objective benchmark functions. Every
// entry is a stateless descriptor pairing a closed-form formula with its
// canonical bounds, known global minimum, and a minimizer generator.
package single

import (
	"github.com/yuulive/dfga/pkg/framework"
)

// catalog is the closed set of single-objective benchmarks, in declaration
// order.
var catalog = []framework.SingleObjective{
	Sphere{},
	Rastrigin{},
	Rosenbrock{},
	Ackley{},
	Matyas{},
	Griewank{},
	Ridge{},
	Zakharov{},
	Salomon{},
	RosenbrockCubicLine{},
	RosenbrockDisk{},
}

// Functions returns every single-objective benchmark in the catalog. The
// returned slice is a fresh copy; the descriptors themselves are immutable.
func Functions() []framework.SingleObjective {
	out := make([]framework.SingleObjective, len(catalog))
	copy(out, catalog)
	return out
}

// ByName looks up a benchmark by the name its Name method reports.
func ByName(name string) (framework.SingleObjective, bool) {
	for _, f := range catalog {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}
