// Package multi contains the multi-objective benchmark functions. Every
// entry is a stateless descriptor evaluating all of its objectives in one
// call; problems with a known closed-form Pareto front can also sample it.
package multi

import (
	"github.com/yuulive/dfga/pkg/framework"
)

// catalog is the closed set of multi-objective benchmarks, in declaration
// order.
var catalog = []framework.MultiObjective{
	ChankongHaimes{},
	FonsecaFleming{},
	Viennet{},
	ZDT1{},
	ZDT2{},
}

// Functions returns every multi-objective benchmark in the catalog. The
// returned slice is a fresh copy; the descriptors themselves are immutable.
func Functions() []framework.MultiObjective {
	out := make([]framework.MultiObjective, len(catalog))
	copy(out, catalog)
	return out
}

// ByName looks up a benchmark by the name its Name method reports.
func ByName(name string) (framework.MultiObjective, bool) {
	for _, f := range catalog {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}
