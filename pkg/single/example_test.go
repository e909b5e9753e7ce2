package single_test

import (
	"fmt"

	"github.com/yuulive/dfga/pkg/single"
)

func ExampleSphere_Evaluate() {
	fx, err := single.Sphere{}.Evaluate([]float64{1, 2, 3})
	fmt.Println(fx, err)
	// Output: 14 <nil>
}

func ExampleAckley() {
	f := single.Ackley{}
	fmt.Println(f.Minimum())
	fmt.Println(f.Minimizer(5))
	fmt.Println(f.Bounds(2)[0])
	// Output:
	// 0
	// [0 0 0 0 0]
	// {-32.768 32.768}
}

func ExampleByName() {
	f, ok := single.ByName("Rastrigin")
	if !ok {
		return
	}
	_, err := f.Evaluate([]float64{})
	fmt.Println(err)
	// Output: Rastrigin: invalid dimension: input has length 0, want at least 1
}
