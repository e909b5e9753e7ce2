package framework

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parabolaPair is a one-variable stand-in with two competing objectives,
// minimized at 0 and 1 respectively.
type parabolaPair struct{}

func (parabolaPair) Name() string        { return "parabolaPair" }
func (parabolaPair) Dimensions() int     { return 1 }
func (parabolaPair) NumObjectives() int  { return 2 }
func (parabolaPair) Bounds(int) []Bounds { return UniformBounds(0, 1, 1) }

func (f parabolaPair) Evaluate(x []float64) ([]float64, error) {
	if err := CheckInput(f, x); err != nil {
		return nil, err
	}
	return []float64{x[0] * x[0], (x[0] - 1) * (x[0] - 1)}, nil
}

func (parabolaPair) TrueParetoFront(int) []ObjectiveSpacePoint { return nil }

// unitDisk is a stand-in constraint set: x[0]+x[1] = 0 and |x| <= 1.
type unitDisk struct{}

func (unitDisk) NumEquality() int   { return 1 }
func (unitDisk) NumInequality() int { return 1 }

func (unitDisk) EqualityConstraints(x []float64) ([]float64, error) {
	return []float64{x[0] + x[1]}, nil
}

func (unitDisk) InequalityConstraints(x []float64) ([]float64, error) {
	return []float64{x[0]*x[0] + x[1]*x[1] - 1}, nil
}

func TestUniformBounds(t *testing.T) {
	want := []Bounds{{L: -5.12, H: 5.12}, {L: -5.12, H: 5.12}, {L: -5.12, H: 5.12}}
	if diff := cmp.Diff(want, UniformBounds(-5.12, 5.12, 3)); diff != "" {
		t.Errorf("unexpected bounds (-want, +got):\n%s", diff)
	}

	assert.Empty(t, UniformBounds(0, 1, 0))
}

func TestUnbounded(t *testing.T) {
	b := Unbounded(2)
	require.Len(t, b, 2)
	for _, bi := range b {
		assert.True(t, math.IsInf(bi.L, -1))
		assert.True(t, math.IsInf(bi.H, 1))
	}
}

func TestInBounds(t *testing.T) {
	box := UniformBounds(-1, 1, 2)

	tests := []struct {
		name string
		b    []Bounds
		x    []float64
		want bool
	}{
		{name: "interior", b: box, x: []float64{0, 0.5}, want: true},
		{name: "lower edge", b: box, x: []float64{-1, 0}, want: true},
		{name: "upper edge", b: box, x: []float64{1, 1}, want: true},
		{name: "below", b: box, x: []float64{-1.5, 0}, want: false},
		{name: "above", b: box, x: []float64{0, 2}, want: false},
		{name: "infinite box", b: Unbounded(2), x: []float64{1e300, -1e300}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InBounds(tt.b, tt.x))
		})
	}
}

func TestRandomVector(t *testing.T) {
	b := []Bounds{{L: -2, H: 2}, {L: 0, H: 1}, {L: 10, H: 10}}

	for i := 0; i < 100; i++ {
		x := RandomVector(b)
		require.Len(t, x, len(b))
		assert.True(t, InBounds(b, x), "draw %v escaped %v", x, b)
	}
}

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a    ObjectiveSpacePoint
		b    ObjectiveSpacePoint
		want bool
	}{
		{name: "better in all", a: ObjectiveSpacePoint{1, 1}, b: ObjectiveSpacePoint{2, 2}, want: true},
		{name: "better in one equal in other", a: ObjectiveSpacePoint{1, 2}, b: ObjectiveSpacePoint{2, 2}, want: true},
		{name: "equal", a: ObjectiveSpacePoint{1, 1}, b: ObjectiveSpacePoint{1, 1}, want: false},
		{name: "worse in one", a: ObjectiveSpacePoint{1, 3}, b: ObjectiveSpacePoint{2, 2}, want: false},
		{name: "worse in all", a: ObjectiveSpacePoint{3, 3}, b: ObjectiveSpacePoint{2, 2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dominates(tt.a, tt.b))
		})
	}
}

func TestNonDominated(t *testing.T) {
	tests := []struct {
		name   string
		points []ObjectiveSpacePoint
		want   []ObjectiveSpacePoint
	}{
		{
			name: "mixed set",
			points: []ObjectiveSpacePoint{
				{0, 3},
				{2, 2}, // dominated by {1, 1}
				{1, 1},
				{3, 0},
				{1, 1.5}, // dominated by {1, 1}
			},
			want: []ObjectiveSpacePoint{{0, 3}, {1, 1}, {3, 0}},
		},
		{
			name: "equal coordinate still dominates",
			points: []ObjectiveSpacePoint{
				{0, 1},
				{1, 1}, // dominated by {0, 1}
				{1, 0},
			},
			want: []ObjectiveSpacePoint{{0, 1}, {1, 0}},
		},
		{
			name:   "duplicates survive",
			points: []ObjectiveSpacePoint{{1, 1}, {1, 1}},
			want:   []ObjectiveSpacePoint{{1, 1}, {1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, NonDominated(tt.points)); diff != "" {
				t.Errorf("unexpected front (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestObjectiveFuncs(t *testing.T) {
	fns := ObjectiveFuncs(parabolaPair{})
	require.Len(t, fns, 2)

	x := []float64{0.25}
	fx, err := parabolaPair{}.Evaluate(x)
	require.NoError(t, err)
	assert.Equal(t, fx[0], fns[0](x))
	assert.Equal(t, fx[1], fns[1](x))

	// Rejected inputs surface as NaN, not as a panic.
	assert.True(t, math.IsNaN(fns[0](nil)))
	assert.True(t, math.IsNaN(fns[1]([]float64{1, 2})))
}

func TestFeasible(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want bool
	}{
		{name: "origin", x: []float64{0, 0}, want: true},
		{name: "interior on the line", x: []float64{0.6, -0.6}, want: true},
		{name: "equality violated", x: []float64{0.5, 0}, want: false},
		{name: "inequality violated", x: []float64{1, -1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Feasible(unitDisk{}, tt.x)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
