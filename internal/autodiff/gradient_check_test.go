package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wengert-ml/wengert/internal/autodiff"
)

// numericalDerivative computes the derivative of f at x using central
// finite differences.
func numericalDerivative(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// evalAD records f on a fresh tape and returns the AD derivative at x.
func evalAD(f func(autodiff.Variable) autodiff.Variable, x float64) float64 {
	tape := autodiff.NewTape()
	v := tape.Var(x)
	return f(v).Accumulate().Wrt(v)
}

// TestGradientCheck_UnaryOps compares the recorded partial of every unary
// operator against a central finite difference at several points inside the
// operator's domain.
func TestGradientCheck_UnaryOps(t *testing.T) {
	const epsilon = 1e-6
	const tolerance = 1e-4

	tests := []struct {
		name   string
		ad     func(autodiff.Variable) autodiff.Variable
		fn     func(float64) float64
		points []float64
	}{
		{
			name:   "Neg",
			ad:     autodiff.Variable.Neg,
			fn:     func(x float64) float64 { return -x },
			points: []float64{-2.0, 0.5, 3.0},
		},
		{
			name:   "Recip",
			ad:     autodiff.Variable.Recip,
			fn:     func(x float64) float64 { return 1 / x },
			points: []float64{-2.0, 0.5, 3.0},
		},
		{
			name:   "Sqrt",
			ad:     autodiff.Variable.Sqrt,
			fn:     func(x float64) float64 { return math.Sqrt(x) },
			points: []float64{0.25, 1.0, 9.0},
		},
		{
			name:   "Exp",
			ad:     autodiff.Variable.Exp,
			fn:     func(x float64) float64 { return math.Exp(x) },
			points: []float64{-1.0, 0.0, 2.0},
		},
		{
			name:   "Ln",
			ad:     autodiff.Variable.Ln,
			fn:     func(x float64) float64 { return math.Log(x) },
			points: []float64{0.5, 1.0, 4.0},
		},
		{
			name:   "Log2",
			ad:     autodiff.Variable.Log2,
			fn:     func(x float64) float64 { return math.Log2(x) },
			points: []float64{0.5, 2.0, 8.0},
		},
		{
			name:   "Log10",
			ad:     autodiff.Variable.Log10,
			fn:     func(x float64) float64 { return math.Log10(x) },
			points: []float64{0.5, 1.0, 10.0},
		},
		{
			name:   "Sin",
			ad:     autodiff.Variable.Sin,
			fn:     math.Sin,
			points: []float64{-1.0, 0.0, 1.2},
		},
		{
			name:   "Cos",
			ad:     autodiff.Variable.Cos,
			fn:     math.Cos,
			points: []float64{-1.0, 0.0, 1.2},
		},
		{
			name:   "Tan",
			ad:     autodiff.Variable.Tan,
			fn:     math.Tan,
			points: []float64{-0.5, 0.0, 0.9},
		},
		{
			name:   "Asin",
			ad:     autodiff.Variable.Asin,
			fn:     math.Asin,
			points: []float64{-0.5, 0.0, 0.7},
		},
		{
			name:   "Acos",
			ad:     autodiff.Variable.Acos,
			fn:     math.Acos,
			points: []float64{-0.5, 0.0, 0.7},
		},
		{
			name:   "Atan",
			ad:     autodiff.Variable.Atan,
			fn:     math.Atan,
			points: []float64{-2.0, 0.0, 1.5},
		},
		{
			name:   "Sinh",
			ad:     autodiff.Variable.Sinh,
			fn:     math.Sinh,
			points: []float64{-1.0, 0.0, 1.5},
		},
		{
			name:   "Cosh",
			ad:     autodiff.Variable.Cosh,
			fn:     math.Cosh,
			points: []float64{-1.0, 0.0, 1.5},
		},
		{
			name:   "Tanh",
			ad:     autodiff.Variable.Tanh,
			fn:     math.Tanh,
			points: []float64{-1.0, 0.0, 1.5},
		},
		{
			name:   "Erf",
			ad:     autodiff.Variable.Erf,
			fn:     math.Erf,
			points: []float64{-1.0, 0.0, 0.8},
		},
		{
			name:   "Erfc",
			ad:     autodiff.Variable.Erfc,
			fn:     math.Erfc,
			points: []float64{-1.0, 0.0, 0.8},
		},
		{
			name:   "Powf",
			ad:     func(v autodiff.Variable) autodiff.Variable { return v.Powf(3.5) },
			fn:     func(x float64) float64 { return math.Pow(x, 3.5) },
			points: []float64{0.5, 1.0, 2.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.points {
				adGrad := evalAD(tt.ad, x)
				numGrad := numericalDerivative(tt.fn, x, epsilon)
				assert.InDelta(t, numGrad, adGrad, tolerance,
					"%s'(%g): ad=%g numerical=%g", tt.name, x, adGrad, numGrad)
			}
		})
	}
}

// TestGradientCheck_BinaryOps checks both partials of the binary operators
// against finite differences in each argument.
func TestGradientCheck_BinaryOps(t *testing.T) {
	const epsilon = 1e-6
	const tolerance = 1e-4

	tests := []struct {
		name string
		ad   func(v, w autodiff.Variable) autodiff.Variable
		fn   func(x, y float64) float64
		x, y float64
	}{
		{"Add", autodiff.Variable.Add, func(x, y float64) float64 { return x + y }, 2.0, 3.0},
		{"Sub", autodiff.Variable.Sub, func(x, y float64) float64 { return x - y }, 2.0, 3.0},
		{"Mul", autodiff.Variable.Mul, func(x, y float64) float64 { return x * y }, 2.0, 3.0},
		{"Div", autodiff.Variable.Div, func(x, y float64) float64 { return x / y }, 2.0, 3.0},
		{"Pow", autodiff.Variable.Pow, math.Pow, 1.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tape := autodiff.NewTape()
			x := tape.Var(tt.x)
			y := tape.Var(tt.y)
			grad := tt.ad(x, y).Accumulate()

			numX := numericalDerivative(func(v float64) float64 { return tt.fn(v, tt.y) }, tt.x, epsilon)
			numY := numericalDerivative(func(v float64) float64 { return tt.fn(tt.x, v) }, tt.y, epsilon)

			assert.InDelta(t, numX, grad.Wrt(x), tolerance)
			assert.InDelta(t, numY, grad.Wrt(y), tolerance)
		})
	}
}
