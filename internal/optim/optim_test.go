package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wengert-ml/wengert/internal/autodiff"
	"github.com/wengert-ml/wengert/internal/optim"
)

// quadratic2D is f(x, y) = (x-1)² + (y+2)², minimized at (1, -2).
func quadratic2D(vars []autodiff.Variable) autodiff.Variable {
	dx := vars[0].SubScalar(1.0)
	dy := vars[1].AddScalar(2.0)
	return dx.Mul(dx).Add(dy.Mul(dy))
}

func TestGradientDescent_Quadratic(t *testing.T) {
	opt := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.1})
	params := optim.Minimize(opt, quadratic2D, []float64{0, 0}, 200)

	require.Len(t, params, 2)
	assert.InDelta(t, 1.0, params[0], 1e-6)
	assert.InDelta(t, -2.0, params[1], 1e-6)
}

func TestGradientDescent_Momentum(t *testing.T) {
	opt := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.05, Momentum: 0.9})
	params := optim.Minimize(opt, quadratic2D, []float64{5, 5}, 500)

	assert.InDelta(t, 1.0, params[0], 1e-4)
	assert.InDelta(t, -2.0, params[1], 1e-4)
}

func TestGradientDescent_Defaults(t *testing.T) {
	opt := optim.NewGradientDescent(optim.GradientDescentConfig{})
	assert.Equal(t, 0.01, opt.LR())

	opt.SetLR(0.5)
	assert.Equal(t, 0.5, opt.LR())
}

func TestAdam_Quadratic(t *testing.T) {
	opt := optim.NewAdam(optim.AdamConfig{LR: 0.05})
	params := optim.Minimize(opt, quadratic2D, []float64{0, 0}, 2000)

	assert.InDelta(t, 1.0, params[0], 1e-3)
	assert.InDelta(t, -2.0, params[1], 1e-3)
}

func TestAdam_Defaults(t *testing.T) {
	opt := optim.NewAdam(optim.AdamConfig{})
	assert.Equal(t, 0.001, opt.LR())
}

// TestMinimize_ReusesTape verifies the driver leaves the caller's initial
// point untouched and converges on a function that reuses a variable on
// several paths.
func TestMinimize_ReusesTape(t *testing.T) {
	init := []float64{4.0}
	// f(x) = x⁴ - 2x², local minimum at x = 1 from this start.
	f := func(vars []autodiff.Variable) autodiff.Variable {
		x := vars[0]
		return x.Powf(4).Sub(x.Mul(x).MulScalar(2.0))
	}

	opt := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.005})
	params := optim.Minimize(opt, f, init, 2000)

	assert.Equal(t, 4.0, init[0], "Minimize must not mutate init")
	assert.InDelta(t, 1.0, params[0], 1e-3)
}
