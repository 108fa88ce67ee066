// Package optim implements gradient-based optimization on tape-recorded
// scalar functions.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - GradientDescent: plain gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Each Minimize iteration clears the tape, re-records the objective at the
// current point, runs one backward pass, and applies the update.
//
// Example usage:
//
//	// f(x, y) = (x-1)² + (y+2)²
//	f := func(v []autodiff.Variable) autodiff.Variable {
//	    return v[0].SubScalar(1).Powf(2).Add(v[1].AddScalar(2).Powf(2))
//	}
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.05})
//	params := optim.Minimize(opt, f, []float64{0, 0}, 2000)
package optim

import (
	"github.com/wengert-ml/wengert/internal/autodiff"
)

// Objective is a differentiable scalar function of n tape variables. It
// must build its result exclusively from the supplied variables so the
// recorded graph connects the output to every parameter.
type Objective func(vars []autodiff.Variable) autodiff.Variable

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one in-place update to params given their gradient.
	Step(params, grads []float64)

	// LR returns the current learning rate.
	LR() float64
}

// Minimize runs iters record/backward/update cycles on f starting from
// init and returns the final parameter vector. init is not mutated.
//
// One tape is reused across iterations: Clear resets it before each forward
// recording, so indices never leak between cycles.
func Minimize(opt Optimizer, f Objective, init []float64, iters int) []float64 {
	params := append([]float64(nil), init...)
	grads := make([]float64, len(params))
	tape := autodiff.NewTape()

	for it := 0; it < iters; it++ {
		tape.Clear()
		vars := tape.Vars(params)
		out := f(vars)
		grad := out.Accumulate()
		for i, v := range vars {
			grads[i] = grad.Wrt(v)
		}
		opt.Step(params, grads)
	}
	return params
}
