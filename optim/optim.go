// Package optim provides gradient-based optimizers driven by the autodiff
// tape.
//
// Example:
//
//	f := func(v []autodiff.Variable) autodiff.Variable {
//	    return v[0].SubScalar(3).Powf(2) // (x-3)²
//	}
//	opt := optim.NewGradientDescent(optim.GradientDescentConfig{LR: 0.1})
//	params := optim.Minimize(opt, f, []float64{0}, 200) // → [≈3]
package optim

import (
	"github.com/wengert-ml/wengert/internal/optim"
)

// Objective is a differentiable scalar function of the supplied variables.
type Objective = optim.Objective

// Optimizer is the base interface for all optimization algorithms.
type Optimizer = optim.Optimizer

// Minimize runs iters record/backward/update cycles and returns the final
// parameter vector.
func Minimize(opt Optimizer, f Objective, init []float64, iters int) []float64 {
	return optim.Minimize(opt, f, init, iters)
}

// GradientDescent is gradient descent with optional momentum.
type GradientDescent = optim.GradientDescent

// GradientDescentConfig configures GradientDescent.
type GradientDescentConfig = optim.GradientDescentConfig

// NewGradientDescent creates a new gradient descent optimizer.
func NewGradientDescent(config GradientDescentConfig) *GradientDescent {
	return optim.NewGradientDescent(config)
}

// Adam is the Adaptive Moment Estimation optimizer.
type Adam = optim.Adam

// AdamConfig configures Adam.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}
