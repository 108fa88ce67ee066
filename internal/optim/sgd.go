package optim

// GradientDescent implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum accelerates descent in persistent directions and dampens
// oscillations.
type GradientDescent struct {
	lr       float64
	momentum float64
	velocity []float64
}

// GradientDescentConfig holds configuration for GradientDescent.
type GradientDescentConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewGradientDescent creates a new gradient descent optimizer.
func NewGradientDescent(config GradientDescentConfig) *GradientDescent {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &GradientDescent{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step applies one gradient descent update to params in place.
func (s *GradientDescent) Step(params, grads []float64) {
	if s.momentum == 0 {
		for i := range params {
			params[i] -= s.lr * grads[i]
		}
		return
	}

	if s.velocity == nil {
		s.velocity = make([]float64, len(params))
	}
	for i := range params {
		s.velocity[i] = s.momentum*s.velocity[i] + grads[i]
		params[i] -= s.lr * s.velocity[i]
	}
}

// LR returns the current learning rate.
func (s *GradientDescent) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Useful for scheduling.
func (s *GradientDescent) SetLR(lr float64) {
	s.lr = lr
}
