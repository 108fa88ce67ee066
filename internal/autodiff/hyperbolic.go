package autodiff

import "math"

// Sinh records sinh(v).
//
// d(sinh v)/dv = cosh(v).
func (v Variable) Sinh() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, math.Cosh(v.Value)),
		Value: math.Sinh(v.Value),
	}
}

// Cosh records cosh(v).
//
// d(cosh v)/dv = sinh(v).
func (v Variable) Cosh() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, math.Sinh(v.Value)),
		Value: math.Cosh(v.Value),
	}
}

// Tanh records tanh(v).
//
// d(tanh v)/dv = 1/cosh²(v).
func (v Variable) Tanh() Variable {
	cosh := math.Cosh(v.Value)
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, 1.0/(cosh*cosh)),
		Value: math.Tanh(v.Value),
	}
}
