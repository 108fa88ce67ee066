package autodiff

import "math"

// Exp records e^v.
//
// d(e^v)/dv = e^v.
func (v Variable) Exp() Variable {
	value := math.Exp(v.Value)
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, value),
		Value: value,
	}
}
