package autodiff

import "math"

// twoOverSqrtPi is the derivative of erf at zero: 2/√π.
var twoOverSqrtPi = 2.0 / math.Sqrt(math.Pi)

// Erf records the error function erf(v).
//
// d(erf v)/dv = (2/√π)·e^(-v²).
func (v Variable) Erf() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, twoOverSqrtPi*math.Exp(-v.Value*v.Value)),
		Value: math.Erf(v.Value),
	}
}

// Erfc records the complementary error function erfc(v) = 1 - erf(v).
//
// d(erfc v)/dv = -(2/√π)·e^(-v²).
func (v Variable) Erfc() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, -twoOverSqrtPi*math.Exp(-v.Value*v.Value)),
		Value: math.Erfc(v.Value),
	}
}
