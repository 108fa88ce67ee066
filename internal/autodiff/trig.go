package autodiff

import "math"

// Sin records sin(v).
//
// d(sin v)/dv = cos(v).
func (v Variable) Sin() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, math.Cos(v.Value)),
		Value: math.Sin(v.Value),
	}
}

// Cos records cos(v).
//
// d(cos v)/dv = -sin(v).
func (v Variable) Cos() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, -math.Sin(v.Value)),
		Value: math.Cos(v.Value),
	}
}

// Tan records tan(v).
//
// d(tan v)/dv = 1/cos²(v).
func (v Variable) Tan() Variable {
	cos := math.Cos(v.Value)
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, 1.0/(cos*cos)),
		Value: math.Tan(v.Value),
	}
}

// Asin records arcsin(v).
//
// d(arcsin v)/dv = 1/√(1-v²). Input values must lie in (-1, 1).
func (v Variable) Asin() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, 1.0/math.Sqrt(1.0-v.Value*v.Value)),
		Value: math.Asin(v.Value),
	}
}

// Acos records arccos(v).
//
// d(arccos v)/dv = -1/√(1-v²). Input values must lie in (-1, 1).
func (v Variable) Acos() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, -1.0/math.Sqrt(1.0-v.Value*v.Value)),
		Value: math.Acos(v.Value),
	}
}

// Atan records arctan(v).
//
// d(arctan v)/dv = 1/(1+v²).
func (v Variable) Atan() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, 1.0/(1.0+v.Value*v.Value)),
		Value: math.Atan(v.Value),
	}
}
