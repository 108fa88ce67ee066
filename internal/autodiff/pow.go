package autodiff

import "math"

// Pow records v^w for a variable exponent.
//
// d(v^w)/dv = w·v^(w-1), d(v^w)/dw = v^w·ln(v).
func (v Variable) Pow(w Variable) Variable {
	t := sameTape(v, w)
	value := math.Pow(v.Value, w.Value)
	return Variable{
		tape: t,
		Index: t.PushBinary(
			v.Index, w.Value*math.Pow(v.Value, w.Value-1),
			w.Index, value*math.Log(v.Value),
		),
		Value: value,
	}
}

// Powf records v^p for a constant exponent.
//
// d(v^p)/dv = p·v^(p-1).
func (v Variable) Powf(p float64) Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, p*math.Pow(v.Value, p-1)),
		Value: math.Pow(v.Value, p),
	}
}

// Sqrt records √v.
//
// d(√v)/dv = 1/(2√v).
func (v Variable) Sqrt() Variable {
	value := math.Sqrt(v.Value)
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, 0.5/value),
		Value: value,
	}
}
