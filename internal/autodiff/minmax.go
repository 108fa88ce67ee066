package autodiff

import "math"

// Min records min(v, w). The partial derivative is 1 on the smaller operand
// and 0 on the other; ties resolve to v.
func (v Variable) Min(w Variable) Variable {
	t := sameTape(v, w)
	partials := [2]float64{1.0, 0.0}
	if w.Value < v.Value {
		partials = [2]float64{0.0, 1.0}
	}
	return Variable{
		tape:  t,
		Index: t.PushBinary(v.Index, partials[0], w.Index, partials[1]),
		Value: math.Min(v.Value, w.Value),
	}
}

// Max records max(v, w). The partial derivative is 1 on the larger operand
// and 0 on the other; ties resolve to v.
func (v Variable) Max(w Variable) Variable {
	t := sameTape(v, w)
	partials := [2]float64{1.0, 0.0}
	if w.Value > v.Value {
		partials = [2]float64{0.0, 1.0}
	}
	return Variable{
		tape:  t,
		Index: t.PushBinary(v.Index, partials[0], w.Index, partials[1]),
		Value: math.Max(v.Value, w.Value),
	}
}

// Abs records |v|.
//
// d|v|/dv = sign(v); the derivative at 0 is taken as 1.
func (v Variable) Abs() Variable {
	sign := 1.0
	if math.Signbit(v.Value) {
		sign = -1.0
	}
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, sign),
		Value: math.Abs(v.Value),
	}
}
