package autodiff

// Mul records v * w.
//
// d(v*w)/dv = w, d(v*w)/dw = v.
func (v Variable) Mul(w Variable) Variable {
	t := sameTape(v, w)
	return Variable{
		tape:  t,
		Index: t.PushBinary(v.Index, w.Value, w.Index, v.Value),
		Value: v.Value * w.Value,
	}
}

// MulScalar records v * c for a constant c.
//
// d(v*c)/dv = c.
func (v Variable) MulScalar(c float64) Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, c),
		Value: v.Value * c,
	}
}
