package autodiff

// Div records v / w.
//
// d(v/w)/dv = 1/w, d(v/w)/dw = -v/w².
func (v Variable) Div(w Variable) Variable {
	t := sameTape(v, w)
	return Variable{
		tape:  t,
		Index: t.PushBinary(v.Index, 1.0/w.Value, w.Index, -v.Value/(w.Value*w.Value)),
		Value: v.Value / w.Value,
	}
}

// DivScalar records v / c for a constant c.
//
// d(v/c)/dv = 1/c.
func (v Variable) DivScalar(c float64) Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, 1.0/c),
		Value: v.Value / c,
	}
}

// Recip records 1 / v.
//
// d(1/v)/dv = -1/v².
func (v Variable) Recip() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, -1.0/(v.Value*v.Value)),
		Value: 1.0 / v.Value,
	}
}
