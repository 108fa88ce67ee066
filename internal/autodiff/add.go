package autodiff

// Add records v + w.
//
// d(v+w)/dv = 1, d(v+w)/dw = 1.
func (v Variable) Add(w Variable) Variable {
	t := sameTape(v, w)
	return Variable{
		tape:  t,
		Index: t.PushBinary(v.Index, 1.0, w.Index, 1.0),
		Value: v.Value + w.Value,
	}
}

// AddScalar records v + c for a constant c.
//
// d(v+c)/dv = 1.
func (v Variable) AddScalar(c float64) Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, 1.0),
		Value: v.Value + c,
	}
}
