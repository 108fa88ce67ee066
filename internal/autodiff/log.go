package autodiff

import "math"

// Ln records the natural logarithm of v.
//
// d(ln v)/dv = 1/v. Input values must be positive.
func (v Variable) Ln() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, 1.0/v.Value),
		Value: math.Log(v.Value),
	}
}

// Log2 records the base-2 logarithm of v.
//
// d(log2 v)/dv = 1/(v·ln 2).
func (v Variable) Log2() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, 1.0/(v.Value*math.Ln2)),
		Value: math.Log2(v.Value),
	}
}

// Log10 records the base-10 logarithm of v.
//
// d(log10 v)/dv = 1/(v·ln 10).
func (v Variable) Log10() Variable {
	return Variable{
		tape:  v.tape,
		Index: v.tape.PushUnary(v.Index, 1.0/(v.Value*math.Ln10)),
		Value: math.Log10(v.Value),
	}
}
