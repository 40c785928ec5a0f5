package rng

// Fixed is a Source that cycles through pinned values.
type Fixed struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

func (f *Fixed) Float64() float64 {
	if len(f.Floats) == 0 {
		return 0
	}
	v := f.Floats[f.fi%len(f.Floats)]
	f.fi++
	return v
}

func (f *Fixed) Intn(n int) int {
	if len(f.Ints) == 0 {
		return 0
	}
	v := f.Ints[f.ii%len(f.Ints)]
	f.ii++
	if v >= n {
		v = n - 1
	}
	return v
}
