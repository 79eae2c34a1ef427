// Package featvec defines the fixed-length feature vector handed to the
// downstream audio classifier. The size is part of the type, so a vector
// can never be shorter than the classifier's expected input.
package featvec

// Size is the number of features per vector.
const Size = 10

// Vector is a fixed-length feature vector.
// It has value semantics; assignment copies all elements.
type Vector [Size]float32

// FromSlice constructs a Vector from a raw float slice.
// len(s) must equal Size.
func FromSlice(s []float32) Vector {
	if len(s) != Size {
		panic("featvec: slice length does not match Size")
	}
	var v Vector
	copy(v[:], s)
	return v
}

// Slice returns an independent copy of v's elements.
// Mutating the returned slice does not affect v.
func (v Vector) Slice() []float32 {
	s := make([]float32, Size)
	copy(s, v[:])
	return s
}

// Floats64 widens v's elements to float64 for use with gonum routines.
func (v Vector) Floats64() []float64 {
	s := make([]float64, Size)
	for i, x := range v {
		s[i] = float64(x)
	}
	return s
}
