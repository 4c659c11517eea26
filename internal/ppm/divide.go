package ppm

// Fixed-point helpers.
//
// Divide replaces a division with a multiply-by-reciprocal lookup: if x is
// a n-bit value and y is a m-bit value then Divide(x, n, y, m) ~= x / y.
// The approximation is exact for the (n, m) pairs the model actually uses;
// both the encoder and the decoder must compute it identically, so the
// reciprocal table below is as much a part of the wire format as the
// arithmetic-coder constants in consts.go.

var reciprocals [divisorLimit]uint16

func init() {
	for n := uint32(0); n < divisorLimit; n++ {
		reciprocals[n] = uint16((uint32(1) << reciprocalBits) / (n + 2))
	}
}

func excess(n, m uint32) uint32 {
	if n > m {
		return n - m
	}
	return 0
}

// Divide computes x/y for a n-bit x and a m-bit y using the reciprocal
// table, bit-for-bit identical on every platform.
func Divide(x, n, y, m uint32) uint32 {
	dn := excess(n, 32-reciprocalBits)
	dm := excess(m, divisorBits)
	dk := reciprocalBits + dm - dn
	return ((x >> dn) * uint32(reciprocals[y>>dm])) >> dk
}

// Fit reinterprets a n-bit unsigned value as a m-bit value, widening or
// narrowing by a shift. Precondition: x < 1<<n.
func Fit(x, n, m uint32) uint32 {
	if n > m {
		return x >> (n - m)
	}
	return x << (m - n)
}

// Fit0 is like Fit but nudges the result so it is neither 0 nor 1<<m.
// Precondition: 0 < x < 1<<n.
func Fit0(x, n, m uint32) uint32 {
	return Fit(x, n, m) + 1 - (x >> (n - 1))
}
