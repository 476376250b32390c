package cipher

import "math"

// Complex is a minimal complex-number value. Every operation returns a new
// value; inputs built from character codes stay finite, so no operation
// reports errors.
type Complex struct {
	Re, Im float64
}

// Add returns a + b.
func (a Complex) Add(b Complex) Complex {
	return Complex{a.Re + b.Re, a.Im + b.Im}
}

// Sub returns a - b.
func (a Complex) Sub(b Complex) Complex {
	return Complex{a.Re - b.Re, a.Im - b.Im}
}

// Mul returns a * b.
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Pow returns a raised to a non-negative integer exponent by repeated
// multiplication. Pow(0) is the multiplicative identity (1, 0).
func (a Complex) Pow(n int) Complex {
	out := Complex{Re: 1}
	for i := 0; i < n; i++ {
		out = out.Mul(a)
	}
	return out
}

// Sqrt returns the principal square root: the branch whose real part is
// non-negative. Computed in polar form, so the result magnitude is the
// square root of |a| and the result angle is half of arg(a).
func (a Complex) Sqrt() Complex {
	r := math.Hypot(a.Re, a.Im)
	m := math.Sqrt(r)
	half := math.Atan2(a.Im, a.Re) / 2
	return Complex{
		Re: m * math.Cos(half),
		Im: m * math.Sin(half),
	}
}
