package cipher

import "github.com/iburimskiy/cipher-visualization/internal/geom"

// polyScale keeps polynomial output magnitudes comparable to the torus radii.
const polyScale = 0.05

// EncryptToPolynomial maps each character of text through a complex cubic.
// The character code becomes z = code + i*((code*key) % modVal), and the
// output point is (z.Re, z.Im, w.Re) scaled by polyScale, where w is the
// principal square root of z^3 - 1.
//
// modVal must be >= 1; a zero modulus is a precondition violation and divides
// by zero. Same ordering and empty-text behavior as EncryptToTorus.
func EncryptToPolynomial(text string, key, modVal int) []geom.Point3 {
	if text == "" {
		return nil
	}
	one := Complex{Re: 1}
	points := make([]geom.Point3, 0, len(text))
	for _, c := range text {
		code := int(c)
		z := Complex{Re: float64(code), Im: float64((code * key) % modVal)}
		w := z.Pow(3).Sub(one).Sqrt()
		points = append(points, geom.Point3{
			X: z.Re * polyScale,
			Y: z.Im * polyScale,
			Z: w.Re * polyScale,
		})
	}
	return points
}
