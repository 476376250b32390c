// Package cipher maps text onto ordered 3D point sets. The mappings are
// deterministic coordinate encodings driven by key/modulus parameters, not
// secrecy-preserving cryptography.
package cipher

import (
	"math"

	"github.com/iburimskiy/cipher-visualization/internal/geom"
)

// Radii of the torus every encoded point lands on. The reference grid drawn
// for orientation uses the same values.
const (
	MajorRadius = 3.0
	MinorRadius = 1.0
)

// EncryptToTorus maps each character of text to a point on the torus. Two
// independent modular-angle computations place the character: theta around
// the ring from (code*key1) % mod1, phi around the tube from
// (code*key2) % mod2.
//
// mod1 and mod2 must be >= 1; a zero modulus is a precondition violation and
// divides by zero. Output order follows input order, one point per character;
// empty text yields an empty sequence.
func EncryptToTorus(text string, key1, mod1, key2, mod2 int) []geom.Point3 {
	if text == "" {
		return nil
	}
	points := make([]geom.Point3, 0, len(text))
	for _, c := range text {
		code := int(c)
		theta := 2 * math.Pi * float64((code*key1)%mod1) / float64(mod1)
		phi := 2 * math.Pi * float64((code*key2)%mod2) / float64(mod2)
		ring := MajorRadius + MinorRadius*math.Cos(phi)
		points = append(points, geom.Point3{
			X: ring * math.Cos(theta),
			Y: ring * math.Sin(theta),
			Z: MinorRadius * math.Sin(phi),
		})
	}
	return points
}
