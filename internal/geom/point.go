package geom

// Point3 is a position in a right-handed world space centered at the origin.
type Point3 struct {
	X, Y, Z float64
}
