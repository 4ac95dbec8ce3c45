package math3d

// Mat4Record is the plain-field form of a Mat4: sixteen named scalars where
// MRC is the element at row R, column C. The mapping to the column-major
// array form is fixed so round-trips are lossless bit-for-bit.
type Mat4Record struct {
	M11, M21, M31, M41 float64
	M12, M22, M32, M42 float64
	M13, M23, M33, M43 float64
	M14, M24, M34, M44 float64
}

// Record returns the named-field form of m.
func (m Mat4) Record() Mat4Record {
	return Mat4Record{
		M11: m[0], M21: m[1], M31: m[2], M41: m[3],
		M12: m[4], M22: m[5], M32: m[6], M42: m[7],
		M13: m[8], M23: m[9], M33: m[10], M43: m[11],
		M14: m[12], M24: m[13], M34: m[14], M44: m[15],
	}
}

// FromRecord rebuilds a matrix from its named-field form.
// FromRecord(m.Record()) == m for every m.
func FromRecord(r Mat4Record) Mat4 {
	return Mat4{
		r.M11, r.M21, r.M31, r.M41,
		r.M12, r.M22, r.M32, r.M42,
		r.M13, r.M23, r.M33, r.M43,
		r.M14, r.M24, r.M34, r.M44,
	}
}
