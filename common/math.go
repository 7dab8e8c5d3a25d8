package common

import "math"

// Matrices throughout the engine are flat 16-element float32 slices stored in
// row-major order and applied to row vectors (v' = v * M), matching the
// conventions of the shader pipeline. The same convention is used everywhere;
// mixing conventions is a bug.

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 row-major matrices and stores the result in out.
// Result: out = a * b. The output slice may alias either input.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[r*4+k] * b[k*4+c]
			}
			buf[r*4+c] = sum
		}
	}
	copy(out, buf[:])
}

// MakeScale builds a scale matrix.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - sx, sy, sz: scale factors along each axis
func MakeScale(out []float32, sx, sy, sz float32) {
	Identity(out)
	out[0], out[5], out[10] = sx, sy, sz
}

// MakeRotateX builds a rotation matrix around the X axis.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - angle: rotation angle in radians
func MakeRotateX(out []float32, angle float32) {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	Identity(out)
	out[5], out[6] = c, s
	out[9], out[10] = -s, c
}

// MakeRotateY builds a rotation matrix around the Y axis.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - angle: rotation angle in radians
func MakeRotateY(out []float32, angle float32) {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	Identity(out)
	out[0], out[2] = c, -s
	out[8], out[10] = s, c
}

// MakeRotateZ builds a rotation matrix around the Z axis.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - angle: rotation angle in radians
func MakeRotateZ(out []float32, angle float32) {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	Identity(out)
	out[0], out[1] = c, s
	out[4], out[5] = -s, c
}

// MakeTranslate builds a translation matrix.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - tx, ty, tz: translation along each axis
func MakeTranslate(out []float32, tx, ty, tz float32) {
	Identity(out)
	out[12], out[13], out[14] = tx, ty, tz
}

// MakeAffine builds an affine transform matrix from scale, Euler rotation, and
// translation. Composition order is Scale * RotateX * RotateY * RotateZ *
// Translate, so under the row-vector convention scale is applied first and
// translation last.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - scale: scale factors along each axis
//   - rotate: Euler rotation angles in radians (x, y, z)
//   - translate: world-space translation
func MakeAffine(out []float32, scale, rotate, translate [3]float32) {
	cx := float32(math.Cos(float64(rotate[0])))
	sx := float32(math.Sin(float64(rotate[0])))
	cy := float32(math.Cos(float64(rotate[1])))
	sy := float32(math.Sin(float64(rotate[1])))
	cz := float32(math.Cos(float64(rotate[2])))
	sz := float32(math.Sin(float64(rotate[2])))

	// R = Rx * Ry * Rz expanded, each row scaled by the matching scale factor.
	out[0] = scale[0] * (cy * cz)
	out[1] = scale[0] * (cy * sz)
	out[2] = scale[0] * (-sy)
	out[3] = 0

	out[4] = scale[1] * (sx*sy*cz - cx*sz)
	out[5] = scale[1] * (sx*sy*sz + cx*cz)
	out[6] = scale[1] * (sx * cy)
	out[7] = 0

	out[8] = scale[2] * (cx*sy*cz + sx*sz)
	out[9] = scale[2] * (cx*sy*sz - sx*cz)
	out[10] = scale[2] * (cx * cy)
	out[11] = 0

	out[12] = translate[0]
	out[13] = translate[1]
	out[14] = translate[2]
	out[15] = 1
}

// PerspectiveFov creates a left-handed perspective projection matrix mapping
// depth to the [0, 1] clip range.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func PerspectiveFov(out []float32, fovY, aspect, near, far float32) {
	h := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	for i := range out[:16] {
		out[i] = 0
	}
	out[0] = h / aspect
	out[5] = h
	out[10] = far / (far - near)
	out[11] = 1
	out[14] = (-near * far) / (far - near)
}

// Orthographic creates a left-handed off-center orthographic projection
// matrix mapping depth to the [0, 1] clip range. Argument order matches the
// screen-space usage (left, top, right, bottom).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - left, top, right, bottom: view volume bounds
//   - near, far: depth clipping planes
func Orthographic(out []float32, left, top, right, bottom, near, far float32) {
	for i := range out[:16] {
		out[i] = 0
	}
	out[0] = 2 / (right - left)
	out[5] = 2 / (top - bottom)
	out[10] = 1 / (far - near)
	out[12] = (left + right) / (left - right)
	out[13] = (top + bottom) / (bottom - top)
	out[14] = near / (near - far)
	out[15] = 1
}

// WorldViewProjection composes a world matrix with view and projection into a
// single transform. The composition is right-associated; view and projection
// are combined first, so out = world * (view * projection).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - world: the entity's world matrix
//   - view: the camera's view matrix
//   - projection: the projection matrix
func WorldViewProjection(out, world, view, projection []float32) {
	var vp [16]float32
	Mul4(vp[:], view, projection)
	Mul4(out, world, vp[:])
}

// MakeUVMatrix builds the texture-coordinate transform used for sprite UV
// animation: Scale * RotateZ * Translate, 2D only (the z components of scale
// and translate are passed through but unused by the shader).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - scale: UV scale (x, y used)
//   - rotateZ: rotation in radians
//   - translate: UV translation (x, y used)
func MakeUVMatrix(out []float32, scale [3]float32, rotateZ float32, translate [3]float32) {
	var rot, trans [16]float32
	MakeScale(out, scale[0], scale[1], scale[2])
	MakeRotateZ(rot[:], rotateZ)
	Mul4(out, out, rot[:])
	MakeTranslate(trans[:], translate[0], translate[1], translate[2])
	Mul4(out, out, trans[:])
}

// Invert4 computes the inverse of a 4x4 matrix using the adjugate method.
// If the matrix is singular (determinant == 0) the output is left unchanged
// and the function returns false. Callers must treat a false return as an
// error; using the uninverted output would silently propagate garbage.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - m: source matrix (16 elements)
//
// Returns:
//   - bool: true if the matrix was successfully inverted, false if singular
func Invert4(out, m []float32) bool {
	var inv [16]float32

	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] +
		m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] -
		m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] +
		m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] -
		m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] -
		m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] +
		m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] -
		m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] +
		m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] +
		m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] -
		m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] +
		m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] -
		m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] -
		m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] +
		m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] -
		m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] +
		m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	if det == 0 {
		return false
	}

	invDet := 1.0 / det
	for i := range inv {
		out[i] = inv[i] * invDet
	}
	return true
}
