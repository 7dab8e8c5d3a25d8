package common

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func matricesClose(t *testing.T, got, want []float32) {
	t.Helper()
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > epsilon {
			t.Fatalf("element %d: got %v, want %v\ngot:  %v\nwant: %v", i, got[i], want[i], got, want)
		}
	}
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	want := []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	matricesClose(t, m, want)
}

func TestMul4Aliasing(t *testing.T) {
	a := make([]float32, 16)
	b := make([]float32, 16)
	MakeTranslate(a, 1, 2, 3)
	MakeScale(b, 2, 2, 2)

	want := make([]float32, 16)
	Mul4(want, a, b)

	// Writing the result over an input operand must not corrupt it.
	Mul4(a, a, b)
	matricesClose(t, a, want)
}

func TestMakeAffine(t *testing.T) {
	tests := []struct {
		name      string
		scale     [3]float32
		rotate    [3]float32
		translate [3]float32
		want      []float32
	}{
		{
			name:  "identity",
			scale: [3]float32{1, 1, 1},
			want:  []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		},
		{
			name:      "translate only",
			scale:     [3]float32{1, 1, 1},
			translate: [3]float32{2, 3, 4},
			want:      []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 2, 3, 4, 1},
		},
		{
			name:  "scale only",
			scale: [3]float32{2, 3, 4},
			want:  []float32{2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4, 0, 0, 0, 0, 1},
		},
		{
			name:   "rotate z quarter turn",
			scale:  [3]float32{1, 1, 1},
			rotate: [3]float32{0, 0, math.Pi / 2},
			want:   []float32{0, 1, 0, 0, -1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]float32, 16)
			MakeAffine(got, tt.scale, tt.rotate, tt.translate)
			matricesClose(t, got, tt.want)
		})
	}
}

func TestMakeAffineMatchesFactorProduct(t *testing.T) {
	scale := [3]float32{0.5, 2, 1.5}
	rotate := [3]float32{0.3, -0.7, 1.1}
	translate := [3]float32{4, -2, 9}

	got := make([]float32, 16)
	MakeAffine(got, scale, rotate, translate)

	s := make([]float32, 16)
	rx := make([]float32, 16)
	ry := make([]float32, 16)
	rz := make([]float32, 16)
	tr := make([]float32, 16)
	MakeScale(s, scale[0], scale[1], scale[2])
	MakeRotateX(rx, rotate[0])
	MakeRotateY(ry, rotate[1])
	MakeRotateZ(rz, rotate[2])
	MakeTranslate(tr, translate[0], translate[1], translate[2])

	want := make([]float32, 16)
	Mul4(want, s, rx)
	Mul4(want, want, ry)
	Mul4(want, want, rz)
	Mul4(want, want, tr)
	matricesClose(t, got, want)
}

func TestPerspectiveFov(t *testing.T) {
	m := make([]float32, 16)
	PerspectiveFov(m, math.Pi/2, 2, 1, 101)
	want := []float32{
		0.5, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1.01, 1,
		0, 0, -1.01, 0,
	}
	matricesClose(t, m, want)
}

func TestOrthographic(t *testing.T) {
	m := make([]float32, 16)
	Orthographic(m, 0, 0, 800, 600, 0, 100)
	want := []float32{
		2.0 / 800, 0, 0, 0,
		0, -2.0 / 600, 0, 0,
		0, 0, 0.01, 0,
		-1, 1, 0, 1,
	}
	matricesClose(t, m, want)
}

func TestWorldViewProjection(t *testing.T) {
	world := make([]float32, 16)
	view := make([]float32, 16)
	proj := make([]float32, 16)
	Identity(world)
	Identity(view)
	PerspectiveFov(proj, 0.45, 1280.0/720.0, 0.1, 100)

	out := make([]float32, 16)
	WorldViewProjection(out, world, view, proj)
	matricesClose(t, out, proj)
}

func TestMakeUVMatrix(t *testing.T) {
	m := make([]float32, 16)
	MakeUVMatrix(m, [3]float32{2, 2, 1}, 0, [3]float32{0.5, 0.25, 0})
	want := []float32{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 1, 0,
		0.5, 0.25, 0, 1,
	}
	matricesClose(t, m, want)
}

func TestInvert4(t *testing.T) {
	m := make([]float32, 16)
	MakeAffine(m, [3]float32{2, 1, 0.5}, [3]float32{0.4, 0.8, -0.2}, [3]float32{3, -1, 7})

	inv := make([]float32, 16)
	if !Invert4(inv, m) {
		t.Fatal("expected invertible matrix")
	}

	product := make([]float32, 16)
	Mul4(product, m, inv)
	want := make([]float32, 16)
	Identity(want)
	matricesClose(t, product, want)
}

func TestInvert4Singular(t *testing.T) {
	m := make([]float32, 16) // all zeroes, det == 0
	out := []float32{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	if Invert4(out, m) {
		t.Fatal("expected singular matrix to be rejected")
	}
	for i, v := range out {
		if v != 9 {
			t.Fatalf("element %d modified on failed inversion: %v", i, v)
		}
	}
}
