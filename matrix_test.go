package pathmesh

import (
	"math"
	"testing"
)

func TestMatrix_Apply(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Translate(1, 1).Multiply(Scale(2, 2)), Pt(1, 1), Pt(3, 3)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(1, 1)), Pt(1, 1), Pt(4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Apply(tt.in); !pointsEqual(got, tt.want, 1e-12) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrix_Multiply_Associative(t *testing.T) {
	a := Rotate(0.3)
	b := Translate(4, -2)
	c := Scale(1.5, 0.5)
	left := a.Multiply(b).Multiply(c)
	right := a.Multiply(b.Multiply(c))
	p := Pt(7, 9)
	if !pointsEqual(left.Apply(p), right.Apply(p), 1e-12) {
		t.Errorf("(ab)c = %v, a(bc) = %v", left.Apply(p), right.Apply(p))
	}
	if !pointsEqual(left.Apply(p), a.Apply(b.Apply(c.Apply(p))), 1e-12) {
		t.Error("Multiply does not compose right to left")
	}
}

func TestMatrix_Determinant(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"scale", Scale(2, 3), 6},
		{"mirror", Scale(1, -1), -1},
		{"rotation", Rotate(1.234), 1},
		{"translation", Translate(100, 100), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("Determinant = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix_IsIdentity(t *testing.T) {
	if !Identity().IsIdentity() || !Scale(1, 1).IsIdentity() || !Translate(0, 0).IsIdentity() {
		t.Error("identity transforms not recognized")
	}
	if Translate(0, 1e-300).IsIdentity() || (Matrix{}).IsIdentity() {
		t.Error("non-identity transforms reported as identity")
	}
}
