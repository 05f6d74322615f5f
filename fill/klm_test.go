package fill

import (
	"math"
	"testing"

	"github.com/gogpu/pathmesh"
)

func TestClassifyQuad(t *testing.T) {
	tests := []struct {
		name string
		q    pathmesh.QuadBez
		typ  CurveType
		sign float64
	}{
		{"counter-clockwise", pathmesh.QuadBez{P0: pathmesh.Pt(0, 0), P1: pathmesh.Pt(1, 0), P2: pathmesh.Pt(1, 1)}, CurveQuadratic, 1},
		{"clockwise", pathmesh.QuadBez{P0: pathmesh.Pt(0, 0), P1: pathmesh.Pt(1, 2), P2: pathmesh.Pt(2, 0)}, CurveQuadratic, -1},
		{"collinear", pathmesh.QuadBez{P0: pathmesh.Pt(0, 0), P1: pathmesh.Pt(1, 1), P2: pathmesh.Pt(2, 2)}, CurveLine, 0},
		{"overshoot", pathmesh.QuadBez{P0: pathmesh.Pt(0, 0), P1: pathmesh.Pt(5, 0), P2: pathmesh.Pt(1, 0)}, CurveLine, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ClassifyQuad(tt.q)
			if c.Type != tt.typ {
				t.Errorf("Type = %v, want %v", c.Type, tt.typ)
			}
			if c.Sign != tt.sign {
				t.Errorf("Sign = %v, want %v", c.Sign, tt.sign)
			}
		})
	}
}

func TestQuadKLM_ImplicitFunction(t *testing.T) {
	q := pathmesh.QuadBez{P0: pathmesh.Pt(0, 0), P1: pathmesh.Pt(1, 2), P2: pathmesh.Pt(2, 0)}
	ct := CurveTriangle{P: Triangle{q.P0, q.P1, q.P2}, KLM: quadKLM}

	// On the curve k² - lm vanishes.
	for i := 1; i < 10; i++ {
		pt := q.Eval(float64(i) / 10)
		klm, ok := ct.Interpolate(pt)
		if !ok {
			t.Fatalf("curve point %v outside its control triangle", pt)
		}
		if f := klm.K*klm.K - klm.L*klm.M; math.Abs(f) > 1e-12 {
			t.Errorf("implicit function at %v = %v, want 0", pt, f)
		}
	}

	tests := []struct {
		pt      pathmesh.Point
		covered bool
	}{
		{pathmesh.Pt(1, 0.5), true},  // between chord and curve
		{pathmesh.Pt(1, 0.99), true}, // just below the apex
		{pathmesh.Pt(1, 1.5), false}, // between curve and control point
		{pathmesh.Pt(0.4, 0.7), false},
	}
	for _, tt := range tests {
		klm, ok := ct.Interpolate(tt.pt)
		if !ok {
			t.Fatalf("%v should be inside the control triangle", tt.pt)
		}
		if got := EvalKLM(klm.K, klm.L, klm.M); got != tt.covered {
			t.Errorf("EvalKLM at %v = %v, want %v", tt.pt, got, tt.covered)
		}
	}
}

func TestClassifyCubic(t *testing.T) {
	tests := []struct {
		name        string
		c           pathmesh.CubicBez
		typ         CurveType
		inflections []float64
	}{
		{
			name: "loop",
			c:    pathmesh.CubicBez{P0: pathmesh.Pt(0, 0), P1: pathmesh.Pt(4, 3), P2: pathmesh.Pt(-2, 3), P3: pathmesh.Pt(2, 0)},
			typ:  CurveLoop,
		},
		{
			name:        "cusp",
			c:           pathmesh.CubicBez{P0: pathmesh.Pt(0, 0), P1: pathmesh.Pt(2, 2), P2: pathmesh.Pt(0, 2), P3: pathmesh.Pt(2, 0)},
			typ:         CurveCusp,
			inflections: []float64{0.5},
		},
		{
			name:        "symmetric s-curve",
			c:           pathmesh.CubicBez{P0: pathmesh.Pt(0, 0), P1: pathmesh.Pt(100, 0), P2: pathmesh.Pt(0, 100), P3: pathmesh.Pt(100, 100)},
			typ:         CurveCuspAtInfinity,
			inflections: []float64{0.5},
		},
		{
			name: "raised quadratic",
			c:    pathmesh.QuadBez{P0: pathmesh.Pt(0, 0), P1: pathmesh.Pt(1, 2), P2: pathmesh.Pt(2, 0)}.Raise(),
			typ:  CurveQuadratic,
		},
		{
			name: "straight",
			c:    pathmesh.CubicBez{P0: pathmesh.Pt(0, 0), P1: pathmesh.Pt(1, 1), P2: pathmesh.Pt(2, 2), P3: pathmesh.Pt(3, 3)},
			typ:  CurveLine,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := ClassifyCubic(tt.c)
			if cls.Type != tt.typ {
				t.Errorf("Type = %v, want %v (d = %v, %v, %v)", cls.Type, tt.typ, cls.D1, cls.D2, cls.D3)
			}
			if tt.inflections == nil {
				return
			}
			if len(cls.Inflections) == 0 {
				t.Fatalf("no inflections, want %v", tt.inflections)
			}
			for _, r := range cls.Inflections {
				if math.Abs(r-tt.inflections[0]) > 1e-9 {
					t.Errorf("inflection %v, want %v", r, tt.inflections[0])
				}
			}
		})
	}
}

func TestClassifyCubic_Serpentine(t *testing.T) {
	// An asymmetric S: two control points on opposite sides of the chord.
	c := pathmesh.CubicBez{P0: pathmesh.Pt(0, 0), P1: pathmesh.Pt(1, 2), P2: pathmesh.Pt(3, -1), P3: pathmesh.Pt(4, 0)}
	cls := ClassifyCubic(c)
	if cls.Type != CurveSerpentine {
		t.Errorf("Type = %v, want serpentine (d = %v, %v, %v)", cls.Type, cls.D1, cls.D2, cls.D3)
	}
	if len(cls.Inflections) == 0 {
		t.Error("serpentine crossing its chord should have an inflection in [0, 1]")
	}
}

func TestCurveType_String(t *testing.T) {
	want := map[CurveType]string{
		CurveSerpentine:     "serpentine",
		CurveLoop:           "loop",
		CurveCusp:           "cusp",
		CurveCuspAtInfinity: "cusp-at-infinity",
		CurveQuadratic:      "quadratic",
		CurveLine:           "line",
		CurveType(42):       "unknown",
	}
	for ct, s := range want {
		if ct.String() != s {
			t.Errorf("CurveType(%d).String() = %q, want %q", int(ct), ct.String(), s)
		}
	}
}
