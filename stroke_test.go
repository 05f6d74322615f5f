package pathmesh

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultStrokeStyle(t *testing.T) {
	s := DefaultStrokeStyle()
	if s.Width != 1.0 {
		t.Errorf("Width = %v, want 1.0", s.Width)
	}
	if s.Cap != LineCapButt {
		t.Errorf("Cap = %v, want butt", s.Cap)
	}
	if s.Join != LineJoinMiter {
		t.Errorf("Join = %v, want miter", s.Join)
	}
	if s.MiterLimit != 4.0 {
		t.Errorf("MiterLimit = %v, want 4.0", s.MiterLimit)
	}
	if s.HalfWidth() != 0.5 {
		t.Errorf("HalfWidth = %v, want 0.5", s.HalfWidth())
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default style invalid: %v", err)
	}
}

func TestStrokeStyle_With(t *testing.T) {
	base := DefaultStrokeStyle()
	s := base.WithWidth(4).WithCap(LineCapRound).WithJoin(LineJoinBevel).WithMiterLimit(2)
	if s.Width != 4 || s.Cap != LineCapRound || s.Join != LineJoinBevel || s.MiterLimit != 2 {
		t.Errorf("builder chain produced %+v", s)
	}
	if base != DefaultStrokeStyle() {
		t.Error("With* methods modified the receiver")
	}
}

func TestStrokeStyle_Validate(t *testing.T) {
	tests := []struct {
		name  string
		style StrokeStyle
		valid bool
	}{
		{"zero width", DefaultStrokeStyle().WithWidth(0), false},
		{"negative width", DefaultStrokeStyle().WithWidth(-1), false},
		{"NaN width", DefaultStrokeStyle().WithWidth(math.NaN()), false},
		{"miter limit below 1", DefaultStrokeStyle().WithMiterLimit(0.5), false},
		{"miter limit ignored for round join", DefaultStrokeStyle().WithJoin(LineJoinRound).WithMiterLimit(0), true},
		{"unknown cap", DefaultStrokeStyle().WithCap(LineCap(9)), false},
		{"unknown join", DefaultStrokeStyle().WithJoin(LineJoin(-1)), false},
		{"miter limit 1", DefaultStrokeStyle().WithMiterLimit(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.style.Validate()
			if (err == nil) != tt.valid {
				t.Fatalf("Validate() = %v, want valid=%v", err, tt.valid)
			}
			if err != nil && !errors.Is(err, ErrInvalidStroke) {
				t.Errorf("error %v does not wrap ErrInvalidStroke", err)
			}
		})
	}
}

func TestLineCapJoin_String(t *testing.T) {
	caps := map[LineCap]string{LineCapButt: "butt", LineCapRound: "round", LineCapSquare: "square", LineCap(5): "unknown"}
	for c, want := range caps {
		if c.String() != want {
			t.Errorf("LineCap(%d).String() = %q, want %q", int(c), c.String(), want)
		}
	}
	joins := map[LineJoin]string{LineJoinMiter: "miter", LineJoinRound: "round", LineJoinBevel: "bevel", LineJoin(5): "unknown"}
	for j, want := range joins {
		if j.String() != want {
			t.Errorf("LineJoin(%d).String() = %q, want %q", int(j), j.String(), want)
		}
	}
}

func TestParseLineCapJoin(t *testing.T) {
	for _, c := range []LineCap{LineCapButt, LineCapRound, LineCapSquare} {
		got, err := ParseLineCap(c.String())
		if err != nil || got != c {
			t.Errorf("ParseLineCap(%q) = %v, %v", c.String(), got, err)
		}
	}
	for _, j := range []LineJoin{LineJoinMiter, LineJoinRound, LineJoinBevel} {
		got, err := ParseLineJoin(j.String())
		if err != nil || got != j {
			t.Errorf("ParseLineJoin(%q) = %v, %v", j.String(), got, err)
		}
	}
	if _, err := ParseLineCap("unknown"); err == nil {
		t.Error("ParseLineCap accepted unknown")
	}
	if _, err := ParseLineJoin("arcs"); err == nil {
		t.Error("ParseLineJoin accepted arcs")
	}
}
