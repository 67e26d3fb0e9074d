package vect

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

type addTest struct {
	in1, in2 Vect
	out      Vect
}

var addTests = []addTest{
	{Vect{0, 0}, Vect{0, 0}, Vect{0, 0}},
	{Vect{0, 1}, Vect{0, 0}, Vect{0, 1}},
	{Vect{1, 0}, Vect{0, 0}, Vect{1, 0}},
	{Vect{1, 2}, Vect{0, 0}, Vect{1, 2}},
	{Vect{0, 0}, Vect{1, 2}, Vect{1, 2}},
	{Vect{2, 4}, Vect{1, 3}, Vect{3, 7}},
	{Vect{3, 1}, Vect{4, 2}, Vect{7, 3}},
	{Vect{5, 5}, Vect{2, 2}, Vect{7, 7}},
}

func TestAdd(t *testing.T) {
	for _, at := range addTests {
		v := Add(at.in1, at.in2)
		if !Equals(at.out, v) {
			t.Errorf("Add(%v, %v) = %v, want %v.", at.in1, at.in2, v, at.out)
		}
		m := at.in1
		m.Add(at.in2)
		if !Equals(at.out, m) {
			t.Errorf("(%v).Add(%v) = %v, want %v.", at.in1, at.in2, m, at.out)
		}
	}
}

type minTest struct {
	in1, in2 Vect
	out      Vect
}

var minTests = []minTest{
	{Vect{0, 0}, Vect{0, 0}, Vect{0, 0}},
	{Vect{1, 2}, Vect{9, 9}, Vect{1, 2}},
	{Vect{9, 9}, Vect{1, 2}, Vect{1, 2}},
	{Vect{5, 2}, Vect{1, 4}, Vect{1, 2}},
	{Vect{9, 6}, Vect{7, 8}, Vect{7, 6}},
}

func TestMin(t *testing.T) {
	for _, at := range minTests {
		v := Min(at.in1, at.in2)
		if !Equals(at.out, v) {
			t.Errorf("Min(%v, %v) = %v, want %v.", at.in1, at.in2, v, at.out)
		}
	}
}

var maxTests = []minTest{
	{Vect{0, 0}, Vect{0, 0}, Vect{0, 0}},
	{Vect{1, 2}, Vect{9, 9}, Vect{9, 9}},
	{Vect{9, 9}, Vect{1, 2}, Vect{9, 9}},
	{Vect{5, 2}, Vect{1, 4}, Vect{5, 4}},
	{Vect{9, 6}, Vect{7, 8}, Vect{9, 8}},
}

func TestMax(t *testing.T) {
	for _, at := range maxTests {
		v := Max(at.in1, at.in2)
		if !Equals(at.out, v) {
			t.Errorf("Max(%v, %v) = %v, want %v.", at.in1, at.in2, v, at.out)
		}
	}
}

type distTest struct {
	in1, in2 Vect
	out      Float
}

var distTests = []distTest{
	{Vect{0, 0}, Vect{0, 0}, 0},
	{Vect{0, 2}, Vect{0, 0}, 2},
	{Vect{2, 0}, Vect{0, 0}, 2},
	{Vect{0, 0}, Vect{4, 0}, 4},
	{Vect{0, 0}, Vect{0, 4}, 4},
	{Vect{1, 1}, Vect{0, 0}, Float(math.Sqrt(2))},
	{Vect{1, 1}, Vect{2, 2}, Float(math.Sqrt(2))},
}

func TestDist(t *testing.T) {
	for _, at := range distTests {
		v := Dist(at.in1, at.in2)
		if at.out != v {
			t.Errorf("Dist(%v, %v) = %v, want %v.", at.in1, at.in2, v, at.out)
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	v := Normalize(Vector_Zero)
	if !Equals(v, Vector_Zero) {
		t.Errorf("Normalize(0) = %v, want zero.", v)
	}
	m := Vect{}
	m.Normalize()
	if !Equals(m, Vector_Zero) {
		t.Errorf("(0).Normalize() = %v, want zero.", m)
	}
	if a := Angle(Vector_Zero); a != 0 {
		t.Errorf("Angle(0) = %v, want 0.", a)
	}
	if p := Project(Vect{3, 4}, Vector_Zero); !Equals(p, Vector_Zero) {
		t.Errorf("Project onto zero = %v, want zero.", p)
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize(Vect{3, 4})
	if !mgl64.FloatEqualThreshold(float64(v.X), 0.6, 1e-12) || !mgl64.FloatEqualThreshold(float64(v.Y), 0.8, 1e-12) {
		t.Errorf("Normalize({3, 4}) = %v, want {0.6, 0.8}.", v)
	}
}

type rotateTest struct {
	in    Vect
	angle Float
	out   Vect
}

var rotateTests = []rotateTest{
	{Vect{1, 0}, math.Pi / 2, Vect{0, 1}},
	{Vect{1, 0}, math.Pi, Vect{-1, 0}},
	{Vect{0, 2}, -math.Pi / 2, Vect{2, 0}},
	{Vect{1, 1}, 0, Vect{1, 1}},
}

func TestRotate(t *testing.T) {
	for _, rt := range rotateTests {
		v := Rotate(rt.in, rt.angle)
		if !Near(v, rt.out, 1e-12) {
			t.Errorf("Rotate(%v, %v) = %v, want %v.", rt.in, rt.angle, v, rt.out)
		}
	}
	v := RotateAbout(Vect{2, 1}, math.Pi, Vect{1, 1})
	if !Near(v, Vect{0, 1}, 1e-12) {
		t.Errorf("RotateAbout = %v, want {0, 1}.", v)
	}
}

func TestProjectAndAngle(t *testing.T) {
	p := Project(Vect{3, 4}, Vect{2, 0})
	if !Near(p, Vect{3, 0}, 1e-12) {
		t.Errorf("Project = %v, want {3, 0}.", p)
	}
	if l := ProjectLength(Vect{3, 4}, Vect{0, 5}); l != 4 {
		t.Errorf("ProjectLength = %v, want 4.", l)
	}
	a := Angle2(Vect{0, 0}, Vect{1, 0}, Vect{0, 1})
	if !mgl64.FloatEqualThreshold(float64(a), math.Pi/2, 1e-12) {
		t.Errorf("Angle2 = %v, want pi/2.", a)
	}
	if w := WrapAngle(3 * math.Pi / 2); !mgl64.FloatEqualThreshold(float64(w), -math.Pi/2, 1e-12) {
		t.Errorf("WrapAngle = %v, want -pi/2.", w)
	}
}

func TestLerp(t *testing.T) {
	v := Lerp(Vect{0, 0}, Vect{10, 20}, 0.25)
	if !Equals(v, Vect{2.5, 5}) {
		t.Errorf("Lerp = %v, want {2.5, 5}.", v)
	}
}

func TestCodecs(t *testing.T) {
	var v Vect
	if err := json.Unmarshal([]byte(`[1, 2]`), &v); err != nil || !Equals(v, Vect{1, 2}) {
		t.Errorf("json array decode = %v, %v", v, err)
	}
	if err := json.Unmarshal([]byte(`{"X": 3, "Y": 4}`), &v); err != nil || !Equals(v, Vect{3, 4}) {
		t.Errorf("json object decode = %v, %v", v, err)
	}
	if err := yaml.Unmarshal([]byte(`[5, 6]`), &v); err != nil || !Equals(v, Vect{5, 6}) {
		t.Errorf("yaml sequence decode = %v, %v", v, err)
	}
	if err := yaml.Unmarshal([]byte("x: 7\ny: 8\n"), &v); err != nil || !Equals(v, Vect{7, 8}) {
		t.Errorf("yaml mapping decode = %v, %v", v, err)
	}
	if err := yaml.Unmarshal([]byte(`[1, 2, 3]`), &v); err == nil {
		t.Errorf("yaml decode of 3 components should fail")
	}
	if g := (Vect{1, 2}).Vec2(); g != (mgl64.Vec2{1, 2}) || !Equals(FromVec2(g), Vect{1, 2}) {
		t.Errorf("Vec2 round trip = %v", g)
	}
}
