package geom

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-9

func closeTo(a, b Vec, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) < tol
}

func TestRingPositionsFiveFold(t *testing.T) {
	pts := RingPositions(5, 2, math.Pi/2)
	if len(pts) != 5 {
		t.Fatalf("got %d points, want 5", len(pts))
	}
	if !closeTo(pts[0], Vec{Y: 2}, eps) {
		t.Errorf("first point = %v, want (0, 2, 0)", pts[0])
	}
	for i, p := range pts {
		if r := r3.Norm(p); math.Abs(r-2) > eps {
			t.Errorf("point %d radius = %v, want 2", i, r)
		}
		next := pts[(i+1)%5]
		angle := math.Acos(r3.Dot(p, next) / 4)
		if math.Abs(angle-72*Degrees) > 1e-9 {
			t.Errorf("angle between %d and next = %v deg, want 72", i, angle/Degrees)
		}
	}
}

func TestCircleRejectsNegativeRadius(t *testing.T) {
	if _, err := Circle(Origin, -1, 32); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
	if _, err := RegularPolygon(2, 1, 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry for 2-gon, got %v", err)
	}
}

func TestStarInnerRadiusPentagram(t *testing.T) {
	got := StarInnerRadius(5, 2, 1)
	want := math.Cos(72*Degrees) / math.Cos(36*Degrees)
	if math.Abs(got-want) > eps {
		t.Fatalf("inner radius = %v, want %v", got, want)
	}
	pts, err := Star(5, 1, got, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 10 {
		t.Fatalf("star has %d vertices, want 10", len(pts))
	}
	if !closeTo(pts[0], Vec{Y: 1}, eps) {
		t.Errorf("first star vertex = %v, want top", pts[0])
	}
}

func TestPentagramOrder(t *testing.T) {
	ring := RingPositions(5, 1, 0)
	got := Pentagram(ring)
	order := []int{0, 2, 4, 1, 3}
	for i, idx := range order {
		if got[i] != ring[idx] {
			t.Errorf("position %d = ring[%v], want ring[%d]", i, got[i], idx)
		}
	}
}

func TestRoseMatchesFormula(t *testing.T) {
	f := Rose(2.5, 3)
	for _, tt := range []float64{0, 0.3, 1, 2, math.Pi} {
		r := 2.5 * math.Cos(3*tt)
		want := Vec{X: r * math.Cos(tt), Y: r * math.Sin(tt)}
		if got := f(tt); !closeTo(got, want, eps) {
			t.Errorf("Rose(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestFlowerIsFivePetalRose(t *testing.T) {
	f, g := Flower(1.5), Rose(1.5, 5)
	if !closeTo(f(0.7), g(0.7), eps) {
		t.Fatalf("Flower and Rose(1.5, 5) differ")
	}
}

func TestPartialProportions(t *testing.T) {
	line := []Vec{{}, {X: 10}}
	tests := []struct {
		name string
		a, b float64
		end  Vec
		n    int
	}{
		{"half", 0, 0.5, Vec{X: 5}, 2},
		{"full", 0, 1, Vec{X: 10}, 2},
		{"empty", 0, 0, Vec{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partial(line, false, tt.a, tt.b)
			if len(got) != tt.n {
				t.Fatalf("len = %d, want %d", len(got), tt.n)
			}
			if tt.n > 0 && !closeTo(got[len(got)-1], tt.end, eps) {
				t.Errorf("end = %v, want %v", got[len(got)-1], tt.end)
			}
		})
	}
}

func TestPartialClosedReturnsToStart(t *testing.T) {
	square := []Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
	got := Partial(square, true, 0, 1)
	if !closeTo(got[len(got)-1], square[0], eps) {
		t.Fatalf("closed partial ends at %v, want start", got[len(got)-1])
	}
	if l := Length(got, false); math.Abs(l-4) > eps {
		t.Fatalf("closed partial length = %v, want 4", l)
	}
}

func TestRotateAboutQuarterTurn(t *testing.T) {
	got := RotateAbout(Vec{X: 2, Y: 1}, math.Pi/2, Out, Vec{X: 1, Y: 1})
	if !closeTo(got, Vec{X: 1, Y: 2}, 1e-9) {
		t.Fatalf("RotateAbout = %v, want (1, 2, 0)", got)
	}
}

func TestNormalOfCounterclockwiseSquare(t *testing.T) {
	square := []Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
	if n := Normal(square); !closeTo(n, Out, eps) {
		t.Fatalf("Normal = %v, want +z", n)
	}
}

func TestCentroid(t *testing.T) {
	tests := []struct {
		name string
		pts  []Vec
		want Vec
	}{
		{"empty", nil, Origin},
		{"square face", []Vec{{X: 1, Z: 2}, {X: 3, Z: 2}, {X: 3, Y: 2, Z: 2}, {X: 1, Y: 2, Z: 2}}, Vec{X: 2, Y: 1, Z: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Centroid(tt.pts); !closeTo(got, tt.want, eps) {
				t.Fatalf("Centroid = %v, want %v", got, tt.want)
			}
		})
	}
}
