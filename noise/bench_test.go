package noise

import (
	"math"
	"testing"

	perlinref "github.com/aquilax/go-perlin"
	opensimplexref "github.com/ojrac/opensimplex-go"
	"github.com/stretchr/testify/assert"

	"github.com/annel0/noise-gen/vec"
)

// Сравнение со сторонними реализациями: абсолютные значения не обязаны
// совпадать (другие таблицы градиентов), но диапазон и характер должны
// быть сопоставимы.

func TestOpenSimplexRangeMatchesReference(t *testing.T) {
	ours := NewOpenSimplex(3)
	ref := opensimplexref.New(3)

	var oursMax, refMax float64
	for x := -2.0; x <= 2.0; x += 0.23 {
		for y := -2.0; y <= 2.0; y += 0.23 {
			oursMax = math.Max(oursMax, math.Abs(ours.Get2(vec.Vec2Float{X: x, Y: y})))
			refMax = math.Max(refMax, math.Abs(ref.Eval2(x, y)))
		}
	}
	assert.LessOrEqual(t, oursMax, 1.0+1e-6)
	assert.LessOrEqual(t, refMax, 1.0+1e-6)
}

func TestPerlinRangeMatchesReference(t *testing.T) {
	ours := NewPerlin(3)
	ref := perlinref.NewPerlin(2.0, 2.0, 1, 3)

	var oursMax, refMax float64
	for x := 0.01; x <= 4.0; x += 0.19 {
		for y := 0.01; y <= 4.0; y += 0.19 {
			oursMax = math.Max(oursMax, math.Abs(ours.Get2(vec.Vec2Float{X: x, Y: y})))
			refMax = math.Max(refMax, math.Abs(ref.Noise2D(x, y)))
		}
	}
	assert.LessOrEqual(t, oursMax, 1.0+1e-9)
	assert.LessOrEqual(t, refMax, 1.5, "Эталонная реализация сопоставима по масштабу")
}

var benchSink float64

func benchPoints2(n int) []vec.Vec2Float {
	pts := make([]vec.Vec2Float, n)
	for i := range pts {
		f := float64(i)
		pts[i] = vec.Vec2Float{X: f * 0.137, Y: f * 0.291}
	}
	return pts
}

func BenchmarkPerlin2(b *testing.B) {
	p := NewPerlin(1)
	pts := benchPoints2(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = p.Get2(pts[i%len(pts)])
	}
}

func BenchmarkPerlin3(b *testing.B) {
	p := NewPerlin(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := float64(i) * 0.137
		benchSink = p.Get3(vec.Vec3Float{X: f, Y: f * 2, Z: f * 3})
	}
}

func BenchmarkPerlinSurflet2(b *testing.B) {
	s := NewPerlinSurflet(1)
	pts := benchPoints2(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = s.Get2(pts[i%len(pts)])
	}
}

func BenchmarkOpenSimplex2(b *testing.B) {
	o := NewOpenSimplex(1)
	pts := benchPoints2(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = o.Get2(pts[i%len(pts)])
	}
}

func BenchmarkSuperSimplex2(b *testing.B) {
	s := NewSuperSimplex(1)
	pts := benchPoints2(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = s.Get2(pts[i%len(pts)])
	}
}

func BenchmarkWorley2(b *testing.B) {
	w := NewWorley(1)
	pts := benchPoints2(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = w.Get2(pts[i%len(pts)])
	}
}

func BenchmarkFractalPerlin2(b *testing.B) {
	f := NewFractalPerlin()
	pts := benchPoints2(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = f.Get2(pts[i%len(pts)])
	}
}

// Ориентиры из сторонних пакетов для сравнения порядка величин.

func BenchmarkReferencePerlin2(b *testing.B) {
	p := perlinref.NewPerlin(2.0, 2.0, 3, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := float64(i) * 0.137
		benchSink = p.Noise2D(f, f*2)
	}
}

func BenchmarkReferenceOpenSimplex2(b *testing.B) {
	o := opensimplexref.New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := float64(i) * 0.137
		benchSink = o.Eval2(f, f*2)
	}
}
