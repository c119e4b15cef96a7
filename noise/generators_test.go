package noise

import (
	"math"
	"testing"

	"github.com/annel0/noise-gen/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample2 обходит сетку точек и передаёт значения источника проверке.
func sample2(fn Fn, check func(p vec.Vec2Float, v float64)) {
	for x := -3.0; x <= 3.0; x += 0.37 {
		for y := -3.0; y <= 3.0; y += 0.37 {
			p := vec.Vec2Float{X: x, Y: y}
			check(p, fn.Get2(p))
		}
	}
}

func TestPerlinZeroAtLatticePoints(t *testing.T) {
	p := NewPerlin(123)

	// В точках с целыми координатами шум Перлина строго равен нулю
	for x := int64(-4); x <= 4; x++ {
		for y := int64(-4); y <= 4; y++ {
			v := p.Get2(vec.Vec2Float{X: float64(x), Y: float64(y)})
			require.Zero(t, v, "Ожидался 0 в узле решётки (%d,%d), получено %v", x, y, v)
		}
	}
	require.Zero(t, p.Get3(vec.Vec3Float{X: 2, Y: -1, Z: 5}))
	require.Zero(t, p.Get4(vec.Vec4Float{X: 1, Y: 0, Z: -3, W: 2}))
}

func TestPerlinDeterminismAndRange(t *testing.T) {
	p1 := NewPerlin(7)
	p2 := NewPerlin(7)
	other := NewPerlin(8)

	differs := false
	sample2(p1, func(pt vec.Vec2Float, v float64) {
		assert.Equal(t, v, p2.Get2(pt), "Один сид — одно значение в точке %v", pt)
		assert.LessOrEqual(t, math.Abs(v), 1.0+1e-9, "Значение вне [-1,1] в точке %v", pt)
		if v != other.Get2(pt) {
			differs = true
		}
	})
	assert.True(t, differs, "Другой сид должен менять картину шума")
}

func TestPerlinSeedAccessors(t *testing.T) {
	p := NewPerlin(5)
	assert.Equal(t, uint32(5), p.Seed())

	p2 := p.WithSeed(9)
	assert.Equal(t, uint32(9), p2.Seed())
	// Исходный генератор не изменился
	assert.Equal(t, uint32(5), p.Seed())
}

func TestPerlinSurfletZeroAtLatticeAndRange(t *testing.T) {
	s := NewPerlinSurflet(31)

	require.Zero(t, s.Get2(vec.Vec2Float{X: 1, Y: -2}))
	require.Zero(t, s.Get3(vec.Vec3Float{X: 0, Y: 3, Z: -1}))

	sample2(s, func(pt vec.Vec2Float, v float64) {
		assert.LessOrEqual(t, math.Abs(v), 1.0+1e-6, "Сюрфлет вне [-1,1] в точке %v", pt)
	})
}

func TestOpenSimplexDeterminism(t *testing.T) {
	o1 := NewOpenSimplex(1001)
	o2 := NewOpenSimplex(1001)

	sample2(o1, func(pt vec.Vec2Float, v float64) {
		assert.Equal(t, v, o2.Get2(pt))
	})

	p3 := vec.Vec3Float{X: 0.5, Y: 1.7, Z: -2.3}
	assert.Equal(t, o1.Get3(p3), o2.Get3(p3))
	p4 := vec.Vec4Float{X: 0.5, Y: 1.7, Z: -2.3, W: 0.9}
	assert.Equal(t, o1.Get4(p4), o2.Get4(p4))
}

func TestOpenSimplexRange(t *testing.T) {
	o := NewOpenSimplex(77)
	sample2(o, func(pt vec.Vec2Float, v float64) {
		assert.LessOrEqual(t, math.Abs(v), 1.0+1e-6, "OpenSimplex вне [-1,1] в точке %v", pt)
	})
}

func TestSuperSimplexProducesVariedValues(t *testing.T) {
	s := NewSuperSimplex(2024)

	var minV, maxV float64
	sample2(s, func(pt vec.Vec2Float, v float64) {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	})
	assert.Less(t, minV, -0.1, "Ожидались отрицательные значения")
	assert.Greater(t, maxV, 0.1, "Ожидались положительные значения")
}

func TestSuperSimplex4DPanics(t *testing.T) {
	s := NewSuperSimplex(1)
	assert.Panics(t, func() {
		s.Get4(vec.Vec4Float{X: 1, Y: 2, Z: 3, W: 4})
	}, "4D не поддерживается и должен паниковать")
}

func TestValueNoiseRangeAndCornerMatch(t *testing.T) {
	n := NewValue(55)

	sample2(n, func(pt vec.Vec2Float, v float64) {
		assert.LessOrEqual(t, math.Abs(v), 1.0+1e-9)
	})

	// В узле решётки значение совпадает со значением угла
	p := vec.Vec2Float{X: 2, Y: -3}
	expected := cornerValue(NewPermutationTable(55).Hash2(2, -3))
	assert.Equal(t, expected, n.Get2(p))
}

func TestConstant(t *testing.T) {
	c := NewConstant(0.42)
	assert.Equal(t, 0.42, c.Get2(vec.Vec2Float{X: 1, Y: 2}))
	assert.Equal(t, 0.42, c.Get3(vec.Vec3Float{X: -5, Y: 0, Z: 9}))
	assert.Equal(t, 0.42, c.Get4(vec.Vec4Float{}))
}

func TestCheckerboard(t *testing.T) {
	c := NewCheckerboard(0)

	// Соседние клетки чередуются
	assert.Equal(t, 1.0, c.Get2(vec.Vec2Float{X: 0.5, Y: 0.5}))
	assert.Equal(t, -1.0, c.Get2(vec.Vec2Float{X: 1.5, Y: 0.5}))
	assert.Equal(t, -1.0, c.Get2(vec.Vec2Float{X: 0.5, Y: 1.5}))
	assert.Equal(t, 1.0, c.Get2(vec.Vec2Float{X: 1.5, Y: 1.5}))

	// Сдвиг по третьей оси тоже меняет чётность
	assert.Equal(t, -1.0, c.Get3(vec.Vec3Float{X: 0.5, Y: 0.5, Z: 1.5}))

	// Размер 1 даёт блоки 2x2
	big := NewCheckerboard(1)
	assert.Equal(t, big.Get2(vec.Vec2Float{X: 0.5, Y: 0.5}), big.Get2(vec.Vec2Float{X: 1.5, Y: 0.5}),
		"Внутри блока 2x2 значение одинаковое")
	assert.NotEqual(t, big.Get2(vec.Vec2Float{X: 0.5, Y: 0.5}), big.Get2(vec.Vec2Float{X: 2.5, Y: 0.5}))
}

func TestCylinders(t *testing.T) {
	c := NewCylinders()

	// На целом радиусе значение 1, посередине между кольцами -1
	assert.InDelta(t, 1.0, c.Get2(vec.Vec2Float{X: 2.0, Y: 0.0}), 1e-12)
	assert.InDelta(t, -1.0, c.Get2(vec.Vec2Float{X: 2.5, Y: 0.0}), 1e-12)

	// Частота сжимает кольца: радиус 1.25 на частоте 2 — середина между кольцами
	c2 := c.WithFrequency(2.0)
	assert.InDelta(t, -1.0, c2.Get2(vec.Vec2Float{X: 1.25, Y: 0.0}), 1e-12)

	// z и w игнорируются
	assert.Equal(t, c.Get2(vec.Vec2Float{X: 1.3, Y: 0.4}),
		c.Get3(vec.Vec3Float{X: 1.3, Y: 0.4, Z: 99.0}))
}

func TestWorleyDeterminismAndReturnTypes(t *testing.T) {
	w1 := NewWorley(404)
	w2 := NewWorley(404)

	sample2(w1, func(pt vec.Vec2Float, v float64) {
		assert.Equal(t, v, w2.Get2(pt))
	})

	p := vec.Vec2Float{X: 0.7, Y: 1.9}
	d1 := (NewWorley(404).WithReturnType(ReturnDistance).Get2(p) + 1.0) / 2.0
	d2 := (NewWorley(404).WithReturnType(ReturnDistance2).Get2(p) + 1.0) / 2.0
	sub := (NewWorley(404).WithReturnType(ReturnDistance2Sub).Get2(p) + 1.0) / 2.0

	assert.LessOrEqual(t, d1, d2, "Первое расстояние не больше второго")
	assert.InDelta(t, d2-d1, sub, 1e-12, "Разность расстояний согласована")

	val := NewWorley(404).WithReturnType(ReturnValue).Get2(p)
	assert.LessOrEqual(t, math.Abs(val), 1.0, "Значение опорной точки в [-1,1]")
}

func TestWorleyFrequencyEquivalence(t *testing.T) {
	w := NewWorley(11)
	scaled := w.WithFrequency(2.5)

	p := vec.Vec2Float{X: 0.3, Y: -1.1}
	assert.Equal(t, w.Get2(vec.Vec2Float{X: p.X * 2.5, Y: p.Y * 2.5}), scaled.Get2(p),
		"Частота эквивалентна масштабированию точки")
}

func TestWorleyDistanceMetrics(t *testing.T) {
	p := vec.Vec2Float{X: 0.4, Y: 0.6}
	base := NewWorley(8)

	// Разные метрики дают разные, но детерминированные результаты
	euclid := base.WithDistanceFunc(DistEuclidean).Get2(p)
	manhattan := base.WithDistanceFunc(DistManhattan).Get2(p)
	chebyshev := base.WithDistanceFunc(DistChebyshev).Get2(p)

	assert.LessOrEqual(t, chebyshev, manhattan,
		"Метрика Чебышёва не превышает манхэттенскую для одной и той же точки")
	assert.LessOrEqual(t, euclid, manhattan,
		"Евклидова метрика не превышает манхэттенскую")
}
