package noise

import (
	"testing"

	"github.com/annel0/noise-gen/vec"
	"github.com/stretchr/testify/assert"
)

var origin2 = vec.Vec2Float{}

func TestCombiners(t *testing.T) {
	a := NewConstant(2.0)
	b := NewConstant(3.0)

	assert.Equal(t, 5.0, Add(a, b).Get2(origin2))
	assert.Equal(t, 6.0, Multiply(a, b).Get2(origin2))
	assert.Equal(t, 8.0, Power(a, b).Get2(origin2))
	assert.Equal(t, 2.0, Min(a, b).Get2(origin2))
	assert.Equal(t, 3.0, Max(a, b).Get2(origin2))
}

func TestCombinersMatchAcrossDimensions(t *testing.T) {
	a := NewPerlin(1)
	b := NewPerlin(2)
	sum := Add(a, b)

	p2 := vec.Vec2Float{X: 0.4, Y: 0.9}
	assert.Equal(t, a.Get2(p2)+b.Get2(p2), sum.Get2(p2))

	p3 := vec.Vec3Float{X: 0.4, Y: 0.9, Z: -1.2}
	assert.Equal(t, a.Get3(p3)+b.Get3(p3), sum.Get3(p3))

	p4 := vec.Vec4Float{X: 0.4, Y: 0.9, Z: -1.2, W: 2.5}
	assert.Equal(t, a.Get4(p4)+b.Get4(p4), sum.Get4(p4))
}

func TestAbsAndNegate(t *testing.T) {
	src := NewConstant(-0.5)

	assert.Equal(t, 0.5, NewAbs(src).Get2(origin2))
	assert.Equal(t, 0.5, NewNegate(src).Get2(origin2))
	assert.Equal(t, -0.5, NewNegate(NewConstant(0.5)).Get2(origin2))

	// Двойное отрицание — тождество
	p := vec.Vec2Float{X: 1.3, Y: 0.2}
	perlin := NewPerlin(3)
	assert.Equal(t, perlin.Get2(p), NewNegate(NewNegate(perlin)).Get2(p))
}

func TestClamp(t *testing.T) {
	c := NewClamp(NewConstant(2.0))
	assert.Equal(t, 1.0, c.Get2(origin2), "Границы по умолчанию [-1,1]")

	c = NewClamp(NewConstant(-2.0))
	assert.Equal(t, -1.0, c.Get2(origin2))

	c = NewClamp(NewConstant(0.3)).WithBounds(0.0, 0.25)
	assert.Equal(t, 0.25, c.Get2(origin2))

	// Значение внутри границ не меняется
	c = NewClamp(NewConstant(0.1)).WithBounds(0.0, 0.25)
	assert.Equal(t, 0.1, c.Get2(origin2))
}

func TestExponent(t *testing.T) {
	// Показатель 1 — тождество
	e := NewExponent(NewConstant(0.5))
	assert.InDelta(t, 0.5, e.Get2(origin2), 1e-15)

	// Показатель 2 прижимает значения к -1
	e2 := NewExponent(NewConstant(0.0)).WithExponent(2.0)
	assert.InDelta(t, -0.5, e2.Get2(origin2), 1e-15)

	// Единица остаётся единицей при любом показателе
	e3 := NewExponent(NewConstant(1.0)).WithExponent(3.7)
	assert.InDelta(t, 1.0, e3.Get2(origin2), 1e-12)
}

func TestScaleBias(t *testing.T) {
	s := NewScaleBias(NewConstant(0.5)).WithScale(2.0).WithBias(1.0)
	assert.Equal(t, 2.0, s.Get2(origin2))

	// По умолчанию — тождество
	id := NewScaleBias(NewConstant(0.7))
	assert.Equal(t, 0.7, id.Get2(origin2))
}

func TestBlend(t *testing.T) {
	a := NewConstant(2.0)
	b := NewConstant(4.0)

	assert.Equal(t, 2.0, NewBlend(a, b, NewConstant(0.0)).Get2(origin2))
	assert.Equal(t, 4.0, NewBlend(a, b, NewConstant(1.0)).Get2(origin2))
	assert.Equal(t, 2.5, NewBlend(a, b, NewConstant(0.25)).Get2(origin2))

	// Коэффициент вне [0,1] экстраполирует
	assert.Equal(t, 6.0, NewBlend(a, b, NewConstant(2.0)).Get2(origin2))
}

func TestSelectHardSwitch(t *testing.T) {
	inside := NewConstant(10.0)
	outside := NewConstant(-10.0)

	sel := func(control float64) float64 {
		return NewSelect(outside, inside, NewConstant(control)).Get2(origin2)
	}

	assert.Equal(t, -10.0, sel(-0.5), "Ниже диапазона — первый источник")
	assert.Equal(t, 10.0, sel(0.5), "Внутри диапазона — второй источник")
	assert.Equal(t, -10.0, sel(1.5), "Выше диапазона — первый источник")

	// Границы принадлежат второму источнику
	assert.Equal(t, 10.0, sel(0.0))
	assert.Equal(t, 10.0, sel(1.0))
}

func TestSelectFalloff(t *testing.T) {
	inside := NewConstant(1.0)
	outside := NewConstant(-1.0)

	sel := func(control float64) float64 {
		return NewSelect(outside, inside, NewConstant(control)).
			WithBounds(0.0, 1.0).
			WithFalloff(0.2).
			Get2(origin2)
	}

	// Далеко от краёв сглаживание не действует
	assert.Equal(t, -1.0, sel(-0.5))
	assert.Equal(t, 1.0, sel(0.5))
	assert.Equal(t, -1.0, sel(1.7))

	// Ровно на краю диапазона — середина перехода
	assert.InDelta(t, 0.0, sel(0.0), 1e-12)
	assert.InDelta(t, 0.0, sel(1.0), 1e-12)

	// Внутри переходной зоны значение строго между источниками
	v := sel(0.1)
	assert.Greater(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestSelectEvaluatesLazily(t *testing.T) {
	calls := 0
	counting := countingSource{calls: &calls}
	sel := NewSelect(NewConstant(0.0), counting, NewConstant(-5.0))

	// Управляющее значение вне диапазона: второй источник не вычисляется
	sel.Get2(origin2)
	assert.Zero(t, calls, "Невыбранный источник не должен вычисляться")
}

// countingSource считает вычисления; значение всегда 1.0.
type countingSource struct {
	calls *int
}

func (c countingSource) Get2(_ vec.Vec2Float) float64 { *c.calls++; return 1.0 }
func (c countingSource) Get3(_ vec.Vec3Float) float64 { *c.calls++; return 1.0 }
func (c countingSource) Get4(_ vec.Vec4Float) float64 { *c.calls++; return 1.0 }
