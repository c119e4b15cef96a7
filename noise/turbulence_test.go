package noise

import (
	"testing"

	"github.com/annel0/noise-gen/vec"
	"github.com/stretchr/testify/assert"
)

func TestTurbulenceZeroPowerIsIdentity(t *testing.T) {
	src := NewPerlin(64)
	turb := NewTurbulence(src).WithPower(0.0)

	p2 := vec.Vec2Float{X: 0.3, Y: 1.2}
	assert.Equal(t, src.Get2(p2), turb.Get2(p2))

	p3 := vec.Vec3Float{X: 0.3, Y: 1.2, Z: -0.8}
	assert.Equal(t, src.Get3(p3), turb.Get3(p3))

	p4 := vec.Vec4Float{X: 0.3, Y: 1.2, Z: -0.8, W: 0.1}
	assert.Equal(t, src.Get4(p4), turb.Get4(p4))
}

func TestTurbulenceDeterminism(t *testing.T) {
	t1 := NewTurbulence(NewPerlin(64))
	t2 := NewTurbulence(NewPerlin(64))

	p := vec.Vec2Float{X: 0.5, Y: 0.5}
	assert.Equal(t, t1.Get2(p), t2.Get2(p))
}

func TestTurbulenceDistortsCoordinates(t *testing.T) {
	src := NewPerlin(64)
	turb := NewTurbulence(src)

	// С ненулевой силой хотя бы часть точек меняет значение
	differs := false
	sample2(turb, func(p vec.Vec2Float, v float64) {
		if v != src.Get2(p) {
			differs = true
		}
	})
	assert.True(t, differs, "Турбулентность должна искажать картину шума")
}

func TestTurbulenceSeedChangesDistortion(t *testing.T) {
	src := NewPerlin(64)
	t1 := NewTurbulence(src)
	t2 := t1.WithSeed(777)

	assert.Equal(t, uint32(777), t2.Seed())
	assert.Equal(t, uint32(DefaultFractalSeed), t1.Seed(), "Исходный узел не изменился")

	p := vec.Vec2Float{X: 0.5, Y: 0.5}
	assert.NotEqual(t, t1.Get2(p), t2.Get2(p), "Другой сид — другое искажение")
}

func TestTurbulenceBuilders(t *testing.T) {
	src := NewConstant(0.0)
	base := NewTurbulence(src)

	p := vec.Vec2Float{X: 0.1, Y: 0.2}

	// Константный источник не зависит от искажения точки
	assert.Equal(t, 0.0, base.WithPower(10.0).Get2(p))
	assert.Equal(t, 0.0, base.WithFrequency(5.0).WithRoughness(6).Get2(p))
}
