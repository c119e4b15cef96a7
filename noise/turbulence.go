package noise

import (
	"math/rand"

	"github.com/annel0/noise-gen/vec"
)

// Параметры турбулентности по умолчанию.
const (
	DefaultTurbulenceFrequency = 1.0
	DefaultTurbulencePower     = 1.0
	DefaultTurbulenceRoughness = 3
)

// Turbulence искажает координаты точки перед вычислением источника:
// к каждой оси добавляется значение отдельного фрактала Перлина,
// умноженное на силу искажения. Сдвиги опорных точек искажающих
// фракталов фиксированы и подобраны так, чтобы оси искажались
// некоррелированно.
type Turbulence struct {
	Source Fn

	seed      uint32
	frequency float64
	power     float64
	roughness int

	xDistort *Fractal
	yDistort *Fractal
	zDistort *Fractal
	wDistort *Fractal
}

// NewTurbulence оборачивает источник турбулентностью с параметрами по
// умолчанию.
func NewTurbulence(source Fn) *Turbulence {
	t := &Turbulence{
		Source:    source,
		seed:      DefaultFractalSeed,
		frequency: DefaultTurbulenceFrequency,
		power:     DefaultTurbulencePower,
		roughness: DefaultTurbulenceRoughness,
	}
	t.rebuild()
	return t
}

// rebuild пересоздаёт искажающие фракталы. Сид каждого — элемент
// детерминированной последовательности, порождённой сидом узла.
func (t *Turbulence) rebuild() {
	rng := rand.New(rand.NewSource(int64(t.seed)))
	build := func() *Fractal {
		return NewFractal(t.roughness, perlinFactory).
			WithSeed(rng.Uint32()).
			WithFrequency(t.frequency)
	}
	t.xDistort = build()
	t.yDistort = build()
	t.zDistort = build()
	t.wDistort = build()
}

// Seed возвращает сид узла.
func (t *Turbulence) Seed() uint32 { return t.seed }

// WithSeed возвращает узел с другим сидом искажающих фракталов.
func (t *Turbulence) WithSeed(seed uint32) *Turbulence {
	if seed == t.seed {
		return t
	}
	c := *t
	c.seed = seed
	c.rebuild()
	return &c
}

// WithFrequency возвращает узел с другой частотой искажения.
func (t *Turbulence) WithFrequency(frequency float64) *Turbulence {
	c := *t
	c.frequency = frequency
	c.rebuild()
	return &c
}

// WithPower возвращает узел с другой силой искажения. Нулевая сила
// делает узел прозрачным.
func (t *Turbulence) WithPower(power float64) *Turbulence {
	c := *t
	c.power = power
	return &c
}

// WithRoughness возвращает узел с другим числом слоёв искажающих
// фракталов.
func (t *Turbulence) WithRoughness(roughness int) *Turbulence {
	c := *t
	c.roughness = roughness
	c.rebuild()
	return &c
}

// Get2 вычисляет источник в искажённой 2D-точке.
func (t *Turbulence) Get2(p vec.Vec2Float) float64 {
	if t.power == 0.0 {
		return t.Source.Get2(p)
	}
	x0 := vec.Vec2Float{X: p.X + 12414.0/65536.0, Y: p.Y + 65124.0/65536.0}
	y0 := vec.Vec2Float{X: p.X + 26519.0/65536.0, Y: p.Y + 18128.0/65536.0}
	return t.Source.Get2(vec.Vec2Float{
		X: p.X + t.power*t.xDistort.Get2(x0),
		Y: p.Y + t.power*t.yDistort.Get2(y0),
	})
}

// Get3 вычисляет источник в искажённой 3D-точке.
func (t *Turbulence) Get3(p vec.Vec3Float) float64 {
	if t.power == 0.0 {
		return t.Source.Get3(p)
	}
	x0 := vec.Vec3Float{X: p.X + 12414.0/65536.0, Y: p.Y + 65124.0/65536.0, Z: p.Z + 31337.0/65536.0}
	y0 := vec.Vec3Float{X: p.X + 26519.0/65536.0, Y: p.Y + 18128.0/65536.0, Z: p.Z + 60943.0/65536.0}
	z0 := vec.Vec3Float{X: p.X + 53820.0/65536.0, Y: p.Y + 11213.0/65536.0, Z: p.Z + 44845.0/65536.0}
	return t.Source.Get3(vec.Vec3Float{
		X: p.X + t.power*t.xDistort.Get3(x0),
		Y: p.Y + t.power*t.yDistort.Get3(y0),
		Z: p.Z + t.power*t.zDistort.Get3(z0),
	})
}

// Get4 вычисляет источник в искажённой 4D-точке.
func (t *Turbulence) Get4(p vec.Vec4Float) float64 {
	if t.power == 0.0 {
		return t.Source.Get4(p)
	}
	x0 := vec.Vec4Float{X: p.X + 12414.0/65536.0, Y: p.Y + 65124.0/65536.0, Z: p.Z + 31337.0/65536.0, W: p.W + 57948.0/65536.0}
	y0 := vec.Vec4Float{X: p.X + 26519.0/65536.0, Y: p.Y + 18128.0/65536.0, Z: p.Z + 60943.0/65536.0, W: p.W + 48513.0/65536.0}
	z0 := vec.Vec4Float{X: p.X + 53820.0/65536.0, Y: p.Y + 11213.0/65536.0, Z: p.Z + 44845.0/65536.0, W: p.W + 39357.0/65536.0}
	w0 := vec.Vec4Float{X: p.X + 18128.0/65536.0, Y: p.Y + 44845.0/65536.0, Z: p.Z + 12414.0/65536.0, W: p.W + 60943.0/65536.0}
	return t.Source.Get4(vec.Vec4Float{
		X: p.X + t.power*t.xDistort.Get4(x0),
		Y: p.Y + t.power*t.yDistort.Get4(y0),
		Z: p.Z + t.power*t.zDistort.Get4(z0),
		W: p.W + t.power*t.wDistort.Get4(w0),
	})
}
