package noise

import (
	"math"

	"github.com/annel0/noise-gen/vec"
)

// Perlin — градиентный шум Кена Перлина (improved-вариант с квинтической
// S-кривой). Для каждого из 2^d углов ячейки решётки берётся градиент по
// хэшу из таблицы перестановок, скалярно умножается на смещение до точки,
// и вклады сводятся повторной линейной интерполяцией по осям.
//
// В любой точке с целыми координатами результат строго равен 0.0:
// смещение до ближайшего угла нулевое, а веса интерполяции обнуляют
// вклады остальных углов.
type Perlin struct {
	perm *PermutationTable
}

// DefaultSeed — сид по умолчанию для генераторов пакета.
const DefaultSeed uint32 = 0

// NewPerlin создаёт генератор с указанным сидом.
func NewPerlin(seed uint32) *Perlin {
	return &Perlin{perm: NewPermutationTable(seed)}
}

// WithSeed возвращает новый генератор с другим сидом.
func (p *Perlin) WithSeed(seed uint32) *Perlin {
	return NewPerlin(seed)
}

// Seed возвращает текущий сид.
func (p *Perlin) Seed() uint32 {
	return p.perm.Seed()
}

// Get2 вычисляет 2D-шум в точке.
func (p *Perlin) Get2(pt vec.Vec2Float) float64 {
	xf := math.Floor(pt.X)
	yf := math.Floor(pt.Y)
	xi := int64(xf)
	yi := int64(yf)
	dx := pt.X - xf
	dy := pt.Y - yf

	u := quintic(dx)
	v := quintic(dy)

	g00 := gradDot2(p.perm.Hash2(xi, yi), dx, dy)
	g10 := gradDot2(p.perm.Hash2(xi+1, yi), dx-1, dy)
	g01 := gradDot2(p.perm.Hash2(xi, yi+1), dx, dy-1)
	g11 := gradDot2(p.perm.Hash2(xi+1, yi+1), dx-1, dy-1)

	return lerp(lerp(g00, g10, u), lerp(g01, g11, u), v)
}

// Get3 вычисляет 3D-шум в точке.
func (p *Perlin) Get3(pt vec.Vec3Float) float64 {
	xf := math.Floor(pt.X)
	yf := math.Floor(pt.Y)
	zf := math.Floor(pt.Z)
	xi := int64(xf)
	yi := int64(yf)
	zi := int64(zf)
	dx := pt.X - xf
	dy := pt.Y - yf
	dz := pt.Z - zf

	u := quintic(dx)
	v := quintic(dy)
	w := quintic(dz)

	g000 := gradDot3(p.perm.Hash3(xi, yi, zi), dx, dy, dz)
	g100 := gradDot3(p.perm.Hash3(xi+1, yi, zi), dx-1, dy, dz)
	g010 := gradDot3(p.perm.Hash3(xi, yi+1, zi), dx, dy-1, dz)
	g110 := gradDot3(p.perm.Hash3(xi+1, yi+1, zi), dx-1, dy-1, dz)
	g001 := gradDot3(p.perm.Hash3(xi, yi, zi+1), dx, dy, dz-1)
	g101 := gradDot3(p.perm.Hash3(xi+1, yi, zi+1), dx-1, dy, dz-1)
	g011 := gradDot3(p.perm.Hash3(xi, yi+1, zi+1), dx, dy-1, dz-1)
	g111 := gradDot3(p.perm.Hash3(xi+1, yi+1, zi+1), dx-1, dy-1, dz-1)

	return lerp(
		lerp(lerp(g000, g100, u), lerp(g010, g110, u), v),
		lerp(lerp(g001, g101, u), lerp(g011, g111, u), v),
		w,
	)
}

// Get4 вычисляет 4D-шум в точке.
func (p *Perlin) Get4(pt vec.Vec4Float) float64 {
	xf := math.Floor(pt.X)
	yf := math.Floor(pt.Y)
	zf := math.Floor(pt.Z)
	wf := math.Floor(pt.W)
	xi := int64(xf)
	yi := int64(yf)
	zi := int64(zf)
	wi := int64(wf)
	dx := pt.X - xf
	dy := pt.Y - yf
	dz := pt.Z - zf
	dw := pt.W - wf

	u := quintic(dx)
	v := quintic(dy)
	s := quintic(dz)
	t := quintic(dw)

	// 16 углов гиперкуба, свёртка по осям x → y → z → w.
	corner := func(ox, oy, oz, ow int64) float64 {
		return gradDot4(p.perm.Hash4(xi+ox, yi+oy, zi+oz, wi+ow),
			dx-float64(ox), dy-float64(oy), dz-float64(oz), dw-float64(ow))
	}

	x000 := lerp(corner(0, 0, 0, 0), corner(1, 0, 0, 0), u)
	x100 := lerp(corner(0, 1, 0, 0), corner(1, 1, 0, 0), u)
	x010 := lerp(corner(0, 0, 1, 0), corner(1, 0, 1, 0), u)
	x110 := lerp(corner(0, 1, 1, 0), corner(1, 1, 1, 0), u)
	x001 := lerp(corner(0, 0, 0, 1), corner(1, 0, 0, 1), u)
	x101 := lerp(corner(0, 1, 0, 1), corner(1, 1, 0, 1), u)
	x011 := lerp(corner(0, 0, 1, 1), corner(1, 0, 1, 1), u)
	x111 := lerp(corner(0, 1, 1, 1), corner(1, 1, 1, 1), u)

	y00 := lerp(x000, x100, v)
	y10 := lerp(x010, x110, v)
	y01 := lerp(x001, x101, v)
	y11 := lerp(x011, x111, v)

	return lerp(lerp(y00, y10, s), lerp(y01, y11, s), t)
}
