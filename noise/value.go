package noise

import (
	"math"

	"github.com/annel0/noise-gen/vec"
)

// Value — шум значений: каждому углу ячейки решётки сопоставляется
// псевдослучайное значение из таблицы перестановок, вклады сводятся
// квинтической интерполяцией. Дешевле градиентного шума, но даёт более
// "блочную" картину.
type Value struct {
	perm *PermutationTable
}

// NewValue создаёт генератор с указанным сидом.
func NewValue(seed uint32) *Value {
	return &Value{perm: NewPermutationTable(seed)}
}

// WithSeed возвращает новый генератор с другим сидом.
func (n *Value) WithSeed(seed uint32) *Value {
	return NewValue(seed)
}

// Seed возвращает текущий сид.
func (n *Value) Seed() uint32 {
	return n.perm.Seed()
}

// cornerValue переводит байт хэша в значение [-1, 1].
func cornerValue(hash uint8) float64 {
	return float64(hash)/127.5 - 1.0
}

// Get2 вычисляет 2D-шум значений.
func (n *Value) Get2(pt vec.Vec2Float) float64 {
	xf := math.Floor(pt.X)
	yf := math.Floor(pt.Y)
	xi := int64(xf)
	yi := int64(yf)
	u := quintic(pt.X - xf)
	v := quintic(pt.Y - yf)

	v00 := cornerValue(n.perm.Hash2(xi, yi))
	v10 := cornerValue(n.perm.Hash2(xi+1, yi))
	v01 := cornerValue(n.perm.Hash2(xi, yi+1))
	v11 := cornerValue(n.perm.Hash2(xi+1, yi+1))

	return lerp(lerp(v00, v10, u), lerp(v01, v11, u), v)
}

// Get3 вычисляет 3D-шум значений.
func (n *Value) Get3(pt vec.Vec3Float) float64 {
	xf := math.Floor(pt.X)
	yf := math.Floor(pt.Y)
	zf := math.Floor(pt.Z)
	xi := int64(xf)
	yi := int64(yf)
	zi := int64(zf)
	u := quintic(pt.X - xf)
	v := quintic(pt.Y - yf)
	w := quintic(pt.Z - zf)

	v000 := cornerValue(n.perm.Hash3(xi, yi, zi))
	v100 := cornerValue(n.perm.Hash3(xi+1, yi, zi))
	v010 := cornerValue(n.perm.Hash3(xi, yi+1, zi))
	v110 := cornerValue(n.perm.Hash3(xi+1, yi+1, zi))
	v001 := cornerValue(n.perm.Hash3(xi, yi, zi+1))
	v101 := cornerValue(n.perm.Hash3(xi+1, yi, zi+1))
	v011 := cornerValue(n.perm.Hash3(xi, yi+1, zi+1))
	v111 := cornerValue(n.perm.Hash3(xi+1, yi+1, zi+1))

	return lerp(
		lerp(lerp(v000, v100, u), lerp(v010, v110, u), v),
		lerp(lerp(v001, v101, u), lerp(v011, v111, u), v),
		w,
	)
}

// Get4 вычисляет 4D-шум значений.
func (n *Value) Get4(pt vec.Vec4Float) float64 {
	xf := math.Floor(pt.X)
	yf := math.Floor(pt.Y)
	zf := math.Floor(pt.Z)
	wf := math.Floor(pt.W)
	xi := int64(xf)
	yi := int64(yf)
	zi := int64(zf)
	wi := int64(wf)
	u := quintic(pt.X - xf)
	v := quintic(pt.Y - yf)
	s := quintic(pt.Z - zf)
	t := quintic(pt.W - wf)

	corner := func(ox, oy, oz, ow int64) float64 {
		return cornerValue(n.perm.Hash4(xi+ox, yi+oy, zi+oz, wi+ow))
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
