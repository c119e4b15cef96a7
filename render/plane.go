package render

import (
	"github.com/dgravesa/go-parallel/parallel"

	"github.com/annel0/noise-gen/noise"
	"github.com/annel0/noise-gen/vec"
)

// PlaneMapBuilder строит карту значений, сэмплируя источник по
// прямоугольной области плоскости xy. Строки считаются параллельно:
// узлы графа неизменяемы, поэтому одновременные запросы безопасны.
type PlaneMapBuilder struct {
	Source   noise.Fn
	Width    int
	Height   int
	LowerX   float64
	UpperX   float64
	LowerY   float64
	UpperY   float64
	Seamless bool
}

// NewPlaneMapBuilder создаёт билдер 256x256 по области [-1,1]x[-1,1].
func NewPlaneMapBuilder(source noise.Fn) *PlaneMapBuilder {
	return &PlaneMapBuilder{
		Source: source,
		Width:  256,
		Height: 256,
		LowerX: -1.0,
		UpperX: 1.0,
		LowerY: -1.0,
		UpperY: 1.0,
	}
}

// WithSize возвращает билдер с другим размером карты.
func (b *PlaneMapBuilder) WithSize(width, height int) *PlaneMapBuilder {
	c := *b
	c.Width = width
	c.Height = height
	return &c
}

// WithBounds возвращает билдер с другой областью сэмплирования.
func (b *PlaneMapBuilder) WithBounds(lowerX, upperX, lowerY, upperY float64) *PlaneMapBuilder {
	c := *b
	c.LowerX = lowerX
	c.UpperX = upperX
	c.LowerY = lowerY
	c.UpperY = upperY
	return &c
}

// WithSeamless возвращает билдер с бесшовным замыканием краёв: значение
// смешивается из четырёх копий области, так что противоположные края
// карты совпадают и текст можно тайлить.
func (b *PlaneMapBuilder) WithSeamless(seamless bool) *PlaneMapBuilder {
	c := *b
	c.Seamless = seamless
	return &c
}

// Build вычисляет карту. Паникует при вырожденной области или размере.
func (b *PlaneMapBuilder) Build() *NoiseMap {
	if b.LowerX >= b.UpperX || b.LowerY >= b.UpperY {
		panic("render: вырожденная область сэмплирования")
	}
	m := NewNoiseMap(b.Width, b.Height)

	xExtent := b.UpperX - b.LowerX
	yExtent := b.UpperY - b.LowerY
	xStep := xExtent / float64(b.Width)
	yStep := yExtent / float64(b.Height)

	parallel.For(b.Height, func(row, _ int) {
		y := b.LowerY + yStep*float64(row)
		for col := 0; col < b.Width; col++ {
			x := b.LowerX + xStep*float64(col)
			var v float64
			if b.Seamless {
				v = b.seamlessValue(x, y, xExtent, yExtent)
			} else {
				v = b.Source.Get2(vec.Vec2Float{X: x, Y: y})
			}
			m.Set(col, row, v)
		}
	})
	return m
}

// seamlessValue смешивает значения четырёх сдвинутых копий области по
// положению точки внутри неё.
func (b *PlaneMapBuilder) seamlessValue(x, y, xExtent, yExtent float64) float64 {
	sw := b.Source.Get2(vec.Vec2Float{X: x, Y: y})
	se := b.Source.Get2(vec.Vec2Float{X: x + xExtent, Y: y})
	nw := b.Source.Get2(vec.Vec2Float{X: x, Y: y + yExtent})
	ne := b.Source.Get2(vec.Vec2Float{X: x + xExtent, Y: y + yExtent})

	// Вес убывает от 1 на нижней границе до 0 на верхней: на нижней
	// границе берётся сдвинутая копия, на верхней — исходная, и эти
	// значения совпадают, потому что сдвиг равен размеру области.
	xBlend := 1.0 - (x-b.LowerX)/xExtent
	yBlend := 1.0 - (y-b.LowerY)/yExtent

	south := sw + (se-sw)*xBlend
	north := nw + (ne-nw)*xBlend
	return south + (north-south)*yBlend
}
