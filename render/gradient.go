package render

import (
	"image/color"
	"sort"
)

// GradientPoint привязывает цвет к позиции на шкале значений шума.
type GradientPoint struct {
	Pos   float64
	Color color.RGBA
}

// ColorGradient переводит значение шума в цвет линейной интерполяцией
// между упорядоченными опорными точками. Значения за пределами шкалы
// прижимаются к крайним точкам.
type ColorGradient struct {
	points []GradientPoint
}

// NewColorGradient создаёт пустой градиент.
func NewColorGradient() *ColorGradient {
	return &ColorGradient{}
}

// NewGrayscaleGradient создаёт градиент от чёрного (-1) к белому (1).
func NewGrayscaleGradient() *ColorGradient {
	g := NewColorGradient()
	g.AddPoint(-1.0, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	g.AddPoint(1.0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return g
}

// NewTerrainGradient создаёт палитру высот: глубины, отмели, берег,
// равнины, горы, снег.
func NewTerrainGradient() *ColorGradient {
	g := NewColorGradient()
	g.AddPoint(-1.00, color.RGBA{R: 0, G: 0, B: 128, A: 255})
	g.AddPoint(-0.25, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	g.AddPoint(0.00, color.RGBA{R: 0, G: 128, B: 255, A: 255})
	g.AddPoint(0.0625, color.RGBA{R: 240, G: 240, B: 64, A: 255})
	g.AddPoint(0.125, color.RGBA{R: 32, G: 160, B: 0, A: 255})
	g.AddPoint(0.375, color.RGBA{R: 224, G: 224, B: 0, A: 255})
	g.AddPoint(0.75, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	g.AddPoint(1.00, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return g
}

// AddPoint добавляет опорную точку, сохраняя сортировку по позиции.
// Точка с совпадающей позицией заменяет существующую.
func (g *ColorGradient) AddPoint(pos float64, c color.RGBA) *ColorGradient {
	for i := range g.points {
		if g.points[i].Pos == pos {
			g.points[i].Color = c
			return g
		}
	}
	g.points = append(g.points, GradientPoint{Pos: pos, Color: c})
	sort.Slice(g.points, func(i, j int) bool { return g.points[i].Pos < g.points[j].Pos })
	return g
}

// GetColor возвращает цвет для значения шума. Паникует, если в градиенте
// нет ни одной точки.
func (g *ColorGradient) GetColor(v float64) color.RGBA {
	if len(g.points) == 0 {
		panic("render: пустой градиент")
	}
	if v <= g.points[0].Pos {
		return g.points[0].Color
	}
	last := g.points[len(g.points)-1]
	if v >= last.Pos {
		return last.Color
	}
	// Ищем отрезок, содержащий v
	i := sort.Search(len(g.points), func(i int) bool { return g.points[i].Pos > v })
	p0 := g.points[i-1]
	p1 := g.points[i]
	alpha := (v - p0.Pos) / (p1.Pos - p0.Pos)
	return lerpColor(p0.Color, p1.Color, alpha)
}

func lerpColor(a, b color.RGBA, alpha float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*alpha + 0.5)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
