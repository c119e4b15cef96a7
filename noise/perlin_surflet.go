package noise

import (
	"math"

	"github.com/annel0/noise-gen/vec"
)

// PerlinSurflet — вариант шума Перлина, в котором вместо раздельной
// интерполяции по осям каждый угол ячейки вносит вклад через радиально
// симметричное ядро затухания (1-d²)⁴, умноженное на градиентное
// скалярное произведение. Обход решётки тот же, что у Perlin, меняется
// только взвешивание вкладов углов.
//
// В целочисленных точках решётки результат строго равен 0.0: вклад
// ближайшего угла нулевой (нулевое смещение), а остальные углы лежат
// на границе носителя ядра.
type PerlinSurflet struct {
	perm *PermutationTable
}

// Эмпирические нормировочные множители, приводящие сумму вкладов
// примерно к диапазону [-1, 1].
const (
	surfletNorm2 = 3.1604938271604937 // 256/81
	surfletNorm3 = 3.8898553255531074
	surfletNorm4 = 4.424369240215691
)

// NewPerlinSurflet создаёт генератор с указанным сидом.
func NewPerlinSurflet(seed uint32) *PerlinSurflet {
	return &PerlinSurflet{perm: NewPermutationTable(seed)}
}

// WithSeed возвращает новый генератор с другим сидом.
func (p *PerlinSurflet) WithSeed(seed uint32) *PerlinSurflet {
	return NewPerlinSurflet(seed)
}

// Seed возвращает текущий сид.
func (p *PerlinSurflet) Seed() uint32 {
	return p.perm.Seed()
}

func (p *PerlinSurflet) surflet2(xi, yi int64, dx, dy float64) float64 {
	attn := 1.0 - dx*dx - dy*dy
	if attn <= 0.0 {
		return 0.0
	}
	attn2 := attn * attn
	return attn2 * attn2 * gradDot2(p.perm.Hash2(xi, yi), dx, dy)
}

func (p *PerlinSurflet) surflet3(xi, yi, zi int64, dx, dy, dz float64) float64 {
	attn := 1.0 - dx*dx - dy*dy - dz*dz
	if attn <= 0.0 {
		return 0.0
	}
	attn2 := attn * attn
	return attn2 * attn2 * gradDot3(p.perm.Hash3(xi, yi, zi), dx, dy, dz)
}

func (p *PerlinSurflet) surflet4(xi, yi, zi, wi int64, dx, dy, dz, dw float64) float64 {
	attn := 1.0 - dx*dx - dy*dy - dz*dz - dw*dw
	if attn <= 0.0 {
		return 0.0
	}
	attn2 := attn * attn
	return attn2 * attn2 * gradDot4(p.perm.Hash4(xi, yi, zi, wi), dx, dy, dz, dw)
}

// Get2 вычисляет 2D-шум в точке.
func (p *PerlinSurflet) Get2(pt vec.Vec2Float) float64 {
	xf := math.Floor(pt.X)
	yf := math.Floor(pt.Y)
	xi := int64(xf)
	yi := int64(yf)
	dx := pt.X - xf
	dy := pt.Y - yf

	var sum float64
	for oy := int64(0); oy <= 1; oy++ {
		for ox := int64(0); ox <= 1; ox++ {
			sum += p.surflet2(xi+ox, yi+oy, dx-float64(ox), dy-float64(oy))
		}
	}
	return sum * surfletNorm2
}

// Get3 вычисляет 3D-шум в точке.
func (p *PerlinSurflet) Get3(pt vec.Vec3Float) float64 {
	xf := math.Floor(pt.X)
	yf := math.Floor(pt.Y)
	zf := math.Floor(pt.Z)
	xi := int64(xf)
	yi := int64(yf)
	zi := int64(zf)
	dx := pt.X - xf
	dy := pt.Y - yf
	dz := pt.Z - zf

	var sum float64
	for oz := int64(0); oz <= 1; oz++ {
		for oy := int64(0); oy <= 1; oy++ {
			for ox := int64(0); ox <= 1; ox++ {
				sum += p.surflet3(xi+ox, yi+oy, zi+oz,
					dx-float64(ox), dy-float64(oy), dz-float64(oz))
			}
		}
	}
	return sum * surfletNorm3
}

// Get4 вычисляет 4D-шум в точке.
func (p *PerlinSurflet) Get4(pt vec.Vec4Float) float64 {
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

	var sum float64
	for ow := int64(0); ow <= 1; ow++ {
		for oz := int64(0); oz <= 1; oz++ {
			for oy := int64(0); oy <= 1; oy++ {
				for ox := int64(0); ox <= 1; ox++ {
					sum += p.surflet4(xi+ox, yi+oy, zi+oz, wi+ow,
						dx-float64(ox), dy-float64(oy), dz-float64(oz), dw-float64(ow))
				}
			}
		}
	}
	return sum * surfletNorm4
}
