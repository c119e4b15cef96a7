package noise

import (
	"math"

	"github.com/annel0/noise-gen/vec"
)

// SuperSimplex — вариант симплекс-шума с другими константами скоса
// решётки и более широким ядром вклада вершин (радиус² 2/3 в 2D и 3/4
// в 3D): перекрытие ядер соседних вершин даёт более гладкую картину,
// чем у OpenSimplex. Общая схема алгоритма та же — скос, поиск
// окружающей ячейки, сумма градиентных вкладов вершин.
//
// 4D-вариант не поддерживается: Get4 паникует.
type SuperSimplex struct {
	perm *PermutationTable
}

const (
	ssSkew2   = 0.366025403784439  // (sqrt(3)-1)/2
	ssUnskew2 = 0.211324865405187  // (3-sqrt(3))/6
	ssKernel2 = 2.0 / 3.0
	ssNorm2   = 12.0 // эмпирическая нормировка к [-1, 1]

	ssSkew3   = 1.0 / 3.0
	ssUnskew3 = 1.0 / 6.0
	ssKernel3 = 3.0 / 4.0
	ssNorm3   = 9.0
)

// NewSuperSimplex создаёт генератор с указанным сидом.
func NewSuperSimplex(seed uint32) *SuperSimplex {
	return &SuperSimplex{perm: NewPermutationTable(seed)}
}

// WithSeed возвращает новый генератор с другим сидом.
func (s *SuperSimplex) WithSeed(seed uint32) *SuperSimplex {
	return NewSuperSimplex(seed)
}

// Seed возвращает текущий сид.
func (s *SuperSimplex) Seed() uint32 {
	return s.perm.Seed()
}

// Get2 вычисляет 2D-шум: благодаря широкому ядру вклад вносят все
// четыре вершины косоугольной ячейки.
func (s *SuperSimplex) Get2(p vec.Vec2Float) float64 {
	skew := (p.X + p.Y) * ssSkew2
	xs := p.X + skew
	ys := p.Y + skew

	xsb := int64(math.Floor(xs))
	ysb := int64(math.Floor(ys))

	unskew := float64(xsb+ysb) * ssUnskew2
	x0 := p.X - (float64(xsb) - unskew)
	y0 := p.Y - (float64(ysb) - unskew)

	var value float64
	for oy := int64(0); oy <= 1; oy++ {
		for ox := int64(0); ox <= 1; ox++ {
			back := float64(ox+oy) * ssUnskew2
			dx := x0 - float64(ox) + back
			dy := y0 - float64(oy) + back
			attn := ssKernel2 - dx*dx - dy*dy
			if attn <= 0 {
				continue
			}
			attn *= attn
			value += attn * attn * gradDot2(s.perm.Hash2(xsb+ox, ysb+oy), dx, dy)
		}
	}
	return value * ssNorm2
}

// Get3 вычисляет 3D-шум по восьми вершинам косоугольной ячейки.
func (s *SuperSimplex) Get3(p vec.Vec3Float) float64 {
	skew := (p.X + p.Y + p.Z) * ssSkew3
	xsb := int64(math.Floor(p.X + skew))
	ysb := int64(math.Floor(p.Y + skew))
	zsb := int64(math.Floor(p.Z + skew))

	unskew := float64(xsb+ysb+zsb) * ssUnskew3
	x0 := p.X - (float64(xsb) - unskew)
	y0 := p.Y - (float64(ysb) - unskew)
	z0 := p.Z - (float64(zsb) - unskew)

	var value float64
	for oz := int64(0); oz <= 1; oz++ {
		for oy := int64(0); oy <= 1; oy++ {
			for ox := int64(0); ox <= 1; ox++ {
				back := float64(ox+oy+oz) * ssUnskew3
				dx := x0 - float64(ox) + back
				dy := y0 - float64(oy) + back
				dz := z0 - float64(oz) + back
				attn := ssKernel3 - dx*dx - dy*dy - dz*dz
				if attn <= 0 {
					continue
				}
				attn *= attn
				value += attn * attn * gradDot3(s.perm.Hash3(xsb+ox, ysb+oy, zsb+oz), dx, dy, dz)
			}
		}
	}
	return value * ssNorm3
}

// Get4 не поддерживается для супер-симплекса.
func (s *SuperSimplex) Get4(_ vec.Vec4Float) float64 {
	panic("noise: SuperSimplex не поддерживает 4D")
}
