package noise

import (
	"math"

	"github.com/annel0/noise-gen/vec"
)

// OpenSimplex — шум на симплекс-решётке: входная точка переводится в
// косоугольные координаты, определяется окружающий симплекс, и каждая из
// его вершин вносит вклад через радиально симметричное ядро затухания,
// взвешенное градиентным скалярным произведением. По сравнению с
// гиперкубическим обходом Перлина даёт лучшую изотропию и меньше
// вершин в высоких размерностях.
type OpenSimplex struct {
	perm *PermutationTable
}

// Константы растяжения/сжатия решётки.
const (
	stretch2 = -0.211324865405187 // (1/sqrt(2+1)-1)/2
	squish2  = 0.366025403784439  // (sqrt(2+1)-1)/2
	norm2    = 47.0

	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0

	skew4   = 0.309016994374947 // (sqrt(4+1)-1)/4
	unskew4 = 0.138196601125011 // (1-1/sqrt(4+1))/4
)

// Градиенты 2D-варианта (по Кёрту Спенсеру).
var osGrad2 = [8]vec.Vec2Float{
	{X: 5, Y: 2}, {X: 2, Y: 5}, {X: -5, Y: 2}, {X: -2, Y: 5},
	{X: 5, Y: -2}, {X: 2, Y: -5}, {X: -5, Y: -2}, {X: -2, Y: -5},
}

// NewOpenSimplex создаёт генератор с указанным сидом.
func NewOpenSimplex(seed uint32) *OpenSimplex {
	return &OpenSimplex{perm: NewPermutationTable(seed)}
}

// WithSeed возвращает новый генератор с другим сидом.
func (o *OpenSimplex) WithSeed(seed uint32) *OpenSimplex {
	return NewOpenSimplex(seed)
}

// Seed возвращает текущий сид.
func (o *OpenSimplex) Seed() uint32 {
	return o.perm.Seed()
}

func (o *OpenSimplex) extrapolate2(xsb, ysb int64, dx, dy float64) float64 {
	g := osGrad2[o.perm.Hash2(xsb, ysb)&7]
	return g.X*dx + g.Y*dy
}

// Get2 вычисляет 2D-шум на ромбической решётке.
func (o *OpenSimplex) Get2(p vec.Vec2Float) float64 {
	// Переводим точку в косоугольные координаты решётки.
	stretchOffset := (p.X + p.Y) * stretch2
	xs := p.X + stretchOffset
	ys := p.Y + stretchOffset

	xsb := int64(math.Floor(xs))
	ysb := int64(math.Floor(ys))

	squishOffset := float64(xsb+ysb) * squish2
	xb := float64(xsb) + squishOffset
	yb := float64(ysb) + squishOffset

	xins := xs - float64(xsb)
	yins := ys - float64(ysb)
	inSum := xins + yins

	dx0 := p.X - xb
	dy0 := p.Y - yb

	var value float64

	// Вклад (1,0).
	dx1 := dx0 - 1 - squish2
	dy1 := dy0 - squish2
	if attn1 := 2 - dx1*dx1 - dy1*dy1; attn1 > 0 {
		attn1 *= attn1
		value += attn1 * attn1 * o.extrapolate2(xsb+1, ysb, dx1, dy1)
	}

	// Вклад (0,1).
	dx2 := dx0 - squish2
	dy2 := dy0 - 1 - squish2
	if attn2 := 2 - dx2*dx2 - dy2*dy2; attn2 > 0 {
		attn2 *= attn2
		value += attn2 * attn2 * o.extrapolate2(xsb, ysb+1, dx2, dy2)
	}

	var dxExt, dyExt float64
	var xsvExt, ysvExt int64

	if inSum <= 1 {
		// Внутри треугольника у (0,0).
		zins := 1 - inSum
		if zins > xins || zins > yins {
			if xins > yins {
				xsvExt, ysvExt = xsb+1, ysb-1
				dxExt, dyExt = dx0-1, dy0+1
			} else {
				xsvExt, ysvExt = xsb-1, ysb+1
				dxExt, dyExt = dx0+1, dy0-1
			}
		} else {
			xsvExt, ysvExt = xsb+1, ysb+1
			dxExt = dx0 - 1 - 2*squish2
			dyExt = dy0 - 1 - 2*squish2
		}
	} else {
		// Внутри треугольника у (1,1).
		zins := 2 - inSum
		if zins < xins || zins < yins {
			if xins > yins {
				xsvExt, ysvExt = xsb+2, ysb
				dxExt = dx0 - 2 - 2*squish2
				dyExt = dy0 - 2*squish2
			} else {
				xsvExt, ysvExt = xsb, ysb+2
				dxExt = dx0 - 2*squish2
				dyExt = dy0 - 2 - 2*squish2
			}
		} else {
			xsvExt, ysvExt = xsb, ysb
			dxExt, dyExt = dx0, dy0
		}
		xsb++
		ysb++
		dx0 = dx0 - 1 - 2*squish2
		dy0 = dy0 - 1 - 2*squish2
	}

	// Вклад (0,0) либо (1,1).
	if attn0 := 2 - dx0*dx0 - dy0*dy0; attn0 > 0 {
		attn0 *= attn0
		value += attn0 * attn0 * o.extrapolate2(xsb, ysb, dx0, dy0)
	}

	// Дополнительная вершина.
	if attnExt := 2 - dxExt*dxExt - dyExt*dyExt; attnExt > 0 {
		attnExt *= attnExt
		value += attnExt * attnExt * o.extrapolate2(xsvExt, ysvExt, dxExt, dyExt)
	}

	return value / norm2
}

// Get3 вычисляет 3D-шум: косоугольная решётка разбивается на тетраэдры,
// суммируются вклады четырёх вершин окружающего тетраэдра.
func (o *OpenSimplex) Get3(p vec.Vec3Float) float64 {
	s := (p.X + p.Y + p.Z) * skew3
	i := int64(math.Floor(p.X + s))
	j := int64(math.Floor(p.Y + s))
	k := int64(math.Floor(p.Z + s))

	t := float64(i+j+k) * unskew3
	x0 := p.X - (float64(i) - t)
	y0 := p.Y - (float64(j) - t)
	z0 := p.Z - (float64(k) - t)

	// Порядок обхода вершин тетраэдра по убыванию координат.
	var i1, j1, k1, i2, j2, k2 int64
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
	case x0 >= y0 && x0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
	case x0 >= y0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
	case y0 < z0 && x0 < z0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
	case y0 >= z0 && x0 < z0:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
	default:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
	}

	var value float64
	contribute := func(oi, oj, ok int64, steps float64) {
		dx := x0 - float64(oi) + steps*unskew3
		dy := y0 - float64(oj) + steps*unskew3
		dz := z0 - float64(ok) + steps*unskew3
		attn := 0.6 - dx*dx - dy*dy - dz*dz
		if attn <= 0 {
			return
		}
		attn *= attn
		value += attn * attn * gradDot3(o.perm.Hash3(i+oi, j+oj, k+ok), dx, dy, dz)
	}

	contribute(0, 0, 0, 0)
	contribute(i1, j1, k1, 1)
	contribute(i2, j2, k2, 2)
	contribute(1, 1, 1, 3)

	return 32.0 * value
}

// Get4 вычисляет 4D-шум: окружающий пентатоп ищется ранжированием
// координат, суммируются вклады его пяти вершин.
func (o *OpenSimplex) Get4(p vec.Vec4Float) float64 {
	s := (p.X + p.Y + p.Z + p.W) * skew4
	i := int64(math.Floor(p.X + s))
	j := int64(math.Floor(p.Y + s))
	k := int64(math.Floor(p.Z + s))
	l := int64(math.Floor(p.W + s))

	t := float64(i+j+k+l) * unskew4
	x0 := p.X - (float64(i) - t)
	y0 := p.Y - (float64(j) - t)
	z0 := p.Z - (float64(k) - t)
	w0 := p.W - (float64(l) - t)

	// Ранжируем координаты: ранг определяет, на каком шаге обхода
	// прибавляется единица по соответствующей оси.
	var rankX, rankY, rankZ, rankW int
	if x0 > y0 {
		rankX++
	} else {
		rankY++
	}
	if x0 > z0 {
		rankX++
	} else {
		rankZ++
	}
	if x0 > w0 {
		rankX++
	} else {
		rankW++
	}
	if y0 > z0 {
		rankY++
	} else {
		rankZ++
	}
	if y0 > w0 {
		rankY++
	} else {
		rankW++
	}
	if z0 > w0 {
		rankZ++
	} else {
		rankW++
	}

	step := func(rank, threshold int) int64 {
		if rank >= threshold {
			return 1
		}
		return 0
	}

	var value float64
	contribute := func(oi, oj, ok, ol int64, steps float64) {
		dx := x0 - float64(oi) + steps*unskew4
		dy := y0 - float64(oj) + steps*unskew4
		dz := z0 - float64(ok) + steps*unskew4
		dw := w0 - float64(ol) + steps*unskew4
		attn := 0.6 - dx*dx - dy*dy - dz*dz - dw*dw
		if attn <= 0 {
			return
		}
		attn *= attn
		value += attn * attn * gradDot4(o.perm.Hash4(i+oi, j+oj, k+ok, l+ol), dx, dy, dz, dw)
	}

	contribute(0, 0, 0, 0, 0)
	contribute(step(rankX, 3), step(rankY, 3), step(rankZ, 3), step(rankW, 3), 1)
	contribute(step(rankX, 2), step(rankY, 2), step(rankZ, 2), step(rankW, 2), 2)
	contribute(step(rankX, 1), step(rankY, 1), step(rankZ, 1), step(rankW, 1), 3)
	contribute(1, 1, 1, 1, 4)

	return 27.0 * value
}
