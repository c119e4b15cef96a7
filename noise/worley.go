package noise

import (
	"math"

	"github.com/annel0/noise-gen/vec"
)

// WorleyReturnType выбирает, какая производная величина сообщается
// ячеистым шумом.
type WorleyReturnType int

const (
	// ReturnValue — псевдослучайное значение ближайшей опорной точки.
	ReturnValue WorleyReturnType = iota
	// ReturnDistance — расстояние до ближайшей опорной точки.
	ReturnDistance
	// ReturnDistance2 — расстояние до второй по близости опорной точки.
	ReturnDistance2
	// ReturnDistance2Sub — разность расстояний до второй и первой точек.
	ReturnDistance2Sub
)

// DistanceFunc — метрика расстояния между точкой выборки и опорной точкой.
type DistanceFunc func(dx, dy, dz, dw float64) float64

// Встроенные метрики.
var (
	DistEuclidean = func(dx, dy, dz, dw float64) float64 {
		return math.Sqrt(dx*dx + dy*dy + dz*dz + dw*dw)
	}
	DistEuclideanSq = func(dx, dy, dz, dw float64) float64 {
		return dx*dx + dy*dy + dz*dz + dw*dw
	}
	DistManhattan = func(dx, dy, dz, dw float64) float64 {
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz) + math.Abs(dw)
	}
	DistChebyshev = func(dx, dy, dz, dw float64) float64 {
		return math.Max(math.Max(math.Abs(dx), math.Abs(dy)), math.Max(math.Abs(dz), math.Abs(dw)))
	}
)

// Worley — ячеистый шум: в каждой ячейке целочисленной решётки
// детерминированно размещается одна опорная точка, и значение выводится
// из расстояний от точки выборки до опорных точек ячейки и всех её
// соседей. Обход ограничен окрестностью 3^d; смещение опорной точки
// может достигать дальнего края своей ячейки, поэтому вблизи углов
// ячейки изредка существует чуть более близкая точка за пределами
// окрестности — она не учитывается.
type Worley struct {
	perm       *PermutationTable
	Frequency  float64
	ReturnType WorleyReturnType
	Distance   DistanceFunc
}

// NewWorley создаёт генератор с частотой 1.0, евклидовой метрикой и
// выдачей расстояния до ближайшей точки.
func NewWorley(seed uint32) *Worley {
	return &Worley{
		perm:       NewPermutationTable(seed),
		Frequency:  1.0,
		ReturnType: ReturnDistance,
		Distance:   DistEuclidean,
	}
}

// WithSeed возвращает новый генератор с другим сидом.
func (w *Worley) WithSeed(seed uint32) *Worley {
	return &Worley{
		perm:       NewPermutationTable(seed),
		Frequency:  w.Frequency,
		ReturnType: w.ReturnType,
		Distance:   w.Distance,
	}
}

// Seed возвращает текущий сид.
func (w *Worley) Seed() uint32 {
	return w.perm.Seed()
}

// WithFrequency возвращает генератор с другой частотой.
func (w *Worley) WithFrequency(frequency float64) *Worley {
	c := *w
	c.Frequency = frequency
	return &c
}

// WithReturnType возвращает генератор с другим типом результата.
func (w *Worley) WithReturnType(rt WorleyReturnType) *Worley {
	c := *w
	c.ReturnType = rt
	return &c
}

// WithDistanceFunc возвращает генератор с другой метрикой.
func (w *Worley) WithDistanceFunc(fn DistanceFunc) *Worley {
	c := *w
	c.Distance = fn
	return &c
}

// featureOffset переводит байт хэша в смещение опорной точки внутри
// ячейки по одной оси; оси различаются дополнительной координатой хэша.
func (w *Worley) featureOffset(hash uint8) float64 {
	return float64(hash) / 255.0
}

func (w *Worley) result(d1, d2, value float64) float64 {
	switch w.ReturnType {
	case ReturnValue:
		return value
	case ReturnDistance:
		return d1*2.0 - 1.0
	case ReturnDistance2:
		return d2*2.0 - 1.0
	case ReturnDistance2Sub:
		return (d2-d1)*2.0 - 1.0
	default:
		return d1*2.0 - 1.0
	}
}

// Get2 вычисляет 2D-ячеистый шум.
func (w *Worley) Get2(p vec.Vec2Float) float64 {
	x := p.X * w.Frequency
	y := p.Y * w.Frequency
	cx := int64(math.Floor(x))
	cy := int64(math.Floor(y))

	d1 := math.Inf(1)
	d2 := math.Inf(1)
	var nearestValue float64

	for ox := int64(-1); ox <= 1; ox++ {
		for oy := int64(-1); oy <= 1; oy++ {
			fx := float64(cx+ox) + w.featureOffset(w.perm.Hash3(cx+ox, cy+oy, 0))
			fy := float64(cy+oy) + w.featureOffset(w.perm.Hash3(cx+ox, cy+oy, 1))
			d := w.Distance(x-fx, y-fy, 0, 0)
			if d < d1 {
				d2 = d1
				d1 = d
				nearestValue = cornerValue(w.perm.Hash2(cx+ox, cy+oy))
			} else if d < d2 {
				d2 = d
			}
		}
	}
	return w.result(d1, d2, nearestValue)
}

// Get3 вычисляет 3D-ячеистый шум.
func (w *Worley) Get3(p vec.Vec3Float) float64 {
	x := p.X * w.Frequency
	y := p.Y * w.Frequency
	z := p.Z * w.Frequency
	cx := int64(math.Floor(x))
	cy := int64(math.Floor(y))
	cz := int64(math.Floor(z))

	d1 := math.Inf(1)
	d2 := math.Inf(1)
	var nearestValue float64

	for ox := int64(-1); ox <= 1; ox++ {
		for oy := int64(-1); oy <= 1; oy++ {
			for oz := int64(-1); oz <= 1; oz++ {
				nx, ny, nz := cx+ox, cy+oy, cz+oz
				fx := float64(nx) + w.featureOffset(w.perm.Hash4(nx, ny, nz, 0))
				fy := float64(ny) + w.featureOffset(w.perm.Hash4(nx, ny, nz, 1))
				fz := float64(nz) + w.featureOffset(w.perm.Hash4(nx, ny, nz, 2))
				d := w.Distance(x-fx, y-fy, z-fz, 0)
				if d < d1 {
					d2 = d1
					d1 = d
					nearestValue = cornerValue(w.perm.Hash3(nx, ny, nz))
				} else if d < d2 {
					d2 = d
				}
			}
		}
	}
	return w.result(d1, d2, nearestValue)
}

// Get4 вычисляет 4D-ячеистый шум.
func (w *Worley) Get4(p vec.Vec4Float) float64 {
	x := p.X * w.Frequency
	y := p.Y * w.Frequency
	z := p.Z * w.Frequency
	u := p.W * w.Frequency
	cx := int64(math.Floor(x))
	cy := int64(math.Floor(y))
	cz := int64(math.Floor(z))
	cw := int64(math.Floor(u))

	d1 := math.Inf(1)
	d2 := math.Inf(1)
	var nearestValue float64

	for ox := int64(-1); ox <= 1; ox++ {
		for oy := int64(-1); oy <= 1; oy++ {
			for oz := int64(-1); oz <= 1; oz++ {
				for ow := int64(-1); ow <= 1; ow++ {
					nx, ny, nz, nw := cx+ox, cy+oy, cz+oz, cw+ow
					fx := float64(nx) + w.featureOffset(w.perm.Hash4(nx, ny, nz, nw*4+0))
					fy := float64(ny) + w.featureOffset(w.perm.Hash4(nx, ny, nz, nw*4+1))
					fz := float64(nz) + w.featureOffset(w.perm.Hash4(nx, ny, nz, nw*4+2))
					fw := float64(nw) + w.featureOffset(w.perm.Hash4(nx, ny, nz, nw*4+3))
					d := w.Distance(x-fx, y-fy, z-fz, u-fw)
					if d < d1 {
						d2 = d1
						d1 = d
						nearestValue = cornerValue(w.perm.Hash4(nx, ny, nz, nw))
					} else if d < d2 {
						d2 = d
					}
				}
			}
		}
	}
	return w.result(d1, d2, nearestValue)
}
