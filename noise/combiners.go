package noise

import (
	"math"

	"github.com/annel0/noise-gen/vec"
)

// Combine объединяет значения двух источников, вычисленных в одной и той
// же точке, бинарной арифметической операцией. Один обобщённый тип
// заменяет семейство почти одинаковых узлов Add/Multiply/Power/Min/Max.
type Combine struct {
	Source1 Fn
	Source2 Fn
	op      func(a, b float64) float64
}

// Add возвращает узел, складывающий значения двух источников.
func Add(source1, source2 Fn) *Combine {
	return &Combine{Source1: source1, Source2: source2, op: func(a, b float64) float64 { return a + b }}
}

// Multiply возвращает узел, перемножающий значения двух источников.
func Multiply(source1, source2 Fn) *Combine {
	return &Combine{Source1: source1, Source2: source2, op: func(a, b float64) float64 { return a * b }}
}

// Power возвращает узел, возводящий значение первого источника в степень
// значения второго.
func Power(source1, source2 Fn) *Combine {
	return &Combine{Source1: source1, Source2: source2, op: math.Pow}
}

// Min возвращает узел, выбирающий меньшее из значений двух источников.
func Min(source1, source2 Fn) *Combine {
	return &Combine{Source1: source1, Source2: source2, op: math.Min}
}

// Max возвращает узел, выбирающий большее из значений двух источников.
func Max(source1, source2 Fn) *Combine {
	return &Combine{Source1: source1, Source2: source2, op: math.Max}
}

// Get2 объединяет значения источников в 2D-точке.
func (c *Combine) Get2(p vec.Vec2Float) float64 {
	return c.op(c.Source1.Get2(p), c.Source2.Get2(p))
}

// Get3 объединяет значения источников в 3D-точке.
func (c *Combine) Get3(p vec.Vec3Float) float64 {
	return c.op(c.Source1.Get3(p), c.Source2.Get3(p))
}

// Get4 объединяет значения источников в 4D-точке.
func (c *Combine) Get4(p vec.Vec4Float) float64 {
	return c.op(c.Source1.Get4(p), c.Source2.Get4(p))
}
