package noise

import (
	"math"

	"github.com/annel0/noise-gen/vec"
)

// Abs возвращает модуль значения источника.
type Abs struct {
	Source Fn
}

// NewAbs создаёт узел модуля.
func NewAbs(source Fn) *Abs {
	return &Abs{Source: source}
}

// Get2 возвращает |source|.
func (a *Abs) Get2(p vec.Vec2Float) float64 { return math.Abs(a.Source.Get2(p)) }

// Get3 возвращает |source|.
func (a *Abs) Get3(p vec.Vec3Float) float64 { return math.Abs(a.Source.Get3(p)) }

// Get4 возвращает |source|.
func (a *Abs) Get4(p vec.Vec4Float) float64 { return math.Abs(a.Source.Get4(p)) }

// Negate меняет знак значения источника.
type Negate struct {
	Source Fn
}

// NewNegate создаёт узел отрицания.
func NewNegate(source Fn) *Negate {
	return &Negate{Source: source}
}

// Get2 возвращает -source.
func (n *Negate) Get2(p vec.Vec2Float) float64 { return -n.Source.Get2(p) }

// Get3 возвращает -source.
func (n *Negate) Get3(p vec.Vec3Float) float64 { return -n.Source.Get3(p) }

// Get4 возвращает -source.
func (n *Negate) Get4(p vec.Vec4Float) float64 { return -n.Source.Get4(p) }

// Clamp ограничивает значение источника диапазоном [Lower, Upper].
// Границы применяются как заданы: Lower > Upper не считается ошибкой,
// пара просто инвертирует эффективный диапазон.
type Clamp struct {
	Source Fn
	Lower  float64
	Upper  float64
}

// NewClamp создаёт узел с границами по умолчанию [-1, 1].
func NewClamp(source Fn) *Clamp {
	return &Clamp{Source: source, Lower: -1.0, Upper: 1.0}
}

// WithBounds возвращает узел с другими границами.
func (c *Clamp) WithBounds(lower, upper float64) *Clamp {
	return &Clamp{Source: c.Source, Lower: lower, Upper: upper}
}

func (c *Clamp) clamp(v float64) float64 {
	if v < c.Lower {
		return c.Lower
	}
	if v > c.Upper {
		return c.Upper
	}
	return v
}

// Get2 возвращает ограниченное значение.
func (c *Clamp) Get2(p vec.Vec2Float) float64 { return c.clamp(c.Source.Get2(p)) }

// Get3 возвращает ограниченное значение.
func (c *Clamp) Get3(p vec.Vec3Float) float64 { return c.clamp(c.Source.Get3(p)) }

// Get4 возвращает ограниченное значение.
func (c *Clamp) Get4(p vec.Vec4Float) float64 { return c.clamp(c.Source.Get4(p)) }

// Exponent накладывает степенную кривую на значение источника: значение
// нормализуется из [-1,1] в [0,1], возводится в степень и возвращается
// обратно в [-1,1].
type Exponent struct {
	Source Fn
	Exp    float64
}

// NewExponent создаёт узел с показателем 1.0.
func NewExponent(source Fn) *Exponent {
	return &Exponent{Source: source, Exp: 1.0}
}

// WithExponent возвращает узел с другим показателем.
func (e *Exponent) WithExponent(exp float64) *Exponent {
	return &Exponent{Source: e.Source, Exp: exp}
}

func (e *Exponent) apply(v float64) float64 {
	v = (v + 1.0) / 2.0
	v = math.Abs(v)
	v = math.Pow(v, e.Exp)
	return scaleShift(v, 2.0)
}

// Get2 возвращает значение на степенной кривой.
func (e *Exponent) Get2(p vec.Vec2Float) float64 { return e.apply(e.Source.Get2(p)) }

// Get3 возвращает значение на степенной кривой.
func (e *Exponent) Get3(p vec.Vec3Float) float64 { return e.apply(e.Source.Get3(p)) }

// Get4 возвращает значение на степенной кривой.
func (e *Exponent) Get4(p vec.Vec4Float) float64 { return e.apply(e.Source.Get4(p)) }

// ScaleBias применяет аффинное преобразование value*Scale + Bias.
type ScaleBias struct {
	Source Fn
	Scale  float64
	Bias   float64
}

// NewScaleBias создаёт узел с масштабом 1.0 и смещением 0.0.
func NewScaleBias(source Fn) *ScaleBias {
	return &ScaleBias{Source: source, Scale: 1.0, Bias: 0.0}
}

// WithScale возвращает узел с другим масштабом.
func (s *ScaleBias) WithScale(scale float64) *ScaleBias {
	return &ScaleBias{Source: s.Source, Scale: scale, Bias: s.Bias}
}

// WithBias возвращает узел с другим смещением.
func (s *ScaleBias) WithBias(bias float64) *ScaleBias {
	return &ScaleBias{Source: s.Source, Scale: s.Scale, Bias: bias}
}

// Get2 возвращает source*Scale + Bias.
func (s *ScaleBias) Get2(p vec.Vec2Float) float64 { return s.Source.Get2(p)*s.Scale + s.Bias }

// Get3 возвращает source*Scale + Bias.
func (s *ScaleBias) Get3(p vec.Vec3Float) float64 { return s.Source.Get3(p)*s.Scale + s.Bias }

// Get4 возвращает source*Scale + Bias.
func (s *ScaleBias) Get4(p vec.Vec4Float) float64 { return s.Source.Get4(p)*s.Scale + s.Bias }
